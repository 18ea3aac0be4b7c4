package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Manu343726/isatable/cmd/tools"
	"github.com/Manu343726/isatable/pkg/config"
	"github.com/Manu343726/isatable/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tebeka/atexit"
)

var cfgFile string
var cfgErr error

// Loaded before any command runs
var settings *config.Settings

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "isatable",
	Short: "Opcode table generator for the von Neumann CPU simulator",
	Long: `isatable enumerates every combination of mnemonic, register, addressing mode and
condition of the simulated CPU instruction set, assigns each one a sequential opcode and
writes the resulting table as a keyed structured file (instructions.json) and a semicolon
delimited file (instructions.csv).

Running isatable without a subcommand is the same as running "isatable generate".`,
	Args:              cobra.NoArgs,
	PersistentPreRun:  setup,
	Run:               runGenerate,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fail(exitConfig, "%v", err)
	}

	atexit.Exit(0)
}

func init() {
	RootCmd.AddCommand(tools.ToolsCmd)
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.isatable.yaml)")
	flags.String("log-level", "info", "Console log level: debug, info, warn, error")
	flags.String("log-file", "", "Also append JSON logs to this file")
	flags.StringP("structured-output", "j", "instructions.json", "Path of the keyed structured table")
	flags.StringP("delimited-output", "d", "instructions.csv", "Path of the semicolon delimited table")
	flags.StringP("structured-format", "f", "json", "Format of the structured table: json, yaml")
	flags.StringP("encoding", "e", "host", "Character encoding of the delimited table (host, utf-8, windows-1252, ISO-8859-1, ...)")

	config.SetDefaults(viper.GetViper())

	bindings := map[string]string{
		config.KeyLogLevel:         "log-level",
		config.KeyLogFile:          "log-file",
		config.KeyStructuredOutput: "structured-output",
		config.KeyDelimitedOutput:  "delimited-output",
		config.KeyStructuredFormat: "structured-format",
		config.KeyEncoding:         "encoding",
	}

	for key, flag := range bindings {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".isatable" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".isatable")
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine, an explicit one is not
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			cfgErr = err
		}
	}
}

func setup(cmd *cobra.Command, args []string) {
	if cfgErr != nil {
		fail(exitConfig, "reading config file: %v", cfgErr)
	}

	var err error
	if settings, err = config.Load(viper.GetViper()); err != nil {
		fail(exitConfig, "loading settings: %v", err)
	}

	logger, closer, err := logging.New(os.Stderr, settings.Log.Level, settings.Log.File)
	if err != nil {
		fail(exitConfig, "initializing logger: %v", err)
	}

	atexit.Register(func() {
		if err := closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "closing log file: %v\n", err)
		}
	})

	slog.SetDefault(logger)

	if used := viper.ConfigFileUsed(); used != "" && cfgErr == nil {
		slog.Debug("using config file", "path", used)
	}
}
