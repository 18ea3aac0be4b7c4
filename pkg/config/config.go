// Package config binds the isatable settings to viper.
package config

import (
	"strings"

	"github.com/Manu343726/isatable/pkg/table"
	"github.com/Manu343726/isatable/pkg/textenc"
	"github.com/spf13/viper"
)

const (
	KeyStructuredOutput = "output.structured"
	KeyDelimitedOutput  = "output.delimited"
	KeyStructuredFormat = "output.structured_format"
	KeyEncoding         = "output.encoding"
	KeyLogLevel         = "log.level"
	KeyLogFile          = "log.file"
)

const EnvPrefix = "ISATABLE"

type Output struct {
	// Path of the keyed structured table
	Structured string `mapstructure:"structured"`
	// Path of the semicolon delimited table
	Delimited string `mapstructure:"delimited"`
	// json or yaml
	StructuredFormat string `mapstructure:"structured_format"`
	// Character encoding of the delimited table, "host" for the host locale encoding
	Encoding string `mapstructure:"encoding"`
}

type Log struct {
	Level string `mapstructure:"level"`
	// If not empty, logs are also appended to this file as JSON lines
	File string `mapstructure:"file"`
}

type Settings struct {
	Output Output `mapstructure:"output"`
	Log    Log    `mapstructure:"log"`
}

// Registers the default value of every setting and the ISATABLE_* environment bindings
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyStructuredOutput, "instructions.json")
	v.SetDefault(KeyDelimitedOutput, "instructions.csv")
	v.SetDefault(KeyStructuredFormat, "json")
	v.SetDefault(KeyEncoding, textenc.Host)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Reads the settings from a viper instance previously initialized with SetDefaults()
func Load(v *viper.Viper) (*Settings, error) {
	var settings Settings

	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Returns the format of the structured table
func (s *Settings) StructuredFormat() (table.Format, error) {
	return table.StructuredFormat(s.Output.StructuredFormat)
}

// Returns the format of the delimited table, with its character encoding resolved
func (s *Settings) DelimitedFormat() (table.Delimited, error) {
	enc, err := textenc.Resolve(s.Output.Encoding)
	if err != nil {
		return table.Delimited{}, err
	}

	return table.Delimited{Encoding: enc}, nil
}
