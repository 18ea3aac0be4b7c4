package table

import (
	"io"
	"strings"

	"github.com/Manu343726/isatable/pkg/utils"
)

// Serialization of an opcode table
type Format interface {
	// Short name of the format, as accepted by StructuredFormat()
	Name() string
	Write(w io.Writer, rows []Row) error
	// Reads rows back in file order
	Read(r io.Reader) ([]Row, error)
}

// Field names of each structured table entry
const (
	MnemonicField       = "COP"
	AddressingModeField = "MA"
)

type entry struct {
	Mnemonic       string `json:"COP" yaml:"COP"`
	AddressingMode string `json:"MA" yaml:"MA"`
}

// Entry as read from a structured file, where both fields are mandatory
type storedEntry struct {
	Mnemonic       *string `json:"COP" yaml:"COP"`
	AddressingMode *string `json:"MA" yaml:"MA"`
}

func (e storedEntry) entry(key string) (entry, error) {
	if e.Mnemonic == nil {
		return entry{}, utils.MakeError(ErrFormat, "entry '%v': missing %v field", key, MnemonicField)
	}

	if e.AddressingMode == nil {
		return entry{}, utils.MakeError(ErrFormat, "entry '%v': missing %v field", key, AddressingModeField)
	}

	return entry{Mnemonic: *e.Mnemonic, AddressingMode: *e.AddressingMode}, nil
}

var structuredFormats = map[string]Format{
	"json": JSON{},
	"yaml": YAML{},
	"yml":  YAML{},
}

// Returns the names of the supported structured formats
func StructuredFormats() []string {
	return utils.Keys(structuredFormats)
}

// Returns the keyed structured format with the given name
func StructuredFormat(name string) (Format, error) {
	if format, found := structuredFormats[strings.ToLower(name)]; found {
		return format, nil
	}

	return nil, utils.MakeError(ErrUnknownFormat, "'%v' (supported: %v)", name, utils.FormatSlice(StructuredFormats(), ", "))
}
