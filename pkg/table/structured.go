package table

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/Manu343726/isatable/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Writes the table as a JSON object keyed by opcode, one entry per line:
//
//	{
//		"0": {"COP":"NOOP","MA":""},
//		...
//	}
type JSON struct{}

func (JSON) Name() string {
	return "json"
}

func (JSON) Write(w io.Writer, rows []Row) error {
	out := bufio.NewWriter(w)
	out.WriteString("{\n")

	for i, row := range rows {
		key, err := marshalJSON(strconv.Itoa(row.OpCode))
		if err != nil {
			return err
		}

		value, err := marshalJSON(entry{Mnemonic: row.Mnemonic, AddressingMode: row.AddressingMode})
		if err != nil {
			return err
		}

		out.WriteByte('\t')
		out.Write(key)
		out.WriteString(": ")
		out.Write(value)

		if i < len(rows)-1 {
			out.WriteByte(',')
		}

		out.WriteByte('\n')
	}

	out.WriteString("}\n")
	return out.Flush()
}

// Like json.Marshal() but keeping "<", ">" and "&" as is
func marshalJSON(value any) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (JSON) Read(r io.Reader) ([]Row, error) {
	decoder := json.NewDecoder(r)

	if token, err := decoder.Token(); err != nil {
		return nil, utils.MakeError(ErrFormat, "%v", err)
	} else if delim, isDelim := token.(json.Delim); !isDelim || delim != '{' {
		return nil, utils.MakeError(ErrFormat, "expected a JSON object, got %v", token)
	}

	var rows []Row

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, utils.MakeError(ErrFormat, "%v", err)
		}

		key, _ := token.(string)

		var stored storedEntry
		if err := decoder.Decode(&stored); err != nil {
			return nil, utils.MakeError(ErrFormat, "entry '%v': %v", key, err)
		}

		value, err := stored.entry(key)
		if err != nil {
			return nil, err
		}

		row, err := makeRow(key, value)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, utils.MakeError(ErrFormat, "%v", err)
	}

	return rows, nil
}

// Writes the table as a YAML mapping keyed by opcode, each entry in flow style
type YAML struct{}

func (YAML) Name() string {
	return "yaml"
}

func quoted(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: value}
}

func plain(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func (YAML) Write(w io.Writer, rows []Row) error {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, row := range rows {
		value := &yaml.Node{
			Kind:  yaml.MappingNode,
			Tag:   "!!map",
			Style: yaml.FlowStyle,
			Content: []*yaml.Node{
				plain(MnemonicField), quoted(row.Mnemonic),
				plain(AddressingModeField), quoted(row.AddressingMode),
			},
		}

		root.Content = append(root.Content, quoted(strconv.Itoa(row.OpCode)), value)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return err
	}

	return encoder.Close()
}

func (YAML) Read(r io.Reader) ([]Row, error) {
	var document yaml.Node

	if err := yaml.NewDecoder(r).Decode(&document); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, utils.MakeError(ErrFormat, "%v", err)
	}

	if len(document.Content) != 1 || document.Content[0].Kind != yaml.MappingNode {
		return nil, utils.MakeError(ErrFormat, "expected a YAML mapping (line %v)", document.Line)
	}

	root := document.Content[0]
	rows := make([]Row, 0, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value

		var stored storedEntry
		if err := root.Content[i+1].Decode(&stored); err != nil {
			return nil, utils.MakeError(ErrFormat, "entry '%v': %v", key, err)
		}

		value, err := stored.entry(key)
		if err != nil {
			return nil, err
		}

		row, err := makeRow(key, value)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func makeRow(key string, value entry) (Row, error) {
	opCode, err := strconv.Atoi(key)
	if err != nil || opCode < 0 {
		return Row{}, utils.MakeError(ErrFormat, "invalid opcode key '%v'", key)
	}

	return Row{OpCode: opCode, Mnemonic: value.Mnemonic, AddressingMode: value.AddressingMode}, nil
}
