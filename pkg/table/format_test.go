package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Manu343726/isatable/pkg/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

var sampleRows = []Row{
	{OpCode: 0, Mnemonic: "NOOP"},
	{OpCode: 1, Mnemonic: "LOAD A", AddressingMode: "Immédiat"},
	{OpCode: 2, Mnemonic: "A+B ->  A"},
	{OpCode: 3, Mnemonic: "JUMPC (A%2 == 0)", AddressingMode: "Indexé Étendu"},
}

func TestJSON_Write(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Write(&buf, sampleRows))

	assert.Equal(t, ""+
		"{\n"+
		"\t\"0\": {\"COP\":\"NOOP\",\"MA\":\"\"},\n"+
		"\t\"1\": {\"COP\":\"LOAD A\",\"MA\":\"Immédiat\"},\n"+
		"\t\"2\": {\"COP\":\"A+B ->  A\",\"MA\":\"\"},\n"+
		"\t\"3\": {\"COP\":\"JUMPC (A%2 == 0)\",\"MA\":\"Indexé Étendu\"}\n"+
		"}\n",
		buf.String())
}

func TestJSON_WriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Write(&buf, nil))

	assert.Equal(t, "{\n}\n", buf.String())

	rows, err := JSON{}.Read(&buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestJSON_KeysInNumericOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Write(&buf, Generate(isa.Default())))

	output := buf.String()
	assert.Less(t, strings.Index(output, `"9": `), strings.Index(output, `"10": `))
	assert.Less(t, strings.Index(output, `"99": `), strings.Index(output, `"100": `))
}

func TestJSON_ReadMalformed(t *testing.T) {
	cases := map[string]string{
		"not an object": `["NOOP"]`,
		"bad key":       `{"zero": {"COP": "NOOP", "MA": ""}}`,
		"negative key":  `{"-1": {"COP": "NOOP", "MA": ""}}`,
		"bad entry":     `{"0": "NOOP"}`,
		"truncated":     `{"0": {"COP": "NOOP", "MA": ""}`,
		"missing COP":   `{"0": {"MA": ""}}`,
		"missing MA":    `{"0": {"COP": "NOOP"}}`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := JSON{}.Read(strings.NewReader(input))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestYAML_Write(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML{}.Write(&buf, sampleRows[:2]))

	output := buf.String()
	t.Log(output)

	assert.True(t, strings.HasPrefix(output, `"0": {`))
	assert.Less(t, strings.Index(output, `"0": `), strings.Index(output, `"1": `))
	assert.Contains(t, output, `"LOAD A"`)
	assert.Contains(t, output, `"Immédiat"`)
	assert.Equal(t, 2, strings.Count(output, "\n"))
}

func TestYAML_ReadMalformed(t *testing.T) {
	_, err := YAML{}.Read(strings.NewReader("- NOOP\n- INC A\n"))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = YAML{}.Read(strings.NewReader("\"x\": {COP: NOOP, MA: \"\"}\n"))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = YAML{}.Read(strings.NewReader("\"0\": {MA: \"\"}\n"))
	assert.ErrorIs(t, err, ErrFormat)
	assert.ErrorContains(t, err, "missing COP field")

	_, err = YAML{}.Read(strings.NewReader("\"0\": {COP: NOOP}\n"))
	assert.ErrorIs(t, err, ErrFormat)
	assert.ErrorContains(t, err, "missing MA field")
}

func TestDelimited_Write(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Delimited{}.Write(&buf, sampleRows))

	assert.Equal(t, ""+
		"Number;Operation Code;Addressing Mode\n"+
		"0;NOOP;\n"+
		"1;LOAD A;Immédiat\n"+
		"2;A+B ->  A;\n"+
		"3;JUMPC (A%2 == 0);Indexé Étendu\n",
		buf.String())
}

func TestDelimited_WriteHostEncoding(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Delimited{Encoding: charmap.Windows1252}.Write(&buf, sampleRows[1:2]))

	assert.Equal(t, "Number;Operation Code;Addressing Mode\n1;LOAD A;Imm\xe9diat\n", buf.String())

	rows, err := Delimited{Encoding: charmap.Windows1252}.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleRows[1:2], rows)
}

func TestDelimited_ReadMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"wrong header":   "Opcode;COP;MA\n0;NOOP;\n",
		"missing column": "Number;Operation Code;Addressing Mode\n0;NOOP\n",
		"bad opcode":     "Number;Operation Code;Addressing Mode\nzero;NOOP;\n",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Delimited{}.Read(strings.NewReader(input))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestFormats_RoundTrip(t *testing.T) {
	rows := Generate(isa.Default())

	formats := []Format{JSON{}, YAML{}, Delimited{}, Delimited{Encoding: charmap.Windows1252}, Delimited{Encoding: charmap.ISO8859_1}}

	for _, format := range formats {
		t.Run(format.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, format.Write(&buf, rows))

			actual, err := format.Read(&buf)
			require.NoError(t, err)
			assert.NoError(t, Compare(rows, actual))
		})
	}
}

func TestStructuredFormat(t *testing.T) {
	format, err := StructuredFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, "json", format.Name())

	format, err = StructuredFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", format.Name())

	_, err = StructuredFormat("toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorContains(t, err, "json, yaml, yml")
}
