package table

import (
	"encoding/csv"
	"errors"
	"io"
	"slices"
	"strconv"

	"github.com/Manu343726/isatable/pkg/textenc"
	"github.com/Manu343726/isatable/pkg/utils"
	"golang.org/x/text/encoding"
)

// Column names of the delimited table
var Header = []string{"Number", "Operation Code", "Addressing Mode"}

const Delimiter = ';'

// Writes the table as semicolon separated values with a header line.
// A nil Encoding writes UTF-8.
type Delimited struct {
	Encoding encoding.Encoding
}

func (Delimited) Name() string {
	return "csv"
}

func (d Delimited) Write(w io.Writer, rows []Row) error {
	encoded := textenc.NewWriter(w, d.Encoding)

	out := csv.NewWriter(encoded)
	out.Comma = Delimiter

	if err := out.Write(Header); err != nil {
		return err
	}

	for _, row := range rows {
		if err := out.Write([]string{strconv.Itoa(row.OpCode), row.Mnemonic, row.AddressingMode}); err != nil {
			return err
		}
	}

	out.Flush()
	if err := out.Error(); err != nil {
		return err
	}

	return encoded.Close()
}

func (d Delimited) Read(r io.Reader) ([]Row, error) {
	in := csv.NewReader(textenc.NewReader(r, d.Encoding))
	in.Comma = Delimiter
	in.FieldsPerRecord = len(Header)

	header, err := in.Read()
	if errors.Is(err, io.EOF) {
		return nil, utils.MakeError(ErrFormat, "missing header")
	} else if err != nil {
		return nil, utils.MakeError(ErrFormat, "%v", err)
	}

	if !slices.Equal(header, Header) {
		return nil, utils.MakeError(ErrFormat, "unexpected header %q", header)
	}

	var rows []Row

	for {
		record, err := in.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		} else if err != nil {
			return nil, utils.MakeError(ErrFormat, "%v", err)
		}

		row, err := makeRow(record[0], entry{Mnemonic: record[1], AddressingMode: record[2]})
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}
}
