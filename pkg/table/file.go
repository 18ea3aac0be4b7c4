package table

import (
	"os"

	"github.com/Manu343726/isatable/pkg/utils"
)

// Writes the table to a file, truncating it if it already exists
func WriteFile(path string, format Format, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return utils.MakeError(ErrOutput, "%w", err)
	}

	if err := format.Write(f, rows); err != nil {
		f.Close()
		return utils.MakeError(ErrOutput, "'%v': %w", path, err)
	}

	if err := f.Close(); err != nil {
		return utils.MakeError(ErrOutput, "%w", err)
	}

	return nil
}

// Reads a table previously written with WriteFile()
func ReadFile(path string, format Format) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, utils.MakeError(ErrInput, "%w", err)
	}
	defer f.Close()

	rows, err := format.Read(f)
	if err != nil {
		return nil, utils.MakeError(ErrInput, "'%v': %w", path, err)
	}

	return rows, nil
}
