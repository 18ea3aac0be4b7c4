package table

import (
	"github.com/Manu343726/isatable/pkg/utils"
)

// Checks that opcodes are exactly 0, 1, ..., len(rows)-1 in order
func CheckOpCodes(rows []Row) error {
	for i, row := range rows {
		if row.OpCode != i {
			return utils.MakeError(ErrFormat, "expected opcode %v at row %v, got %v", i, i, row.OpCode)
		}
	}

	return nil
}

// Returns an error describing the first difference between two tables, if any
func Compare(expected, actual []Row) error {
	for i := range min(len(expected), len(actual)) {
		if expected[i] != actual[i] {
			return utils.MakeError(ErrMismatch, "row %v: expected '%v', got '%v'", i, expected[i], actual[i])
		}
	}

	if len(expected) != len(actual) {
		return utils.MakeError(ErrMismatch, "expected %v rows, got %v", len(expected), len(actual))
	}

	return nil
}
