package table

import "errors"

var ErrOutput = errors.New("cannot write opcode table")
var ErrInput = errors.New("cannot read opcode table")
var ErrFormat = errors.New("malformed opcode table")
var ErrUnknownFormat = errors.New("unknown opcode table format")
var ErrMismatch = errors.New("opcode tables differ")
