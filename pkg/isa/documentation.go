package isa

import (
	"fmt"
	"strings"

	"github.com/Manu343726/isatable/pkg/utils"
)

// Dumps the documentation of a single instruction. firstOpCode is the opcode assigned to its first row.
func (i *Instruction) Documentation(leftpad int, conditions []Condition, firstOpCode int) string {
	leftpad_str := strings.Repeat(" ", leftpad)
	rows := i.RowCount(conditions)

	var builder strings.Builder

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("%q (opcodes %v..%v, %v total)\n", i.Mnemonic, firstOpCode, firstOpCode+rows-1, rows))

	if len(i.Registers) > 0 {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("  registers: %v\n", utils.FormatSlice(i.Registers, ", ")))
	}

	if len(i.AddressingModes) > 0 {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("  addressing modes: %v\n", utils.FormatSlice(i.AddressingModes, ", ")))
	}

	if i.Conditional {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("  conditions: %v\n", utils.FormatSlice(conditions, ", ")))
	}

	return builder.String()
}

// Dumps the whole instruction set description as one big multiline string
func (s *InstructionSet) Documentation(leftpad int) string {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total mnemonics: %v\n", len(s.Instructions)))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total opcodes: %v\n", s.RowCount()))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("opcode encoding length (bits): %v (COP/MA field: %v bits)\n\n", s.OpCodeBits(), COPMABits))

	builder.WriteString(leftpad_str)
	builder.WriteString("Instructions:\n\n")

	opCode := 0
	for i := range s.Instructions {
		builder.WriteString(s.Instructions[i].Documentation(leftpad+2, s.Conditions, opCode))
		builder.WriteString("\n")
		opCode += s.Instructions[i].RowCount(s.Conditions)
	}

	return builder.String()
}

// Like Documentation(), but with zero leftpad
func (s *InstructionSet) DocString() string {
	return s.Documentation(0)
}
