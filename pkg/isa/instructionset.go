package isa

import (
	"errors"
	"math/bits"

	"github.com/Manu343726/isatable/pkg/utils"
)

// Name of a general purpose register usable as instruction operand
type Register string

// Label describing how the memory location of an operand is computed
type AddressingMode string

// Predicate over the A/B registers evaluated by conditional jumps
type Condition string

// Width, in bits, of the COP/MA field of a central memory word
const COPMABits = 8

// Describes one mnemonic of the instruction set and the operand combinations it accepts
type Instruction struct {
	Mnemonic        string
	Registers       []Register
	AddressingModes []AddressingMode
	// If true the instruction is expanded once per condition of the instruction set
	Conditional bool
}

// Number of table rows the instruction expands into given the conditions of its instruction set
func (i *Instruction) RowCount(conditions []Condition) int {
	switch {
	case len(i.Registers) > 0:
		return len(i.Registers) * max(len(i.AddressingModes), 1)
	case len(i.AddressingModes) > 0 && i.Conditional:
		return len(i.AddressingModes) * len(conditions)
	case len(i.AddressingModes) > 0:
		return len(i.AddressingModes)
	default:
		return 1
	}
}

// An ordered instruction set definition. Opcodes are assigned following the order of Instructions.
type InstructionSet struct {
	Instructions []Instruction
	Conditions   []Condition
}

// Total number of table rows (opcodes) generated from the instruction set
func (s *InstructionSet) RowCount() int {
	return utils.Accumulate(s.Instructions, func(i Instruction) int {
		return i.RowCount(s.Conditions)
	})
}

// Minimum number of bits required to binary encode every opcode of the instruction set
func (s *InstructionSet) OpCodeBits() int {
	total := s.RowCount()
	if total <= 1 {
		return 1
	}

	return bits.Len(uint(total - 1))
}

// Returns true if every opcode fits in the COP/MA field of a memory word
func (s *InstructionSet) FitsCOPMA() bool {
	return s.OpCodeBits() <= COPMABits
}

// Returns the instruction with the given mnemonic, if any
func (s *InstructionSet) Instruction(mnemonic string) (*Instruction, bool) {
	for i := range s.Instructions {
		if s.Instructions[i].Mnemonic == mnemonic {
			return &s.Instructions[i], true
		}
	}

	return nil, false
}

// Returns the first opcode assigned to the given mnemonic and how many opcodes it expands into
func (s *InstructionSet) OpCodeRange(mnemonic string) (first int, count int, found bool) {
	for i := range s.Instructions {
		count = s.Instructions[i].RowCount(s.Conditions)

		if s.Instructions[i].Mnemonic == mnemonic {
			return first, count, true
		}

		first += count
	}

	return 0, 0, false
}

// Returns the mnemonics of the instruction set in declaration order
func (s *InstructionSet) Mnemonics() []string {
	return utils.Map(s.Instructions, func(i Instruction) string { return i.Mnemonic })
}

// Returns a new instruction set containing only the given instructions, sharing the conditions
func (s *InstructionSet) Only(instructions ...Instruction) InstructionSet {
	return InstructionSet{
		Instructions: instructions,
		Conditions:   s.Conditions,
	}
}

var ErrUnknownMnemonic = errors.New("unknown mnemonic")
