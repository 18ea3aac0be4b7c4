package table

import (
	"fmt"
	"iter"
	"slices"

	"github.com/Manu343726/isatable/pkg/isa"
)

// One entry of the opcode table
type Row struct {
	OpCode int
	// Mnemonic followed by the register operand or the parenthesized condition, if any
	Mnemonic string
	// Empty if the instruction takes no memory operand
	AddressingMode string
}

func (r Row) String() string {
	if r.AddressingMode == "" {
		return fmt.Sprintf("%v: %v", r.OpCode, r.Mnemonic)
	}

	return fmt.Sprintf("%v: %v [%v]", r.OpCode, r.Mnemonic, r.AddressingMode)
}

// Returns the rows of the opcode table of an instruction set. Opcodes are assigned
// sequentially from 0 following the declaration order of instructions, registers,
// addressing modes and conditions.
func Rows(set isa.InstructionSet) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		opCode := 0
		emit := func(mnemonic string, mode isa.AddressingMode) bool {
			row := Row{OpCode: opCode, Mnemonic: mnemonic, AddressingMode: string(mode)}
			opCode++
			return yield(row)
		}

		for _, instruction := range set.Instructions {
			switch {
			case len(instruction.Registers) > 0:
				for _, register := range instruction.Registers {
					mnemonic := fmt.Sprintf("%v %v", instruction.Mnemonic, register)

					if len(instruction.AddressingModes) == 0 {
						if !emit(mnemonic, "") {
							return
						}
						continue
					}

					for _, mode := range instruction.AddressingModes {
						if !emit(mnemonic, mode) {
							return
						}
					}
				}
			case len(instruction.AddressingModes) > 0:
				for _, mode := range instruction.AddressingModes {
					if !instruction.Conditional {
						if !emit(instruction.Mnemonic, mode) {
							return
						}
						continue
					}

					for _, condition := range set.Conditions {
						if !emit(fmt.Sprintf("%v (%v)", instruction.Mnemonic, condition), mode) {
							return
						}
					}
				}
			default:
				if !emit(instruction.Mnemonic, "") {
					return
				}
			}
		}
	}
}

// Generates the whole opcode table of an instruction set
func Generate(set isa.InstructionSet) []Row {
	return slices.Collect(Rows(set))
}
