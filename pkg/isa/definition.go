package isa

import "slices"

var registers = []Register{"A", "B", "C", "X"}

var conditions = []Condition{
	"A == 0",
	"B == 0",
	"A > 0",
	"B > 0",
	"A%2 == 0",
	"B%2 == 0",
}

var addressingModes = []AddressingMode{
	"Immédiat",
	"Direct",
	"Indirect",
	"Relatif",
	"Indexé",
	"Immédiat Étendu",
	"Direct Étendu",
	"Indirect Étendu",
	"Relatif Étendu",
	"Indexé Étendu",
}

// Every mode except the immediate ones, which make no sense as a jump target
func memoryAddressingModes(modes []AddressingMode) []AddressingMode {
	return slices.Concat(modes[1:5], modes[6:])
}

// Returns the instruction set of the simulated von Neumann CPU.
//
// Note the "A+B -> " mnemonic keeps its trailing space: rows are composed as
// "<mnemonic> <register>", so its rows read "A+B ->  A".
func Default() InstructionSet {
	regs := Registers()
	modes := AddressingModes()

	return InstructionSet{
		Conditions: append([]Condition(nil), conditions...),
		Instructions: []Instruction{
			{Mnemonic: "NOOP"},
			{Mnemonic: "LOAD", Registers: regs, AddressingModes: modes},
			{Mnemonic: "STORE", Registers: regs, AddressingModes: modes[1:]},
			{Mnemonic: "INC", Registers: regs},
			{Mnemonic: "ADD", Registers: regs[:2:2], AddressingModes: modes},
			{Mnemonic: "A+B -> ", Registers: regs[:3:3]},
			{Mnemonic: "CALL", AddressingModes: memoryAddressingModes(modes)},
			{Mnemonic: "RETURN", AddressingModes: memoryAddressingModes(modes)},
			{Mnemonic: "JUMP", AddressingModes: memoryAddressingModes(modes)},
			{Mnemonic: "JUMPC", AddressingModes: memoryAddressingModes(modes), Conditional: true},
		},
	}
}

// Registers of the CPU in declaration order
func Registers() []Register {
	return append([]Register(nil), registers...)
}

// Addressing modes of the CPU in declaration order
func AddressingModes() []AddressingMode {
	return append([]AddressingMode(nil), addressingModes...)
}
