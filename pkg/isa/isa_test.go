package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionRowCount(t *testing.T) {
	conditions := Default().Conditions

	cases := []struct {
		name        string
		instruction Instruction
		expected    int
	}{
		{"no operands", Instruction{Mnemonic: "NOOP"}, 1},
		{"registers only", Instruction{Mnemonic: "INC", Registers: []Register{"A", "B", "C", "X"}}, 4},
		{"registers and modes", Instruction{Mnemonic: "ADD", Registers: []Register{"A", "B"}, AddressingModes: []AddressingMode{"Direct", "Indirect", "Relatif"}}, 6},
		{"modes only", Instruction{Mnemonic: "JUMP", AddressingModes: []AddressingMode{"Direct", "Indirect"}}, 2},
		{"conditional modes", Instruction{Mnemonic: "JUMPC", AddressingModes: []AddressingMode{"Direct", "Indirect"}, Conditional: true}, 12},
		{"conditional without modes", Instruction{Mnemonic: "WAIT", Conditional: true}, 1},
		{"conditional registers ignore conditions", Instruction{Mnemonic: "TST", Registers: []Register{"A"}, Conditional: true}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, c.instruction.RowCount(conditions))
		})
	}
}

func TestDefaultInstructionSet(t *testing.T) {
	set := Default()

	assert.Equal(t, []string{"NOOP", "LOAD", "STORE", "INC", "ADD", "A+B -> ", "CALL", "RETURN", "JUMP", "JUMPC"}, set.Mnemonics())
	assert.Len(t, set.Conditions, 6)
	assert.Equal(t, 176, set.RowCount())
	assert.Equal(t, 8, set.OpCodeBits())
	assert.True(t, set.FitsCOPMA())

	jumpc, found := set.Instruction("JUMPC")
	require.True(t, found)
	assert.True(t, jumpc.Conditional)
	assert.Equal(t, []AddressingMode{
		"Direct", "Indirect", "Relatif", "Indexé",
		"Direct Étendu", "Indirect Étendu", "Relatif Étendu", "Indexé Étendu",
	}, jumpc.AddressingModes)

	store, found := set.Instruction("STORE")
	require.True(t, found)
	assert.NotContains(t, store.AddressingModes, AddressingMode("Immédiat"))
	assert.Contains(t, store.AddressingModes, AddressingMode("Immédiat Étendu"))

	_, found = set.Instruction("HALT")
	assert.False(t, found)
}

func TestDefaultInstructionSetIsolation(t *testing.T) {
	set := Default()
	add, found := set.Instruction("ADD")
	require.True(t, found)

	add.Registers = append(add.Registers, "Z")
	set.Conditions[0] = "Z == 0"

	fresh := Default()
	load, _ := fresh.Instruction("LOAD")
	assert.Equal(t, []Register{"A", "B", "C", "X"}, load.Registers)
	assert.Equal(t, Condition("A == 0"), fresh.Conditions[0])
}

func TestOpCodeBits(t *testing.T) {
	set := Default()

	cases := []struct {
		instruction Instruction
		expected    int
	}{
		{Instruction{Mnemonic: "NOOP"}, 1},
		{Instruction{Mnemonic: "INC", Registers: []Register{"A", "B", "C", "X"}}, 2},
		{Instruction{Mnemonic: "JUMPC", AddressingModes: []AddressingMode{"Direct", "Indirect"}, Conditional: true}, 4},
	}

	for _, c := range cases {
		only := set.Only(c.instruction)
		assert.Equal(t, c.expected, only.OpCodeBits(), c.instruction.Mnemonic)
	}
}

func TestDocString(t *testing.T) {
	set := Default()
	doc := set.DocString()

	t.Log(doc)

	assert.Contains(t, doc, "total mnemonics: 10\n")
	assert.Contains(t, doc, "total opcodes: 176\n")
	assert.Contains(t, doc, `"NOOP" (opcodes 0..0, 1 total)`)
	assert.Contains(t, doc, `"LOAD" (opcodes 1..40, 40 total)`)
	assert.Contains(t, doc, `"JUMPC" (opcodes 128..175, 48 total)`)
	assert.Contains(t, doc, "conditions: A == 0, B == 0, A > 0, B > 0, A%2 == 0, B%2 == 0")
}

func TestOpCodeRange(t *testing.T) {
	set := Default()

	cases := []struct {
		mnemonic string
		first    int
		count    int
	}{
		{"NOOP", 0, 1},
		{"LOAD", 1, 40},
		{"STORE", 41, 36},
		{"INC", 77, 4},
		{"ADD", 81, 20},
		{"A+B -> ", 101, 3},
		{"CALL", 104, 8},
		{"RETURN", 112, 8},
		{"JUMP", 120, 8},
		{"JUMPC", 128, 48},
	}

	for _, c := range cases {
		first, count, found := set.OpCodeRange(c.mnemonic)
		require.True(t, found, c.mnemonic)
		assert.Equal(t, c.first, first, c.mnemonic)
		assert.Equal(t, c.count, count, c.mnemonic)
	}

	_, _, found := set.OpCodeRange("HALT")
	assert.False(t, found)
}
