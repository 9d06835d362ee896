package instr

// Memory is a fixed program: an ordered list of Instruction, indexed by
// the program counter.
type Memory struct {
	instructions []Instruction
}

// NewMemory returns a Memory holding a copy of program.
func NewMemory(program []Instruction) *Memory {
	instructions := make([]Instruction, len(program))
	copy(instructions, program)
	return &Memory{instructions: instructions}
}

// Len returns the number of instructions in the program.
func (m *Memory) Len() int {
	return len(m.instructions)
}

// At returns the instruction at pc, or false if pc is past the end of the
// program — the signal the controller treats as program termination.
func (m *Memory) At(pc int) (Instruction, bool) {
	if pc < 0 || pc >= len(m.instructions) {
		return nil, false
	}
	return m.instructions[pc], true
}
