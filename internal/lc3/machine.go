// machine.go - LC-3 memory, registers and condition-code state

package lc3

// Memory-mapped register addresses. Reads at KBSR/KBDR/DSR/DDR are
// synthesised rather than backed by the memory array; MCR reads and
// writes go to the memory array like any other address.
const (
	MemSize = 1 << 16 // 64K 16-bit words

	OriginPC = 0x3000 // default load address

	KBSR = 0xFE00 // keyboard status
	KBDR = 0xFE02 // keyboard data
	DSR  = 0xFE04 // display status
	DDR  = 0xFE06 // display data
	MCR  = 0xFFFE // machine control
)

// Register indices. R0..R7 are general purpose; PC and COND round out
// the ten-word register file.
const (
	R0 = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	RPC
	RCOND
	RegisterCount
)

// Condition flags. Exactly one is set after any instruction that
// writes a general register.
const (
	FlP uint16 = 1 << 0
	FlZ uint16 = 1 << 1
	FlN uint16 = 1 << 2
)

// Machine holds the complete state of one LC-3: memory, registers and
// the run flag. There is no global state; every operation takes a
// *Machine explicitly.
type Machine struct {
	memory    [MemSize]uint16
	registers [RegisterCount]uint16
	running   bool

	term Terminal
}

// NewMachine creates a machine wired to the given terminal for
// memory-mapped keyboard/display I/O. A nil terminal is valid for
// tests that never touch KBSR/KBDR/DSR/DDR.
func NewMachine(term Terminal) *Machine {
	return &Machine{term: term}
}

// Reg returns the current value of register index i.
func (m *Machine) Reg(i int) uint16 {
	return m.registers[i]
}

// SetReg sets register i to v. It never mutates COND; instruction
// handlers use setRegAndFlags when a condition-code update is due.
func (m *Machine) SetReg(i int, v uint16) {
	m.registers[i] = v
}

// Running reports whether the fetch-decode-execute loop should continue.
func (m *Machine) Running() bool {
	return m.running
}

// Halt stops the run loop. Called only by the HALT trap.
func (m *Machine) Halt() {
	m.running = false
}

// updateFlags sets COND from the signed interpretation of register i's
// current value: N if bit 15 is set, Z if zero, P otherwise. Exactly
// one flag is ever set.
func (m *Machine) updateFlags(i int) {
	v := m.registers[i]
	switch {
	case v == 0:
		m.registers[RCOND] = FlZ
	case v&0x8000 != 0:
		m.registers[RCOND] = FlN
	default:
		m.registers[RCOND] = FlP
	}
}

// setRegAndFlags writes v to register i and immediately derives COND
// from it, per the invariant that every general-register write is
// followed by a condition-code update.
func (m *Machine) setRegAndFlags(i int, v uint16) {
	m.registers[i] = v
	m.updateFlags(i)
}

// MemRead implements the memory-mapped read semantics of spec.md
// §4.1: KBSR/KBDR/DSR/DDR synthesise values from the terminal, all
// other addresses read the backing array directly.
func (m *Machine) MemRead(addr uint16) uint16 {
	switch addr {
	case KBSR:
		if m.term != nil && m.term.KeyReady() {
			return 0x8000
		}
		return 0
	case KBDR:
		if m.term != nil && m.term.KeyReady() {
			b, _ := m.term.ReadByte()
			return uint16(b)
		}
		return 0
	case DSR:
		return 0x8000
	case DDR:
		return 0
	default:
		return m.memory[addr]
	}
}

// MemWrite stores unconditionally; MMIO addresses are not specially
// interpreted on write, only on read. Trap routines perform I/O
// directly through the terminal.
func (m *Machine) MemWrite(addr, value uint16) {
	m.memory[addr] = value
}

// LoadWord is a test/loader convenience for writing directly into the
// backing array without going through MemWrite's (identical, but
// explicit) path.
func (m *Machine) LoadWord(addr, value uint16) {
	m.memory[addr] = value
}
