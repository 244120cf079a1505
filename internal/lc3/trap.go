// trap.go - LC-3 trap service routines
//
// Dispatch is a switch on the low byte of the TRAP instruction, per
// spec.md §4.3 and the Design Note's "model as a tagged enum with a
// catch-all that leaves R0 untouched".

package lc3

import "log/slog"

// Trap vectors.
const (
	trapGETC  = 0x20
	trapOUT   = 0x21
	trapPUTS  = 0x22
	trapIN    = 0x23
	trapPUTSP = 0x24
	trapHALT  = 0x25
)

func (m *Machine) execTRAP(instr uint16) {
	switch instr & 0xFF {
	case trapGETC:
		m.trapGETC()
	case trapOUT:
		m.trapOUT()
	case trapPUTS:
		m.trapPUTS()
	case trapIN:
		m.trapIN()
	case trapPUTSP:
		m.trapPUTSP()
	case trapHALT:
		m.trapHALT()
	default:
		slog.Debug("lc3: unknown trap vector, ignoring", "vector", instr&0xFF)
	}
}

// trapGETC reads one byte from stdin without echo and places it,
// zero-extended, in R0.
func (m *Machine) trapGETC() {
	if m.term == nil {
		return
	}
	b, err := m.term.ReadByte()
	if err != nil {
		return
	}
	m.registers[R0] = uint16(b)
}

// trapOUT writes the low byte of R0 to stdout.
func (m *Machine) trapOUT() {
	if m.term == nil {
		return
	}
	_ = m.term.WriteByte(byte(m.registers[R0]))
}

// trapPUTS writes the low byte of each word starting at memory[R0]
// until a zero word terminates the string.
func (m *Machine) trapPUTS() {
	if m.term == nil {
		return
	}
	addr := m.registers[R0]
	for {
		w := m.memory[addr]
		if w == 0 {
			break
		}
		_ = m.term.WriteByte(byte(w))
		addr++
	}
}

// trapIN prompts, reads one byte, echoes it, and places it in R0.
func (m *Machine) trapIN() {
	if m.term == nil {
		return
	}
	const prompt = "Enter a character: "
	for i := 0; i < len(prompt); i++ {
		_ = m.term.WriteByte(prompt[i])
	}
	b, err := m.term.ReadByte()
	if err != nil {
		return
	}
	_ = m.term.WriteByte(b)
	m.registers[R0] = uint16(b)
}

// trapPUTSP writes the low byte then, if non-zero, the high byte of
// each word starting at memory[R0] until a zero word terminates.
func (m *Machine) trapPUTSP() {
	if m.term == nil {
		return
	}
	addr := m.registers[R0]
	for {
		w := m.memory[addr]
		if w == 0 {
			break
		}
		lo := byte(w & 0xFF)
		_ = m.term.WriteByte(lo)
		hi := byte(w >> 8)
		if hi != 0 {
			_ = m.term.WriteByte(hi)
		}
		addr++
	}
}

// trapHALT prints a halting message, flushes, and stops the run loop.
func (m *Machine) trapHALT() {
	if m.term != nil {
		const msg = "\n--- halting the LC-3 ---\n\n"
		for i := 0; i < len(msg); i++ {
			_ = m.term.WriteByte(msg[i])
		}
	}
	m.Halt()
}
