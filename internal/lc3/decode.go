// decode.go - LC-3 fetch-decode-execute loop and instruction semantics
//
// Dispatch follows the teacher's giant opcode-switch style (see
// cpu_ie32.go, cpu_z80.go): one switch on the top nibble, one function
// per instruction form.

package lc3

// Opcodes, top nibble of the instruction word.
const (
	opBR = iota
	opADD
	opLD
	opST
	opJSR
	opAND
	opLDR
	opSTR
	opRTI // reserved, unimplemented
	opNOT
	opLDI
	opSTI
	opJMP
	opRES // reserved, unimplemented
	opLEA
	opTRAP
)

// Run executes instructions starting at OriginPC until a HALT trap (or
// any other path that clears the run flag) stops it.
func (m *Machine) Run() {
	m.registers[RPC] = OriginPC
	m.running = true
	for m.running {
		m.Step()
	}
}

// Step fetches, decodes and executes exactly one instruction.
func (m *Machine) Step() {
	instr := m.MemRead(m.registers[RPC])
	m.registers[RPC]++

	switch instr >> 12 {
	case opBR:
		m.execBR(instr)
	case opADD:
		m.execADD(instr)
	case opLD:
		m.execLD(instr)
	case opST:
		m.execST(instr)
	case opJSR:
		m.execJSR(instr)
	case opAND:
		m.execAND(instr)
	case opLDR:
		m.execLDR(instr)
	case opSTR:
		m.execSTR(instr)
	case opRTI, opRES:
		// reserved opcodes: undefined, ignore and continue
	case opNOT:
		m.execNOT(instr)
	case opLDI:
		m.execLDI(instr)
	case opSTI:
		m.execSTI(instr)
	case opJMP:
		m.execJMP(instr)
	case opLEA:
		m.execLEA(instr)
	case opTRAP:
		m.execTRAP(instr)
	}
}

// signExtend replicates bit n-1 into bits n..15 of a 16-bit word when
// that bit is set; otherwise masks to the low n bits.
func signExtend(x uint16, n uint) uint16 {
	if (x>>(n-1))&1 != 0 {
		return x | (0xFFFF << n)
	}
	return x & ((1 << n) - 1)
}

func dr(instr uint16) int   { return int((instr >> 9) & 0x7) }
func sr1(instr uint16) int  { return int((instr >> 6) & 0x7) }
func sr2(instr uint16) int  { return int(instr & 0x7) }
func baseR(instr uint16) int { return int((instr >> 6) & 0x7) }

func (m *Machine) execBR(instr uint16) {
	nzp := (instr >> 9) & 0x7
	offset := signExtend(instr&0x1FF, 9)
	if nzp&(m.registers[RCOND]) != 0 {
		m.registers[RPC] += offset
	}
}

func (m *Machine) execADD(instr uint16) {
	d := dr(instr)
	a := m.registers[sr1(instr)]
	var b uint16
	if instr&0x20 != 0 {
		b = signExtend(instr&0x1F, 5)
	} else {
		b = m.registers[sr2(instr)]
	}
	m.setRegAndFlags(d, a+b)
}

func (m *Machine) execLD(instr uint16) {
	d := dr(instr)
	offset := signExtend(instr&0x1FF, 9)
	m.setRegAndFlags(d, m.MemRead(m.registers[RPC]+offset))
}

func (m *Machine) execST(instr uint16) {
	offset := signExtend(instr&0x1FF, 9)
	m.MemWrite(m.registers[RPC]+offset, m.registers[dr(instr)])
}

func (m *Machine) execJSR(instr uint16) {
	m.registers[R7] = m.registers[RPC]
	if instr&0x0800 != 0 {
		offset := signExtend(instr&0x7FF, 11)
		m.registers[RPC] += offset
	} else {
		m.registers[RPC] = m.registers[baseR(instr)]
	}
}

func (m *Machine) execAND(instr uint16) {
	d := dr(instr)
	a := m.registers[sr1(instr)]
	var b uint16
	if instr&0x20 != 0 {
		b = signExtend(instr&0x1F, 5)
	} else {
		b = m.registers[sr2(instr)]
	}
	m.setRegAndFlags(d, a&b)
}

func (m *Machine) execLDR(instr uint16) {
	d := dr(instr)
	offset := signExtend(instr&0x3F, 6)
	m.setRegAndFlags(d, m.MemRead(m.registers[baseR(instr)]+offset))
}

func (m *Machine) execSTR(instr uint16) {
	offset := signExtend(instr&0x3F, 6)
	m.MemWrite(m.registers[baseR(instr)]+offset, m.registers[dr(instr)])
}

func (m *Machine) execNOT(instr uint16) {
	d := dr(instr)
	m.setRegAndFlags(d, ^m.registers[sr1(instr)])
}

func (m *Machine) execLDI(instr uint16) {
	d := dr(instr)
	offset := signExtend(instr&0x1FF, 9)
	addr := m.MemRead(m.registers[RPC] + offset)
	m.setRegAndFlags(d, m.MemRead(addr))
}

func (m *Machine) execSTI(instr uint16) {
	offset := signExtend(instr&0x1FF, 9)
	addr := m.MemRead(m.registers[RPC] + offset)
	m.MemWrite(addr, m.registers[dr(instr)])
}

func (m *Machine) execJMP(instr uint16) {
	m.registers[RPC] = m.registers[baseR(instr)]
}

func (m *Machine) execLEA(instr uint16) {
	d := dr(instr)
	offset := signExtend(instr&0x1FF, 9)
	m.setRegAndFlags(d, m.registers[RPC]+offset)
}
