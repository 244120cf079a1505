package elfhdr

import (
	"bytes"
	"testing"
)

// newHeaderFixture builds a minimal valid 64-bit little-endian ELF
// header buffer, matching S5 from spec.md §8.
func newHeaderFixture() []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], []byte{0x7F, 'E', 'L', 'F'})
	buf[4] = 2 // class = 64
	buf[5] = 1 // data = little-endian
	buf[6] = 1 // version = original
	buf[7] = 0 // ABI = SystemV
	buf[8] = 0 // ABI version
	// bytes 9..15 are zero padding by default

	buf[0x10] = 0x03 // type low byte
	buf[0x11] = 0x00 // type high byte: ET_DYN = 3
	buf[0x12] = 0x3E // isa low byte: EM_X86_64 = 62
	buf[0x13] = 0x00

	return buf
}

func TestS5Elf64LittleEndian(t *testing.T) {
	buf := newHeaderFixture()
	h, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}

	if !h.Bits64 {
		t.Fatalf("expected class=64")
	}
	if !h.LittleEndian {
		t.Fatalf("expected little-endian")
	}
	if h.ABIOS != ABISystemV {
		t.Fatalf("ABI: got %v, want SystemV", h.ABIOS)
	}
	if got, want := h.Type.String(), "A shared object"; got != want {
		t.Fatalf("type: got %q, want %q", got, want)
	}
}

func TestS6BadMagicIsFatal(t *testing.T) {
	buf := newHeaderFixture()
	copy(buf[0:4], []byte{0, 0, 0, 0})

	_, err := ParseHeader(buf)
	if err == nil {
		t.Fatalf("expected an error for an invalid magic number")
	}
}

func TestInvalidClassByte(t *testing.T) {
	buf := newHeaderFixture()
	buf[4] = 7
	if _, err := ParseHeader(buf); err == nil {
		t.Fatalf("expected an error for an invalid class byte")
	}
}

func TestInvalidEndiannessByte(t *testing.T) {
	buf := newHeaderFixture()
	buf[5] = 9
	if _, err := ParseHeader(buf); err == nil {
		t.Fatalf("expected an error for an invalid data-encoding byte")
	}
}

func TestNonOriginalVersionIsNotFatal(t *testing.T) {
	buf := newHeaderFixture()
	buf[6] = 0
	h, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if h.OriginalVersion {
		t.Fatalf("expected OriginalVersion=false")
	}
}

func TestABIOutOfRangeIsFatal(t *testing.T) {
	buf := newHeaderFixture()
	buf[7] = 0x13
	if _, err := ParseHeader(buf); err == nil {
		t.Fatalf("expected an error for an out-of-range ABI byte")
	}
}

func TestNonZeroPaddingIsFatal(t *testing.T) {
	buf := newHeaderFixture()
	buf[10] = 1
	if _, err := ParseHeader(buf); err == nil {
		t.Fatalf("expected an error for non-zero identification padding")
	}
}

func TestHeaderTooShort(t *testing.T) {
	if _, err := ParseHeader(make([]byte, 10)); err == nil {
		t.Fatalf("expected an error for a truncated header buffer")
	}
}

func Test32BitFieldOffsetsWiden64(t *testing.T) {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], []byte{0x7F, 'E', 'L', 'F'})
	buf[4] = 1 // class = 32
	buf[5] = 1 // little-endian
	buf[6] = 1
	bo := byteOrder(true)
	bo.PutUint32(buf[0x18:0x1C], 0x00401000) // entry
	bo.PutUint32(buf[0x1C:0x20], 0x34)       // ph_off
	bo.PutUint32(buf[0x20:0x24], 0x1000)     // sh_off

	h, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if h.EntryPoint != 0x00401000 {
		t.Fatalf("entry: got 0x%X, want 0x401000", h.EntryPoint)
	}
	if h.ProgramHeaderOffset != 0x34 {
		t.Fatalf("ph_off: got 0x%X, want 0x34", h.ProgramHeaderOffset)
	}
	if h.SectionHeaderOffset != 0x1000 {
		t.Fatalf("sh_off: got 0x%X, want 0x1000", h.SectionHeaderOffset)
	}
}

func TestParseEndToEnd(t *testing.T) {
	var file bytes.Buffer
	file.Write(newHeaderFixture())
	// pad so ph_off / sh_off point past the header
	for file.Len() < 0x200 {
		file.WriteByte(0)
	}

	data := file.Bytes()
	bo := byteOrder(true)
	phOff := int64(0x100)
	shOff := int64(0x180)
	bo.PutUint64(data[0x20:0x28], uint64(phOff))
	bo.PutUint64(data[0x28:0x30], uint64(shOff))
	bo.PutUint16(data[0x36:0x38], ProgramHeaderSize)
	bo.PutUint16(data[0x3A:0x3C], SectionHeaderSize)

	bo.PutUint32(data[phOff:phOff+4], uint32(SegLoad))
	bo.PutUint32(data[shOff+4:shOff+8], uint32(SHTProgbits))

	res, err := Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.ProgramHeaderEntry.Type != SegLoad {
		t.Fatalf("program header type: got %v, want SegLoad", res.ProgramHeaderEntry.Type)
	}
	if res.SectionHeaderEntry.Type != SHTProgbits {
		t.Fatalf("section header type: got %v, want SHTProgbits", res.SectionHeaderEntry.Type)
	}
}
