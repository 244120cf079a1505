// header.go - ELF identification and header parsing
//
// One parsed structure with the widest field widths and a class tag,
// per spec.md §9's Design Note; field extraction chooses offset and
// width by class rather than keeping two separate structs.

package elfhdr

import (
	"encoding/binary"
	"fmt"
)

// Identification byte offsets (e_ident).
const (
	identMagic0   = 0
	identClass    = 4
	identData     = 5
	identVersion  = 6
	identOSABI    = 7
	identABIVer   = 8
	identPadStart = 9
	identPadEnd   = 16
)

var magic = [4]byte{0x7F, 'E', 'L', 'F'}

// Header is the parsed ELF header, widened to 64-bit fields regardless
// of the file's declared class.
type Header struct {
	Bits64      bool // true for ELFCLASS64, false for ELFCLASS32
	LittleEndian bool
	OriginalVersion bool // false ⇒ e_ident[EI_VERSION] was not EV_CURRENT
	ABIOS       ABIOS
	ABIVersion  uint8

	Type ObjType
	ISA  ISA

	EntryPoint          uint64
	ProgramHeaderOffset uint64
	SectionHeaderOffset uint64
	Flags               uint32

	ELFHeaderSize          uint16
	ProgramHeaderEntrySize uint16
	ProgramHeaderCount     uint16
	SectionHeaderEntrySize uint16
	SectionHeaderCount     uint16
	SectionHeaderStrIndex  uint16
}

// class-dependent field offsets, per spec.md §4.6's offset map.
type headerLayout struct {
	entry, phOff, shOff, flags, ehSize, phEntSize, phNum, shEntSize, shNum, shStrNdx int
}

var layout32 = headerLayout{
	entry: 0x18, phOff: 0x1C, shOff: 0x20, flags: 0x24,
	ehSize: 0x28, phEntSize: 0x2A, phNum: 0x2C, shEntSize: 0x2E, shNum: 0x30, shStrNdx: 0x32,
}

var layout64 = headerLayout{
	entry: 0x18, phOff: 0x20, shOff: 0x28, flags: 0x30,
	ehSize: 0x34, phEntSize: 0x36, phNum: 0x38, shEntSize: 0x3A, shNum: 0x3C, shStrNdx: 0x3E,
}

// ParseHeader validates the identification bytes and decodes the
// remaining fields at their class-dependent offsets, reading each
// multi-byte field per the file's declared endianness (never the host's).
func ParseHeader(buf []byte) (Header, error) {
	var h Header
	if len(buf) < HeaderSize {
		return h, fmt.Errorf("elfhdr: header buffer too short: got %d bytes, want %d", len(buf), HeaderSize)
	}

	if [4]byte(buf[identMagic0:identMagic0+4]) != magic {
		return h, fmt.Errorf("elfhdr: incorrect magic number")
	}

	switch buf[identClass] {
	case 1:
		h.Bits64 = false
	case 2:
		h.Bits64 = true
	default:
		return h, fmt.Errorf("elfhdr: invalid ELF class byte 0x%02X", buf[identClass])
	}

	switch buf[identData] {
	case 1:
		h.LittleEndian = true
	case 2:
		h.LittleEndian = false
	default:
		return h, fmt.Errorf("elfhdr: invalid data encoding byte 0x%02X", buf[identData])
	}

	h.OriginalVersion = buf[identVersion] == 1

	abi := ABIOS(buf[identOSABI])
	if !abi.Valid() {
		return h, fmt.Errorf("elfhdr: ABI OS byte out of range: 0x%02X", buf[identOSABI])
	}
	h.ABIOS = abi
	h.ABIVersion = buf[identABIVer]

	for i := identPadStart; i < identPadEnd; i++ {
		if buf[i] != 0 {
			return h, fmt.Errorf("elfhdr: non-zero identification padding at byte %d", i)
		}
	}

	bo := byteOrder(h.LittleEndian)
	lay := layout32
	if h.Bits64 {
		lay = layout64
	}

	h.Type = ObjType(bo.Uint16(buf[0x10:0x12]))
	h.ISA = ISA(bo.Uint16(buf[0x12:0x14]))

	if h.Bits64 {
		h.EntryPoint = bo.Uint64(buf[lay.entry : lay.entry+8])
		h.ProgramHeaderOffset = bo.Uint64(buf[lay.phOff : lay.phOff+8])
		h.SectionHeaderOffset = bo.Uint64(buf[lay.shOff : lay.shOff+8])
	} else {
		h.EntryPoint = uint64(bo.Uint32(buf[lay.entry : lay.entry+4]))
		h.ProgramHeaderOffset = uint64(bo.Uint32(buf[lay.phOff : lay.phOff+4]))
		h.SectionHeaderOffset = uint64(bo.Uint32(buf[lay.shOff : lay.shOff+4]))
	}

	h.Flags = bo.Uint32(buf[lay.flags : lay.flags+4])
	h.ELFHeaderSize = bo.Uint16(buf[lay.ehSize : lay.ehSize+2])
	h.ProgramHeaderEntrySize = bo.Uint16(buf[lay.phEntSize : lay.phEntSize+2])
	h.ProgramHeaderCount = bo.Uint16(buf[lay.phNum : lay.phNum+2])
	h.SectionHeaderEntrySize = bo.Uint16(buf[lay.shEntSize : lay.shEntSize+2])
	h.SectionHeaderCount = bo.Uint16(buf[lay.shNum : lay.shNum+2])
	h.SectionHeaderStrIndex = bo.Uint16(buf[lay.shStrNdx : lay.shStrNdx+2])

	return h, nil
}

// byteOrder returns the binary.ByteOrder implied by the file's
// declared endianness, per spec.md §9: "read each field in the
// declared order directly", never assume host order and never
// post-swap.
func byteOrder(littleEndian bool) binary.ByteOrder {
	if littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
