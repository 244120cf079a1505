// progheader.go - ELF program header entry parsing
//
// Field positions differ not only in width but in layout between
// classes: 64-bit puts flags right after type; 32-bit puts flags near
// the end. Per spec.md §4.7.

package elfhdr

import "fmt"

// ProgramHeaderEntry describes one loadable/interpretable segment.
type ProgramHeaderEntry struct {
	Type      SegmentType
	Flags     uint32
	Offset    uint64
	VAddr     uint64
	PAddr     uint64
	FileSize  uint64
	MemSize   uint64
	Align     uint64
}

// ParseProgramHeaderEntryBuf decodes one ProgramHeaderSize-byte buffer
// according to h's class and endianness.
func ParseProgramHeaderEntryBuf(buf []byte, h Header) (ProgramHeaderEntry, error) {
	var e ProgramHeaderEntry
	if len(buf) < ProgramHeaderSize {
		return e, fmt.Errorf("elfhdr: program header buffer too short: got %d bytes, want %d", len(buf), ProgramHeaderSize)
	}
	bo := byteOrder(h.LittleEndian)

	if h.Bits64 {
		e.Type = SegmentType(bo.Uint32(buf[0:4]))
		e.Flags = bo.Uint32(buf[4:8])
		e.Offset = bo.Uint64(buf[8:16])
		e.VAddr = bo.Uint64(buf[16:24])
		e.PAddr = bo.Uint64(buf[24:32])
		e.FileSize = bo.Uint64(buf[32:40])
		e.MemSize = bo.Uint64(buf[40:48])
		e.Align = bo.Uint64(buf[48:56])
	} else {
		e.Type = SegmentType(bo.Uint32(buf[0:4]))
		e.Offset = uint64(bo.Uint32(buf[4:8]))
		e.VAddr = uint64(bo.Uint32(buf[8:12]))
		e.PAddr = uint64(bo.Uint32(buf[12:16]))
		e.FileSize = uint64(bo.Uint32(buf[16:20]))
		e.MemSize = uint64(bo.Uint32(buf[20:24]))
		e.Flags = bo.Uint32(buf[24:28])
		e.Align = uint64(bo.Uint32(buf[28:32]))
	}

	return e, nil
}

// ProgramHeaderEntryOffset computes the absolute file offset of entry
// index i, correcting the original source's defect of always reading
// a single fixed-offset buffer (spec.md §9(d)): real multi-entry
// program header tables are strided by e_phentsize.
func ProgramHeaderEntryOffset(h Header, index int) int64 {
	return int64(h.ProgramHeaderOffset) + int64(index)*int64(h.ProgramHeaderEntrySize)
}
