package elfhdr

import "testing"

func TestSectionHeaderEntry64Layout(t *testing.T) {
	h := Header{Bits64: true, LittleEndian: true}
	buf := make([]byte, SectionHeaderSize)
	bo := byteOrder(true)
	bo.PutUint32(buf[0:4], 0x10)
	bo.PutUint32(buf[4:8], uint32(SHTSymtab))
	bo.PutUint64(buf[16:24], 0x2000)
	bo.PutUint32(buf[40:44], 3) // link

	e, err := ParseSectionHeaderEntryBuf(buf, h)
	if err != nil {
		t.Fatalf("ParseSectionHeaderEntryBuf: %v", err)
	}
	if e.NameOffset != 0x10 {
		t.Fatalf("name: got 0x%X, want 0x10", e.NameOffset)
	}
	if e.Type != SHTSymtab {
		t.Fatalf("type: got %v, want SHTSymtab", e.Type)
	}
	if e.Addr != 0x2000 {
		t.Fatalf("addr: got 0x%X, want 0x2000", e.Addr)
	}
	if e.Link != 3 {
		t.Fatalf("link: got %d, want 3", e.Link)
	}
}

func TestSectionHeaderEntry32Layout(t *testing.T) {
	h := Header{Bits64: false, LittleEndian: true}
	buf := make([]byte, SectionHeaderSize)
	bo := byteOrder(true)
	bo.PutUint32(buf[0:4], 0x8)
	bo.PutUint32(buf[4:8], uint32(SHTStrtab))
	bo.PutUint32(buf[12:16], 0x9000) // addr
	bo.PutUint32(buf[24:28], 1)      // link

	e, err := ParseSectionHeaderEntryBuf(buf, h)
	if err != nil {
		t.Fatalf("ParseSectionHeaderEntryBuf: %v", err)
	}
	if e.Addr != 0x9000 {
		t.Fatalf("addr: got 0x%X, want 0x9000", e.Addr)
	}
	if e.Link != 1 {
		t.Fatalf("link: got %d, want 1", e.Link)
	}
}

func TestSectionHeaderTooShort(t *testing.T) {
	h := Header{Bits64: true, LittleEndian: true}
	if _, err := ParseSectionHeaderEntryBuf(make([]byte, 4), h); err == nil {
		t.Fatalf("expected an error for a truncated section header buffer")
	}
}
