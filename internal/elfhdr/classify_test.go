package elfhdr

import "testing"

func TestUnknownObjTypeFallsBackToUnknownType(t *testing.T) {
	got := ObjType(0x1234).String()
	want := "An Unknown type(0x1234)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUnknownISAFallsBack(t *testing.T) {
	got := ISA(0xBEEF).String()
	if got == "" {
		t.Fatalf("expected a non-empty fallback name")
	}
	if _, known := isaNames[ISA(0xBEEF)]; known {
		t.Fatalf("0xBEEF should not be a known ISA in this fixture")
	}
}

func TestSegmentTypeOSAndProcRanges(t *testing.T) {
	if got := SegmentType(0x60000001).String(); got == "" {
		t.Fatalf("expected a non-empty OS-range name")
	}
	if got := SegmentType(0x70000001).String(); got == "" {
		t.Fatalf("expected a non-empty proc-range name")
	}
}

func TestABIOSValidRange(t *testing.T) {
	if !ABIOS(0x12).Valid() {
		t.Fatalf("0x12 should be the top of the valid ABI range")
	}
	if ABIOS(0x13).Valid() {
		t.Fatalf("0x13 should be out of the valid ABI range")
	}
}
