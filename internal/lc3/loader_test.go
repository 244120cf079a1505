package lc3

import (
	"bytes"
	"testing"
)

func TestLoadImageOriginAndWords(t *testing.T) {
	m, _ := newMachineTestRig()
	var buf bytes.Buffer
	writeBE(&buf, OriginPC)
	writeBE(&buf, 0x1264)
	writeBE(&buf, 0xF025)

	if err := LoadImage(m, &buf); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}

	requireU16Equal(t, "memory[origin]", m.memory[OriginPC], 0x1264)
	requireU16Equal(t, "memory[origin+1]", m.memory[OriginPC+1], 0xF025)
}

func TestLoadImageTooShort(t *testing.T) {
	m, _ := newMachineTestRig()
	if err := LoadImage(m, bytes.NewReader([]byte{0x30})); err == nil {
		t.Fatalf("expected an error for a truncated image")
	}
}

func writeBE(buf *bytes.Buffer, w uint16) {
	buf.WriteByte(byte(w >> 8))
	buf.WriteByte(byte(w))
}
