// loader.go - LC-3 image loader
//
// Reads a raw big-endian word stream: first word is the load origin,
// subsequent words load consecutively from there. Byte handling
// follows the fixed-offset/binary.BigEndian style of vgm_parser.go.

package lc3

import (
	"encoding/binary"
	"fmt"
	"io"
)

// LoadImage reads a raw LC-3 image from r into m's memory. The first
// big-endian word is the origin address; at most 0x10000-origin
// further words are loaded, consecutively, starting there. Any read
// error is fatal and returned to the caller.
func LoadImage(m *Machine, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("lc3: failed to read image: %w", err)
	}
	if len(data) < 2 {
		return fmt.Errorf("lc3: image too short to contain an origin word")
	}

	origin := binary.BigEndian.Uint16(data[0:2])
	maxWords := int(uint32(0x10000) - uint32(origin))

	addr := origin
	off := 2
	for n := 0; n < maxWords && off+1 < len(data); n++ {
		m.memory[addr] = binary.BigEndian.Uint16(data[off : off+2])
		addr++
		off += 2
	}
	return nil
}
