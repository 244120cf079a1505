// parse.go - top-level entry points combining the byte reader with
// the header/program-header/section-header decoders.

package elfhdr

import "io"

// Result bundles the decoded header together with the first program
// header entry and first section header entry, matching the scope
// spec.md §1 sets: "only the first program header entry and one
// section header entry are read".
type Result struct {
	Header             Header
	ProgramHeaderEntry ProgramHeaderEntry
	SectionHeaderEntry SectionHeaderEntry
}

// Parse reads and decodes the ELF header, the first program header
// entry and the first section header entry from r.
func Parse(r io.ReaderAt) (Result, error) {
	var res Result

	hbuf, err := readHeaderBuffer(r)
	if err != nil {
		return res, err
	}
	h, err := ParseHeader(hbuf)
	if err != nil {
		return res, err
	}
	res.Header = h

	phBuf, err := readProgramHeaderBuffer(r, ProgramHeaderEntryOffset(h, 0))
	if err != nil {
		return res, err
	}
	ph, err := ParseProgramHeaderEntryBuf(phBuf, h)
	if err != nil {
		return res, err
	}
	res.ProgramHeaderEntry = ph

	shBuf, err := readSectionHeaderBuffer(r, int64(h.SectionHeaderOffset))
	if err != nil {
		return res, err
	}
	sh, err := ParseSectionHeaderEntryBuf(shBuf, h)
	if err != nil {
		return res, err
	}
	res.SectionHeaderEntry = sh

	return res, nil
}
