// classify.go - closed-set ELF enumerations
//
// Each closed set resolves a numeric code to a human-readable name,
// falling back to an Unknown(code) case, per spec.md §4.9 and the
// Design Note's "tagged variant with a fallback unknown(code) case".

package elfhdr

import "fmt"

// ABIOS identifies the OS/ABI byte (e_ident[EI_OSABI]).
type ABIOS uint8

const (
	ABISystemV       ABIOS = 0x00
	ABIHPUX          ABIOS = 0x01
	ABINetBSD        ABIOS = 0x02
	ABIGNULinux      ABIOS = 0x03
	ABIGNUHurd       ABIOS = 0x04
	ABISolaris       ABIOS = 0x06
	ABIAIX           ABIOS = 0x07
	ABIIRIX          ABIOS = 0x08
	ABIFreeBSD       ABIOS = 0x09
	ABITru64         ABIOS = 0x0A
	ABINovellModesto ABIOS = 0x0B
	ABIOpenBSD       ABIOS = 0x0C
	ABIOpenVMS       ABIOS = 0x0D
	ABINonStopKernel ABIOS = 0x0E
	ABIAROS          ABIOS = 0x0F
	ABIFenixOS       ABIOS = 0x10
	ABICloudABI      ABIOS = 0x11
	ABIOpenVOS       ABIOS = 0x12
)

var abiOSNames = map[ABIOS]string{
	ABISystemV:       "SystemV",
	ABIHPUX:          "HP-UX",
	ABINetBSD:        "NetBSD",
	ABIGNULinux:      "Linux",
	ABIGNUHurd:       "GNU Hurd",
	ABISolaris:       "Solaris",
	ABIAIX:           "AIX",
	ABIIRIX:          "IRIX",
	ABIFreeBSD:       "FreeBSD",
	ABITru64:         "Tru64",
	ABINovellModesto: "Novell Modesto",
	ABIOpenBSD:       "OpenBSD",
	ABIOpenVMS:       "OpenVMS",
	ABINonStopKernel: "NonStop Kernel",
	ABIAROS:          "AROS",
	ABIFenixOS:       "FenixOS",
	ABICloudABI:      "CloudABI",
	ABIOpenVOS:       "OpenVOS",
}

// Valid reports whether a falls in the closed [0, 0x12] range spec.md
// §4.6 requires for a fatal-on-violation ABI byte.
func (a ABIOS) Valid() bool {
	return a <= 0x12
}

func (a ABIOS) String() string {
	if name, ok := abiOSNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Undetermined(0x%02X)", uint8(a))
}

// ObjType is the ELF object file type (e_type).
type ObjType uint16

const (
	ObjNone   ObjType = 0
	ObjRel    ObjType = 1
	ObjExec   ObjType = 2
	ObjDyn    ObjType = 3
	ObjCore   ObjType = 4
	objLoOS           = 0xFE00
	objHiOS           = 0xFEFF
	objLoProc         = 0xFF00
	objHiProc         = 0xFFFF
)

func (t ObjType) String() string {
	switch t {
	case ObjNone:
		return "No file type"
	case ObjRel:
		return "A relocatable file"
	case ObjExec:
		return "An executable file"
	case ObjDyn:
		return "A shared object"
	case ObjCore:
		return "A core file"
	}
	switch {
	case uint16(t) >= objLoOS && uint16(t) <= objHiOS:
		return fmt.Sprintf("OS-specific type(0x%04X)", uint16(t))
	case uint16(t) >= objLoProc:
		return fmt.Sprintf("Processor-specific type(0x%04X)", uint16(t))
	}
	return fmt.Sprintf("An Unknown type(0x%04X)", uint16(t))
}

// ISA is the target machine architecture (e_machine). The corpus's
// canonical values; uncommon reserved codes fall through to Undetermined.
type ISA uint16

const (
	ISANone      ISA = 0
	ISAM32       ISA = 1
	ISASPARC     ISA = 2
	ISA386       ISA = 3
	ISA68K       ISA = 4
	ISA88K       ISA = 5
	ISA860       ISA = 7
	ISAMIPS      ISA = 8
	ISAS370      ISA = 9
	ISAMIPSRS3LE ISA = 10
	ISAPARISC    ISA = 15
	ISAVPP500    ISA = 17
	ISASPARC32P  ISA = 18
	ISA960       ISA = 19
	ISAPPC       ISA = 20
	ISAPPC64     ISA = 21
	ISAS390      ISA = 22
	ISAV800      ISA = 36
	ISAFR20      ISA = 37
	ISARH32      ISA = 38
	ISARCE       ISA = 39
	ISAARM       ISA = 40
	ISAAlpha     ISA = 41
	ISASH        ISA = 42
	ISASPARCV9   ISA = 43
	ISATriCore   ISA = 44
	ISAARC       ISA = 45
	ISAH8300     ISA = 46
	ISAH8300H    ISA = 47
	ISAH8S       ISA = 48
	ISAH8500     ISA = 49
	ISAIA64      ISA = 50
	ISAMIPSX     ISA = 51
	ISAColdfire  ISA = 52
	ISA68HC12    ISA = 53
	ISAMMA       ISA = 54
	ISAPCP       ISA = 55
	ISANCPU      ISA = 56
	ISANDR1      ISA = 57
	ISAStarcore  ISA = 58
	ISAME16      ISA = 59
	ISAST100     ISA = 60
	ISATinyJ     ISA = 61
	ISAX8664     ISA = 62
	ISAPDSP      ISA = 63
	ISAFX66      ISA = 66
	ISAST9Plus   ISA = 67
	ISAST7       ISA = 68
	ISA68HC16    ISA = 69
	ISA68HC11    ISA = 70
	ISA68HC08    ISA = 71
	ISA68HC05    ISA = 72
	ISASVx       ISA = 73
	ISAAArch64   ISA = 183
	ISATileGX    ISA = 191
	ISARISCV     ISA = 243
	ISABPF       ISA = 247
)

var isaNames = map[ISA]string{
	ISANone:      "No machine",
	ISAM32:       "AT&T WE 32100",
	ISASPARC:     "SPARC",
	ISA386:       "Intel 80386",
	ISA68K:       "Motorola 68000",
	ISA88K:       "Motorola 88000",
	ISA860:       "Intel 80860",
	ISAMIPS:      "MIPS I",
	ISAS370:      "IBM System/370",
	ISAMIPSRS3LE: "MIPS RS3000 Little-endian",
	ISAPARISC:    "HP PA-RISC",
	ISAVPP500:    "Fujitsu VPP500",
	ISASPARC32P:  "Enhanced SPARC",
	ISA960:       "Intel 80960",
	ISAPPC:       "PowerPC",
	ISAPPC64:     "PowerPC 64-bit",
	ISAS390:      "IBM System/390",
	ISAV800:      "NEC V800",
	ISAFR20:      "Fujitsu FR20",
	ISARH32:      "TRW RH-32",
	ISARCE:       "Motorola RCE",
	ISAARM:       "ARM",
	ISAAlpha:     "DEC Alpha",
	ISASH:        "Hitachi SH",
	ISASPARCV9:   "SPARC V9",
	ISATriCore:   "Siemens TriCore",
	ISAARC:       "Argonaut RISC Core",
	ISAH8300:     "Hitachi H8/300",
	ISAH8300H:    "Hitachi H8/300H",
	ISAH8S:       "Hitachi H8S",
	ISAH8500:     "Hitachi H8/500",
	ISAIA64:      "Intel IA-64",
	ISAMIPSX:     "Stanford MIPS-X",
	ISAColdfire:  "Motorola ColdFire",
	ISA68HC12:    "Motorola M68HC12",
	ISAMMA:       "Fujitsu MMA",
	ISAPCP:       "Siemens PCP",
	ISANCPU:      "Sony nCPU",
	ISANDR1:      "Denso NDR1",
	ISAStarcore:  "Motorola Star*Core",
	ISAME16:      "Toyota ME16",
	ISAST100:     "STMicroelectronics ST100",
	ISATinyJ:     "Advanced Logic TinyJ",
	ISAX8664:     "AMD x86-64",
	ISAPDSP:      "Sony DSP",
	ISAFX66:      "Siemens FX66",
	ISAST9Plus:   "STMicroelectronics ST9+",
	ISAST7:       "STMicroelectronics ST7",
	ISA68HC16:    "Motorola M68HC16",
	ISA68HC11:    "Motorola M68HC11",
	ISA68HC08:    "Motorola M68HC08",
	ISA68HC05:    "Motorola M68HC05",
	ISASVx:       "Silicon Graphics SVx",
	ISAAArch64:   "ARM AArch64",
	ISATileGX:    "Tilera TILE-Gx",
	ISARISCV:     "RISC-V",
	ISABPF:       "Linux BPF",
}

func (i ISA) String() string {
	if name, ok := isaNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Undetermined(0x%04X)", uint16(i))
}

// SegmentType is the p_type field of a program header entry.
type SegmentType uint32

const (
	SegNull    SegmentType = 0
	SegLoad    SegmentType = 1
	SegDynamic SegmentType = 2
	SegInterp  SegmentType = 3
	SegNote    SegmentType = 4
	SegShlib   SegmentType = 5
	SegPhdr    SegmentType = 6
	SegTLS     SegmentType = 7
	segLoOS                = 0x60000000
	segHiOS                = 0x6FFFFFFF
	segLoProc              = 0x70000000
	segHiProc              = 0x7FFFFFFF
)

func (s SegmentType) String() string {
	switch s {
	case SegNull:
		return "Unused entry"
	case SegLoad:
		return "Loadable segment"
	case SegDynamic:
		return "Dynamic linking information"
	case SegInterp:
		return "Interpreter path"
	case SegNote:
		return "Auxiliary information"
	case SegShlib:
		return "Reserved"
	case SegPhdr:
		return "Program header table itself"
	case SegTLS:
		return "Thread-local storage template"
	}
	switch {
	case uint32(s) >= segLoOS && uint32(s) <= segHiOS:
		return fmt.Sprintf("OS-specific segment(0x%08X)", uint32(s))
	case uint32(s) >= segLoProc && uint32(s) <= segHiProc:
		return fmt.Sprintf("Processor-specific segment(0x%08X)", uint32(s))
	}
	return fmt.Sprintf("An Unknown segment type(0x%08X)", uint32(s))
}

// SectionType is the sh_type field of a section header entry.
type SectionType uint32

const (
	SHTNull     SectionType = 0
	SHTProgbits SectionType = 1
	SHTSymtab   SectionType = 2
	SHTStrtab   SectionType = 3
	SHTRela     SectionType = 4
	SHTHash     SectionType = 5
	SHTDynamic  SectionType = 6
	SHTNote     SectionType = 7
	SHTNobits   SectionType = 8
	SHTRel      SectionType = 9
	SHTShlib    SectionType = 10
	SHTDynsym   SectionType = 11
	SHTInitArr  SectionType = 14
	SHTFiniArr  SectionType = 15
	SHTPreArr   SectionType = 16
	SHTGroup    SectionType = 17
	SHTSymtabShndx SectionType = 18
	shtLoOS     = 0x60000000
	shtHiOS     = 0x6FFFFFFF
	shtLoProc   = 0x70000000
	shtHiProc   = 0x7FFFFFFF
)

var sectionTypeNames = map[SectionType]string{
	SHTNull:        "Unused section",
	SHTProgbits:    "Program data",
	SHTSymtab:      "Symbol table",
	SHTStrtab:      "String table",
	SHTRela:        "Relocation entries with addends",
	SHTHash:        "Symbol hash table",
	SHTDynamic:     "Dynamic linking information",
	SHTNote:        "Notes",
	SHTNobits:      "Occupies no file space (bss)",
	SHTRel:         "Relocation entries without addends",
	SHTShlib:       "Reserved",
	SHTDynsym:      "Dynamic linker symbol table",
	SHTInitArr:     "Array of constructors",
	SHTFiniArr:     "Array of destructors",
	SHTPreArr:      "Array of pre-constructors",
	SHTGroup:       "Section group",
	SHTSymtabShndx: "Extended section indices",
}

func (s SectionType) String() string {
	if name, ok := sectionTypeNames[s]; ok {
		return name
	}
	switch {
	case uint32(s) >= shtLoOS && uint32(s) <= shtHiOS:
		return fmt.Sprintf("OS-specific section(0x%08X)", uint32(s))
	case uint32(s) >= shtLoProc && uint32(s) <= shtHiProc:
		return fmt.Sprintf("Processor-specific section(0x%08X)", uint32(s))
	}
	return fmt.Sprintf("An Unknown type(0x%08X)", uint32(s))
}
