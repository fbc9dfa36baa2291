// Completion: 100% - Register model complete
package main

// Register is one of the x86 integer registers, at one of three widths.
// Bits is the operand width (8, 16, or 32); Index is the ModR/M
// register field, fixed by the SDM's register-number ordering:
// A=0, C=1, D=2, B=3, SP/AH=4, BP/CH=5, SI/DH=6, DI/BH=7.
type Register struct {
	Name  string
	Bits  int
	Index uint8
}

var (
	AL = Register{"al", 8, 0}
	CL = Register{"cl", 8, 1}
	DL = Register{"dl", 8, 2}
	BL = Register{"bl", 8, 3}
	AH = Register{"ah", 8, 4}
	CH = Register{"ch", 8, 5}
	DH = Register{"dh", 8, 6}
	BH = Register{"bh", 8, 7}

	AX = Register{"ax", 16, 0}
	CX = Register{"cx", 16, 1}
	DX = Register{"dx", 16, 2}
	BX = Register{"bx", 16, 3}
	SP = Register{"sp", 16, 4}
	BP = Register{"bp", 16, 5}
	SI = Register{"si", 16, 6}
	DI = Register{"di", 16, 7}

	EAX = Register{"eax", 32, 0}
	ECX = Register{"ecx", 32, 1}
	EDX = Register{"edx", 32, 2}
	EBX = Register{"ebx", 32, 3}
	ESP = Register{"esp", 32, 4}
	EBP = Register{"ebp", 32, 5}
	ESI = Register{"esi", 32, 6}
	EDI = Register{"edi", 32, 7}
)

var registersByName = map[string]Register{
	"al": AL, "cl": CL, "dl": DL, "bl": BL,
	"ah": AH, "ch": CH, "dh": DH, "bh": BH,

	"ax": AX, "cx": CX, "dx": DX, "bx": BX,
	"sp": SP, "bp": BP, "si": SI, "di": DI,

	"eax": EAX, "ecx": ECX, "edx": EDX, "ebx": EBX,
	"esp": ESP, "ebp": EBP, "esi": ESI, "edi": EDI,
}

// LookupRegister resolves a register name (case as written in source;
// the lexer lowercases identifiers before this is called).
func LookupRegister(name string) (Register, bool) {
	r, ok := registersByName[name]
	return r, ok
}

func (r Register) String() string {
	return r.Name
}

// FitsImmediate reports whether value fits in the register's width,
// used to detect immediate-overflow code-gen errors (spec.md §7.2).
func (r Register) FitsImmediate(value uint64) bool {
	switch r.Bits {
	case 8:
		return value <= 0xFF
	case 16:
		return value <= 0xFFFF
	case 32:
		return value <= 0xFFFFFFFF
	default:
		return false
	}
}
