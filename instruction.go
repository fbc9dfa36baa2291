// Completion: 100% - Closed instruction union complete
package main

// InstrKind tags which variant an Instruction holds. The union is
// closed: every variant's Len() depends only on operand shape, never on
// a resolved value, so the program layout pass can be a single forward
// walk (spec.md §4.4, §5).
type InstrKind int

const (
	IKRawData InstrKind = iota
	IKInt
	IKMovImmediate
	IKMovRegReg
	IKMovMemReg
	IKMovMemory
	IKMovFromMemory
	IKMovFromMemReg
	IKInc
	IKDec
	IKJump
	IKAddRegReg
	IKSubRegReg
	IKAndRegReg
	IKOrRegReg
	IKXorRegReg
	IKCmpRegReg
	IKAddImmediate
	IKSubImmediate
	IKCmpImmediate
	IKMul
	IKDiv
	IKByteSwap
	IKPush
	IKPop
	IKCall
	IKCallRegister
	IKReturn
	IKNot
	IKNeg
	IKShl
	IKShr
)

// Instruction is the tagged union of every supported mnemonic/operand
// shape. Not every field is meaningful for every Kind; see the
// per-mnemonic file (mov.go, add.go, jmp.go, ...) for which fields a
// given Kind reads.
type Instruction struct {
	Kind InstrKind

	Reg  Register // primary operand register (dest, or the only register)
	Reg2 Register // secondary operand register (src, for reg-reg forms)
	Val  Value    // immediate / pointer / rel-pointer operand

	Cond  JumpCondition // IKJump only
	Raw   []byte        // IKRawData only
	IntNo uint8         // IKInt only
	Shift uint8         // IKShl / IKShr: shift count (imm8)
}

// Len returns the instruction's total encoded byte count.
func (i Instruction) Len() int {
	switch i.Kind {
	case IKRawData:
		return lenRawData(i)
	case IKInt:
		return lenInt(i)
	case IKMovImmediate:
		return lenMovImmediate(i)
	case IKMovRegReg:
		return lenMovRegReg(i)
	case IKMovMemReg:
		return lenMovMemReg(i)
	case IKMovMemory:
		return lenMovMemory(i)
	case IKMovFromMemory:
		return lenMovFromMemory(i)
	case IKMovFromMemReg:
		return lenMovFromMemReg(i)
	case IKInc:
		return lenIncDec(i)
	case IKDec:
		return lenIncDec(i)
	case IKJump:
		return lenJump(i)
	case IKAddRegReg, IKSubRegReg, IKAndRegReg, IKOrRegReg, IKXorRegReg, IKCmpRegReg:
		return lenArithRegReg(i)
	case IKAddImmediate, IKSubImmediate, IKCmpImmediate:
		return lenArithImmediate(i)
	case IKMul, IKDiv:
		return lenMulDiv(i)
	case IKByteSwap:
		return lenByteSwap(i)
	case IKPush, IKPop:
		return lenPushPop(i)
	case IKCall:
		return lenCall(i)
	case IKCallRegister:
		return lenCallRegister(i)
	case IKReturn:
		return lenReturn(i)
	case IKNot, IKNeg:
		return lenNotNeg(i)
	case IKShl, IKShr:
		return lenShift(i)
	default:
		return 0
	}
}

// Encode emits the instruction's bytes. endAddr is the address
// immediately after this instruction — passed through so RelPointer
// values can compute their displacement (spec.md §4.2, §9).
func (i Instruction) Encode(resolver AddressResolver, endAddr Addr, diags *Diagnostics) []byte {
	switch i.Kind {
	case IKRawData:
		return encodeRawData(i)
	case IKInt:
		return encodeInt(i)
	case IKMovImmediate:
		return encodeMovImmediate(i, resolver, endAddr, diags)
	case IKMovRegReg:
		return encodeMovRegReg(i)
	case IKMovMemReg:
		return encodeMovMemReg(i, resolver, endAddr, diags)
	case IKMovMemory:
		return encodeMovMemory(i, resolver, endAddr, diags)
	case IKMovFromMemory:
		return encodeMovFromMemory(i, resolver, endAddr, diags)
	case IKMovFromMemReg:
		return encodeMovFromMemReg(i, resolver, endAddr, diags)
	case IKInc:
		return encodeInc(i)
	case IKDec:
		return encodeDec(i)
	case IKJump:
		return encodeJump(i, resolver, endAddr, diags)
	case IKAddRegReg:
		return encodeArithRegReg(0x00, i)
	case IKSubRegReg:
		return encodeArithRegReg(0x28, i)
	case IKAndRegReg:
		return encodeArithRegReg(0x20, i)
	case IKOrRegReg:
		return encodeArithRegReg(0x08, i)
	case IKXorRegReg:
		return encodeArithRegReg(0x30, i)
	case IKCmpRegReg:
		return encodeArithRegReg(0x38, i)
	case IKAddImmediate:
		return encodeArithImmediate(arithAdd, i, resolver, endAddr, diags)
	case IKSubImmediate:
		return encodeArithImmediate(arithSub, i, resolver, endAddr, diags)
	case IKCmpImmediate:
		return encodeArithImmediate(arithCmp, i, resolver, endAddr, diags)
	case IKMul:
		return encodeMulDiv(0x04, i)
	case IKDiv:
		return encodeMulDiv(0x06, i)
	case IKByteSwap:
		return encodeByteSwap(i)
	case IKPush:
		return encodePush(i)
	case IKPop:
		return encodePop(i)
	case IKCall:
		return encodeCall(i, resolver, endAddr, diags)
	case IKCallRegister:
		return encodeCallRegister(i)
	case IKReturn:
		return encodeReturn(i)
	case IKNot:
		return encodeNotNeg(0x02, i)
	case IKNeg:
		return encodeNotNeg(0x03, i)
	case IKShl:
		return encodeShift(0x04, i)
	case IKShr:
		return encodeShift(0x05, i)
	default:
		return nil
	}
}

// modRMRegister builds the register-direct ModR/M byte: mod=11, the
// given reg-field digit, and rm = register index.
func modRMRegister(digit uint8, rm uint8) byte {
	return 0xC0 | (digit << 3) | rm
}

// is16 reports whether a register operand needs the 0x66 operand-size
// prefix.
func is16(r Register) bool { return r.Bits == 16 }

func prefixBytes(r Register) []byte {
	if is16(r) {
		return []byte{0x66}
	}
	return nil
}
