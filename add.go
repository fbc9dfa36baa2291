// Completion: 100% - Add (register and immediate forms) complete
package main

func lenArithRegReg(i Instruction) int {
	n := 2
	if is16(i.Reg) {
		n++
	}
	return n
}

func encodeArithRegReg(base8bit byte, i Instruction) []byte {
	out := append([]byte{}, prefixBytes(i.Reg)...)
	opcode := base8bit + 1
	if i.Reg.Bits == 8 {
		opcode = base8bit
	}
	out = append(out, opcode, modRMRegister(i.Reg2.Index, i.Reg.Index))
	return out
}

func NewAddRegReg(dst, src Register) Instruction {
	return Instruction{Kind: IKAddRegReg, Reg: dst, Reg2: src}
}

// arithDigit selects the ModR/M /digit used by the `80/81 /digit` family
// for the accumulator-less immediate forms this assembler supports.
type arithDigit struct {
	digit      uint8
	accum8     byte
	accumWide  byte
}

var (
	arithAdd = arithDigit{digit: 0, accum8: 0x04, accumWide: 0x05}
	arithSub = arithDigit{digit: 5, accum8: 0x2C, accumWide: 0x2D}
	arithCmp = arithDigit{digit: 7, accum8: 0x3C, accumWide: 0x3D}
)

func isAccumulator(r Register) bool {
	return r == AL || r == AX || r == EAX
}

func lenArithImmediate(i Instruction) int {
	n := 1 + i.Val.Len()
	if !isAccumulator(i.Reg) {
		n++
	}
	if is16(i.Reg) {
		n++
	}
	return n
}

func encodeArithImmediate(d arithDigit, i Instruction, resolver AddressResolver, endAddr Addr, diags *Diagnostics) []byte {
	out := append([]byte{}, prefixBytes(i.Reg)...)
	if isAccumulator(i.Reg) {
		opcode := d.accumWide
		if i.Reg.Bits == 8 {
			opcode = d.accum8
		}
		out = append(out, opcode)
	} else {
		opcode := byte(0x81)
		if i.Reg.Bits == 8 {
			opcode = 0x80
		}
		out = append(out, opcode, modRMRegister(d.digit, i.Reg.Index))
	}
	out = append(out, i.Val.AsBytes(resolver, endAddr, diags)...)
	return out
}

func NewAddImmediate(reg Register, val Value) Instruction {
	return Instruction{Kind: IKAddImmediate, Reg: reg, Val: val}
}
