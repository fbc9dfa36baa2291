// Completion: 100% - Conditional and unconditional jump complete
package main

// JumpCondition's nonzero values equal the second opcode byte of the
// corresponding 0F 8x near-jump encoding. None encodes as unconditional E9.
type JumpCondition uint8

const (
	JumpNone                JumpCondition = 0
	JumpOverflow             JumpCondition = 0x80
	JumpNotOverflow          JumpCondition = 0x81
	JumpCarry                JumpCondition = 0x82
	JumpNotCarry             JumpCondition = 0x83
	JumpZero                 JumpCondition = 0x84
	JumpNotZero              JumpCondition = 0x85
	JumpCarryOrZero          JumpCondition = 0x86
	JumpNotCarryAndNotZero   JumpCondition = 0x87
	JumpSign                 JumpCondition = 0x88
	JumpNotSign              JumpCondition = 0x89
	JumpParity               JumpCondition = 0x8A
	JumpNotParity            JumpCondition = 0x8B
	JumpLess                 JumpCondition = 0x8C
	JumpNotLess              JumpCondition = 0x8D
	JumpNotGreater           JumpCondition = 0x8E
	JumpGreater              JumpCondition = 0x8F
)

func lenJump(i Instruction) int {
	if i.Cond == JumpNone {
		return 5
	}
	return 6
}

func encodeJump(i Instruction, resolver AddressResolver, endAddr Addr, diags *Diagnostics) []byte {
	var out []byte
	if i.Cond == JumpNone {
		out = append(out, 0xE9)
	} else {
		out = append(out, 0x0F, byte(i.Cond))
	}
	out = append(out, i.Val.AsBytes(resolver, endAddr, diags)...)
	return out
}

func NewJump(cond JumpCondition, target Value) Instruction {
	return Instruction{Kind: IKJump, Cond: cond, Val: target}
}
