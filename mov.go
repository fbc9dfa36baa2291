// Completion: 100% - Mov family (register, memory, immediate forms) complete
package main

// This file covers every addressing shape of `mov` spec.md §3/§4.3 names:
// register-immediate, register-register, register-to-memory-via-register
// (with the ESP/EBP SIB/disp8 special cases), memory-via-register-to-register
// (the mirror), and the absolute-address accumulator-or-full forms.

// --- MovImmediate: `mov reg, imm` --------------------------------------

func lenMovImmediate(i Instruction) int {
	return len(prefixBytes(i.Reg)) + 1 + i.Val.Len()
}

func encodeMovImmediate(i Instruction, resolver AddressResolver, endAddr Addr, diags *Diagnostics) []byte {
	out := append([]byte{}, prefixBytes(i.Reg)...)
	var opcode byte
	if i.Reg.Bits == 8 {
		opcode = 0xB0 + i.Reg.Index
	} else {
		opcode = 0xB8 + i.Reg.Index
	}
	out = append(out, opcode)
	out = append(out, i.Val.AsBytes(resolver, endAddr, diags)...)
	return out
}

func NewMovImmediate(reg Register, val Value) Instruction {
	return Instruction{Kind: IKMovImmediate, Reg: reg, Val: val}
}

// --- MovRegReg: `mov dst, src` (register-direct, mod=11) ---------------

func lenMovRegReg(i Instruction) int {
	n := 2
	if is16(i.Reg) {
		n++
	}
	return n
}

func encodeMovRegReg(i Instruction) []byte {
	out := append([]byte{}, prefixBytes(i.Reg)...)
	opcode := byte(0x89)
	if i.Reg.Bits == 8 {
		opcode = 0x88
	}
	out = append(out, opcode, modRMRegister(i.Reg2.Index, i.Reg.Index))
	return out
}

func NewMovRegReg(dst, src Register) Instruction {
	return Instruction{Kind: IKMovRegReg, Reg: dst, Reg2: src}
}

// --- MovMemReg: `mov [dst], src` (store via register address) ----------

func lenMovMemReg(i Instruction) int {
	n := 2
	if i.Reg == ESP || i.Reg == EBP {
		n++
	}
	if is16(i.Reg2) {
		n++
	}
	return n
}

func modRMMemReg(dst, src Register) []byte {
	reg := src.Index
	rm := dst.Index
	switch dst {
	case ESP:
		return []byte{(reg << 3) | rm, 0x24}
	case EBP:
		return []byte{0b01000000 | (reg << 3) | rm, 0x00}
	default:
		return []byte{(reg << 3) | rm}
	}
}

func encodeMovMemReg(i Instruction, resolver AddressResolver, endAddr Addr, diags *Diagnostics) []byte {
	out := append([]byte{}, prefixBytes(i.Reg2)...)
	opcode := byte(0x89)
	if i.Reg2.Bits == 8 {
		opcode = 0x88
	}
	out = append(out, opcode)
	out = append(out, modRMMemReg(i.Reg, i.Reg2)...)
	return out
}

func NewMovMemReg(dst, src Register) Instruction {
	return Instruction{Kind: IKMovMemReg, Reg: dst, Reg2: src}
}

// --- MovFromMemReg: `mov dst, [src]` (mirror of MovMemReg) -------------

func lenMovFromMemReg(i Instruction) int {
	n := 2
	if i.Reg2 == ESP || i.Reg2 == EBP {
		n++
	}
	if is16(i.Reg) {
		n++
	}
	return n
}

func encodeMovFromMemReg(i Instruction, resolver AddressResolver, endAddr Addr, diags *Diagnostics) []byte {
	out := append([]byte{}, prefixBytes(i.Reg)...)
	opcode := byte(0x8B)
	if i.Reg.Bits == 8 {
		opcode = 0x8A
	}
	out = append(out, opcode)
	out = append(out, modRMMemReg(i.Reg2, i.Reg)...)
	return out
}

func NewMovFromMemReg(dst, src Register) Instruction {
	return Instruction{Kind: IKMovFromMemReg, Reg: dst, Reg2: src}
}

// --- MovMemory: `mov [addr], reg` (absolute address, accumulator short form) ---

func accumDisp32Byte(r Register) byte {
	return 0x05 | (r.Index << 3)
}

func lenMovMemory(i Instruction) int {
	n := 5
	if i.Reg != EAX && i.Reg != AX && i.Reg != AL {
		n++
	}
	if is16(i.Reg) {
		n++
	}
	return n
}

func encodeMovMemory(i Instruction, resolver AddressResolver, endAddr Addr, diags *Diagnostics) []byte {
	out := append([]byte{}, prefixBytes(i.Reg)...)
	switch {
	case i.Reg == EAX || i.Reg == AX:
		out = append(out, 0xA3)
	case i.Reg == AL:
		out = append(out, 0xA2)
	case i.Reg.Bits == 8:
		out = append(out, 0x88, accumDisp32Byte(i.Reg))
	default:
		out = append(out, 0x89, accumDisp32Byte(i.Reg))
	}
	out = append(out, i.Val.AsBytes(resolver, endAddr, diags)...)
	return out
}

func NewMovMemory(addr Value, reg Register) Instruction {
	return Instruction{Kind: IKMovMemory, Val: addr, Reg: reg}
}

// --- MovFromMemory: `mov reg, [addr]` (mirror) --------------------------

func lenMovFromMemory(i Instruction) int {
	n := 5
	if i.Reg != EAX && i.Reg != AX && i.Reg != AL {
		n++
	}
	if is16(i.Reg) {
		n++
	}
	return n
}

func encodeMovFromMemory(i Instruction, resolver AddressResolver, endAddr Addr, diags *Diagnostics) []byte {
	out := append([]byte{}, prefixBytes(i.Reg)...)
	switch {
	case i.Reg == EAX || i.Reg == AX:
		out = append(out, 0xA1)
	case i.Reg == AL:
		out = append(out, 0xA0)
	case i.Reg.Bits == 8:
		out = append(out, 0x8A, accumDisp32Byte(i.Reg))
	default:
		out = append(out, 0x8B, accumDisp32Byte(i.Reg))
	}
	out = append(out, i.Val.AsBytes(resolver, endAddr, diags)...)
	return out
}

func NewMovFromMemory(reg Register, addr Value) Instruction {
	return Instruction{Kind: IKMovFromMemory, Reg: reg, Val: addr}
}
