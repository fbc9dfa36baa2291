package main

import "testing"

func bytesEqual(t *testing.T, name string, got, want []byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length = %d (%x), want %d (%x)", name, len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s = %x, want %x", name, got, want)
		}
	}
}

func TestMovRegReg(t *testing.T) {
	i := NewMovRegReg(EBX, EAX)
	bytesEqual(t, "mov ebx, eax", i.Encode(nil, Addr{}, nil), []byte{0x89, 0xC3})
}

func TestMovImmediate(t *testing.T) {
	i := NewMovImmediate(EAX, NewUInt(1))
	bytesEqual(t, "mov eax, 1", i.Encode(nil, Addr{}, nil), []byte{0xB8, 0x01, 0x00, 0x00, 0x00})
}

func TestMovMemRegEBP(t *testing.T) {
	i := NewMovMemReg(EBP, EAX)
	if got := i.Len(); got != 3 {
		t.Fatalf("mov [ebp], eax length = %d, want 3", got)
	}
	bytesEqual(t, "mov [ebp], eax", i.Encode(nil, Addr{}, nil), []byte{0x89, 0x45, 0x00})
}

func TestMovMemRegESP(t *testing.T) {
	i := NewMovMemReg(ESP, EAX)
	bytesEqual(t, "mov [esp], eax", i.Encode(nil, Addr{}, nil), []byte{0x89, 0x04, 0x24})
}

func TestAddAccumulatorShortForm(t *testing.T) {
	a := NewAddImmediate(EAX, NewUInt(1))
	bytesEqual(t, "add eax, 1", a.Encode(nil, Addr{}, nil), []byte{0x05, 0x01, 0x00, 0x00, 0x00})

	b := NewAddImmediate(EBX, NewUInt(1))
	bytesEqual(t, "add ebx, 1", b.Encode(nil, Addr{}, nil), []byte{0x81, 0xC3, 0x01, 0x00, 0x00, 0x00})
}

func TestJumpUnconditional(t *testing.T) {
	resolver := fakeResolver{"start": {FileOffset: 0x10}}
	i := NewJump(JumpNone, NewRelPointer("start"))
	if got := i.Len(); got != 5 {
		t.Fatalf("jmp length = %d, want 5", got)
	}
	end := Addr{FileOffset: 0x17}
	bytesEqual(t, "jmp start", i.Encode(resolver, end, nil), []byte{0xE9, 0xF9, 0xFF, 0xFF, 0xFF})
}

func TestJumpConditionalBackward(t *testing.T) {
	resolver := fakeResolver{"loop": {FileOffset: 0x08}}
	i := NewJump(JumpNotZero, NewRelPointer("loop"))
	if got := i.Len(); got != 6 {
		t.Fatalf("jnz length = %d, want 6", got)
	}
	end := Addr{FileOffset: 0x0F}
	bytesEqual(t, "jnz loop", i.Encode(resolver, end, nil), []byte{0x0F, 0x85, 0xF9, 0xFF, 0xFF, 0xFF})
}

func TestCallRegister(t *testing.T) {
	i := NewCallRegister(EAX)
	bytesEqual(t, "call eax", i.Encode(nil, Addr{}, nil), []byte{0xFF, 0xD0})
}

func TestIncDec(t *testing.T) {
	bytesEqual(t, "inc ecx", NewInc(ECX).Encode(nil, Addr{}, nil), []byte{0x41})
	bytesEqual(t, "dec edx", NewDec(EDX).Encode(nil, Addr{}, nil), []byte{0x4A})
}

func TestPushPop(t *testing.T) {
	bytesEqual(t, "push ebp", NewPush(EBP).Encode(nil, Addr{}, nil), []byte{0x55})
	bytesEqual(t, "pop ebp", NewPop(EBP).Encode(nil, Addr{}, nil), []byte{0x5D})
}

func TestMulDiv(t *testing.T) {
	bytesEqual(t, "mul ebx", NewMul(EBX).Encode(nil, Addr{}, nil), []byte{0xF7, 0xE3})
	bytesEqual(t, "div ebx", NewDiv(EBX).Encode(nil, Addr{}, nil), []byte{0xF7, 0xF3})
}

func TestNotNeg(t *testing.T) {
	bytesEqual(t, "not eax", NewNot(EAX).Encode(nil, Addr{}, nil), []byte{0xF7, 0xD0})
	bytesEqual(t, "neg eax", NewNeg(EAX).Encode(nil, Addr{}, nil), []byte{0xF7, 0xD8})
}

func TestShlShr(t *testing.T) {
	bytesEqual(t, "shl eax, 4", NewShl(EAX, 4).Encode(nil, Addr{}, nil), []byte{0xC1, 0xE0, 0x04})
	bytesEqual(t, "shr eax, 4", NewShr(EAX, 4).Encode(nil, Addr{}, nil), []byte{0xC1, 0xE8, 0x04})
}

func TestReturn(t *testing.T) {
	bytesEqual(t, "ret", NewReturn().Encode(nil, Addr{}, nil), []byte{0xC3})
}

func TestByteSwap(t *testing.T) {
	bytesEqual(t, "bswap eax", NewByteSwap(EAX).Encode(nil, Addr{}, nil), []byte{0x0F, 0xC8})
}

func TestInterrupt(t *testing.T) {
	bytesEqual(t, "int 0x80", NewInt(0x80).Encode(nil, Addr{}, nil), []byte{0xCD, 0x80})
}

func TestArithRegRegAllVariants(t *testing.T) {
	bytesEqual(t, "add eax, ebx", NewAddRegReg(EAX, EBX).Encode(nil, Addr{}, nil), []byte{0x01, 0xD8})
	bytesEqual(t, "sub eax, ebx", NewSubRegReg(EAX, EBX).Encode(nil, Addr{}, nil), []byte{0x29, 0xD8})
	bytesEqual(t, "and eax, ebx", NewAndRegReg(EAX, EBX).Encode(nil, Addr{}, nil), []byte{0x21, 0xD8})
	bytesEqual(t, "or eax, ebx", NewOrRegReg(EAX, EBX).Encode(nil, Addr{}, nil), []byte{0x09, 0xD8})
	bytesEqual(t, "xor eax, ebx", NewXorRegReg(EAX, EBX).Encode(nil, Addr{}, nil), []byte{0x31, 0xD8})
	bytesEqual(t, "cmp eax, ebx", NewCmpRegReg(EAX, EBX).Encode(nil, Addr{}, nil), []byte{0x39, 0xD8})
}
