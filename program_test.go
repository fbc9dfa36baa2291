package main

import "testing"

func TestProgramLabelResolution(t *testing.T) {
	p := NewProgram()
	p.LoadOffset = Addr{FileOffset: 0x54, VAddr: 0x08048054}

	start := p.NewBlock("_start")
	p.Blocks[start].Push(NewMovImmediate(EAX, NewUInt(1))) // 5 bytes

	next := p.NewBlock("_next")
	p.Blocks[next].Push(NewReturn()) // 1 byte

	p.ResolveLabels()

	startAddr, ok := p.GetAddress("_start")
	if !ok || startAddr.VAddr != 0x08048054 {
		t.Fatalf("_start resolved to %+v, ok=%v", startAddr, ok)
	}
	nextAddr, ok := p.GetAddress("_next")
	if !ok || nextAddr.VAddr != 0x08048054+5 {
		t.Fatalf("_next resolved to %+v, ok=%v, want vaddr %#x", nextAddr, ok, 0x08048054+5)
	}
}

func TestProgramEntryPointMissing(t *testing.T) {
	p := NewProgram()
	p.EntryLabel = "does_not_exist"
	p.ResolveLabels()
	if err := p.ResolveEntryPoint(); err == nil {
		t.Errorf("expected an error resolving a missing entry label")
	}
}

func TestProgramAsBytesConcatenatesBlocks(t *testing.T) {
	p := NewProgram()
	p.LoadOffset = Addr{FileOffset: 0x54, VAddr: 0x08048054}
	idx := p.NewBlock("_start")
	p.Blocks[idx].Push(NewReturn())
	p.Blocks[idx].Push(NewInt(0x80))

	out := p.AsBytes(&Diagnostics{})
	want := []byte{0xC3, 0xCD, 0x80}
	if string(out) != string(want) {
		t.Errorf("AsBytes = %x, want %x", out, want)
	}
}
