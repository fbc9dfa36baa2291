// Completion: 100% - ELF32 image assembler complete
package main

import (
	"os"

	"golang.org/x/sys/unix"
)

const (
	elfLoadVAddr   = 0x08048000
	elfHeaderLen   = 0x34
	elfPhdrLen     = 0x20
	elfPMemSz      = 0x40000000 // oversized upper bound; accommodates `ds` reservations
	elfPFlagsRWX   = 0x07
	elfPAlign      = 0x1000
	elfOutputPerm  = 0o755
)

// ELFHeader is the fixed 52-byte ELF32 header this assembler emits:
// one executable, little-endian, System V, i386 object with a single
// program header and no section headers.
type ELFHeader struct {
	EntryPoint uint32
}

func (h ELFHeader) Bytes() []byte {
	out := make([]byte, 0, elfHeaderLen)

	out = append(out, 0x7F, 0x45, 0x4C, 0x46) // e_ident[EI_MAG]
	out = append(out, 0x01)                   // EI_CLASS: 32-bit
	out = append(out, 0x01)                   // EI_DATA: little-endian
	out = append(out, 0x01)                   // EI_VERSION
	out = append(out, 0x00)                   // EI_OSABI: System V
	out = append(out, 0x00)                   // EI_ABIVERSION
	out = append(out, make([]byte, 7)...)      // EI_PAD

	w := dumpWord(2, LittleEndian) // e_type: executable
	out = append(out, w[:]...)
	w = dumpWord(3, LittleEndian) // e_machine: i386
	out = append(out, w[:]...)
	d := dumpDword(1, LittleEndian) // e_version
	out = append(out, d[:]...)
	d = dumpDword(h.EntryPoint, LittleEndian) // e_entry
	out = append(out, d[:]...)
	d = dumpDword(elfHeaderLen, LittleEndian) // e_phoff
	out = append(out, d[:]...)
	d = dumpDword(0, LittleEndian) // e_shoff
	out = append(out, d[:]...)
	d = dumpDword(0, LittleEndian) // e_flags
	out = append(out, d[:]...)

	w = dumpWord(elfHeaderLen, LittleEndian) // e_ehsize
	out = append(out, w[:]...)
	w = dumpWord(elfPhdrLen, LittleEndian) // e_phentsize
	out = append(out, w[:]...)
	w = dumpWord(1, LittleEndian) // e_phnum
	out = append(out, w[:]...)
	w = dumpWord(0x28, LittleEndian) // e_shentsize
	out = append(out, w[:]...)
	w = dumpWord(0, LittleEndian) // e_shnum
	out = append(out, w[:]...)
	w = dumpWord(0, LittleEndian) // e_shstrndx
	out = append(out, w[:]...)

	return out
}

// ELFProgramHeader is the single PT_LOAD program header entry.
type ELFProgramHeader struct {
	Offset uint32
	VAddr  uint32
	FileSz uint32
}

func (ph ELFProgramHeader) Bytes() []byte {
	out := make([]byte, 0, elfPhdrLen)

	d := dumpDword(1, LittleEndian) // p_type: PT_LOAD
	out = append(out, d[:]...)
	d = dumpDword(ph.Offset, LittleEndian) // p_offset
	out = append(out, d[:]...)
	d = dumpDword(ph.VAddr, LittleEndian) // p_vaddr
	out = append(out, d[:]...)
	d = dumpDword(0, LittleEndian) // p_paddr
	out = append(out, d[:]...)
	d = dumpDword(ph.FileSz, LittleEndian) // p_filesz
	out = append(out, d[:]...)
	d = dumpDword(elfPMemSz, LittleEndian) // p_memsz
	out = append(out, d[:]...)
	d = dumpDword(elfPFlagsRWX, LittleEndian) // p_flags
	out = append(out, d[:]...)
	d = dumpDword(elfPAlign, LittleEndian) // p_align
	out = append(out, d[:]...)

	return out
}

// ELFImage ties a header, a single program header, and a resolved
// Program together into a complete loadable file.
type ELFImage struct {
	Header        ELFHeader
	ProgramHeader ELFProgramHeader
	Program       *Program
}

// AssembleELF fixes the program's load address so labels resolve to
// their final in-memory vaddrs, then resolves the entry point
// (spec.md §4.6).
func AssembleELF(program *Program) (*ELFImage, error) {
	program.LoadOffset = Addr{
		FileOffset: elfHeaderLen + elfPhdrLen,
		VAddr:      elfLoadVAddr + elfHeaderLen + elfPhdrLen,
	}
	program.ResolveLabels()
	if err := program.ResolveEntryPoint(); err != nil {
		return nil, err
	}

	header := ELFHeader{EntryPoint: uint32(program.EntryPoint.VAddr)}
	phdr := ELFProgramHeader{
		Offset: uint32(program.LoadOffset.FileOffset),
		VAddr:  uint32(program.LoadOffset.VAddr),
		FileSz: uint32(program.Len()),
	}

	return &ELFImage{Header: header, ProgramHeader: phdr, Program: program}, nil
}

// Bytes concatenates header, program header, and program bytes — the
// exact layout spec.md §4.6 requires.
func (img *ELFImage) Bytes(diags *Diagnostics) []byte {
	out := img.Header.Bytes()
	out = append(out, img.ProgramHeader.Bytes()...)
	out = append(out, img.Program.AsBytes(diags)...)
	return out
}

// Save writes the image to path and sets the executable permission bit
// the way the host kernel expects for a directly runnable ELF32 binary.
func (img *ELFImage) Save(path string, diags *Diagnostics) error {
	data := img.Bytes(diags)
	if err := os.WriteFile(path, data, elfOutputPerm); err != nil {
		return err
	}
	return unix.Chmod(path, elfOutputPerm)
}
