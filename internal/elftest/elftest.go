// Package elftest builds small ARM64 ELF images for tests.
package elftest

import (
	"encoding/binary"
	"os"
)

// Machine types.
const (
	MachineAArch64 = 183
	MachineX8664   = 62
)

// Program header flags.
const (
	FlagX = 0x1
	FlagW = 0x2
	FlagR = 0x4
)

// Segment describes one PT_LOAD program header and its bytes.
type Segment struct {
	Addr    uint64
	Data    []byte
	MemSize uint64 // defaults to len(Data)
	Flags   uint32
}

// Symbol describes one STT_FUNC entry in .symtab.
type Symbol struct {
	Name string
	Addr uint64
	Size uint64
}

// Image describes an ELF64 little-endian executable.
type Image struct {
	Machine  uint16 // defaults to MachineAArch64
	Entry    uint64
	Segments []Segment
	// Symbols, when set, adds .symtab/.strtab/.shstrtab sections. The
	// symbols are attributed to the first segment's section.
	Symbols []Symbol
}

// Code encodes instruction words little-endian.
func Code(words ...uint32) []byte {
	b := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}

// Bytes lays the image out as:
// ELF header | program headers | segment data | symtab | strtab | shstrtab | section headers
func (img Image) Bytes() []byte {
	le := binary.LittleEndian
	machine := img.Machine
	if machine == 0 {
		machine = MachineAArch64
	}

	phoff := uint64(64)
	dataOff := phoff + 56*uint64(len(img.Segments))

	var body []byte
	phdrs := make([]byte, 0, 56*len(img.Segments))
	segOffs := make([]uint64, len(img.Segments))
	for i, seg := range img.Segments {
		memSize := seg.MemSize
		if memSize == 0 {
			memSize = uint64(len(seg.Data))
		}
		segOffs[i] = dataOff + uint64(len(body))

		ph := make([]byte, 56)
		le.PutUint32(ph[0:4], 1) // PT_LOAD
		le.PutUint32(ph[4:8], seg.Flags)
		le.PutUint64(ph[8:16], segOffs[i])
		le.PutUint64(ph[16:24], seg.Addr)
		le.PutUint64(ph[24:32], seg.Addr)
		le.PutUint64(ph[32:40], uint64(len(seg.Data)))
		le.PutUint64(ph[40:48], memSize)
		le.PutUint64(ph[48:56], 0x1000)
		phdrs = append(phdrs, ph...)

		body = append(body, seg.Data...)
	}

	hdr := make([]byte, 64)
	copy(hdr[0:4], []byte{0x7f, 'E', 'L', 'F'})
	hdr[4] = 2 // 64-bit
	hdr[5] = 1 // little endian
	hdr[6] = 1 // version
	le.PutUint16(hdr[16:18], 2) // executable
	le.PutUint16(hdr[18:20], machine)
	le.PutUint32(hdr[20:24], 1)
	le.PutUint64(hdr[24:32], img.Entry)
	le.PutUint64(hdr[32:40], phoff)
	le.PutUint16(hdr[52:54], 64) // ehsize
	le.PutUint16(hdr[54:56], 56) // phentsize
	le.PutUint16(hdr[56:58], uint16(len(img.Segments)))
	le.PutUint16(hdr[58:60], 64) // shentsize

	out := append(hdr, phdrs...)
	out = append(out, body...)

	if len(img.Symbols) == 0 || len(img.Segments) == 0 {
		return out
	}

	// .symtab: null symbol then one global STT_FUNC per entry.
	strtab := []byte{0}
	symtab := make([]byte, 24)
	for _, s := range img.Symbols {
		sym := make([]byte, 24)
		le.PutUint32(sym[0:4], uint32(len(strtab)))
		sym[4] = 1<<4 | 2 // STB_GLOBAL | STT_FUNC
		le.PutUint16(sym[6:8], 1)
		le.PutUint64(sym[8:16], s.Addr)
		le.PutUint64(sym[16:24], s.Size)
		symtab = append(symtab, sym...)
		strtab = append(strtab, s.Name...)
		strtab = append(strtab, 0)
	}
	shstrtab := []byte("\x00.text\x00.symtab\x00.strtab\x00.shstrtab\x00")

	symOff := uint64(len(out))
	out = append(out, symtab...)
	strOff := uint64(len(out))
	out = append(out, strtab...)
	shstrOff := uint64(len(out))
	out = append(out, shstrtab...)
	shoff := uint64(len(out))

	text := img.Segments[0]
	sections := [][]byte{
		make([]byte, 64),
		section(1, 1, 0x6, text.Addr, segOffs[0], uint64(len(text.Data)), 0, 0, 4, 0),
		section(7, 2, 0, 0, symOff, uint64(len(symtab)), 3, 1, 8, 24),
		section(15, 3, 0, 0, strOff, uint64(len(strtab)), 0, 0, 1, 0),
		section(23, 3, 0, 0, shstrOff, uint64(len(shstrtab)), 0, 0, 1, 0),
	}
	for _, s := range sections {
		out = append(out, s...)
	}

	le.PutUint64(out[40:48], shoff)
	le.PutUint16(out[60:62], uint16(len(sections)))
	le.PutUint16(out[62:64], 4) // shstrndx

	return out
}

func section(name, typ uint32, flags, addr, off, size uint64, link, info uint32, align, entsize uint64) []byte {
	le := binary.LittleEndian
	sh := make([]byte, 64)
	le.PutUint32(sh[0:4], name)
	le.PutUint32(sh[4:8], typ)
	le.PutUint64(sh[8:16], flags)
	le.PutUint64(sh[16:24], addr)
	le.PutUint64(sh[24:32], off)
	le.PutUint64(sh[32:40], size)
	le.PutUint32(sh[40:44], link)
	le.PutUint32(sh[44:48], info)
	le.PutUint64(sh[48:56], align)
	le.PutUint64(sh[56:64], entsize)
	return sh
}

// Write stores the image at path.
func (img Image) Write(path string) error {
	return os.WriteFile(path, img.Bytes(), 0o644)
}
