// Package loader provides ELF binary loading for ARM64 executables.
package loader

import (
	"debug/elf"
	"errors"
	"fmt"
	"io"
	"sort"
)

// SegmentFlags represents memory protection flags for a segment.
type SegmentFlags uint32

const (
	// SegmentFlagExecute indicates the segment is executable.
	SegmentFlagExecute SegmentFlags = 1 << iota
	// SegmentFlagWrite indicates the segment is writable.
	SegmentFlagWrite
	// SegmentFlagRead indicates the segment is readable.
	SegmentFlagRead
)

// Segment represents a loadable segment from an ELF binary.
type Segment struct {
	// VirtAddr is the virtual address where this segment should be loaded.
	VirtAddr uint64
	// Data contains the segment contents from the file.
	Data []byte
	// MemSize is the size in memory (may be larger than len(Data) for BSS).
	MemSize uint64
	// Flags contains the segment protection flags.
	Flags SegmentFlags
}

// Contains reports whether addr lies within the file-backed part of s.
func (s *Segment) Contains(addr uint64) bool {
	return addr >= s.VirtAddr && addr < s.VirtAddr+uint64(len(s.Data))
}

// Function is a run of code to be decompiled as one unit.
type Function struct {
	// Name is the symbol name, or sub_<ADDR> when the binary has none.
	Name string
	// Addr is the virtual address of the first instruction.
	Addr uint64
	// Code holds the function's bytes, little-endian instruction words.
	Code []byte
}

// Program represents a loaded ARM64 binary.
type Program struct {
	// EntryPoint is the virtual address where execution begins.
	EntryPoint uint64
	// Segments contains all loadable segments from the ELF file.
	Segments []Segment
	// Functions lists the code units found in executable segments,
	// ordered by address.
	Functions []Function
}

// Load parses an ARM64 ELF binary and returns its segments and functions.
func Load(path string) (*Program, error) {
	// Open the ELF file
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return loadELF(f)
}

// LoadReader is Load for an ELF image that is not on disk.
func LoadReader(r io.ReaderAt) (*Program, error) {
	f, err := elf.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return loadELF(f)
}

// LoadRaw treats the whole of r as a flat block of ARM64 code mapped at
// base. The result has a single executable segment and one function.
func LoadRaw(r io.Reader, base uint64) (*Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw code: %w", err)
	}

	seg := Segment{
		VirtAddr: base,
		Data:     data,
		MemSize:  uint64(len(data)),
		Flags:    SegmentFlagRead | SegmentFlagExecute,
	}

	return &Program{
		EntryPoint: base,
		Segments:   []Segment{seg},
		Functions:  segmentFunctions([]Segment{seg}),
	}, nil
}

func loadELF(f *elf.File) (*Program, error) {
	// Validate ELF class (must be 64-bit)
	if f.Class != elf.ELFCLASS64 {
		return nil, fmt.Errorf("not a 64-bit ELF file")
	}

	// Validate machine type (must be ARM64/AArch64)
	if f.Machine != elf.EM_AARCH64 {
		return nil, fmt.Errorf("not an ARM64 ELF file (machine type: %v)", f.Machine)
	}

	prog := &Program{
		EntryPoint: f.Entry,
	}

	// Load all PT_LOAD segments
	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD {
			continue
		}

		data := make([]byte, phdr.Filesz)
		if phdr.Filesz > 0 {
			n, err := phdr.ReadAt(data, 0)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read segment at 0x%x: %w", phdr.Vaddr, err)
			}
			if uint64(n) != phdr.Filesz {
				return nil, fmt.Errorf("short read for segment at 0x%x: got %d bytes, expected %d",
					phdr.Vaddr, n, phdr.Filesz)
			}
		}

		var flags SegmentFlags
		if phdr.Flags&elf.PF_X != 0 {
			flags |= SegmentFlagExecute
		}
		if phdr.Flags&elf.PF_W != 0 {
			flags |= SegmentFlagWrite
		}
		if phdr.Flags&elf.PF_R != 0 {
			flags |= SegmentFlagRead
		}

		prog.Segments = append(prog.Segments, Segment{
			VirtAddr: phdr.Vaddr,
			Data:     data,
			MemSize:  phdr.Memsz,
			Flags:    flags,
		})
	}

	syms, err := f.Symbols()
	switch {
	case errors.Is(err, elf.ErrNoSymbols):
		prog.Functions = segmentFunctions(prog.Segments)
	case err != nil:
		return nil, fmt.Errorf("failed to read symbols: %w", err)
	default:
		prog.Functions = symbolFunctions(syms, prog.Segments)
		if len(prog.Functions) == 0 {
			prog.Functions = segmentFunctions(prog.Segments)
		}
	}

	return prog, nil
}

// segmentFunctions makes one function per executable segment.
func segmentFunctions(segs []Segment) []Function {
	var fns []Function
	for _, seg := range segs {
		if seg.Flags&SegmentFlagExecute == 0 || len(seg.Data) == 0 {
			continue
		}
		fns = append(fns, Function{
			Name: fmt.Sprintf("sub_%X", seg.VirtAddr),
			Addr: seg.VirtAddr,
			Code: seg.Data,
		})
	}
	return fns
}

// symbolFunctions slices executable segments at STT_FUNC symbols. Symbols
// sharing an address are aliases; the first one names the function and the
// largest size among them bounds it. Without a size the function extends to
// the next higher symbol or the end of its segment.
func symbolFunctions(syms []elf.Symbol, segs []Segment) []Function {
	var funcs []elf.Symbol
	for _, s := range syms {
		if elf.ST_TYPE(s.Info) != elf.STT_FUNC || s.Section == elf.SHN_UNDEF || s.Value == 0 {
			continue
		}
		funcs = append(funcs, s)
	}
	sort.SliceStable(funcs, func(i, j int) bool { return funcs[i].Value < funcs[j].Value })

	var fns []Function
	for i, s := range funcs {
		if i > 0 && funcs[i-1].Value == s.Value {
			continue
		}

		seg := findExecSegment(segs, s.Value)
		if seg == nil {
			continue
		}

		size := s.Size
		next := i + 1
		for ; next < len(funcs) && funcs[next].Value == s.Value; next++ {
			size = max(size, funcs[next].Size)
		}

		start := s.Value - seg.VirtAddr
		end := uint64(len(seg.Data))
		switch {
		case size > 0:
			end = min(start+size, end)
		case next < len(funcs) && seg.Contains(funcs[next].Value):
			end = funcs[next].Value - seg.VirtAddr
		}

		fns = append(fns, Function{
			Name: s.Name,
			Addr: s.Value,
			Code: seg.Data[start:end],
		})
	}
	return fns
}

func findExecSegment(segs []Segment, addr uint64) *Segment {
	for i := range segs {
		if segs[i].Flags&SegmentFlagExecute != 0 && segs[i].Contains(addr) {
			return &segs[i]
		}
	}
	return nil
}
