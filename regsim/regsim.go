// Package regsim is a sparse in-memory register file implementing the
// family word bus for host tests and tooling. It records every access,
// tracks critical-section nesting and delay cycles, and lets tests
// install per-address write rules so register side effects (write-1-to-
// set words, input loopback, scripted slave devices) can be modelled
// without hardware.
package regsim

import (
	"sync"

	"vorago-periphs-go/family"
	"vorago-periphs-go/x/mathx"
)

// Access is one recorded bus transaction.
type Access struct {
	Addr   uint32
	Val    uint32
	Write  bool
	Masked bool // taken inside a critical section
}

// WriteRule runs instead of the plain store for one address. It runs
// with the register file locked and may update any word.
type WriteRule func(mem map[uint32]uint32, v uint32)

// Sim is the register file. The zero value is not usable; call New.
type Sim struct {
	mu    sync.Mutex
	mem   map[uint32]uint32
	rules map[uint32]WriteRule
	trace []Access

	maskDepth  int
	maskEnters int
	maskExits  int
	cycles     int
}

func New() *Sim {
	return &Sim{
		mem:   make(map[uint32]uint32),
		rules: make(map[uint32]WriteRule),
	}
}

var _ family.Bus32 = (*Sim)(nil)

func (s *Sim) Read32(addr uint32) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.mem[addr]
	s.trace = append(s.trace, Access{Addr: addr, Val: v, Masked: s.maskDepth > 0})
	return v
}

func (s *Sim) Write32(addr uint32, v uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trace = append(s.trace, Access{Addr: addr, Val: v, Write: true, Masked: s.maskDepth > 0})
	if r, ok := s.rules[addr]; ok {
		r(s.mem, v)
		return
	}
	s.mem[addr] = v
}

// OnWrite installs a write rule for one address.
func (s *Sim) OnWrite(addr uint32, r WriteRule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[addr] = r
}

// Peek reads a word without touching the trace or rules.
func (s *Sim) Peek(addr uint32) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem[addr]
}

// Poke stores a word without touching the trace or rules. Tests use it
// to plant input levels and ID words.
func (s *Sim) Poke(addr uint32, v uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mem[addr] = v
}

// Env returns environment primitives backed by the simulator's mask and
// cycle accounting.
func (s *Sim) Env() family.Env {
	return family.Env{
		Mask: func() (restore func()) {
			s.mu.Lock()
			s.maskDepth++
			s.maskEnters++
			s.mu.Unlock()
			return func() {
				s.mu.Lock()
				s.maskDepth--
				s.maskExits++
				s.mu.Unlock()
			}
		},
		Delay: func(cycles int) {
			s.mu.Lock()
			s.cycles += mathx.Max(cycles, 0)
			s.mu.Unlock()
		},
	}
}

// Trace copies the recorded accesses.
func (s *Sim) Trace() []Access {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Access, len(s.trace))
	copy(out, s.trace)
	return out
}

// ClearTrace drops the recording, keeping memory contents.
func (s *Sim) ClearTrace() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trace = s.trace[:0]
}

// WriteCount counts recorded writes to one address.
func (s *Sim) WriteCount(addr uint32) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.trace {
		if a.Write && a.Addr == addr {
			n++
		}
	}
	return n
}

// MaskBalanced reports whether every critical-section enter has been
// restored.
func (s *Sim) MaskBalanced() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maskDepth == 0 && s.maskEnters == s.maskExits
}

// MaskEnters returns how many critical sections were taken.
func (s *Sim) MaskEnters() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maskEnters
}

// Cycles returns the accumulated delay cycles.
func (s *Sim) Cycles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycles
}
