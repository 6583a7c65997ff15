package regsim

import "testing"

func TestMemoryAndTrace(t *testing.T) {
	s := New()
	s.Write32(0x100, 0xAB)
	if got := s.Read32(0x100); got != 0xAB {
		t.Fatalf("readback: want 0xAB, got 0x%X", got)
	}
	if got := s.Read32(0x200); got != 0 {
		t.Fatalf("untouched word: want 0, got 0x%X", got)
	}
	tr := s.Trace()
	if len(tr) != 3 {
		t.Fatalf("trace length: want 3, got %d", len(tr))
	}
	if !tr[0].Write || tr[0].Addr != 0x100 || tr[0].Val != 0xAB {
		t.Fatalf("first access: %+v", tr[0])
	}
	if s.WriteCount(0x100) != 1 {
		t.Fatalf("write count: want 1, got %d", s.WriteCount(0x100))
	}
	s.ClearTrace()
	if len(s.Trace()) != 0 {
		t.Fatalf("trace should be empty after clear")
	}
	if s.Peek(0x100) != 0xAB {
		t.Fatalf("memory must survive trace clear")
	}
}

func TestPokeBypassesRulesAndTrace(t *testing.T) {
	s := New()
	s.Poke(0x40, 7)
	if len(s.Trace()) != 0 {
		t.Fatalf("poke must not trace")
	}
	if s.Read32(0x40) != 7 {
		t.Fatalf("poked value lost")
	}
}

func TestEnvAccounting(t *testing.T) {
	s := New()
	env := s.Env()
	restore := env.Mask()
	if s.MaskBalanced() {
		t.Fatalf("mask should be open")
	}
	s.Write32(0x10, 1)
	restore()
	if !s.MaskBalanced() || s.MaskEnters() != 1 {
		t.Fatalf("mask accounting off: enters=%d balanced=%v", s.MaskEnters(), s.MaskBalanced())
	}
	tr := s.Trace()
	if !tr[0].Masked {
		t.Fatalf("write inside the section should be marked masked")
	}
	env.Delay(2)
	env.Delay(3)
	if s.Cycles() != 5 {
		t.Fatalf("cycles: want 5, got %d", s.Cycles())
	}
}

func TestPortRulesModelAtomicWrites(t *testing.T) {
	s := New()
	a := PortAddrs{DataIn: 0x00, DataOut: 0x08, SetOut: 0x10, ClrOut: 0x14, TogOut: 0x18}
	s.InstallPortRules(a)

	s.Write32(a.SetOut, 0b1010)
	if s.Peek(a.DataOut) != 0b1010 || s.Peek(a.DataIn) != 0b1010 {
		t.Fatalf("set: out=0x%X in=0x%X", s.Peek(a.DataOut), s.Peek(a.DataIn))
	}
	s.Write32(a.ClrOut, 0b0010)
	if s.Peek(a.DataOut) != 0b1000 {
		t.Fatalf("clear: out=0x%X", s.Peek(a.DataOut))
	}
	s.Write32(a.TogOut, 0b1001)
	if s.Peek(a.DataOut) != 0b0001 {
		t.Fatalf("toggle: out=0x%X", s.Peek(a.DataOut))
	}
	// Planted input bits survive writes that do not drive them.
	s.Poke(a.DataIn, s.Peek(a.DataIn)|1<<7)
	s.Write32(a.SetOut, 1<<2)
	if s.Peek(a.DataIn)&(1<<7) == 0 {
		t.Fatalf("planted input bit was clobbered")
	}
}

func TestOnWriteRuleReplacesStore(t *testing.T) {
	s := New()
	s.OnWrite(0x50, func(mem map[uint32]uint32, v uint32) {
		mem[0x54] = v * 2
	})
	s.Write32(0x50, 21)
	if s.Peek(0x50) != 0 {
		t.Fatalf("ruled address should not store")
	}
	if s.Peek(0x54) != 42 {
		t.Fatalf("rule effect: want 42, got %d", s.Peek(0x54))
	}
}
