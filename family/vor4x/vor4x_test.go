package vor4x

import (
	"testing"

	"vorago-periphs-go/family"
	"vorago-periphs-go/pin"
	"vorago-periphs-go/regsim"
)

func TestLayoutShape(t *testing.T) {
	if got := layout.NumPins(); got != 104 {
		t.Fatalf("NumPins() = %d, want 104", got)
	}
	if !layout.Contains(PA0) || !layout.Contains(PF15) || !layout.Contains(PG7) {
		t.Fatalf("layout rejects a defined pin constant")
	}
	if layout.Contains(pin.Make(pin.PortG, 8)) {
		t.Fatalf("layout accepts PG8 beyond port width")
	}
	if layout.Contains(pin.Make(pin.Port(7), 0)) {
		t.Fatalf("layout accepts an eighth port")
	}
}

func TestBondedVariant(t *testing.T) {
	if got := layout41628.NumPins(); got != 75 {
		t.Fatalf("va41628 NumPins() = %d, want 75", got)
	}
	unbonded := []pin.ID{PB5, PB11, PC13, PC15, PD0, PD9, PE10, PE11, PF2, PF8, PF10}
	for _, id := range unbonded {
		if layout41628.Contains(id) {
			t.Fatalf("va41628 accepts unbonded %v", id)
		}
		if _, err := layout41628.Lookup(int(id.Port()), int(id.Offset())); err == nil {
			t.Fatalf("va41628 Lookup(%v) passed for an unbonded pad", id)
		}
	}
	bonded := []pin.ID{PB4, PB12, PC12, PC14, PD10, PE9, PE12, PF1, PF9, PF11, PG7}
	for _, id := range bonded {
		if !layout41628.Contains(id) {
			t.Fatalf("va41628 rejects bonded %v", id)
		}
	}
	// The shared table still routes unbonded pads; the layout is what
	// keeps them unreachable.
	if len(caps.Find(PF8, "uart2", family.RoleTx)) != 1 {
		t.Fatalf("shared table lost the PF8 uart2 routing")
	}
}

func TestPinInterrupts(t *testing.T) {
	for _, tc := range []struct {
		id   pin.ID
		line int
	}{
		{PA0, 16},
		{PA15, 31},
		{PB0, 32},
		{PC7, 55},
		{PF15, 111},
	} {
		line, ok := layout.PinInterrupt(tc.id)
		if !ok || line != tc.line {
			t.Fatalf("PinInterrupt(%v) = %d, %v, want %d", tc.id, line, ok, tc.line)
		}
	}
	if _, ok := layout.PinInterrupt(PG0); ok {
		t.Fatalf("port G pins have no interrupt lines")
	}
}

func TestKnownRoutes(t *testing.T) {
	es := caps.Find(PA2, "uart0", family.RoleTx)
	if len(es) != 1 || es[0].Sel != pin.Sel3 {
		t.Fatalf("Find(PA2, uart0, tx) = %+v, want one Sel3 row", es)
	}
	es = caps.Find(PG0, "uart0", family.RoleTx)
	if len(es) != 1 || es[0].Sel != pin.Sel1 {
		t.Fatalf("Find(PG0, uart0, tx) = %+v, want one Sel1 row", es)
	}

	// PA3 fans out across all three selects: tim3, a spi1 chip select
	// and uart0 rx.
	if got := len(caps.RowsFor(PA3)); got != 3 {
		t.Fatalf("RowsFor(PA3) has %d rows, want 3", got)
	}
	sels := caps.Sels(PA3)
	want := []pin.FuncSel{pin.Sel0, pin.Sel1, pin.Sel2, pin.Sel3}
	if len(sels) != len(want) {
		t.Fatalf("Sels(PA3) = %v, want %v", sels, want)
	}
	for i := range want {
		if sels[i] != want[i] {
			t.Fatalf("Sels(PA3) = %v, want %v", sels, want)
		}
	}
	es = caps.Find(PA3, "spi1", family.RoleHwCs)
	if len(es) != 1 || es[0].Sel != pin.Sel2 || es[0].CS != 1 {
		t.Fatalf("Find(PA3, spi1, hwcs) = %+v, want Sel2 cs1", es)
	}

	// PF2 carries spi2 chip selects on two selects.
	es = caps.Find(PF2, "spi2", family.RoleHwCs)
	if len(es) != 2 {
		t.Fatalf("Find(PF2, spi2, hwcs) = %+v, want two rows", es)
	}
}

func TestTimerSpans(t *testing.T) {
	for _, tc := range []struct {
		id   pin.ID
		name string
		sel  pin.FuncSel
	}{
		{PA8, "tim8", pin.Sel3},
		{PA10, "tim23", pin.Sel2},
		{PB15, "tim2", pin.Sel2},
		{PC1, "tim0", pin.Sel2},
		{PD15, "tim15", pin.Sel2},
		{PE0, "tim16", pin.Sel2},
		{PE15, "tim23", pin.Sel3},
		{PF12, "tim12", pin.Sel3},
		{PF13, "tim19", pin.Sel2},
		{PG6, "tim12", pin.Sel1},
	} {
		es := caps.Find(tc.id, tc.name, family.RoleTim)
		if len(es) != 1 || es[0].Sel != tc.sel {
			t.Fatalf("Find(%v, %s, tim) = %+v, want one %v row", tc.id, tc.name, es, tc.sel)
		}
	}
}

func TestTableStaysInsideLayout(t *testing.T) {
	for _, e := range caps.Rows() {
		if !layout.Contains(e.Pin) {
			t.Fatalf("row %v/%s routes a pin outside the layout", e.Pin, e.Periph)
		}
		if (e.CS >= 0) != (e.Role == family.RoleHwCs) {
			t.Fatalf("row %v/%s: cs %d with role %v", e.Pin, e.Periph, e.CS, e.Role)
		}
		if _, ok := family.FindDesc(catalog, e.Periph); !ok {
			t.Fatalf("row %v names unknown peripheral %q", e.Pin, e.Periph)
		}
	}
}

func TestCatalog(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range catalog {
		if seen[d.Name] {
			t.Fatalf("catalog repeats %q", d.Name)
		}
		seen[d.Name] = true
	}
	d, ok := family.FindDesc(catalog, "tim3")
	if !ok || d.Bank != family.CtrlTim || d.Bit != 3 || d.IRQ != 115 {
		t.Fatalf("tim3 = %+v, want timer bank bit 3 line 115", d)
	}
	d, ok = family.FindDesc(catalog, "uart0")
	if !ok || d.Bank != family.CtrlPeriph || d.Bit != 4 || d.IRQ != 136 {
		t.Fatalf("uart0 = %+v, want peripheral bank bit 4 line 136", d)
	}
	d, ok = family.FindDesc(catalog, "portg")
	if !ok || d.Bit != 30 || d.IRQ != family.NoIRQ {
		t.Fatalf("portg = %+v, want clock bit 30, no line", d)
	}
}

func TestSimProbe(t *testing.T) {
	for _, build := range []func(*regsim.Sim) *family.Chip{NewSim, NewVA41628Sim} {
		sim := regsim.New()
		c := build(sim)
		if err := c.Probe(); err != nil {
			t.Fatalf("%s Probe() = %v", c.Name(), err)
		}
		sim.Poke(ioConfigBase+0xFFC, 0)
		if err := c.Probe(); err == nil {
			t.Fatalf("%s Probe() passed against a cleared ID word", c.Name())
		}
	}
}
