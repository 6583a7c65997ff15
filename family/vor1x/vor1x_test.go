package vor1x

import (
	"testing"

	"vorago-periphs-go/family"
	"vorago-periphs-go/pin"
	"vorago-periphs-go/regsim"
)

func TestLayoutShape(t *testing.T) {
	if got := layout.NumPins(); got != 56 {
		t.Fatalf("NumPins() = %d, want 56", got)
	}
	if !layout.Contains(PA0) || !layout.Contains(PA31) || !layout.Contains(PB23) {
		t.Fatalf("layout rejects a defined pin constant")
	}
	if layout.Contains(pin.Make(pin.PortB, 24)) {
		t.Fatalf("layout accepts PB24 beyond port width")
	}
	if layout.Contains(pin.Make(pin.PortC, 0)) {
		t.Fatalf("layout accepts a third port")
	}
}

func TestConstantsRoundTrip(t *testing.T) {
	// The typed constants and the dynamic path must agree pin for pin.
	layout.ForEach(func(id pin.ID) {
		got, err := layout.Lookup(int(id.Port()), int(id.Offset()))
		if err != nil {
			t.Fatalf("Lookup(%v) failed: %v", id, err)
		}
		if got != id {
			t.Fatalf("Lookup(%d, %d) = %v, want %v", id.Port(), id.Offset(), got, id)
		}
	})
	if PA9 != pin.Make(pin.PortA, 9) {
		t.Fatalf("PA9 = %#x, want %#x", uint16(PA9), uint16(pin.Make(pin.PortA, 9)))
	}
	if PB23 != pin.Make(pin.PortB, 23) {
		t.Fatalf("PB23 = %#x, want %#x", uint16(PB23), uint16(pin.Make(pin.PortB, 23)))
	}
}

func TestTableStaysInsideLayout(t *testing.T) {
	for _, e := range caps.Rows() {
		if !layout.Contains(e.Pin) {
			t.Fatalf("row %v/%s routes a pin outside the layout", e.Pin, e.Periph)
		}
		if e.Sel >= pin.NumFuncSels {
			t.Fatalf("row %v/%s uses select %d", e.Pin, e.Periph, e.Sel)
		}
		if (e.CS >= 0) != (e.Role == family.RoleHwCs) {
			t.Fatalf("row %v/%s: cs %d with role %v", e.Pin, e.Periph, e.CS, e.Role)
		}
		if _, ok := family.FindDesc(catalog, e.Periph); !ok {
			t.Fatalf("row %v names unknown peripheral %q", e.Pin, e.Periph)
		}
	}
}

func TestKnownRoutes(t *testing.T) {
	es := caps.Find(PA9, "uart0", family.RoleTx)
	if len(es) != 1 || es[0].Sel != pin.Sel2 {
		t.Fatalf("Find(PA9, uart0, tx) = %+v, want one Sel2 row", es)
	}
	es = caps.Find(PA3, "uart1", family.RoleTx)
	if len(es) != 1 || es[0].Sel != pin.Sel2 {
		t.Fatalf("Find(PA3, uart1, tx) = %+v, want one Sel2 row", es)
	}

	// PB18 reaches four peripherals: uart1 rx, spi1 mosi, a spi2 chip
	// select and tim18.
	if got := len(caps.RowsFor(PB18)); got != 4 {
		t.Fatalf("RowsFor(PB18) has %d rows, want 4", got)
	}
	es = caps.Find(PB18, "spi2", family.RoleHwCs)
	if len(es) != 1 || es[0].Sel != pin.Sel1 || es[0].CS != 3 {
		t.Fatalf("Find(PB18, spi2, hwcs) = %+v, want Sel1 cs3", es)
	}

	// PA20 routes to spi2 chip selects on two different selects.
	es = caps.Find(PA20, "spi2", family.RoleHwCs)
	if len(es) != 2 {
		t.Fatalf("Find(PA20, spi2, hwcs) = %+v, want two rows", es)
	}

	if !caps.Supports(PA7, pin.Sel0) {
		t.Fatalf("Sel0 must stay legal on an unrouted pin")
	}
	if caps.Supports(PA7, pin.Sel2) {
		t.Fatalf("PA7 has no Sel2 routing")
	}
	if !caps.Supports(PA7, pin.Sel1) { // tim7
		t.Fatalf("PA7 Sel1 routes tim7")
	}
}

func TestTimerSpans(t *testing.T) {
	for _, tc := range []struct {
		id   pin.ID
		name string
		sel  pin.FuncSel
	}{
		{PA0, "tim0", pin.Sel1},
		{PA15, "tim15", pin.Sel1},
		{PA24, "tim16", pin.Sel2},
		{PA31, "tim23", pin.Sel2},
		{PB6, "tim6", pin.Sel3},
		{PB10, "tim10", pin.Sel3},
		{PB23, "tim23", pin.Sel3},
	} {
		es := caps.Find(tc.id, tc.name, family.RoleTim)
		if len(es) != 1 || es[0].Sel != tc.sel {
			t.Fatalf("Find(%v, %s, tim) = %+v, want one %v row", tc.id, tc.name, es, tc.sel)
		}
	}
	// PB7..PB9 carry uart/spi routings but no timer.
	for _, e := range caps.RowsFor(PB7) {
		if e.Role == family.RoleTim {
			t.Fatalf("PB7 has a timer row: %+v", e)
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
		if d.IRQ != family.NoIRQ {
			t.Fatalf("%s carries interrupt line %d on an irqsel-routed family", d.Name, d.IRQ)
		}
	}
	d, ok := family.FindDesc(catalog, "uart1")
	if !ok || d.Bank != family.CtrlPeriph || d.Bit != 9 {
		t.Fatalf("uart1 = %+v, want peripheral bank bit 9", d)
	}
	d, ok = family.FindDesc(catalog, "tim3")
	if !ok || d.Bank != family.CtrlTim || d.Bit != 3 {
		t.Fatalf("tim3 = %+v, want timer bank bit 3", d)
	}
	if _, ok := family.FindDesc(catalog, "irqsel"); !ok {
		t.Fatalf("irqsel missing from catalog")
	}
}

func TestSimProbe(t *testing.T) {
	sim := regsim.New()
	c := NewSim(sim)
	if err := c.Probe(); err != nil {
		t.Fatalf("Probe() = %v", err)
	}
	sim.Poke(ioConfigBase+0xFFC, 0xDEAD_BEEF)
	if err := c.Probe(); err == nil {
		t.Fatalf("Probe() passed against a wrong ID word")
	}
}

func TestSimPortWrites(t *testing.T) {
	sim := regsim.New()
	c := NewSim(sim)
	for _, p := range []pin.Port{pin.PortA, pin.PortB} {
		regs := c.Port(p)
		regs.Write(family.RegSetOut, 1<<3)
		if got := regs.Read(family.RegDataOut); got != 1<<3 {
			t.Fatalf("port %v DATAOUT = %#x after SETOUT, want bit 3", p, got)
		}
		regs.Write(family.RegClrOut, 1<<3)
		if got := regs.Read(family.RegDataOut); got != 0 {
			t.Fatalf("port %v DATAOUT = %#x after CLROUT, want 0", p, got)
		}
	}
}
