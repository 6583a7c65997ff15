package gpio

import (
	"testing"

	"vorago-periphs-go/errcode"
	"vorago-periphs-go/family"
	"vorago-periphs-go/family/vor1x"
	"vorago-periphs-go/pin"
	"vorago-periphs-go/regsim"
)

func TestNarrowToUartTx(t *testing.T) {
	ps := NewPins(vor1x.NewSim(regsim.New()))
	p, err := ps.Claim(vor1x.PA3)
	if err != nil {
		t.Fatalf("Claim(PA3) failed: %v", err)
	}
	if err := p.ApplyFunc(pin.Sel2); err != nil {
		t.Fatalf("ApplyFunc(Sel2) failed: %v", err)
	}

	fp, err := p.IntoFunc("uart1", family.RoleTx)
	if err != nil {
		t.Fatalf("IntoFunc(uart1, tx) failed: %v", err)
	}
	if fp.ID() != vor1x.PA3 || fp.Periph() != "uart1" || fp.Role() != family.RoleTx || fp.Sel() != pin.Sel2 {
		t.Fatalf("narrowed to %v/%s/%v at %v", fp.ID(), fp.Periph(), fp.Role(), fp.Sel())
	}
	if _, ok := fp.HwCs(); ok {
		t.Fatalf("a tx pad reported a chip-select index")
	}

	// The pad stays owned while narrowed.
	if _, err := ps.Claim(vor1x.PA3); errcode.Of(err) != errcode.AlreadyOwned {
		t.Fatalf("Claim during narrow err = %v, want already_owned", err)
	}

	// The wide handle was consumed.
	defer func() {
		if recover() == nil {
			t.Fatalf("consumed handle did not panic")
		}
	}()
	p.Func()
}

func TestNarrowWrongFunction(t *testing.T) {
	ps := NewPins(vor1x.NewSim(regsim.New()))
	p, err := ps.Claim(vor1x.PA9)
	if err != nil {
		t.Fatalf("Claim(PA9) failed: %v", err)
	}

	// Fresh pad sits at Sel0; uart0 tx rides Sel2.
	_, err = p.IntoFunc("uart0", family.RoleTx)
	if errcode.Of(err) != errcode.WrongFunction {
		t.Fatalf("IntoFunc at Sel0 err = %v, want wrong_function", err)
	}

	// The failed narrow consumed nothing: the handle still works and
	// the pad did not move.
	if got := p.Func(); got != pin.Sel0 {
		t.Fatalf("failed narrow moved the pad to %v", got)
	}
	if err := p.ApplyFunc(pin.Sel2); err != nil {
		t.Fatalf("ApplyFunc after failed narrow: %v", err)
	}
	if _, err := p.IntoFunc("uart0", family.RoleTx); err != nil {
		t.Fatalf("IntoFunc after apply failed: %v", err)
	}
}

func TestNarrowUnsupported(t *testing.T) {
	ps := NewPins(vor1x.NewSim(regsim.New()))
	p, err := ps.Claim(vor1x.PA3)
	if err != nil {
		t.Fatalf("Claim(PA3) failed: %v", err)
	}
	// PA3 routes uart1, never uart0.
	_, err = p.IntoFunc("uart0", family.RoleTx)
	if errcode.Of(err) != errcode.UnsupportedFunction {
		t.Fatalf("IntoFunc(uart0) err = %v, want unsupported_function", err)
	}
	// Roles are checked too: PA3 is a tx pad, not rx.
	_, err = p.IntoFunc("uart1", family.RoleRx)
	if errcode.Of(err) != errcode.UnsupportedFunction {
		t.Fatalf("IntoFunc(uart1, rx) err = %v, want unsupported_function", err)
	}
}

func TestNarrowPicksActiveRow(t *testing.T) {
	// PB10 carries spi1 chip selects on two selects with different
	// indices; the narrow must capture the row the pad is actually on.
	ps := NewPins(vor1x.NewSim(regsim.New()))
	p, err := ps.Claim(vor1x.PB10)
	if err != nil {
		t.Fatalf("Claim(PB10) failed: %v", err)
	}
	if err := p.ApplyFunc(pin.Sel1); err != nil {
		t.Fatalf("ApplyFunc(Sel1) failed: %v", err)
	}
	fp, err := p.IntoFunc("spi1", family.RoleHwCs)
	if err != nil {
		t.Fatalf("IntoFunc at Sel1 failed: %v", err)
	}
	if id, ok := fp.HwCs(); !ok || id != 6 {
		t.Fatalf("HwCs() = %d, %v at Sel1, want 6", id, ok)
	}

	p = fp.Downgrade()
	if err := p.ApplyFunc(pin.Sel2); err != nil {
		t.Fatalf("ApplyFunc(Sel2) failed: %v", err)
	}
	fp, err = p.IntoFunc("spi1", family.RoleHwCs)
	if err != nil {
		t.Fatalf("IntoFunc at Sel2 failed: %v", err)
	}
	if id, ok := fp.HwCs(); !ok || id != 2 {
		t.Fatalf("HwCs() = %d, %v at Sel2, want 2", id, ok)
	}
}

func TestDowngrade(t *testing.T) {
	ps := NewPins(vor1x.NewSim(regsim.New()))
	p, err := ps.Claim(vor1x.PA3)
	if err != nil {
		t.Fatalf("Claim(PA3) failed: %v", err)
	}
	if err := p.ApplyFunc(pin.Sel2); err != nil {
		t.Fatalf("ApplyFunc failed: %v", err)
	}
	fp, err := p.IntoFunc("uart1", family.RoleTx)
	if err != nil {
		t.Fatalf("IntoFunc failed: %v", err)
	}

	q := fp.Downgrade()
	// Downgrade hands the pad back untouched, still on the uart
	// select.
	if got := q.Func(); got != pin.Sel2 {
		t.Fatalf("downgraded pad at %v, want Sel2", got)
	}
	// The FuncPin is gone.
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("consumed func-pin did not panic")
			}
		}()
		fp.Periph()
	}()

	q.Release()
	if _, err := ps.Claim(vor1x.PA3); err != nil {
		t.Fatalf("claim after release failed: %v", err)
	}
}

func TestFuncPinRelease(t *testing.T) {
	ps := NewPins(vor1x.NewSim(regsim.New()))
	p, err := ps.Claim(vor1x.PA3)
	if err != nil {
		t.Fatalf("Claim(PA3) failed: %v", err)
	}
	if err := p.ApplyFunc(pin.Sel2); err != nil {
		t.Fatalf("ApplyFunc failed: %v", err)
	}
	fp, err := p.IntoFunc("uart1", family.RoleTx)
	if err != nil {
		t.Fatalf("IntoFunc failed: %v", err)
	}
	fp.Release()

	q, err := ps.Claim(vor1x.PA3)
	if err != nil {
		t.Fatalf("claim after func-pin release failed: %v", err)
	}
	if q.Func() != pin.Sel0 {
		t.Fatalf("released pad still routed at %v", q.Func())
	}
}
