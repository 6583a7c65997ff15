package gpio

import (
	"vorago-periphs-go/errcode"
	"vorago-periphs-go/family"
	"vorago-periphs-go/pin"
)

// IntoFunc narrows the handle to one peripheral function. The family
// table must route the (peripheral, role) pair on this pad, else
// unsupported_function; the pad's active select must already be the
// routing's select, else wrong_function. On success the Pin handle is
// consumed and ownership moves into the returned FuncPin.
func (p *Pin) IntoFunc(periphName string, role family.Role) (*FuncPin, error) {
	p.live("IntoFunc")
	rows := p.reg.ad.Caps().Find(p.id, periphName, role)
	if len(rows) == 0 {
		return nil, &errcode.E{C: errcode.UnsupportedFunction, Op: "gpio.IntoFunc",
			Msg: p.id.String() + " does not route " + periphName + " " + role.String()}
	}
	cur := p.config().Sel
	for _, row := range rows {
		if row.Sel == cur {
			p.dead = true
			return &FuncPin{reg: p.reg, row: row}, nil
		}
	}
	return nil, &errcode.E{C: errcode.WrongFunction, Op: "gpio.IntoFunc",
		Msg: periphName + " " + role.String() + " on " + p.id.String() +
			" needs " + rows[0].Sel.String() + ", pad is at " + cur.String()}
}

// FuncPin is a pad locked to a peripheral function. It has no level,
// direction or config operations on purpose; Downgrade is the only way
// back to those.
type FuncPin struct {
	reg  *Pins
	row  family.Entry
	dead bool
}

func (f *FuncPin) live(op string) {
	if f.dead {
		panic("gpio: " + op + " on a consumed func-pin handle")
	}
}

// ID returns the underlying pad identity.
func (f *FuncPin) ID() pin.ID {
	f.live("ID")
	return f.row.Pin
}

// Periph names the peripheral the pad is routed to.
func (f *FuncPin) Periph() string {
	f.live("Periph")
	return f.row.Periph
}

// Role returns the pad's role at that peripheral.
func (f *FuncPin) Role() family.Role {
	f.live("Role")
	return f.row.Role
}

// Sel returns the function select the routing rides on.
func (f *FuncPin) Sel() pin.FuncSel {
	f.live("Sel")
	return f.row.Sel
}

// HwCs returns the hardware chip-select index for chip-select roles,
// false for every other role.
func (f *FuncPin) HwCs() (uint8, bool) {
	f.live("HwCs")
	if f.row.CS < 0 {
		return 0, false
	}
	return uint8(f.row.CS), true
}

// Downgrade consumes the FuncPin and returns the plain owned handle.
// The pad keeps its routing; reconfiguring it is the caller's move.
func (f *FuncPin) Downgrade() *Pin {
	f.live("Downgrade")
	f.dead = true
	return &Pin{reg: f.reg, id: f.row.Pin}
}

// Release parks the pad and returns it to the registry.
func (f *FuncPin) Release() {
	f.live("Release")
	f.Downgrade().Release()
}
