package family

import "vorago-periphs-go/pin"

// Role names what a pin does for a peripheral when its funsel routes it
// there.
type Role uint8

const (
	RoleTx Role = iota
	RoleRx
	RoleSck
	RoleMosi
	RoleMiso
	RoleHwCs
	RoleTim
)

func (r Role) String() string {
	switch r {
	case RoleTx:
		return "tx"
	case RoleRx:
		return "rx"
	case RoleSck:
		return "sck"
	case RoleMosi:
		return "mosi"
	case RoleMiso:
		return "miso"
	case RoleHwCs:
		return "hwcs"
	case RoleTim:
		return "tim"
	}
	return "role?"
}

// Entry is one row of the pin-function table: routing this pin's funsel
// to Sel makes it serve Role for the named catalog peripheral. CS is
// the hardware chip-select id for hwcs rows, -1 otherwise. The same pin
// may appear in several rows, including several hwcs rows for one SPI
// bank at different funsels.
type Entry struct {
	Pin    pin.ID
	Periph string
	Role   Role
	Sel    pin.FuncSel
	CS     int8
}

// Caps is a family's capability table. The legal funsel set of a pin is
// Sel0 (every pin is a GPIO at Sel0 on these parts) plus every funsel
// some table row assigns it.
type Caps struct {
	sels map[pin.ID]uint8
	rows []Entry
}

// NewCaps indexes the pin-function rows into a capability table.
func NewCaps(rows []Entry) *Caps {
	c := &Caps{sels: make(map[pin.ID]uint8, len(rows)), rows: rows}
	for _, e := range rows {
		c.sels[e.Pin] |= 1 << e.Sel
	}
	return c
}

// Supports reports whether the pin can assume the funsel on this family.
func (c *Caps) Supports(id pin.ID, fs pin.FuncSel) bool {
	if fs >= pin.NumFuncSels {
		return false
	}
	if fs == pin.Sel0 {
		return true
	}
	return c.sels[id]&(1<<fs) != 0
}

// Sels lists the legal funsels of a pin in ascending order.
func (c *Caps) Sels(id pin.ID) []pin.FuncSel {
	out := []pin.FuncSel{pin.Sel0}
	for fs := pin.Sel1; fs < pin.NumFuncSels; fs++ {
		if c.sels[id]&(1<<fs) != 0 {
			out = append(out, fs)
		}
	}
	return out
}

// Find returns every row routing the pin to the named peripheral in the
// given role. Multiple rows mean the pairing exists at more than one
// funsel (SPI chip selects do this).
func (c *Caps) Find(id pin.ID, periphName string, role Role) []Entry {
	var out []Entry
	for _, e := range c.rows {
		if e.Pin == id && e.Periph == periphName && e.Role == role {
			out = append(out, e)
		}
	}
	return out
}

// RowsFor lists every function the pin can be routed to.
func (c *Caps) RowsFor(id pin.ID) []Entry {
	var out []Entry
	for _, e := range c.rows {
		if e.Pin == id {
			out = append(out, e)
		}
	}
	return out
}

// Rows exposes the whole table in declaration order.
func (c *Caps) Rows() []Entry { return c.rows }
