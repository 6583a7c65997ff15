package family

import (
	"vorago-periphs-go/errcode"
	"vorago-periphs-go/pin"
	"vorago-periphs-go/x/conv"
)

// Layout describes which pins a family (or bonding variant) actually
// has: pins per port, optional bond masks for variants with unbonded
// pads, and the per-port base of the pin interrupt lines.
type Layout struct {
	// Widths holds the pin count per port, indexed by pin.Port. Its
	// length is the family's port count.
	Widths []uint8
	// Bonded optionally masks out pads a variant does not bond, one
	// bitmask per port. nil (or a nil entry) means fully bonded.
	Bonded []uint32
	// IrqBase holds the first interrupt line of each port, or -1 when
	// the port's pins have no fixed lines. nil means no port has any.
	IrqBase []int
}

// Ports returns the number of ports.
func (l Layout) Ports() int { return len(l.Widths) }

// Width returns the pin count of a port, 0 for ports the family lacks.
func (l Layout) Width(p pin.Port) int {
	if int(p) >= len(l.Widths) {
		return 0
	}
	return int(l.Widths[p])
}

// NumPins counts every bonded pin of the layout.
func (l Layout) NumPins() int {
	n := 0
	l.ForEach(func(pin.ID) { n++ })
	return n
}

// Contains reports whether the identity names a bonded pin.
func (l Layout) Contains(id pin.ID) bool {
	p, off := id.Port(), int(id.Offset())
	if off >= l.Width(p) {
		return false
	}
	if l.Bonded != nil && int(p) < len(l.Bonded) && l.Bonded[p] != 0 {
		return l.Bonded[p]&(1<<uint(off)) != 0
	}
	return true
}

// Lookup is the dynamic identity path: it validates raw port and offset
// indices against the layout and packs them. Out-of-bounds indices and
// unbonded pads fail with out_of_range, detected here and never later.
func (l Layout) Lookup(port, offset int) (pin.ID, error) {
	if port < 0 || port >= l.Ports() || offset < 0 || offset > 0xff {
		var pb, ob [20]byte
		return 0, &errcode.E{C: errcode.OutOfRange, Op: "family.Lookup",
			Msg: "no port " + string(conv.Itoa(pb[:], int64(port))) +
				" offset " + string(conv.Itoa(ob[:], int64(offset)))}
	}
	id := pin.Make(pin.Port(port), uint8(offset))
	if !l.Contains(id) {
		return 0, &errcode.E{C: errcode.OutOfRange, Op: "family.Lookup",
			Msg: id.String() + " is not a bonded pin"}
	}
	return id, nil
}

// ForEach visits every bonded pin in (port, offset) order.
func (l Layout) ForEach(fn func(pin.ID)) {
	for p := 0; p < l.Ports(); p++ {
		for off := 0; off < int(l.Widths[p]); off++ {
			id := pin.Make(pin.Port(p), uint8(off))
			if l.Contains(id) {
				fn(id)
			}
		}
	}
}

// PinInterrupt returns the fixed interrupt line of a pin, false when
// the port has no per-pin lines (vor1x routes through IRQSEL instead,
// and vor4x Port G has none at all).
func (l Layout) PinInterrupt(id pin.ID) (int, bool) {
	p := int(id.Port())
	if !l.Contains(id) || l.IrqBase == nil || p >= len(l.IrqBase) || l.IrqBase[p] < 0 {
		return 0, false
	}
	return l.IrqBase[p] + int(id.Offset()), true
}
