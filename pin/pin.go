// Package pin defines the identity vocabulary shared by every family:
// ports, packed pin identities, function selects and pull directions.
// Validation against a concrete family's bounds lives in the family
// package; the types here are plain values with no hardware behind them.
package pin

// Port is a GPIO port index. Which ports exist, and how many pins each
// carries, is family data; PortG is the highest port on any supported part.
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF
	PortG
)

// MaxPorts is the superset port count across supported families.
const MaxPorts = 7

func (p Port) String() string {
	if p >= MaxPorts {
		return "Port?"
	}
	return string([]byte{'P', byte('A' + p)})
}

// ID is a packed pin identity: port in the high byte, pin-within-port
// offset in the low byte. The numeric order of IDs is therefore the
// (port, offset) lexicographic order, so IDs sort and compare directly
// and work as map keys. Family packages export their pins as typed ID
// constants (the static path); dynamic identities come from a family
// layout lookup with range validation.
type ID uint16

// Make packs an identity without validation. Family layouts are the
// checked construction path; Make is for table literals and code that
// already holds a valid (port, offset) pair.
func Make(p Port, offset uint8) ID {
	return ID(p)<<8 | ID(offset)
}

// Port returns the port component.
func (id ID) Port() Port { return Port(id >> 8) }

// Offset returns the pin-within-port component.
func (id ID) Offset() uint8 { return uint8(id) }

// Compare orders identities by (port, offset). It returns -1, 0 or 1.
func (id ID) Compare(other ID) int {
	switch {
	case id < other:
		return -1
	case id > other:
		return 1
	}
	return 0
}

// String formats an identity as the conventional pad name, e.g. "PA5".
func (id ID) String() string {
	p := id.Port()
	if p >= MaxPorts {
		return "P?"
	}
	off := id.Offset()
	buf := make([]byte, 0, 4)
	buf = append(buf, 'P', byte('A'+p))
	if off >= 10 {
		buf = append(buf, '0'+off/10)
	}
	buf = append(buf, '0'+off%10)
	return string(buf)
}
