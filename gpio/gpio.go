// Package gpio owns pins. A Pins registry hands out at most one live
// handle per pad; the handle carries the whole owned-pin surface:
// identity, function select, direction, level and pull. Narrowing a
// handle to a peripheral function consumes it and yields a FuncPin,
// which has no pad operations at all, so driver code cannot wiggle a
// line that is wired to a peripheral.
//
// Per-pin IOCONFIG words are exclusive to their owner and written
// without masking. The per-port direction, pulse and interrupt
// registers are shared, so updates to those run under the adapter's
// interrupt mask. The set/clear/toggle data registers are
// write-one-to-act and need no masking at all.
package gpio

import (
	"sync"

	"vorago-periphs-go/errcode"
	"vorago-periphs-go/family"
	"vorago-periphs-go/pin"
)

// Direction of an owned pad.
type Direction uint8

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// Trigger shapes a pad's interrupt condition.
type Trigger uint8

const (
	RisingEdge Trigger = iota
	FallingEdge
	BothEdges
	HighLevel
	LowLevel
)

// Pins is the claim registry for one adapter's pads.
type Pins struct {
	ad family.Adapter

	mu    sync.Mutex
	owned map[pin.ID]bool
}

// NewPins builds the registry. The hal split is the usual caller.
func NewPins(ad family.Adapter) *Pins {
	return &Pins{ad: ad, owned: make(map[pin.ID]bool)}
}

// Claim takes exclusive ownership of a pin named by a typed constant.
// Constants from another family fail with out_of_range, same as any
// identity the layout does not bond.
func (ps *Pins) Claim(id pin.ID) (*Pin, error) {
	const op = "gpio.Claim"
	if !ps.ad.Layout().Contains(id) {
		return nil, &errcode.E{C: errcode.OutOfRange, Op: op, Msg: id.String()}
	}
	return ps.take(op, id)
}

// ClaimAt is the dynamic path: raw port and offset indices, validated
// against the layout before any ownership check.
func (ps *Pins) ClaimAt(port, offset int) (*Pin, error) {
	id, err := ps.ad.Layout().Lookup(port, offset)
	if err != nil {
		return nil, err
	}
	return ps.take("gpio.ClaimAt", id)
}

func (ps *Pins) take(op string, id pin.ID) (*Pin, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.owned[id] {
		return nil, &errcode.E{C: errcode.AlreadyOwned, Op: op, Msg: id.String()}
	}
	ps.owned[id] = true
	return &Pin{reg: ps, id: id}, nil
}

func (ps *Pins) free(id pin.ID) {
	ps.mu.Lock()
	delete(ps.owned, id)
	ps.mu.Unlock()
}
