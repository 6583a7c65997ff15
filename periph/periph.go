// Package periph hands out exclusive handles to the peripheral
// instances a family catalogs: timers, uarts, spis and the rest of the
// blocks behind SYSCONFIG clock gates. A handle owns its catalog entry
// until released and is the only path to that instance's clock, reset
// and interrupt line.
//
// The SYSCONFIG control words are shared across every instance, so all
// read-modify-write runs under the adapter's interrupt mask.
package periph

import (
	"sync"

	"vorago-periphs-go/errcode"
	"vorago-periphs-go/family"
)

// DefaultResetCycles is the reset pulse width Activate and Reset use
// when callers have no reason to hold reset longer.
const DefaultResetCycles = 2

// Instances tracks which catalog entries are claimed. The hal split
// builds one per adapter; claims after that go through it.
type Instances struct {
	ad family.Adapter

	mu    sync.Mutex
	owned map[string]bool
}

// NewInstances builds the registry over an adapter's catalog.
func NewInstances(ad family.Adapter) *Instances {
	return &Instances{ad: ad, owned: make(map[string]bool)}
}

// Names lists the catalog in its published order.
func (s *Instances) Names() []string {
	names := make([]string, 0, len(s.ad.Catalog()))
	for _, d := range s.ad.Catalog() {
		names = append(names, d.Name)
	}
	return names
}

// Claim takes exclusive ownership of a named instance. The hardware
// keeps whatever clock and reset state it had; bring-up is the
// caller's call.
func (s *Instances) Claim(name string) (*Instance, error) {
	const op = "periph.Claim"
	d, ok := family.FindDesc(s.ad.Catalog(), name)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownPeripheral, Op: op, Msg: name}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owned[name] {
		return nil, &errcode.E{C: errcode.AlreadyOwned, Op: op, Msg: name}
	}
	s.owned[name] = true
	return &Instance{reg: s, desc: d}, nil
}

func (s *Instances) free(name string) {
	s.mu.Lock()
	delete(s.owned, name)
	s.mu.Unlock()
}

// Instance is the live handle to one peripheral block.
type Instance struct {
	reg  *Instances
	desc family.Desc
	dead bool
}

func (i *Instance) live(op string) {
	if i.dead {
		panic("periph: " + op + " on a released instance")
	}
}

func (i *Instance) bit() uint32 { return 1 << i.desc.Bit }

// Name returns the catalog name the instance was claimed under.
func (i *Instance) Name() string { return i.desc.Name }

// InterruptID returns the instance's fixed interrupt line. ok is false
// on families that route interrupts through a shared select block and
// on instances without a line.
func (i *Instance) InterruptID() (int, bool) {
	i.live("InterruptID")
	if i.desc.IRQ == family.NoIRQ {
		return 0, false
	}
	return i.desc.IRQ, true
}

// EnableClock opens the instance's clock gate.
func (i *Instance) EnableClock() {
	i.live("EnableClock")
	i.setClock(true)
}

// DisableClock closes the instance's clock gate.
func (i *Instance) DisableClock() {
	i.live("DisableClock")
	i.setClock(false)
}

// ClockEnabled reports the gate state.
func (i *Instance) ClockEnabled() bool {
	i.live("ClockEnabled")
	return i.reg.ad.Sys().ClockEnable(i.desc.Bank)&i.bit() != 0
}

func (i *Instance) setClock(on bool) {
	restore := i.reg.ad.Mask()
	defer restore()
	sys := i.reg.ad.Sys()
	v := sys.ClockEnable(i.desc.Bank)
	if on {
		v |= i.bit()
	} else {
		v &^= i.bit()
	}
	sys.WriteClockEnable(i.desc.Bank, v)
}

// AssertReset drives the instance into reset. The reset words are
// active low, so asserting clears the bit.
func (i *Instance) AssertReset() {
	i.live("AssertReset")
	i.setReset(true)
}

// ReleaseReset takes the instance out of reset.
func (i *Instance) ReleaseReset() {
	i.live("ReleaseReset")
	i.setReset(false)
}

// InReset reports whether the instance is held in reset.
func (i *Instance) InReset() bool {
	i.live("InReset")
	return i.reg.ad.Sys().Reset(i.desc.Bank)&i.bit() == 0
}

func (i *Instance) setReset(assert bool) {
	restore := i.reg.ad.Mask()
	defer restore()
	sys := i.reg.ad.Sys()
	v := sys.Reset(i.desc.Bank)
	if assert {
		v &^= i.bit()
	} else {
		v |= i.bit()
	}
	sys.WriteReset(i.desc.Bank, v)
}

// Reset pulses the instance through reset: assert, hold for the given
// cycles, release.
func (i *Instance) Reset(cycles int) {
	i.live("Reset")
	i.setReset(true)
	i.reg.ad.Delay(cycles)
	i.setReset(false)
}

// Activate is the stock bring-up: clock on, then a reset pulse, which
// leaves the block running with its registers at documented defaults.
func (i *Instance) Activate() {
	i.live("Activate")
	i.setClock(true)
	i.Reset(DefaultResetCycles)
}

// Deactivate parks the block: held in reset with the clock gated off.
func (i *Instance) Deactivate() {
	i.live("Deactivate")
	i.setReset(true)
	i.setClock(false)
}

// Release returns the instance to the pool. The hardware state stays
// as-is; any further method call on the handle panics.
func (i *Instance) Release() {
	i.live("Release")
	i.dead = true
	i.reg.free(i.desc.Name)
}
