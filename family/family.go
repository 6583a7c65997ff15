// Package family is the adapter contract between the generic capability
// core and a concrete chip family. An Adapter supplies the pin layout,
// the capability tables, the peripheral catalog and the register access
// the core drives; it never leaks which family it is to the core.
//
// Register access runs over a Bus32 word bus so the same adapter serves
// memory-mapped hardware (MMIO) and the in-memory register file regsim
// provides for host tests.
package family

import "vorago-periphs-go/pin"

// Bus32 is a 32-bit word bus keyed by absolute register address.
type Bus32 interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, v uint32)
}

// PortReg names one register of a GPIO port block.
type PortReg uint8

const (
	RegDataIn PortReg = iota
	RegDataInRaw
	RegDataOut
	RegSetOut // write 1 to set
	RegClrOut // write 1 to clear
	RegTogOut // write 1 to toggle
	RegDir    // 1 = output
	RegPulse
	RegPulseBase
	RegDelay1
	RegDelay2
	RegIrqSen  // 1 = level sensitive, 0 = edge
	RegIrqEdge // 1 = both edges
	RegIrqEvt  // edge/level polarity
	RegIrqEnb  // interrupt enable mask
)

// PortRegs is one port's register block.
type PortRegs interface {
	Read(r PortReg) uint32
	Write(r PortReg, v uint32)
}

// SysRegs are the SYSCONFIG control words shared across peripherals,
// one clock-enable/reset pair per control bank. Reset words are active
// low: a cleared bit holds the peripheral in reset. Read-modify-write
// on any of these must run under the adapter's Mask.
type SysRegs interface {
	ClockEnable(b CtrlBank) uint32
	WriteClockEnable(b CtrlBank, v uint32)
	Reset(b CtrlBank) uint32
	WriteReset(b CtrlBank, v uint32)
}

// Adapter is the complete per-family contract.
type Adapter interface {
	// Name identifies the family or variant ("vor1x", "vor4x", "va41628").
	Name() string

	Layout() Layout
	Caps() *Caps
	Catalog() []Desc

	ReadPinConfig(id pin.ID) PinConfig
	WritePinConfig(id pin.ID, cfg PinConfig)
	Port(p pin.Port) PortRegs
	Sys() SysRegs

	// Mask enters the critical section used for shared-register updates
	// and returns the closure restoring the prior interrupt-mask state.
	Mask() (restore func())
	// Delay busy-waits for roughly the given number of system cycles.
	Delay(cycles int)
	// Probe checks the IOCONFIG peripheral ID register against the
	// family's documented reset value.
	Probe() error
}

// Env carries the environment primitives an adapter cannot supply
// itself: interrupt masking and cycle delays. Zero fields select the
// no-op mask and a spin-loop delay, which is what single-context
// startup code needs; firmware and regsim inject their own.
type Env struct {
	Mask  func() (restore func())
	Delay func(cycles int)
}

// Normalize fills nil fields with the no-op mask and the spin delay.
func (e Env) Normalize() Env {
	if e.Mask == nil {
		e.Mask = func() (restore func()) { return func() {} }
	}
	if e.Delay == nil {
		e.Delay = func(cycles int) {
			for i := 0; i < cycles; i++ {
			}
		}
	}
	return e
}
