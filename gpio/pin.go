package gpio

import (
	"vorago-periphs-go/errcode"
	"vorago-periphs-go/family"
	"vorago-periphs-go/pin"
)

// AnyPin is the uniform owned-pin surface: the operations any claimed
// pad supports regardless of family or how it was claimed. Drivers
// that bit-bang a protocol take AnyPin and stay family-blind.
type AnyPin interface {
	ID() pin.ID
	Func() pin.FuncSel
	ApplyFunc(fs pin.FuncSel) error
	Direction() Direction
	ConfigureInput(pull pin.Pull)
	ConfigureOutput(initial bool)
	Set(level bool)
	Get() bool
	Toggle()
	SetPull(pull pin.Pull)
}

// Pin is the live handle to one owned pad.
type Pin struct {
	reg  *Pins
	id   pin.ID
	dead bool
}

var _ AnyPin = (*Pin)(nil)

func (p *Pin) live(op string) {
	if p.dead {
		panic("gpio: " + op + " on a consumed pin handle")
	}
}

func (p *Pin) bit() uint32           { return 1 << p.id.Offset() }
func (p *Pin) port() family.PortRegs { return p.reg.ad.Port(p.id.Port()) }
func (p *Pin) config() family.PinConfig {
	return p.reg.ad.ReadPinConfig(p.id)
}

// store is the only place a pin's IOCONFIG word is written.
func (p *Pin) store(cfg family.PinConfig) {
	p.reg.ad.WritePinConfig(p.id, cfg)
}

// ID returns the pin's identity.
func (p *Pin) ID() pin.ID {
	p.live("ID")
	return p.id
}

// Func reads the active function select back from the hardware.
func (p *Pin) Func() pin.FuncSel {
	p.live("Func")
	return p.config().Sel
}

// ApplyFunc routes the pad to a function select. Selects the family's
// table does not route on this pad fail with unsupported_function and
// leave the hardware untouched; Sel0 is legal on every pad. Applying
// the active select again is a no-op in effect.
func (p *Pin) ApplyFunc(fs pin.FuncSel) error {
	p.live("ApplyFunc")
	if !p.reg.ad.Caps().Supports(p.id, fs) {
		return &errcode.E{C: errcode.UnsupportedFunction, Op: "gpio.ApplyFunc",
			Msg: fs.String() + " on " + p.id.String()}
	}
	cfg := p.config()
	cfg.Sel = fs
	p.store(cfg)
	return nil
}

// Config reads the pad's decoded IOCONFIG word.
func (p *Pin) Config() family.PinConfig {
	p.live("Config")
	return p.config()
}

// SetConfig writes the whole IOCONFIG word. The function select inside
// it is policed exactly like ApplyFunc.
func (p *Pin) SetConfig(cfg family.PinConfig) error {
	p.live("SetConfig")
	if !p.reg.ad.Caps().Supports(p.id, cfg.Sel) {
		return &errcode.E{C: errcode.UnsupportedFunction, Op: "gpio.SetConfig",
			Msg: cfg.Sel.String() + " on " + p.id.String()}
	}
	p.store(cfg)
	return nil
}

// Direction reads the pad's direction bit.
func (p *Pin) Direction() Direction {
	p.live("Direction")
	if p.port().Read(family.RegDir)&p.bit() != 0 {
		return Output
	}
	return Input
}

// ConfigureInput routes the pad back to Sel0 and turns it around as an
// input with the given pull.
func (p *Pin) ConfigureInput(pull pin.Pull) {
	p.live("ConfigureInput")
	p.store(family.PinConfig{Pull: pull})
	p.setDir(false)
}

// ConfigureOutput routes the pad back to Sel0 and drives it push-pull,
// with the level latched before the direction flips so the pad never
// glitches through the stale value.
func (p *Pin) ConfigureOutput(initial bool) {
	p.live("ConfigureOutput")
	p.store(family.PinConfig{})
	p.Set(initial)
	p.setDir(true)
}

// ConfigureOutputOpenDrain is ConfigureOutput with the driver in
// open-drain mode, usually with a pull-up on the line.
func (p *Pin) ConfigureOutputOpenDrain(initial bool, pull pin.Pull) {
	p.live("ConfigureOutputOpenDrain")
	p.store(family.PinConfig{OpenDrain: true, Pull: pull})
	p.Set(initial)
	p.setDir(true)
}

func (p *Pin) setDir(out bool) {
	restore := p.reg.ad.Mask()
	defer restore()
	regs := p.port()
	v := regs.Read(family.RegDir)
	if out {
		v |= p.bit()
	} else {
		v &^= p.bit()
	}
	regs.Write(family.RegDir, v)
}

// Set drives an output pad through the set/clear registers, which act
// on single bits and need no masking.
func (p *Pin) Set(level bool) {
	p.live("Set")
	if level {
		p.port().Write(family.RegSetOut, p.bit())
	} else {
		p.port().Write(family.RegClrOut, p.bit())
	}
}

// Get reads the pad level.
func (p *Pin) Get() bool {
	p.live("Get")
	return p.port().Read(family.RegDataIn)&p.bit() != 0
}

// Toggle flips an output pad through the toggle register.
func (p *Pin) Toggle() {
	p.live("Toggle")
	p.port().Write(family.RegTogOut, p.bit())
}

// SetPull rewrites the pad's pull, leaving the rest of the word alone.
func (p *Pin) SetPull(pull pin.Pull) {
	p.live("SetPull")
	cfg := p.config()
	cfg.Pull = pull
	p.store(cfg)
}

// SetFilter selects the input filter and its clock.
func (p *Pin) SetFilter(ft family.FilterType, clk family.FilterClock) {
	p.live("SetFilter")
	cfg := p.config()
	cfg.Filter = ft
	cfg.FilterClk = clk
	p.store(cfg)
}

// InvertInput flips the sense of reads on this pad.
func (p *Pin) InvertInput(enable bool) {
	p.live("InvertInput")
	cfg := p.config()
	cfg.InvertInput = enable
	p.store(cfg)
}

// InvertOutput flips the sense of the driven level.
func (p *Pin) InvertOutput(enable bool) {
	p.live("InvertOutput")
	cfg := p.config()
	cfg.InvertOutput = enable
	p.store(cfg)
}

// PulseMode makes output writes emit a pulse instead of a level, with
// base selecting the resting state.
func (p *Pin) PulseMode(enable, base bool) {
	p.live("PulseMode")
	restore := p.reg.ad.Mask()
	defer restore()
	regs := p.port()
	p.rmw(regs, family.RegPulse, enable)
	p.rmw(regs, family.RegPulseBase, base)
}

// SetOutputDelay holds output transitions back by one or two clocks;
// both together give three.
func (p *Pin) SetOutputDelay(one, two bool) {
	p.live("SetOutputDelay")
	restore := p.reg.ad.Mask()
	defer restore()
	regs := p.port()
	p.rmw(regs, family.RegDelay1, one)
	p.rmw(regs, family.RegDelay2, two)
}

// ConfigureInterrupt shapes the pad's interrupt condition. It does not
// enable the interrupt.
func (p *Pin) ConfigureInterrupt(tr Trigger) {
	p.live("ConfigureInterrupt")
	restore := p.reg.ad.Mask()
	defer restore()
	regs := p.port()
	switch tr {
	case HighLevel, LowLevel:
		p.rmw(regs, family.RegIrqSen, true)
		p.rmw(regs, family.RegIrqEvt, tr == HighLevel)
	default:
		p.rmw(regs, family.RegIrqSen, false)
		p.rmw(regs, family.RegIrqEdge, tr == BothEdges)
		if tr != BothEdges {
			p.rmw(regs, family.RegIrqEvt, tr == RisingEdge)
		}
	}
}

// EnableInterrupt unmasks the pad in the port's enable register.
func (p *Pin) EnableInterrupt() {
	p.live("EnableInterrupt")
	restore := p.reg.ad.Mask()
	defer restore()
	p.rmw(p.port(), family.RegIrqEnb, true)
}

// DisableInterrupt masks the pad.
func (p *Pin) DisableInterrupt() {
	p.live("DisableInterrupt")
	restore := p.reg.ad.Mask()
	defer restore()
	p.rmw(p.port(), family.RegIrqEnb, false)
}

// InterruptID returns the pad's fixed interrupt line. ok is false on
// ports without per-pin lines.
func (p *Pin) InterruptID() (int, bool) {
	p.live("InterruptID")
	return p.reg.ad.Layout().PinInterrupt(p.id)
}

func (p *Pin) rmw(regs family.PortRegs, r family.PortReg, set bool) {
	v := regs.Read(r)
	if set {
		v |= p.bit()
	} else {
		v &^= p.bit()
	}
	regs.Write(r, v)
}

// Release parks the pad (Sel0, floating input, interrupt masked) and
// returns it to the registry. Any further call on the handle panics.
func (p *Pin) Release() {
	p.live("Release")
	p.DisableInterrupt()
	p.setDir(false)
	p.store(family.PinConfig{})
	p.dead = true
	p.reg.free(p.id)
}
