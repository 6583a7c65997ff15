// Package softi2c bit-bangs an I2C master over two owned pads. It
// exists for boards that are out of hardware i2c instances or need a
// bus on pads the tables do not route: any two claimed pins will do.
//
// Lines are driven open-drain style by switching pad direction: a
// released line is an input with the pull-up on, a driven line is an
// output at zero. That only needs the uniform owned-pin surface, so
// the master is family-blind, and like any i2c bus it does not work
// without pull-ups on both lines.
package softi2c

import (
	"tinygo.org/x/drivers"

	"vorago-periphs-go/errcode"
	"vorago-periphs-go/gpio"
	"vorago-periphs-go/pin"
	"vorago-periphs-go/x/mathx"
)

// Config sizes the bus timing.
type Config struct {
	// SysClockHz and BusHz set the quarter-period spin when Delay is
	// nil. BusHz defaults to standard mode, 100 kHz.
	SysClockHz int
	BusHz      int
	// Delay, when set, is called between edges instead of the spin.
	Delay func()
	// StretchLimit bounds how many quarter periods a slave may hold
	// scl low before Tx fails with timeout. Defaults to 1000.
	StretchLimit int
}

// Master drives one bus. Not safe for concurrent Tx calls.
type Master struct {
	sda, scl gpio.AnyPin
	delay    func()
	stretch  int
}

var _ drivers.I2C = (*Master)(nil)

// New takes the two pads, releases both lines and returns an idle
// master.
func New(sda, scl gpio.AnyPin, cfg Config) *Master {
	if cfg.BusHz <= 0 {
		cfg.BusHz = 100_000
	}
	if cfg.StretchLimit <= 0 {
		cfg.StretchLimit = 1000
	}
	delay := cfg.Delay
	if delay == nil {
		quarter := mathx.CeilDiv(uint32(mathx.Max(cfg.SysClockHz, 1)), uint32(4*cfg.BusHz))
		n := int(mathx.Clamp(quarter, 1, 1<<24))
		delay = func() {
			for i := 0; i < n; i++ {
			}
		}
	}
	m := &Master{sda: sda, scl: scl, delay: delay, stretch: cfg.StretchLimit}
	release(m.sda)
	release(m.scl)
	return m
}

func release(p gpio.AnyPin) { p.ConfigureInput(pin.PullUp) }
func drive(p gpio.AnyPin)   { p.ConfigureOutput(false) }

// Tx runs one transfer: a write phase for w, then a read phase into r
// behind a repeated start. With both empty it still addresses the
// slave, which is the usual probe. Addresses are 7 bit.
func (m *Master) Tx(addr uint16, w, r []byte) error {
	const op = "softi2c.Tx"
	if addr > 0x7f {
		return &errcode.E{C: errcode.OutOfRange, Op: op, Msg: "7-bit address"}
	}
	if len(w) > 0 || len(r) == 0 {
		if err := m.start(); err != nil {
			return err
		}
		if err := m.writeAcked(op, uint8(addr<<1), "address"); err != nil {
			return err
		}
		for _, b := range w {
			if err := m.writeAcked(op, b, "data"); err != nil {
				return err
			}
		}
	}
	if len(r) > 0 {
		if err := m.start(); err != nil {
			return err
		}
		if err := m.writeAcked(op, uint8(addr<<1)|1, "address"); err != nil {
			return err
		}
		for i := range r {
			b, err := m.readByte(i < len(r)-1)
			if err != nil {
				m.stop()
				return err
			}
			r[i] = b
		}
	}
	m.stop()
	return nil
}

func (m *Master) writeAcked(op string, b uint8, what string) error {
	ack, err := m.writeByte(b)
	if err != nil {
		m.stop()
		return err
	}
	if !ack {
		m.stop()
		return &errcode.E{C: errcode.BusFault, Op: op, Msg: what + " not acked"}
	}
	return nil
}

// start issues a (possibly repeated) start: both lines released, then
// sda falls while scl is high.
func (m *Master) start() error {
	release(m.sda)
	m.delay()
	if err := m.sclHigh(); err != nil {
		return err
	}
	m.delay()
	drive(m.sda)
	m.delay()
	drive(m.scl)
	m.delay()
	return nil
}

// stop raises sda while scl is high and leaves the bus idle. Best
// effort: a slave jamming the clock here has already broken the bus.
func (m *Master) stop() {
	drive(m.sda)
	m.delay()
	m.sclHigh()
	m.delay()
	release(m.sda)
	m.delay()
}

func (m *Master) writeBit(b bool) error {
	if b {
		release(m.sda)
	} else {
		drive(m.sda)
	}
	m.delay()
	if err := m.sclHigh(); err != nil {
		return err
	}
	m.delay()
	drive(m.scl)
	return nil
}

func (m *Master) readBit() (bool, error) {
	release(m.sda)
	m.delay()
	if err := m.sclHigh(); err != nil {
		return false, err
	}
	m.delay()
	v := m.sda.Get()
	drive(m.scl)
	m.delay()
	return v, nil
}

func (m *Master) writeByte(b uint8) (acked bool, err error) {
	for i := 7; i >= 0; i-- {
		if err := m.writeBit(b&(1<<i) != 0); err != nil {
			return false, err
		}
	}
	nack, err := m.readBit()
	return !nack, err
}

func (m *Master) readByte(ack bool) (uint8, error) {
	var b uint8
	for i := 7; i >= 0; i-- {
		v, err := m.readBit()
		if err != nil {
			return 0, err
		}
		if v {
			b |= 1 << i
		}
	}
	return b, m.writeBit(!ack)
}

// sclHigh releases scl and waits out clock stretching.
func (m *Master) sclHigh() error {
	release(m.scl)
	for i := 0; i <= m.stretch; i++ {
		if m.scl.Get() {
			return nil
		}
		m.delay()
	}
	return &errcode.E{C: errcode.Timeout, Op: "softi2c.Tx", Msg: "scl held low"}
}
