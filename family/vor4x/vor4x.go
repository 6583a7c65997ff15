// Package vor4x adapts the VA416xx family: seven GPIO ports (A-F 16
// pins, G 8), per-pin interrupt lines on ports A-F and a fixed NVIC
// line per peripheral instance. The va41628 variant is the same die in
// a smaller package; its unbonded pads are masked out of the layout.
package vor4x

import (
	"vorago-periphs-go/family"
	"vorago-periphs-go/regsim"
	"vorago-periphs-go/x/conv"
)

const (
	sysBase      = 0x4001_0000
	ioConfigBase = 0x4001_1000
	gpioBase     = 0x4001_2000
	portStride   = 0x400

	// IOCONFIG PERID reset value, VA416xx programmers guide.
	perID = 0x0282_07E9
)

// NVIC lines. Ports A-F own 16 consecutive lines each; peripherals
// with split vectors (uart tx/rx, i2c master/slave) occupy consecutive
// lines and the catalog carries the first.
const (
	irqPortA = 16 + 16*iota
	irqPortB
	irqPortC
	irqPortD
	irqPortE
	irqPortF
)

const (
	irqTim0  = 112 // tim0..tim23 on 112..135
	irqUart0 = 136
	irqUart1 = 138
	irqUart2 = 140
	irqSpi0  = 142
	irqSpi1  = 143
	irqSpi2  = 144
	irqSpi3  = 145
	irqI2c0  = 146
	irqI2c1  = 148
	irqI2c2  = 150
	irqCan0  = 152
	irqCan1  = 153
	irqRng   = 154
	irqAdc   = 155
	irqDac   = 156
	irqDma   = 157
	irqEth   = 158
	irqSpw   = 159
	irqWdog  = 160
)

var layout = family.Layout{
	Widths:  []uint8{16, 16, 16, 16, 16, 16, 8},
	IrqBase: []int{irqPortA, irqPortB, irqPortC, irqPortD, irqPortE, irqPortF, family.NoIRQ},
}

// layout41628 masks the pads the 100-pin package leaves unbonded.
var layout41628 = family.Layout{
	Widths:  layout.Widths,
	IrqBase: layout.IrqBase,
	Bonded: []uint32{
		0xFFFF, // A
		0xF01F, // B: 5-11 unbonded
		0x5FFF, // C: 13, 15
		0xFC00, // D: 0-9
		0xF3FF, // E: 10, 11
		0xFA03, // F: 2-8, 10
		0xFF,   // G
	},
}

var catalog = buildCatalog()

func buildCatalog() []family.Desc {
	ds := []family.Desc{
		{Name: "spi0", Bank: family.CtrlPeriph, Bit: 0, IRQ: irqSpi0},
		{Name: "spi1", Bank: family.CtrlPeriph, Bit: 1, IRQ: irqSpi1},
		{Name: "spi2", Bank: family.CtrlPeriph, Bit: 2, IRQ: irqSpi2},
		{Name: "spi3", Bank: family.CtrlPeriph, Bit: 3, IRQ: irqSpi3},
		{Name: "uart0", Bank: family.CtrlPeriph, Bit: 4, IRQ: irqUart0},
		{Name: "uart1", Bank: family.CtrlPeriph, Bit: 5, IRQ: irqUart1},
		{Name: "uart2", Bank: family.CtrlPeriph, Bit: 6, IRQ: irqUart2},
		{Name: "i2c0", Bank: family.CtrlPeriph, Bit: 7, IRQ: irqI2c0},
		{Name: "i2c1", Bank: family.CtrlPeriph, Bit: 8, IRQ: irqI2c1},
		{Name: "i2c2", Bank: family.CtrlPeriph, Bit: 9, IRQ: irqI2c2},
		{Name: "can0", Bank: family.CtrlPeriph, Bit: 10, IRQ: irqCan0},
		{Name: "can1", Bank: family.CtrlPeriph, Bit: 11, IRQ: irqCan1},
		{Name: "rng", Bank: family.CtrlPeriph, Bit: 12, IRQ: irqRng},
		{Name: "adc", Bank: family.CtrlPeriph, Bit: 13, IRQ: irqAdc},
		{Name: "dac", Bank: family.CtrlPeriph, Bit: 14, IRQ: irqDac},
		{Name: "dma", Bank: family.CtrlPeriph, Bit: 15, IRQ: irqDma},
		{Name: "ebi", Bank: family.CtrlPeriph, Bit: 16, IRQ: family.NoIRQ},
		{Name: "eth", Bank: family.CtrlPeriph, Bit: 17, IRQ: irqEth},
		{Name: "spw", Bank: family.CtrlPeriph, Bit: 18, IRQ: irqSpw},
		{Name: "clkgen", Bank: family.CtrlPeriph, Bit: 19, IRQ: family.NoIRQ},
		{Name: "irq_router", Bank: family.CtrlPeriph, Bit: 20, IRQ: family.NoIRQ},
		{Name: "ioconfig", Bank: family.CtrlPeriph, Bit: 21, IRQ: family.NoIRQ},
		{Name: "utility", Bank: family.CtrlPeriph, Bit: 22, IRQ: family.NoIRQ},
		{Name: "watchdog", Bank: family.CtrlPeriph, Bit: 23, IRQ: irqWdog},
	}
	for p := 0; p < 7; p++ {
		ds = append(ds, family.Desc{
			Name: "port" + string(rune('a'+p)),
			Bank: family.CtrlPeriph,
			Bit:  uint8(24 + p),
			IRQ:  family.NoIRQ,
		})
	}
	for i := 0; i < 24; i++ {
		ds = append(ds, family.Desc{
			Name: timName(i),
			Bank: family.CtrlTim,
			Bit:  uint8(i),
			IRQ:  irqTim0 + i,
		})
	}
	return ds
}

func timName(n int) string {
	var b [8]byte
	return "tim" + string(conv.Itoa(b[:], int64(n)))
}

func spec(name string, l family.Layout) family.Spec {
	bases := make([]uint32, l.Ports())
	for p := range bases {
		bases[p] = gpioBase + portStride*uint32(p)
	}
	return family.Spec{
		Name:    name,
		Layout:  l,
		Caps:    caps,
		Catalog: catalog,
		Regs: family.RegMap{
			IOConfigBase: ioConfigBase,
			PortBases:    bases,
			SysBase:      sysBase,
			ClkEnable: [2]uint32{
				family.CtrlPeriph: 0x54,
				family.CtrlTim:    0x4C,
			},
			ResetCtl: [2]uint32{
				family.CtrlPeriph: 0x50,
				family.CtrlTim:    0x48,
			},
			PerID: perID,
		},
	}
}

// New wires the full 176-pin family to a word bus.
func New(bus family.Bus32, env family.Env) *family.Chip {
	return family.NewChip(spec("vor4x", layout), bus, env)
}

// NewVA41628 wires the 100-pin bonding variant: same silicon, same
// tables, with the unbonded pads rejected by the layout.
func NewVA41628(bus family.Bus32, env family.Env) *family.Chip {
	return family.NewChip(spec("va41628", layout41628), bus, env)
}

// NewSim builds the full family over a simulated register file.
func NewSim(sim *regsim.Sim) *family.Chip {
	return seed(family.NewChip(spec("vor4x", layout), sim, sim.Env()), sim)
}

// NewVA41628Sim builds the bonding variant over a simulated register
// file.
func NewVA41628Sim(sim *regsim.Sim) *family.Chip {
	return seed(family.NewChip(spec("va41628", layout41628), sim, sim.Env()), sim)
}

func seed(c *family.Chip, sim *regsim.Sim) *family.Chip {
	return c.SeedSim(func(dataIn, dataOut, setOut, clrOut, togOut uint32) {
		sim.InstallPortRules(regsim.PortAddrs{
			DataIn:  dataIn,
			DataOut: dataOut,
			SetOut:  setOut,
			ClrOut:  clrOut,
			TogOut:  togOut,
		})
	})
}
