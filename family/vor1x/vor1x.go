// Package vor1x adapts the VA108xx family: two GPIO ports (A 32 pins,
// B 24 pins), four function selects per pin and a single shared
// interrupt-select block, so no pin or peripheral owns an interrupt
// line of its own.
package vor1x

import (
	"vorago-periphs-go/family"
	"vorago-periphs-go/regsim"
	"vorago-periphs-go/x/conv"
)

const (
	sysBase      = 0x4000_0000
	ioConfigBase = 0x4000_2000
	portABase    = 0x5000_0000
	portBBase    = 0x5000_1000

	// IOCONFIG PERID reset value, VA108xx programmers guide.
	perID = 0x0182_07E1
)

var layout = family.Layout{Widths: []uint8{32, 24}}

// catalog lists every peripheral with a SYSCONFIG clock-gate/reset bit.
// The 24 timers sit in their own control words; everything else shares
// the peripheral pair. Interrupts route through IRQSEL, so no entry
// carries a fixed line.
var catalog = buildCatalog()

func buildCatalog() []family.Desc {
	ds := []family.Desc{
		{Name: "porta", Bank: family.CtrlPeriph, Bit: 0, IRQ: family.NoIRQ},
		{Name: "portb", Bank: family.CtrlPeriph, Bit: 1, IRQ: family.NoIRQ},
		{Name: "spi0", Bank: family.CtrlPeriph, Bit: 4, IRQ: family.NoIRQ},
		{Name: "spi1", Bank: family.CtrlPeriph, Bit: 5, IRQ: family.NoIRQ},
		{Name: "spi2", Bank: family.CtrlPeriph, Bit: 6, IRQ: family.NoIRQ},
		{Name: "uart0", Bank: family.CtrlPeriph, Bit: 8, IRQ: family.NoIRQ},
		{Name: "uart1", Bank: family.CtrlPeriph, Bit: 9, IRQ: family.NoIRQ},
		{Name: "i2c0", Bank: family.CtrlPeriph, Bit: 16, IRQ: family.NoIRQ},
		{Name: "i2c1", Bank: family.CtrlPeriph, Bit: 17, IRQ: family.NoIRQ},
		{Name: "irqsel", Bank: family.CtrlPeriph, Bit: 21, IRQ: family.NoIRQ},
		{Name: "ioconfig", Bank: family.CtrlPeriph, Bit: 22, IRQ: family.NoIRQ},
		{Name: "utility", Bank: family.CtrlPeriph, Bit: 23, IRQ: family.NoIRQ},
		{Name: "gpio", Bank: family.CtrlPeriph, Bit: 24, IRQ: family.NoIRQ},
	}
	for i := 0; i < 24; i++ {
		ds = append(ds, family.Desc{
			Name: timName(i),
			Bank: family.CtrlTim,
			Bit:  uint8(i),
			IRQ:  family.NoIRQ,
		})
	}
	return ds
}

func timName(n int) string {
	var b [8]byte
	return "tim" + string(conv.Itoa(b[:], int64(n)))
}

func spec() family.Spec {
	return family.Spec{
		Name:    "vor1x",
		Layout:  layout,
		Caps:    caps,
		Catalog: catalog,
		Regs: family.RegMap{
			IOConfigBase: ioConfigBase,
			PortBases:    []uint32{portABase, portBBase},
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

// New wires the family to a word bus. On target, pass family.MMIO()
// and the firmware's mask/delay environment.
func New(bus family.Bus32, env family.Env) *family.Chip {
	return family.NewChip(spec(), bus, env)
}

// NewSim builds the family over a simulated register file with the
// port write semantics installed and the ID word seeded, so Probe and
// the set/clear/toggle registers behave like hardware.
func NewSim(sim *regsim.Sim) *family.Chip {
	c := family.NewChip(spec(), sim, sim.Env())
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
