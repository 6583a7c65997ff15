package family

import (
	"vorago-periphs-go/errcode"
	"vorago-periphs-go/pin"
	"vorago-periphs-go/x/conv"
)

// Word offsets of the GPIO port block registers. The block layout is
// identical on both families; only the base addresses differ.
var portRegOff = [...]uint32{
	RegDataIn:    0x00,
	RegDataInRaw: 0x04,
	RegDataOut:   0x08,
	RegSetOut:    0x10,
	RegClrOut:    0x14,
	RegTogOut:    0x18,
	RegDir:       0x20,
	RegPulse:     0x24,
	RegPulseBase: 0x28,
	RegDelay1:    0x2C,
	RegDelay2:    0x30,
	RegIrqSen:    0x34,
	RegIrqEdge:   0x38,
	RegIrqEvt:    0x3C,
	RegIrqEnb:    0x40,
}

// PortRegAddr returns the absolute address of one port register.
func PortRegAddr(base uint32, r PortReg) uint32 { return base + portRegOff[r] }

// PortBlock implements PortRegs over a word bus at a base address.
type PortBlock struct {
	Bus  Bus32
	Base uint32
}

func (b PortBlock) Read(r PortReg) uint32     { return b.Bus.Read32(b.Base + portRegOff[r]) }
func (b PortBlock) Write(r PortReg, v uint32) { b.Bus.Write32(b.Base+portRegOff[r], v) }

// SysBlock implements SysRegs over a word bus given the offsets of the
// control word pairs, indexed by CtrlBank.
type SysBlock struct {
	Bus       Bus32
	Base      uint32
	ClkEnable [2]uint32
	ResetCtl  [2]uint32
}

func (b SysBlock) ClockEnable(bank CtrlBank) uint32 {
	return b.Bus.Read32(b.Base + b.ClkEnable[bank])
}

func (b SysBlock) WriteClockEnable(bank CtrlBank, v uint32) {
	b.Bus.Write32(b.Base+b.ClkEnable[bank], v)
}

func (b SysBlock) Reset(bank CtrlBank) uint32 {
	return b.Bus.Read32(b.Base + b.ResetCtl[bank])
}

func (b SysBlock) WriteReset(bank CtrlBank, v uint32) {
	b.Bus.Write32(b.Base+b.ResetCtl[bank], v)
}

// IOConfigBlock addresses the per-pin config words. Starts holds each
// port's first word index within the block, cumulative over the port
// widths. The peripheral ID word sits at the block's last word.
type IOConfigBlock struct {
	Bus    Bus32
	Base   uint32
	Starts []uint32
}

const perIDOff = 0xFFC

// PortStarts derives the cumulative word starts from a layout.
func PortStarts(l Layout) []uint32 {
	starts := make([]uint32, l.Ports())
	var acc uint32
	for p := range starts {
		starts[p] = acc
		acc += uint32(l.Widths[p])
	}
	return starts
}

func (b IOConfigBlock) addr(id pin.ID) uint32 {
	return b.Base + 4*(b.Starts[id.Port()]+uint32(id.Offset()))
}

func (b IOConfigBlock) ReadPin(id pin.ID) uint32     { return b.Bus.Read32(b.addr(id)) }
func (b IOConfigBlock) WritePin(id pin.ID, v uint32) { b.Bus.Write32(b.addr(id), v) }
func (b IOConfigBlock) PerID() uint32                { return b.Bus.Read32(b.Base + perIDOff) }

// SeedPerID plants the ID word; simulator constructors use this so
// Probe passes against an empty register file.
func (b IOConfigBlock) SeedPerID(v uint32) { b.Bus.Write32(b.Base+perIDOff, v) }

// CheckPerID compares the IOCONFIG peripheral ID against the family's
// documented reset value.
func CheckPerID(b IOConfigBlock, want uint32) error {
	got := b.PerID()
	if got == want {
		return nil
	}
	var gb, wb [8]byte
	return &errcode.E{C: errcode.Error, Op: "family.Probe",
		Msg: "ioconfig perid 0x" + string(conv.U32Hex(gb[:], got)) +
			", want 0x" + string(conv.U32Hex(wb[:], want))}
}
