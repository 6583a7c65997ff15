package family

// CtrlBank selects which pair of SYSCONFIG control words a peripheral's
// bit lives in. The families keep TIM clock and reset bits in their own
// words, apart from the general peripheral pair.
type CtrlBank uint8

const (
	CtrlPeriph CtrlBank = iota
	CtrlTim
)

// Desc is one peripheral catalog entry. Bit indexes the peripheral's
// position in both words of its control bank: the clock-enable register
// and the active-low reset register share one bit assignment. IRQ is
// the fixed interrupt line, or -1 when the family routes interrupts
// through IRQSEL instead of hardwiring them.
type Desc struct {
	Name string
	Bank CtrlBank
	Bit  uint8
	IRQ  int
}

// NoIRQ marks catalog entries without a fixed interrupt line.
const NoIRQ = -1

// FindDesc looks a peripheral up by catalog name.
func FindDesc(catalog []Desc, name string) (Desc, bool) {
	for _, d := range catalog {
		if d.Name == name {
			return d, true
		}
	}
	return Desc{}, false
}
