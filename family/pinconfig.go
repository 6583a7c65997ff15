package family

import "vorago-periphs-go/pin"

// FilterType selects the input glitch filter of a pin.
type FilterType uint8

const (
	FilterSysClk FilterType = iota // synchronize to sysclk, no filtering
	FilterDirect                   // unsynchronized input
	FilterOneCycle
	FilterTwoCycles
	FilterThreeCycles
	FilterFourCycles
)

// FilterClock selects which of the eight filter clocks feeds the filter.
type FilterClock uint8

// PinConfig is the decoded per-pin IOCONFIG state. The zero value is
// the hardware reset state: funsel Sel0, no pulls, sysclk-synchronized
// input, push-pull output.
type PinConfig struct {
	Sel                   pin.FuncSel
	IODisable             bool
	Pull                  pin.Pull // folds the enable and direction bits
	PullWhenOutputActive  bool
	OpenDrain             bool
	InvertInput           bool
	InvertOutput          bool
	InputEnableWhenOutput bool // IEWO, monitor the driven value
	Filter                FilterType
	FilterClk             FilterClock
}

// Both families share one IOCONFIG bit layout; only base addresses and
// port geometry differ, so the codec lives here and the adapters map
// pins to word addresses.
const (
	cfgIODisable       = 1 << 16
	cfgFunSelShift     = 13 // 2 bits
	cfgPullActiveBit   = 1 << 12
	cfgPullEnableBit   = 1 << 11
	cfgPullDownBit     = 1 << 10 // 0 = up, 1 = down
	cfgInvertOutputBit = 1 << 9
	cfgOpenDrainBit    = 1 << 8
	cfgIEWOBit         = 1 << 7
	cfgInvertInputBit  = 1 << 6
	cfgFilterClkShift  = 3 // 3 bits
	cfgFilterTypeMask  = 0x7
)

// EncodeConfig packs a PinConfig into the register word.
func EncodeConfig(c PinConfig) uint32 {
	var w uint32
	if c.IODisable {
		w |= cfgIODisable
	}
	w |= uint32(c.Sel&0x3) << cfgFunSelShift
	if c.PullWhenOutputActive {
		w |= cfgPullActiveBit
	}
	switch c.Pull {
	case pin.PullUp:
		w |= cfgPullEnableBit
	case pin.PullDown:
		w |= cfgPullEnableBit | cfgPullDownBit
	}
	if c.InvertOutput {
		w |= cfgInvertOutputBit
	}
	if c.OpenDrain {
		w |= cfgOpenDrainBit
	}
	if c.InputEnableWhenOutput {
		w |= cfgIEWOBit
	}
	if c.InvertInput {
		w |= cfgInvertInputBit
	}
	w |= uint32(c.FilterClk&0x7) << cfgFilterClkShift
	w |= uint32(c.Filter) & cfgFilterTypeMask
	return w
}

// DecodeConfig unpacks a register word. Unknown filter encodings (6, 7)
// decode as FilterSysClk.
func DecodeConfig(w uint32) PinConfig {
	c := PinConfig{
		IODisable:             w&cfgIODisable != 0,
		Sel:                   pin.FuncSel(w >> cfgFunSelShift & 0x3),
		PullWhenOutputActive:  w&cfgPullActiveBit != 0,
		InvertOutput:          w&cfgInvertOutputBit != 0,
		OpenDrain:             w&cfgOpenDrainBit != 0,
		InputEnableWhenOutput: w&cfgIEWOBit != 0,
		InvertInput:           w&cfgInvertInputBit != 0,
		FilterClk:             FilterClock(w >> cfgFilterClkShift & 0x7),
	}
	if w&cfgPullEnableBit != 0 {
		if w&cfgPullDownBit != 0 {
			c.Pull = pin.PullDown
		} else {
			c.Pull = pin.PullUp
		}
	}
	if ft := FilterType(w & cfgFilterTypeMask); ft <= FilterFourCycles {
		c.Filter = ft
	}
	return c
}
