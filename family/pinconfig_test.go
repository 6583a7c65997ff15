package family

import (
	"testing"

	"vorago-periphs-go/pin"
)

func TestEncodeConfigPlacesBits(t *testing.T) {
	w := EncodeConfig(PinConfig{Sel: pin.Sel2})
	if w != 2<<13 {
		t.Fatalf("funsel field: want 0x%X, got 0x%X", 2<<13, w)
	}
	w = EncodeConfig(PinConfig{Pull: pin.PullUp})
	if w != 1<<11 {
		t.Fatalf("pull up: want enable only, got 0x%X", w)
	}
	w = EncodeConfig(PinConfig{Pull: pin.PullDown})
	if w != 1<<11|1<<10 {
		t.Fatalf("pull down: want enable+dir, got 0x%X", w)
	}
	w = EncodeConfig(PinConfig{OpenDrain: true, InvertInput: true})
	if w != 1<<8|1<<6 {
		t.Fatalf("open drain + invert in: got 0x%X", w)
	}
	w = EncodeConfig(PinConfig{IODisable: true, Filter: FilterThreeCycles, FilterClk: 5})
	if w != 1<<16|5<<3|4 {
		t.Fatalf("disable+filter: want 0x%X, got 0x%X", 1<<16|5<<3|4, w)
	}
}

func TestDecodeInvertsEncode(t *testing.T) {
	cfgs := []PinConfig{
		{},
		{Sel: pin.Sel3, Pull: pin.PullDown, PullWhenOutputActive: true},
		{Sel: pin.Sel1, OpenDrain: true, InvertOutput: true, InputEnableWhenOutput: true},
		{InvertInput: true, Filter: FilterFourCycles, FilterClk: 7},
		{IODisable: true},
	}
	for i, c := range cfgs {
		back := DecodeConfig(EncodeConfig(c))
		if back != c {
			t.Fatalf("case %d: want %+v, got %+v", i, c, back)
		}
	}
}

func TestDecodeToleratesReservedFilterCodes(t *testing.T) {
	got := DecodeConfig(7) // filter type 7 is not a defined encoding
	if got.Filter != FilterSysClk {
		t.Fatalf("reserved filter code should decode as sysclk, got %v", got.Filter)
	}
}

func TestZeroValueIsResetState(t *testing.T) {
	if EncodeConfig(PinConfig{}) != 0 {
		t.Fatalf("zero config must encode to the reset word")
	}
	got := DecodeConfig(0)
	if got.Sel != pin.Sel0 || got.Pull != pin.PullNone || got.Filter != FilterSysClk {
		t.Fatalf("reset word decodes oddly: %+v", got)
	}
}
