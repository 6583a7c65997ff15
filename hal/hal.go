// Package hal splits a chip into its capability registries. Take hands
// out at most one Board per adapter; the split claims the shared
// infrastructure blocks (pin config, the ports themselves) and brings
// their clocks up, so pad and instance operations work immediately and
// nothing can gate those clocks behind the Board's back.
package hal

import (
	"sync"

	"vorago-periphs-go/errcode"
	"vorago-periphs-go/family"
	"vorago-periphs-go/gpio"
	"vorago-periphs-go/periph"
)

// Board is a split chip: one pin registry, one instance registry.
type Board struct {
	Chip    family.Adapter
	Pins    *gpio.Pins
	Periphs *periph.Instances

	infra []*periph.Instance
}

var (
	mu    sync.Mutex
	taken = map[family.Adapter]bool{}
)

// Take splits the adapter. A second Take of the same adapter fails
// with already_owned; there is deliberately no way to give a Board
// back.
func Take(ad family.Adapter) (*Board, error) {
	mu.Lock()
	defer mu.Unlock()
	if taken[ad] {
		return nil, &errcode.E{C: errcode.AlreadyOwned, Op: "hal.Take", Msg: ad.Name()}
	}
	taken[ad] = true
	return split(ad), nil
}

// Steal splits the adapter regardless of earlier takes. It exists for
// late init and fault handlers; two live Boards over one chip defeat
// every ownership guarantee, which is on the caller.
func Steal(ad family.Adapter) *Board {
	mu.Lock()
	taken[ad] = true
	mu.Unlock()
	return split(ad)
}

func split(ad family.Adapter) *Board {
	b := &Board{
		Chip:    ad,
		Pins:    gpio.NewPins(ad),
		Periphs: periph.NewInstances(ad),
	}
	for _, name := range []string{"ioconfig", "gpio"} {
		b.claimInfra(name, func(inst *periph.Instance) {
			inst.EnableClock()
		})
	}
	for p := 0; p < ad.Layout().Ports(); p++ {
		b.claimInfra("port"+string(rune('a'+p)), func(inst *periph.Instance) {
			inst.Reset(periph.DefaultResetCycles)
			inst.EnableClock()
		})
	}
	return b
}

// claimInfra claims a catalog entry the split keeps for itself.
// Families without the entry (vor4x has no standalone gpio block) just
// skip it.
func (b *Board) claimInfra(name string, up func(*periph.Instance)) {
	inst, err := b.Periphs.Claim(name)
	if err != nil {
		return
	}
	up(inst)
	b.infra = append(b.infra, inst)
}
