package family

import (
	"sync/atomic"
	"unsafe"
)

// mmioBus maps Bus32 straight onto memory. Firmware builds hand this to
// an adapter so register addresses hit the real blocks; host tests use
// regsim instead. Loads and stores go through atomics so the compiler
// cannot elide or reorder the register accesses.
type mmioBus struct{}

// MMIO returns the direct memory-mapped bus.
func MMIO() Bus32 { return mmioBus{} }

func (mmioBus) Read32(addr uint32) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(uintptr(addr))))
}

func (mmioBus) Write32(addr uint32, v uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(uintptr(addr))), v)
}
