package regsim

// PortAddrs names the data registers of one GPIO port block.
type PortAddrs struct {
	DataIn, DataOut, SetOut, ClrOut, TogOut uint32
}

// InstallPortRules models the write-1-to-set registers of a port block:
// SETOUT, CLROUT and TOGOUT update DATAOUT bitwise instead of storing,
// and the driven bits loop back into DATAIN so output readback behaves
// like a pad. Bits a test plants in DATAIN for input pins stay put
// until something drives them.
func (s *Sim) InstallPortRules(a PortAddrs) {
	s.OnWrite(a.SetOut, func(mem map[uint32]uint32, v uint32) {
		mem[a.DataOut] |= v
		mem[a.DataIn] |= v
	})
	s.OnWrite(a.ClrOut, func(mem map[uint32]uint32, v uint32) {
		mem[a.DataOut] &^= v
		mem[a.DataIn] &^= v
	})
	s.OnWrite(a.TogOut, func(mem map[uint32]uint32, v uint32) {
		mem[a.DataOut] ^= v
		mem[a.DataIn] ^= v
	})
}
