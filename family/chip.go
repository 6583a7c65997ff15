package family

import "vorago-periphs-go/pin"

// RegMap places a family's register blocks in the address space.
type RegMap struct {
	IOConfigBase uint32
	PortBases    []uint32 // indexed by pin.Port
	SysBase      uint32
	ClkEnable    [2]uint32 // SYSCONFIG clock-enable word offsets per CtrlBank
	ResetCtl     [2]uint32 // SYSCONFIG reset word offsets per CtrlBank
	PerID        uint32    // documented IOCONFIG peripheral ID reset value
}

// Spec is the pure data an adapter is built from: layout, tables,
// catalog and register map. The concrete family packages declare one
// Spec each and construct Chips from it.
type Spec struct {
	Name    string
	Layout  Layout
	Caps    *Caps
	Catalog []Desc
	Regs    RegMap
}

// Chip implements Adapter from a Spec over a word bus.
type Chip struct {
	spec  Spec
	io    IOConfigBlock
	ports []PortBlock
	sys   SysBlock
	env   Env
}

var _ Adapter = (*Chip)(nil)

// NewChip wires a Spec to a bus and environment.
func NewChip(spec Spec, bus Bus32, env Env) *Chip {
	c := &Chip{
		spec: spec,
		io: IOConfigBlock{
			Bus:    bus,
			Base:   spec.Regs.IOConfigBase,
			Starts: PortStarts(spec.Layout),
		},
		sys: SysBlock{
			Bus:       bus,
			Base:      spec.Regs.SysBase,
			ClkEnable: spec.Regs.ClkEnable,
			ResetCtl:  spec.Regs.ResetCtl,
		},
		env: env.Normalize(),
	}
	c.ports = make([]PortBlock, len(spec.Regs.PortBases))
	for i, base := range spec.Regs.PortBases {
		c.ports[i] = PortBlock{Bus: bus, Base: base}
	}
	return c
}

func (c *Chip) Name() string    { return c.spec.Name }
func (c *Chip) Layout() Layout  { return c.spec.Layout }
func (c *Chip) Caps() *Caps     { return c.spec.Caps }
func (c *Chip) Catalog() []Desc { return c.spec.Catalog }

func (c *Chip) ReadPinConfig(id pin.ID) PinConfig {
	return DecodeConfig(c.io.ReadPin(id))
}

func (c *Chip) WritePinConfig(id pin.ID, cfg PinConfig) {
	c.io.WritePin(id, EncodeConfig(cfg))
}

func (c *Chip) Port(p pin.Port) PortRegs { return c.ports[p] }
func (c *Chip) Sys() SysRegs             { return c.sys }

func (c *Chip) Mask() (restore func()) { return c.env.Mask() }
func (c *Chip) Delay(cycles int)       { c.env.Delay(cycles) }

func (c *Chip) Probe() error { return CheckPerID(c.io, c.spec.Regs.PerID) }

// SeedSim plants the readable ID words a fresh register file lacks and
// installs the port block write semantics. Simulator-backed
// constructors call this before handing the chip out.
func (c *Chip) SeedSim(install func(dataIn, dataOut, setOut, clrOut, togOut uint32)) *Chip {
	c.io.SeedPerID(c.spec.Regs.PerID)
	for _, pb := range c.ports {
		install(
			PortRegAddr(pb.Base, RegDataIn),
			PortRegAddr(pb.Base, RegDataOut),
			PortRegAddr(pb.Base, RegSetOut),
			PortRegAddr(pb.Base, RegClrOut),
			PortRegAddr(pb.Base, RegTogOut),
		)
	}
	return c
}
