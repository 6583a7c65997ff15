package vor4x

import (
	"vorago-periphs-go/family"
	"vorago-periphs-go/pin"
)

// caps is the signed-off routing table for the full 176-pin part. The
// va41628 variant shares it; rows on unbonded pads are unreachable
// because the layout rejects those pins.
var caps = family.NewCaps(rows())

func rows() []family.Entry {
	var t []family.Entry
	t = append(t, uartRows()...)
	t = append(t, spiRows()...)
	t = append(t, timRows()...)
	return t
}

func row(p pin.ID, periph string, role family.Role, sel pin.FuncSel) family.Entry {
	return family.Entry{Pin: p, Periph: periph, Role: role, Sel: sel, CS: -1}
}

func cs(p pin.ID, periph string, sel pin.FuncSel, id int8) family.Entry {
	return family.Entry{Pin: p, Periph: periph, Role: family.RoleHwCs, Sel: sel, CS: id}
}

func uartRows() []family.Entry {
	return []family.Entry{
		// UART0
		row(PA2, "uart0", family.RoleTx, pin.Sel3),
		row(PA3, "uart0", family.RoleRx, pin.Sel3),
		row(PC4, "uart0", family.RoleTx, pin.Sel2),
		row(PC5, "uart0", family.RoleRx, pin.Sel2),
		row(PE2, "uart0", family.RoleTx, pin.Sel3),
		row(PE3, "uart0", family.RoleRx, pin.Sel3),
		row(PG0, "uart0", family.RoleTx, pin.Sel1),
		row(PG1, "uart0", family.RoleRx, pin.Sel1),

		// UART1
		row(PB14, "uart1", family.RoleTx, pin.Sel3),
		row(PB15, "uart1", family.RoleRx, pin.Sel3),
		row(PD11, "uart1", family.RoleTx, pin.Sel3),
		row(PD12, "uart1", family.RoleRx, pin.Sel3),
		row(PF12, "uart1", family.RoleTx, pin.Sel1),
		row(PF13, "uart1", family.RoleRx, pin.Sel1),

		// UART2
		row(PC14, "uart2", family.RoleTx, pin.Sel2),
		row(PC15, "uart2", family.RoleRx, pin.Sel2),
		row(PF8, "uart2", family.RoleTx, pin.Sel1),
		row(PF9, "uart2", family.RoleRx, pin.Sel1),
	}
}

func spiRows() []family.Entry {
	return []family.Entry{
		// SPI0
		row(PB15, "spi0", family.RoleSck, pin.Sel1),
		row(PC1, "spi0", family.RoleMosi, pin.Sel1),
		row(PC0, "spi0", family.RoleMiso, pin.Sel1),

		cs(PB14, "spi0", pin.Sel1, 0),
		cs(PB13, "spi0", pin.Sel1, 1),
		cs(PB12, "spi0", pin.Sel1, 2),
		cs(PB11, "spi0", pin.Sel1, 3),

		// SPI1
		row(PB8, "spi1", family.RoleSck, pin.Sel3),
		row(PB10, "spi1", family.RoleMosi, pin.Sel3),
		row(PB9, "spi1", family.RoleMiso, pin.Sel3),
		row(PC9, "spi1", family.RoleSck, pin.Sel2),
		row(PC11, "spi1", family.RoleMosi, pin.Sel2),
		row(PC10, "spi1", family.RoleMiso, pin.Sel2),
		row(PE13, "spi1", family.RoleSck, pin.Sel2),
		row(PE15, "spi1", family.RoleMosi, pin.Sel2),
		row(PE14, "spi1", family.RoleMiso, pin.Sel2),
		row(PF3, "spi1", family.RoleSck, pin.Sel1),
		row(PF5, "spi1", family.RoleMosi, pin.Sel1),
		row(PF4, "spi1", family.RoleMiso, pin.Sel1),
		// Port G routes clock and miso only.
		row(PG3, "spi1", family.RoleSck, pin.Sel2),
		row(PG4, "spi1", family.RoleMiso, pin.Sel2),

		cs(PB4, "spi1", pin.Sel3, 3),
		cs(PB3, "spi1", pin.Sel3, 4),
		cs(PB2, "spi1", pin.Sel3, 5),
		cs(PB1, "spi1", pin.Sel3, 6),
		cs(PB0, "spi1", pin.Sel3, 7),
		cs(PB7, "spi1", pin.Sel3, 0),
		cs(PB6, "spi1", pin.Sel3, 1),
		cs(PB5, "spi1", pin.Sel3, 2),
		cs(PC8, "spi1", pin.Sel2, 0),
		cs(PC7, "spi1", pin.Sel2, 1),
		cs(PE12, "spi1", pin.Sel2, 0),
		cs(PE11, "spi1", pin.Sel2, 1),
		cs(PE10, "spi1", pin.Sel2, 2),
		cs(PE9, "spi1", pin.Sel2, 3),
		cs(PE8, "spi1", pin.Sel2, 4),
		cs(PE7, "spi1", pin.Sel3, 5),
		cs(PE6, "spi1", pin.Sel3, 6),
		cs(PE5, "spi1", pin.Sel3, 7),
		cs(PG2, "spi1", pin.Sel2, 0),
		// The chip selects beside the SPI2 pads route to SPI1 in
		// silicon.
		cs(PA4, "spi1", pin.Sel2, 0),
		cs(PA3, "spi1", pin.Sel2, 1),
		cs(PA2, "spi1", pin.Sel2, 2),
		cs(PA1, "spi1", pin.Sel2, 3),
		cs(PA0, "spi1", pin.Sel2, 4),
		cs(PA8, "spi1", pin.Sel2, 5),
		cs(PA9, "spi1", pin.Sel2, 6),
		cs(PF0, "spi1", pin.Sel2, 4),
		cs(PF1, "spi1", pin.Sel2, 3),
		cs(PF3, "spi1", pin.Sel2, 1),
		cs(PF4, "spi1", pin.Sel2, 0),

		// SPI2
		row(PA5, "spi2", family.RoleSck, pin.Sel2),
		row(PA7, "spi2", family.RoleMosi, pin.Sel2),
		row(PA6, "spi2", family.RoleMiso, pin.Sel2),
		row(PF5, "spi2", family.RoleSck, pin.Sel2),
		row(PF7, "spi2", family.RoleMosi, pin.Sel2),
		row(PF6, "spi2", family.RoleMiso, pin.Sel2),

		cs(PF2, "spi2", pin.Sel1, 0),
		cs(PF2, "spi2", pin.Sel2, 2),
	}
}

// timRows covers the timer routings. Several ports count down as the
// pad number counts up.
func timRows() []family.Entry {
	var t []family.Entry
	span := func(first pin.ID, n, tim0, step int, sel pin.FuncSel) {
		for i := 0; i < n; i++ {
			t = append(t, row(first+pin.ID(i), timName(tim0+i*step), family.RoleTim, sel))
		}
	}
	span(PA0, 8, 0, 1, pin.Sel1)
	t = append(t, row(PA8, timName(8), family.RoleTim, pin.Sel3))
	span(PA10, 6, 23, -1, pin.Sel2)
	span(PB0, 16, 17, -1, pin.Sel2)
	span(PC0, 2, 1, -1, pin.Sel2)
	span(PD0, 16, 0, 1, pin.Sel2)
	span(PE0, 8, 16, 1, pin.Sel2)
	span(PE8, 8, 16, 1, pin.Sel3)
	span(PF0, 13, 0, 1, pin.Sel3)
	span(PF13, 3, 19, 1, pin.Sel2)
	span(PG0, 2, 22, 1, pin.Sel2)
	t = append(t, row(PG2, timName(9), family.RoleTim, pin.Sel1))
	t = append(t, row(PG3, timName(10), family.RoleTim, pin.Sel1))
	t = append(t, row(PG6, timName(12), family.RoleTim, pin.Sel1))
	return t
}
