package vor1x

import (
	"vorago-periphs-go/family"
	"vorago-periphs-go/pin"
)

// caps is the signed-off routing table: every (pin, function select)
// pair with a peripheral role on VA108xx silicon. A pin may appear
// once per distinct routing, so the same pad can reach different
// peripherals on different selects.
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
		row(PA9, "uart0", family.RoleTx, pin.Sel2),
		row(PA8, "uart0", family.RoleRx, pin.Sel2),
		row(PA17, "uart0", family.RoleTx, pin.Sel3),
		row(PA16, "uart0", family.RoleRx, pin.Sel3),
		row(PA31, "uart0", family.RoleTx, pin.Sel3),
		row(PA30, "uart0", family.RoleRx, pin.Sel3),
		row(PB9, "uart0", family.RoleTx, pin.Sel1),
		row(PB8, "uart0", family.RoleRx, pin.Sel1),
		row(PB23, "uart0", family.RoleTx, pin.Sel1),
		row(PB22, "uart0", family.RoleRx, pin.Sel1),

		// UART1
		row(PA3, "uart1", family.RoleTx, pin.Sel2),
		row(PA2, "uart1", family.RoleRx, pin.Sel2),
		row(PA19, "uart1", family.RoleTx, pin.Sel3),
		row(PA18, "uart1", family.RoleRx, pin.Sel3),
		row(PA27, "uart1", family.RoleTx, pin.Sel3),
		row(PA26, "uart1", family.RoleRx, pin.Sel3),
		row(PB7, "uart1", family.RoleTx, pin.Sel1),
		row(PB6, "uart1", family.RoleRx, pin.Sel1),
		row(PB19, "uart1", family.RoleTx, pin.Sel2),
		row(PB18, "uart1", family.RoleRx, pin.Sel2),
		row(PB21, "uart1", family.RoleTx, pin.Sel1),
		row(PB20, "uart1", family.RoleRx, pin.Sel1),
	}
}

func spiRows() []family.Entry {
	return []family.Entry{
		// SPI0
		row(PA31, "spi0", family.RoleSck, pin.Sel1),
		row(PA30, "spi0", family.RoleMosi, pin.Sel1),
		row(PA29, "spi0", family.RoleMiso, pin.Sel1),
		row(PB9, "spi0", family.RoleSck, pin.Sel2),
		row(PB8, "spi0", family.RoleMosi, pin.Sel2),
		row(PB7, "spi0", family.RoleMiso, pin.Sel2),

		cs(PB0, "spi0", pin.Sel2, 1),
		cs(PB1, "spi0", pin.Sel2, 2),
		cs(PB2, "spi0", pin.Sel2, 3),
		cs(PB3, "spi0", pin.Sel2, 4),
		cs(PB4, "spi0", pin.Sel2, 5),
		cs(PB5, "spi0", pin.Sel2, 6),
		cs(PB6, "spi0", pin.Sel2, 0),
		cs(PA24, "spi0", pin.Sel1, 4),
		cs(PA25, "spi0", pin.Sel1, 3),
		cs(PA26, "spi0", pin.Sel1, 2),
		cs(PA27, "spi0", pin.Sel1, 1),
		cs(PA28, "spi0", pin.Sel1, 0),
		cs(PA21, "spi0", pin.Sel1, 7),
		cs(PA22, "spi0", pin.Sel1, 6),
		cs(PA23, "spi0", pin.Sel1, 5),

		// SPI1
		row(PA20, "spi1", family.RoleSck, pin.Sel2),
		row(PA19, "spi1", family.RoleMosi, pin.Sel2),
		row(PA18, "spi1", family.RoleMiso, pin.Sel2),
		row(PB19, "spi1", family.RoleSck, pin.Sel1),
		row(PB18, "spi1", family.RoleMosi, pin.Sel1),
		row(PB17, "spi1", family.RoleMiso, pin.Sel1),
		row(PB5, "spi1", family.RoleSck, pin.Sel1),
		row(PB4, "spi1", family.RoleMosi, pin.Sel1),
		row(PB3, "spi1", family.RoleMiso, pin.Sel1),

		cs(PB16, "spi1", pin.Sel1, 0),
		cs(PB15, "spi1", pin.Sel1, 1),
		cs(PB14, "spi1", pin.Sel1, 2),
		cs(PB13, "spi1", pin.Sel1, 3),
		cs(PA17, "spi1", pin.Sel2, 0),
		cs(PA16, "spi1", pin.Sel2, 1),
		cs(PA15, "spi1", pin.Sel2, 2),
		cs(PA14, "spi1", pin.Sel2, 3),
		cs(PA13, "spi1", pin.Sel2, 4),
		cs(PA12, "spi1", pin.Sel2, 5),
		cs(PA11, "spi1", pin.Sel2, 6),
		cs(PA10, "spi1", pin.Sel2, 7),
		cs(PA23, "spi1", pin.Sel2, 5),
		cs(PA22, "spi1", pin.Sel2, 6),
		cs(PA21, "spi1", pin.Sel2, 7),
		cs(PB0, "spi1", pin.Sel1, 2),
		cs(PB1, "spi1", pin.Sel1, 1),
		cs(PB2, "spi1", pin.Sel1, 0),
		cs(PB10, "spi1", pin.Sel1, 6),
		cs(PB11, "spi1", pin.Sel1, 5),
		cs(PB12, "spi1", pin.Sel1, 4),
		cs(PB10, "spi1", pin.Sel2, 2),
		cs(PB11, "spi1", pin.Sel2, 1),
		cs(PB12, "spi1", pin.Sel2, 0),

		// SPI2 routes only chip selects to pads; its data lines serve
		// the on-chip ROM.
		cs(PB9, "spi2", pin.Sel3, 1),
		cs(PB8, "spi2", pin.Sel3, 2),
		cs(PB7, "spi2", pin.Sel3, 3),
		cs(PB23, "spi2", pin.Sel3, 2),
		cs(PB22, "spi2", pin.Sel3, 1),
		cs(PA20, "spi2", pin.Sel1, 1),
		cs(PA19, "spi2", pin.Sel1, 2),
		cs(PB18, "spi2", pin.Sel1, 3),
		cs(PA21, "spi2", pin.Sel3, 3),
		cs(PA22, "spi2", pin.Sel3, 2),
		cs(PA23, "spi2", pin.Sel3, 1),
		cs(PA20, "spi2", pin.Sel3, 4),
	}
}

// timRows covers the four contiguous timer routing ranges.
func timRows() []family.Entry {
	var t []family.Entry
	span := func(first pin.ID, n, tim0 int, sel pin.FuncSel) {
		for i := 0; i < n; i++ {
			t = append(t, row(first+pin.ID(i), timName(tim0+i), family.RoleTim, sel))
		}
	}
	span(PA0, 16, 0, pin.Sel1)
	span(PA24, 8, 16, pin.Sel2)
	span(PB0, 7, 0, pin.Sel3)
	span(PB10, 14, 10, pin.Sel3)
	return t
}
