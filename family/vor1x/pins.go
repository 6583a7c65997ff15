package vor1x

import "vorago-periphs-go/pin"

// Port A, 32 pins.
const (
	PA0 pin.ID = pin.ID(pin.PortA)<<8 | iota
	PA1
	PA2
	PA3
	PA4
	PA5
	PA6
	PA7
	PA8
	PA9
	PA10
	PA11
	PA12
	PA13
	PA14
	PA15
	PA16
	PA17
	PA18
	PA19
	PA20
	PA21
	PA22
	PA23
	PA24
	PA25
	PA26
	PA27
	PA28
	PA29
	PA30
	PA31
)

// Port B, 24 pins.
const (
	PB0 pin.ID = pin.ID(pin.PortB)<<8 | iota
	PB1
	PB2
	PB3
	PB4
	PB5
	PB6
	PB7
	PB8
	PB9
	PB10
	PB11
	PB12
	PB13
	PB14
	PB15
	PB16
	PB17
	PB18
	PB19
	PB20
	PB21
	PB22
	PB23
)
