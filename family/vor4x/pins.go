package vor4x

import "vorago-periphs-go/pin"

// Ports A through F carry 16 pins each, port G carries 8.
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
)

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
)

const (
	PC0 pin.ID = pin.ID(pin.PortC)<<8 | iota
	PC1
	PC2
	PC3
	PC4
	PC5
	PC6
	PC7
	PC8
	PC9
	PC10
	PC11
	PC12
	PC13
	PC14
	PC15
)

const (
	PD0 pin.ID = pin.ID(pin.PortD)<<8 | iota
	PD1
	PD2
	PD3
	PD4
	PD5
	PD6
	PD7
	PD8
	PD9
	PD10
	PD11
	PD12
	PD13
	PD14
	PD15
)

const (
	PE0 pin.ID = pin.ID(pin.PortE)<<8 | iota
	PE1
	PE2
	PE3
	PE4
	PE5
	PE6
	PE7
	PE8
	PE9
	PE10
	PE11
	PE12
	PE13
	PE14
	PE15
)

const (
	PF0 pin.ID = pin.ID(pin.PortF)<<8 | iota
	PF1
	PF2
	PF3
	PF4
	PF5
	PF6
	PF7
	PF8
	PF9
	PF10
	PF11
	PF12
	PF13
	PF14
	PF15
)

const (
	PG0 pin.ID = pin.ID(pin.PortG)<<8 | iota
	PG1
	PG2
	PG3
	PG4
	PG5
	PG6
	PG7
)
