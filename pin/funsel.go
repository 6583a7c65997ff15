package pin

// FuncSel is the 2-bit alternate-function code of a pin. Both supported
// families use the same four codes; what each code means for a given pin
// is family data. Sel0 is the primary GPIO function everywhere.
type FuncSel uint8

const (
	Sel0 FuncSel = iota
	Sel1
	Sel2
	Sel3
)

// NumFuncSels is the cardinality of the funsel field.
const NumFuncSels = 4

func (f FuncSel) String() string {
	if f >= NumFuncSels {
		return "Sel?"
	}
	return string([]byte{'S', 'e', 'l', '0' + byte(f)})
}

// Pull configures the pin bias resistors.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

func (p Pull) String() string {
	switch p {
	case PullNone:
		return "none"
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	}
	return "pull?"
}
