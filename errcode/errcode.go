package errcode

// Code is a stable error identifier for the capability layer.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Identity and capability failures.
	OutOfRange          Code = "out_of_range"         // dynamic port/pin index beyond family bounds
	UnsupportedFunction Code = "unsupported_function" // funsel not legal for the pin on this family
	WrongFunction       Code = "wrong_function"       // narrowing while a different funsel is active
	AlreadyOwned        Code = "already_owned"        // a live handle exists for this identity
	UnknownPeripheral   Code = "unknown_peripheral"   // name not in the family catalog

	// Wire-level failures surfaced by reference drivers.
	BusFault Code = "bus_fault"
	Timeout  Code = "timeout"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
