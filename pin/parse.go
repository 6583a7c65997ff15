package pin

import "vorago-periphs-go/errcode"

// Parse reads a pad name such as "PA5" or "pb12" back into an identity.
// The leading P is optional. Parse only checks the name space (ports A-G,
// offsets 0-31); whether the pin exists on a concrete family or variant
// is a layout lookup. The inverse of ID.String.
func Parse(s string) (ID, error) {
	orig := s
	if len(s) >= 1 && (s[0] == 'P' || s[0] == 'p') {
		s = s[1:]
	}
	if len(s) < 2 {
		return 0, &errcode.E{C: errcode.OutOfRange, Op: "pin.Parse", Msg: "short pin name " + quote(orig)}
	}
	c := s[0]
	if c >= 'a' && c <= 'g' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'G' {
		return 0, &errcode.E{C: errcode.OutOfRange, Op: "pin.Parse", Msg: "no port letter in " + quote(orig)}
	}
	port := Port(c - 'A')
	off := 0
	for i := 1; i < len(s); i++ {
		d := s[i]
		if d < '0' || d > '9' {
			return 0, &errcode.E{C: errcode.OutOfRange, Op: "pin.Parse", Msg: "bad offset in " + quote(orig)}
		}
		off = off*10 + int(d-'0')
		if off > 31 {
			return 0, &errcode.E{C: errcode.OutOfRange, Op: "pin.Parse", Msg: "offset too large in " + quote(orig)}
		}
	}
	return Make(port, uint8(off)), nil
}

func quote(s string) string { return "\"" + s + "\"" }
