package common

import "fmt"

const redacted = "[REDACTED]"

// Secret holds a credential read at runtime. It formats as [REDACTED]
// under every fmt verb so it cannot leak into logs or debug prints;
// Reveal is the only way to get the value back.
type Secret string

// Reveal returns the plain secret value.
func (s Secret) Reveal() string {
	return string(s)
}

// String implements fmt.Stringer.
func (s Secret) String() string {
	return redacted
}

// GoString implements fmt.GoStringer so %#v is redacted too.
func (s Secret) GoString() string {
	return redacted
}

// Format implements fmt.Formatter, covering %q, %x and friends.
func (s Secret) Format(f fmt.State, _ rune) {
	fmt.Fprint(f, redacted)
}
