package ipv6addr

import (
	"fmt"

	"github.com/gravitational/trace"
)

// ParseError describes a failed parse: the diagnostic event, position,
// and input the underlying Parse call reported. ParseAddr returns its
// text as a trace.BadParameter error, so callers that inspect errors with
// trace.IsBadParameter see it as such; the ParseError value itself is not
// in the returned error's chain.
type ParseError struct {
	Kind     EventKind
	Message  string
	Position int
	Input    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ipv6addr: %s at byte %d of %q: %s", e.Kind, e.Position, e.Input, e.Message)
}

// ParseAddr is the idiomatic Go wrapper around Parse: no out-parameter,
// no explicit diagnostic callback, a Go error on failure instead.
func ParseAddr(s string) (Address, error) {
	var addr Address
	var parseErr *ParseError

	ok := Parse([]byte(s), &addr, func(kind EventKind, info DiagInfo) {
		parseErr = &ParseError{
			Kind:     kind,
			Message:  info.Message,
			Position: info.Position,
			Input:    string(info.Input),
		}
	})
	if !ok {
		return Address{}, trace.Wrap(trace.BadParameter("%s", parseErr.Error()))
	}
	return addr, nil
}

// MustFormat is FormatString for callers who would rather panic than check
// a bool. FormatString's buffer is MaxInputLen bytes, one of them kept for
// the NUL, so MustFormat panics when the canonical form is longer than
// MaxInputLen-1 bytes; an input near MaxInputLen that Parse accepts can
// produce such a form. It wraps the truncation case in a
// trace.BadParameter-style panic for consistent diagnostics.
func MustFormat(addr *Address) string {
	s, ok := FormatString(addr)
	if !ok {
		panic(trace.BadParameter("ipv6addr: address does not fit in %d bytes", MaxInputLen))
	}
	return s
}
