package ipv6addr

// EventKind is the closed set of diagnostic events a parse failure can
// report. Exactly one is ever reported per Parse call.
type EventKind int

const (
	EventInvalidInput EventKind = iota
	EventInvalidInputChar
	EventStringSizeExceeded
	EventInvalidBrackets
	EventInvalidAbbrev
	EventInvalidDecimalToken
	EventInvalidHexToken
	EventV6BadComponentCount
	EventV6ComponentOutOfRange
	EventV4BadComponentCount
	EventV4ComponentOutOfRange
	EventIPv4RequiredBits
	EventIPv4IncorrectPosition
	EventInvalidIPv4Embedding
	EventInvalidCIDRMask
	EventInvalidPort
)

var eventNames = [...]string{
	EventInvalidInput:          "invalid-input",
	EventInvalidInputChar:      "invalid-input-char",
	EventStringSizeExceeded:    "string-size-exceeded",
	EventInvalidBrackets:       "invalid-brackets",
	EventInvalidAbbrev:         "invalid-abbrev",
	EventInvalidDecimalToken:   "invalid-decimal-token",
	EventInvalidHexToken:       "invalid-hex-token",
	EventV6BadComponentCount:   "v6-bad-component-count",
	EventV6ComponentOutOfRange: "v6-component-out-of-range",
	EventV4BadComponentCount:   "v4-bad-component-count",
	EventV4ComponentOutOfRange: "v4-component-out-of-range",
	EventIPv4RequiredBits:      "ipv4-required-bits",
	EventIPv4IncorrectPosition: "ipv4-incorrect-position",
	EventInvalidIPv4Embedding:  "invalid-ipv4-embedding",
	EventInvalidCIDRMask:       "invalid-cidr-mask",
	EventInvalidPort:           "invalid-port",
}

// String returns the diagnostic event's name, e.g. "v6-bad-component-count".
func (e EventKind) String() string {
	if int(e) < 0 || int(e) >= len(eventNames) {
		return "unknown-event"
	}
	return eventNames[e]
}

// DiagInfo carries the detail reported alongside a diagnostic event.
type DiagInfo struct {
	// Message is a short human-readable description.
	Message string
	// Input is the full input buffer that was being parsed.
	Input []byte
	// Position is the byte offset at which the error was recognized.
	Position int
}

// DiagFunc is invoked synchronously at most once per Parse call, exactly
// when a failure is recognized. It returns nothing: the parser continues
// only to the extent of producing that single error before returning
// false.
type DiagFunc func(kind EventKind, info DiagInfo)

func noopDiag(EventKind, DiagInfo) {}
