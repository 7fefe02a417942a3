package ipv6addr

// MaxInputLen is the longest input Parse accepts, derived the same way
// the reference computes its IPV6_STRING_SIZE: the length of
// "[1234:1234:1234:1234:1234:1234:1234:1234/128%longinterface]:65535"
// (every field at its maximum simultaneously), plus one for the
// reference's sizeof-including-NUL convention.
const MaxInputLen = len(`[1234:1234:1234:1234:1234:1234:1234:1234/128%longinterface]:65535`) + 1

// Parse parses input into out, which it zeroes first. On success it
// returns true and out holds the structured address. On failure it
// returns false, invokes diag exactly once with the single diagnostic
// event that caused the failure, and leaves out's contents undefined
// (the caller must not treat it as partially valid — reset already
// zeroed it, but nothing more is guaranteed).
//
// diag must not be nil; use ParseQuiet for a no-op callback.
func Parse(input []byte, out *Address, diag DiagFunc) bool {
	out.reset()

	p := &parser{input: input, out: out, diag: diag, cur: stNone}

	if len(input) == 0 {
		p.fail(EventInvalidInput, "invalid input")
		return false
	}
	if len(input) > MaxInputLen {
		p.fail(EventStringSizeExceeded, "input string size exceeded")
		return false
	}

	for p.pos = 0; p.pos < len(input); p.pos++ {
		b := input[p.pos]
		if b == '[' {
			p.brackets++
		}
		ev, ok := classify(b)
		// A zone takes any byte (see stepIface), so an unclassifiable byte
		// is only an error outside one.
		if !ok && p.cur != stIface {
			p.fail(EventInvalidInputChar, "invalid input character")
			break
		}
		p.step(ev, b)
		if p.errored {
			break
		}
	}

	if !p.errored {
		// Synthesize one final whitespace event so terminal commits
		// (a trailing hex component, CIDR mask, or port) happen
		// uniformly regardless of what the last real byte was.
		p.step(evWhitespace, 0)
	}

	if !p.errored && p.ipv4Embedding && p.v4Octets != 4 {
		p.fail(EventInvalidIPv4Embedding, "ipv4 address embedding was used but required 4 octets")
	}
	if p.errored {
		return false
	}

	if p.ipv4Embedding {
		out.Flags |= FlagIPv4Embed
	}

	if !p.zerorunSeen {
		if p.nComponents < NumComponents {
			p.fail(EventV6BadComponentCount, "invalid component count")
			return false
		}
		return true
	}

	if !expandZeroRun(&out.Components, p.nComponents, p.zerorunIdx) {
		p.fail(EventV6BadComponentCount, "zero run does not fit in address")
		return false
	}
	return true
}

// ParseQuiet is Parse with a no-op diagnostic callback.
func ParseQuiet(input []byte, out *Address) bool {
	return Parse(input, out, noopDiag)
}
