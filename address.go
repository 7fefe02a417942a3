package ipv6addr

// NumComponents is the number of 16-bit groups in a full IPv6 address.
const NumComponents = 8

// MaxZoneLen bounds the zone/interface identifier. The reference parser
// never stores zone bytes at all (see SPEC_FULL.md); this module does, and
// needs some bound since Address is a fixed-size, caller-owned value.
const MaxZoneLen = 64

// Flags records which optional fields of an Address are meaningful.
type Flags uint8

const (
	// FlagHasMask is set when Mask holds a valid CIDR prefix length.
	FlagHasMask Flags = 1 << iota
	// FlagHasPort is set when Port holds a valid transport port.
	FlagHasPort
	// FlagIPv4Embed is set when Components[6] and Components[7] together
	// encode a dotted-quad IPv4 tail rather than two arbitrary hex groups.
	FlagIPv4Embed
)

// Address is the structured form of a parsed IPv6 endpoint. Parse zeroes
// it on entry and then writes into it as it goes; its contents are only
// meaningful when Parse succeeds. Format only reads it.
// The zero Address is the unspecified address "::".
type Address struct {
	// Components holds the eight 16-bit groups, index 0 being the
	// high-order group. When FlagIPv4Embed is set, Components[6] and
	// Components[7] together hold four octets in their natural
	// left-to-right order (o0<<8|o1, o2<<8|o3).
	Components [NumComponents]uint16

	// Mask is the CIDR prefix length, 0..128, meaningful only when
	// FlagHasMask is set.
	Mask uint8

	// Port is the transport port, meaningful only when FlagHasPort is
	// set.
	Port uint16

	// Flags records which of Mask, Port, and the IPv4 embedding are
	// meaningful.
	Flags Flags

	// Zone is the optional interface/scope identifier following '%',
	// e.g. "eth0" in "fe80::1%eth0". The parser does not validate its
	// contents beyond length and the terminators '%' introduces it and
	// ']'/whitespace end it — see the Zone field's use in fsm.go for the
	// rationale (an open question the reference leaves unresolved, and
	// this module leaves unresolved too).
	Zone string
}

// HasMask reports whether Mask is meaningful.
func (a *Address) HasMask() bool { return a.Flags&FlagHasMask != 0 }

// HasPort reports whether Port is meaningful.
func (a *Address) HasPort() bool { return a.Flags&FlagHasPort != 0 }

// IsIPv4Embedded reports whether the low 32 bits encode a dotted-quad tail.
func (a *Address) IsIPv4Embedded() bool { return a.Flags&FlagIPv4Embed != 0 }

// reset zeroes the address in place. Parse calls this before it writes
// anything, so nothing from an earlier use survives. On failure the
// Address may still hold fields written before the error was found.
func (a *Address) reset() {
	*a = Address{}
}
