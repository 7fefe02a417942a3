// Package ipv6addr parses and renders textual IPv6 network endpoints.
//
// The accepted vocabulary is broader than the bare address of RFC 4291: a
// single input string may carry a 128-bit address with optional "::"
// zero-run compression, an embedded IPv4 tail covering the low 32 bits, a
// zone/interface identifier introduced by '%', a CIDR prefix length
// introduced by '/', and a transport port introduced by a trailing
// ":<port>" when the address is wrapped in square brackets.
//
// Parsing is a single-pass, table-driven state machine over character
// event classes (classify.go, fsm.go). A post-parse pass expands any
// observed zero run into its final 8-component layout (zerorun.go). The
// formatter inverts the whole thing back to canonical text (format.go).
//
// The package is purely computational: allocation is limited to small
// strings (a parsed zone, formatted tokens, FormatString's buffer), no
// I/O, no global mutable state. A Parse or Format call
// may run concurrently with any other call on disjoint inputs/outputs
// without synchronization.
package ipv6addr
