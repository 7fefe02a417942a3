//go:build !ipv6trace

package ipv6addr

// traceState and traceTransition are no-ops in the default build: the
// compiler inlines them away entirely, so the FSM pays zero runtime cost
// for tracing unless built with -tags ipv6trace. See trace_on.go for the
// logrus-backed implementation.
func traceState(format string, args ...interface{}) {}

func traceTransition(from, to state, ev eventClass) {}
