package ipv6addr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareOrdersByComponentsFirst(t *testing.T) {
	var a, b Address
	require.True(t, ParseQuiet([]byte("::1"), &a))
	require.True(t, ParseQuiet([]byte("::2"), &b))

	require.Negative(t, Compare(&a, &b))
	require.Positive(t, Compare(&b, &a))
}

func TestCompareEqualAddressesAreZero(t *testing.T) {
	var a, b Address
	require.True(t, ParseQuiet([]byte("2001:db8::1"), &a))
	require.True(t, ParseQuiet([]byte("2001:DB8::1"), &b))

	require.Equal(t, 0, Compare(&a, &b))
}

func TestCompareFlagsBreakComponentTies(t *testing.T) {
	var plain, embedded Address
	require.True(t, ParseQuiet([]byte("::ffff:c0a8:1"), &plain))
	require.True(t, ParseQuiet([]byte("::ffff:192.168.0.1"), &embedded))

	// Same sixteen-bit components either way; only FlagIPv4Embed differs.
	require.Equal(t, plain.Components, embedded.Components)
	require.NotEqual(t, 0, Compare(&plain, &embedded))
}

func TestComparePortOnlyComparedWhenBothHaveOne(t *testing.T) {
	var withPort, withoutPort Address
	require.True(t, ParseQuiet([]byte("[::1]:80"), &withPort))
	require.True(t, ParseQuiet([]byte("::1"), &withoutPort))

	// Flags differ (FlagHasPort), so these are still not equal, but the
	// ordering must come from Flags, not from reading Port off a side
	// that never set it.
	require.NotEqual(t, 0, Compare(&withPort, &withoutPort))

	var lowPort, highPort Address
	require.True(t, ParseQuiet([]byte("[::1]:80"), &lowPort))
	require.True(t, ParseQuiet([]byte("[::1]:443"), &highPort))
	require.Negative(t, Compare(&lowPort, &highPort))
}

func TestCompareIgnoresZone(t *testing.T) {
	var a, b Address
	require.True(t, ParseQuiet([]byte("fe80::1%eth0"), &a))
	require.True(t, ParseQuiet([]byte("fe80::1%wlan0"), &b))

	require.Equal(t, 0, Compare(&a, &b))
}
