package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiterSet_SweepKeepsNewKey(t *testing.T) {
	set := newLimiterSet(RateLimitConfig{RequestsPerWindow: 1, Window: time.Hour, Burst: 1})
	set.lastSweep = time.Now().Add(-2 * set.every)

	first := set.get("203.0.113.7")
	require.True(t, first.Allow())

	again := set.get("203.0.113.7")
	require.Same(t, first, again)
	require.False(t, again.Allow(), "spent token must stay spent")
}

func TestLimiterSet_SweepDropsIdleKeys(t *testing.T) {
	set := newLimiterSet(RateLimitConfig{RequestsPerWindow: 1, Window: time.Hour, Burst: 1})
	idle := set.get("idle")

	set.lastSweep = time.Now().Add(-2 * set.every)
	set.get("busy")

	_, ok := set.limiters.Load("idle")
	require.False(t, ok)
	require.NotSame(t, idle, set.get("idle"))
}
