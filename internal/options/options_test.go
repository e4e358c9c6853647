package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type codecConfig struct {
	maxDepth int
	compact  bool
	calls    []string
}

var errBadDepth = errors.New("depth must be positive")

func withDepth(n int) Option[*codecConfig] {
	return New(func(c *codecConfig) error {
		if n <= 0 {
			return errBadDepth
		}
		c.maxDepth = n
		c.calls = append(c.calls, "depth")

		return nil
	})
}

func withCompact(v bool) Option[*codecConfig] {
	return NoError(func(c *codecConfig) {
		c.compact = v
		c.calls = append(c.calls, "compact")
	})
}

func TestApply(t *testing.T) {
	cfg := &codecConfig{maxDepth: 64}

	err := Apply(cfg, withDepth(8), withCompact(true))
	require.NoError(t, err)
	require.Equal(t, 8, cfg.maxDepth)
	require.True(t, cfg.compact)
	require.Equal(t, []string{"depth", "compact"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &codecConfig{maxDepth: 64}

	err := Apply(cfg, withDepth(0), withCompact(true))
	require.ErrorIs(t, err, errBadDepth)
	require.Equal(t, 64, cfg.maxDepth)
	require.False(t, cfg.compact)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &codecConfig{maxDepth: 64}
	require.NoError(t, Apply(cfg))
	require.Equal(t, 64, cfg.maxDepth)
}

func TestApply_LaterOptionWins(t *testing.T) {
	cfg := &codecConfig{}
	require.NoError(t, Apply(cfg, withDepth(3), withDepth(5)))
	require.Equal(t, 5, cfg.maxDepth)
}
