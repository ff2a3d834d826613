package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/zompocalypse/logger"
)

func TestRunIsDeterministic(t *testing.T) {
	cfg := config{ticks: 600, seed: 3, dt: 1.0 / 60}

	first, err := run(cfg, logger.Discard())
	require.NoError(t, err)
	second, err := run(cfg, logger.Discard())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first.Wave, 1)
	assert.Positive(t, first.Spawned)
}

func TestMeleeReachNilPlayer(t *testing.T) {
	assert.Zero(t, meleeReach(nil))
}
