package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextRunPastTarget(t *testing.T) {
	now := time.Date(2025, time.April, 15, 9, 0, 0, 0, time.UTC)

	next := NextRun(now, 8)

	want := time.Date(2025, time.April, 16, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, want, next)
	assert.Equal(t, 23*time.Hour, next.Sub(now))
}

func TestNextRunBeforeTarget(t *testing.T) {
	now := time.Date(2025, time.April, 15, 7, 30, 0, 0, time.UTC)

	next := NextRun(now, 8)

	assert.Equal(t, time.Date(2025, time.April, 15, 8, 0, 0, 0, time.UTC), next)
}

func TestNextRunExactlyAtTarget(t *testing.T) {
	now := time.Date(2025, time.April, 15, 8, 0, 0, 0, time.UTC)

	next := NextRun(now, 8)

	assert.Equal(t, time.Date(2025, time.April, 16, 8, 0, 0, 0, time.UTC), next)
}

func TestNextRunKeepsLocation(t *testing.T) {
	hki := time.FixedZone("Europe/Helsinki", 3*3600)
	now := time.Date(2025, time.April, 15, 12, 0, 0, 0, hki)

	next := NextRun(now, 8)

	assert.Equal(t, hki, next.Location())
	assert.Equal(t, 8, next.Hour())
}
