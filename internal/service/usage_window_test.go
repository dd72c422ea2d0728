package service

import (
	"testing"
	"time"

	"buildhive-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	at := time.Date(2025, time.March, 14, 17, 45, 12, 999, loc)

	got := startOfDay(at)

	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 14, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 0, got.Second())
	assert.Equal(t, loc, got.Location(), "window boundary is local midnight")
}

func TestNextMidnight(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)

	t.Run("mid-day rolls to next day", func(t *testing.T) {
		at := time.Date(2025, time.March, 14, 17, 45, 0, 0, loc)
		got := nextMidnight(at)
		assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, loc), got)
	})

	t.Run("month boundary", func(t *testing.T) {
		at := time.Date(2025, time.March, 31, 23, 59, 59, 0, loc)
		got := nextMidnight(at)
		assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, loc), got)
	})

	t.Run("exactly midnight still advances a full day", func(t *testing.T) {
		at := time.Date(2025, time.March, 14, 0, 0, 0, 0, loc)
		got := nextMidnight(at)
		assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, loc), got)
	})
}

func TestQuotaErrorCarriesUpgradeFields(t *testing.T) {
	err := quotaError("FREE", 5)
	assert.EqualError(t, err, "Daily review limit reached")

	appErr, ok := err.(*serverutils.AppError)
	if assert.True(t, ok) {
		assert.Equal(t, 403, appErr.Code)
		assert.Equal(t, "FREE", appErr.Extra["plan"])
		assert.Equal(t, 5, appErr.Extra["limit"])
		assert.Equal(t, true, appErr.Extra["upgradeRequired"])
	}
}
