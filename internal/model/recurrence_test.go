package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecurrenceValidate(t *testing.T) {
	assert.NoError(t, Daily().Validate())
	assert.NoError(t, EveryNDays(3).Validate())
	assert.NoError(t, OnDays(time.Monday, time.Friday).Validate())
	assert.NoError(t, Recurrence{Kind: RecurSpecificDays}.Validate())

	assert.Error(t, Recurrence{Kind: "weekly"}.Validate())
	assert.Error(t, Recurrence{}.Validate())
	assert.Error(t, Recurrence{Kind: RecurInterval, EveryNDays: -1}.Validate())
}

func TestRecurrenceContains(t *testing.T) {
	rec := OnDays(time.Monday, time.Wednesday)
	assert.True(t, rec.Contains(time.Monday))
	assert.False(t, rec.Contains(time.Tuesday))
	assert.False(t, Daily().Contains(time.Monday))
}

func TestRecurrenceLabel(t *testing.T) {
	assert.Equal(t, "DAILY", Daily().Label())
	assert.Equal(t, "DAILY", EveryNDays(1).Label())
	assert.Equal(t, "EVERY 3 DAYS", EveryNDays(3).Label())
	assert.Equal(t, "MO/WE/FR", OnDays(time.Monday, time.Wednesday, time.Friday).Label())
	assert.Equal(t, "NEVER", Recurrence{Kind: RecurSpecificDays}.Label())
}
