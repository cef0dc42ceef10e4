package retention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, 90, p.RetentionDays)
	assert.True(t, p.IsEnabled())
}

func TestPolicy_Disabled(t *testing.T) {
	p := NewPolicy(0)
	assert.False(t, p.IsEnabled())
	assert.True(t, p.CutoffTime().IsZero())
	assert.False(t, p.ShouldDelete(time.Now().AddDate(-10, 0, 0)))
}

func TestPolicy_CutoffTime(t *testing.T) {
	p := NewPolicy(30)
	cutoff := p.CutoffTime()

	expected := time.Now().AddDate(0, 0, -30)
	assert.WithinDuration(t, expected, cutoff, time.Minute)
}

func TestPolicy_ShouldDelete(t *testing.T) {
	p := NewPolicy(7)

	assert.True(t, p.ShouldDelete(time.Now().AddDate(0, 0, -8)))
	assert.False(t, p.ShouldDelete(time.Now().AddDate(0, 0, -6)))
	assert.False(t, p.ShouldDelete(time.Now()))
}
