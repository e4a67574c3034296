package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/folio-dev/folio/internal/model"
)

func TestNew(t *testing.T) {
	d := model.NewDate(2024, time.January, 5)
	got := New(d)

	assert.Len(t, got, 17)
	assert.True(t, IsGenerated(got), "generated ID %q should match its own pattern", got)
	assert.Equal(t, "20240105", got[:8])
}

func TestNew_Unique(t *testing.T) {
	d := model.NewDate(2024, time.January, 5)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		got := New(d)
		assert.False(t, seen[got], "duplicate ID %q", got)
		seen[got] = true
	}
}

func TestIsGenerated(t *testing.T) {
	assert.True(t, IsGenerated("20240105-1a2b3c4d"))
	assert.False(t, IsGenerated("imported-row-17"))
	assert.False(t, IsGenerated(""))
}
