package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_DefaultsToInteractive(t *testing.T) {
	s := NewSession()

	assert.Equal(t, Interactive, s.Mode())
	assert.False(t, s.IsBatch())
	assert.Equal(t, "interactive", s.Mode().String())
}

func TestSession_ForceBatchIsSticky(t *testing.T) {
	s := NewSession()
	s.ForceBatch()
	s.ForceBatch()

	assert.True(t, s.IsBatch())
	assert.Equal(t, "batch", s.Mode().String())
}
