package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSearchOptions_DefaultValues tests SearchOptions with zero values
func TestSearchOptions_DefaultValues(t *testing.T) {
	opts := SearchOptions{}

	assert.Equal(t, 0, opts.Limit)
	assert.Nil(t, opts.DocumentIDs)
}

func TestDefaultTopK(t *testing.T) {
	assert.Equal(t, 3, DefaultTopK)
}
