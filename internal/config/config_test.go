package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodgern/ricochet/internal/config"
	"github.com/woodgern/ricochet/internal/geometry"
)

func TestParsePositionValid(t *testing.T) {
	p, err := config.ParsePosition("6,14")
	require.NoError(t, err)
	assert.Equal(t, geometry.Position{X: 6, Y: 14}, p)
}

func TestParsePositionTrimsWhitespace(t *testing.T) {
	p, err := config.ParsePosition(" 6 , 14 ")
	require.NoError(t, err)
	assert.Equal(t, geometry.Position{X: 6, Y: 14}, p)
}

func TestParsePositionRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "6", "6,14,2", "x,y", "6;14"} {
		_, err := config.ParsePosition(s)
		assert.Error(t, err, "expected error for input %q", s)
	}
}
