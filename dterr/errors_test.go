package dterr_test

import (
	"errors"
	"testing"

	"github.com/dreamtides/dtengine/dterr"
	"github.com/stretchr/testify/assert"
)

func TestParseFailedMessage(t *testing.T) {
	err := dterr.NewParseFailed(dterr.Span{Start: 3, Length: 4}, "unexpected token", "trigger", "activated")
	assert.Contains(t, err.Error(), "3..7")
	assert.Contains(t, err.Error(), "trigger")
}

func TestErrorIsMatchesByCode(t *testing.T) {
	a := dterr.NewActionIllegal("not legal")
	b := dterr.NewActionIllegal("different message")
	assert.True(t, errors.Is(a, b))

	c := dterr.NewCatalogMissing("x")
	assert.False(t, errors.Is(a, c))
}
