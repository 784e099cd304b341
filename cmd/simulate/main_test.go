package main

import (
	"testing"

	"github.com/shenikar/atoa_simulation/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	entries, err := parseScript("5:0, 40:2")
	require.NoError(t, err)
	assert.Equal(t, []service.ScriptEntry{{Tick: 5, VehicleSeq: 0}, {Tick: 40, VehicleSeq: 2}}, entries)

	entries, err = parseScript("")
	require.NoError(t, err)
	assert.Nil(t, entries)

	_, err = parseScript("5")
	assert.Error(t, err)

	_, err = parseScript("x:1")
	assert.Error(t, err)
}
