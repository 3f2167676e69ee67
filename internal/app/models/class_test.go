package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassModeValid(t *testing.T) {
	for _, mode := range ClassModes() {
		assert.True(t, mode.Valid(), "expected %q to be valid", mode)
	}

	for _, bad := range []ClassMode{"", "Online", "in person", "Remote"} {
		assert.False(t, bad.Valid(), "expected %q to be invalid", bad)
	}
}

func TestBuildingJSONShape(t *testing.T) {
	// Buildings with no alternate names or place ID serialize those fields
	// as null, matching what consumers of the API already expect.
	building := Building{Number: 1, Name: "Engineering 2"}

	raw, err := json.Marshal(building)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"number":1,"name":"Engineering 2","other_names":null,"place_id":null}`,
		string(raw))
}
