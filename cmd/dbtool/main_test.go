package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuildingNumber(t *testing.T) {
	t.Run("accepts zero", func(t *testing.T) {
		n, err := parseBuildingNumber("0")
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("accepts ordinary numbers", func(t *testing.T) {
		n, err := parseBuildingNumber(" 23 ")
		require.NoError(t, err)
		assert.Equal(t, int64(23), n)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := parseBuildingNumber("twenty-three")
		require.Error(t, err)
	})

	t.Run("rejects negative numbers", func(t *testing.T) {
		_, err := parseBuildingNumber("-4")
		require.Error(t, err)
	})
}
