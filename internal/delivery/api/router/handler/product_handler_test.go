package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFieldIndex(t *testing.T) {
	tests := []struct {
		field     string
		wantIndex int
		wantOK    bool
	}{
		{field: "images", wantIndex: 0, wantOK: true},
		{field: "images[0]", wantIndex: 0, wantOK: true},
		{field: "images[3]", wantIndex: 3, wantOK: true},
		{field: "images[-1]"},
		{field: "images[x]"},
		{field: "images[2"},
		{field: "avatar"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			index, ok := imageFieldIndex(tt.field)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantIndex, index)
		})
	}
}

func TestDecodeProductRequests(t *testing.T) {
	t.Run("single object", func(t *testing.T) {
		requests, err := decodeProductRequests([]byte(` {"name":{"en":"Cake","ar":"كيكة"},"actualPrice":"12.5"} `))

		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, "Cake", requests[0].Name.EN)
		assert.Equal(t, "12.5", requests[0].ActualPrice.String())
	})

	t.Run("array", func(t *testing.T) {
		requests, err := decodeProductRequests([]byte(`[{"id":"a"},{"id":"b"}]`))

		require.NoError(t, err)
		assert.Len(t, requests, 2)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := decodeProductRequests([]byte("  "))

		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := decodeProductRequests([]byte(`[{"name":`))

		assert.Error(t, err)
	})
}
