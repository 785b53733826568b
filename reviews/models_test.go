package reviews

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *int
		wantErr bool
	}{
		{name: "number", body: `{"rating":7}`, want: intPtr(7)},
		{name: "numeric string", body: `{"rating":"8"}`, want: intPtr(8)},
		{name: "empty string", body: `{"rating":""}`},
		{name: "null", body: `{"rating":null}`},
		{name: "absent", body: `{}`},
		{name: "fraction", body: `{"rating":7.5}`, wantErr: true},
		{name: "word", body: `{"rating":"great"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Rating.Value)
		})
	}
}

func TestCreateRequestAcceptsStringMovieID(t *testing.T) {
	var req CreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"tmdbId":"129","reviewText":"Lovely","rating":"9"}`), &req))
	assert.EqualValues(t, 129, req.TmdbID)
	assert.Equal(t, intPtr(9), req.Rating.Value)
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }
