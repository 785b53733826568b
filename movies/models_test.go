package movies

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDAcceptsNumberOrString(t *testing.T) {
	var body struct {
		TmdbID ID `json:"tmdbId"`
	}

	for _, raw := range []string{`{"tmdbId":27205}`, `{"tmdbId":"27205"}`, `{"tmdbId":" 27205 "}`} {
		require.NoError(t, json.Unmarshal([]byte(raw), &body), raw)
		assert.Equal(t, ID(27205), body.TmdbID, raw)
	}

	for _, raw := range []string{`{}`, `{"tmdbId":null}`, `{"tmdbId":""}`} {
		var absent struct {
			TmdbID ID `json:"tmdbId"`
		}
		require.NoError(t, json.Unmarshal([]byte(raw), &absent), raw)
		assert.Equal(t, ID(0), absent.TmdbID, raw)
	}

	for _, raw := range []string{`{"tmdbId":"abc"}`, `{"tmdbId":1.5}`, `{"tmdbId":true}`, `{"tmdbId":-5}`, `{"tmdbId":"-5"}`} {
		assert.Error(t, json.Unmarshal([]byte(raw), &body), raw)
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("129")
	require.NoError(t, err)
	assert.Equal(t, int64(129), id)

	for _, raw := range []string{"", "0", "-5", "abc", "12abc"} {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, ErrInvalidID, raw)
	}
}
