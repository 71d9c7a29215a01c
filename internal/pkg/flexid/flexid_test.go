package flexid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalJSON(t *testing.T) {
	var payload struct {
		A ID  `json:"a"`
		B ID  `json:"b"`
		C *ID `json:"c"`
		D *ID `json:"d"`
	}
	err := json.Unmarshal([]byte(`{"a": 42, "b": "emp-7", "c": null, "d": 3}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, ID("42"), payload.A)
	assert.Equal(t, ID("emp-7"), payload.B)
	assert.Nil(t, payload.C)
	require.NotNil(t, payload.D)
	assert.Equal(t, "3", payload.D.String())
}

func TestUnmarshalJSON_Rejects(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &id))
}

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal(map[string]ID{"n": "12", "s": "x-1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": 12, "s": "x-1"}`, string(b))
}

func TestPtr(t *testing.T) {
	assert.Nil(t, Ptr(""))
	assert.Equal(t, ID("5"), *Ptr("5"))
}
