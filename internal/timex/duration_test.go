package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Timeout Duration `json:"timeout"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"timeout":"15s"}`), &payload))
	require.Equal(t, 15*time.Second, payload.Timeout.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"timeout":1000000000}`), &payload))
	require.Equal(t, time.Second, payload.Timeout.Duration)

	require.Error(t, json.Unmarshal([]byte(`{"timeout":"nope"}`), &payload))
	require.Error(t, json.Unmarshal([]byte(`{"timeout":true}`), &payload))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: 3 * time.Second})
	require.NoError(t, err)
	require.JSONEq(t, `"3s"`, string(b))
}
