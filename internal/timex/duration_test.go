package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"string form", `"10s"`, 10 * time.Second, false},
		{"nanoseconds form", `3000000000`, 3 * time.Second, false},
		{"bad string", `"xyz"`, 0, true},
		{"bad type", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestDurationMarshal(t *testing.T) {
	b, err := json.Marshal(Duration{5 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, `"5s"`, string(b))
}
