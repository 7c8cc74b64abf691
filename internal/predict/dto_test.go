package predict

import (
	"encoding/json"
	"testing"
)

func TestValueUnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want Value
	}{
		{in: `"60"`, want: "60"},
		{in: `60`, want: "60"},
		{in: `3.7`, want: "3.7"},
		{in: `null`, want: ""},
		{in: `true`, want: "true"},
		{in: `1e400`, want: "Infinity"},
		{in: `-1e400`, want: "-Infinity"},
		{in: `[160]`, want: "[160]"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var got Value
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("unmarshal %s = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
