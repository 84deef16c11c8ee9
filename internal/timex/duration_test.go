package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", in: `"1h"`, want: time.Hour},
		{name: "string with unit mix", in: `"1h30m"`, want: 90 * time.Minute},
		{name: "integer nanoseconds", in: `1000000000`, want: time.Second},
		{name: "bad string", in: `"tomorrow"`, wantErr: true},
		{name: "bad type", in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			if d.Duration != tt.want {
				t.Fatalf("got %v, want %v", d.Duration, tt.want)
			}
		})
	}
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration{Duration: 2 * time.Hour}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var back Duration
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if back.Duration != d.Duration {
		t.Fatalf("round trip mismatch: got %v, want %v", back.Duration, d.Duration)
	}
}
