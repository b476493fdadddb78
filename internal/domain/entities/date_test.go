package entities

import (
	"encoding/json"
	"testing"
)

func TestEpochMillisSentinel(t *testing.T) {
	// Unset dates serialize as "", never 0 — downstream depends on it.
	b, err := json.Marshal(MillisFromSeconds(0))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `""` {
		t.Errorf("unset = %s, want \"\"", b)
	}

	b, err = json.Marshal(MillisFromSeconds(1717251600))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "1717251600000" {
		t.Errorf("set = %s, want 1717251600000", b)
	}
}

func TestEpochMillisRoundTrip(t *testing.T) {
	var m EpochMillis
	if err := json.Unmarshal([]byte(`""`), &m); err != nil {
		t.Fatal(err)
	}
	if m.Set {
		t.Errorf("empty string should decode as unset, got %+v", m)
	}

	if err := json.Unmarshal([]byte(`1717251600000`), &m); err != nil {
		t.Fatal(err)
	}
	if !m.Set || m.Millis != 1717251600000 {
		t.Errorf("decoded %+v", m)
	}
	if m.Time().Unix() != 1717251600 {
		t.Errorf("Time() = %v", m.Time())
	}
}
