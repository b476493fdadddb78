package entities

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// EpochMillis is an optional instant in epoch milliseconds. The zero value
// means "no date". Downstream consumers depend on an empty-string sentinel for
// missing dates, so the JSON form is either a number or "" — the optional is
// explicit inside the pipeline and collapses to the sentinel only at the
// serialization boundary.
type EpochMillis struct {
	Millis int64
	Set    bool
}

// MillisFromSeconds converts a scraped epoch-seconds timestamp. A zero
// timestamp means the source had no date and maps to the unset value.
func MillisFromSeconds(sec int64) EpochMillis {
	if sec == 0 {
		return EpochMillis{}
	}
	return EpochMillis{Millis: sec * 1000, Set: true}
}

// Time returns the instant, or the zero time when unset.
func (m EpochMillis) Time() time.Time {
	if !m.Set {
		return time.Time{}
	}
	return time.UnixMilli(m.Millis)
}

func (m EpochMillis) MarshalJSON() ([]byte, error) {
	if !m.Set {
		return []byte(`""`), nil
	}
	return strconv.AppendInt(nil, m.Millis, 10), nil
}

func (m *EpochMillis) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte(`""`)) || bytes.Equal(data, []byte("null")) {
		*m = EpochMillis{}
		return nil
	}
	v, err := strconv.ParseInt(string(bytes.Trim(data, `"`)), 10, 64)
	if err != nil {
		return fmt.Errorf("epoch millis: %w", err)
	}
	*m = EpochMillis{Millis: v, Set: true}
	return nil
}
