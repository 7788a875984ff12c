package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// localLayout is the ISO local date-time the backend emits for timestamps
// without a zone, e.g. "2024-05-01T10:15:30.123456".
const localLayout = "2006-01-02T15:04:05.999999999"

// Time is a backend timestamp. It decodes RFC 3339 strings, zone-less
// local date-times (read in time.Local), date-only strings and the
// [year, month, day, hour, minute, second, nanos] array form. Zone-less
// values are written back without a zone.
type Time struct {
	time.Time
	local bool
}

func (t *Time) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = Time{}
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var parts []int
		if err := json.Unmarshal(data, &parts); err != nil {
			return fmt.Errorf("models: time array: %w", err)
		}
		if len(parts) < 3 {
			return fmt.Errorf("models: time array %s: need at least year, month, day", data)
		}
		for len(parts) < 7 {
			parts = append(parts, 0)
		}
		*t = Time{
			Time:  time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], parts[6], time.Local),
			local: true,
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("models: time: %w", err)
	}
	if s == "" {
		*t = Time{}
		return nil
	}
	if v, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*t = Time{Time: v}
		return nil
	}
	for _, layout := range []string{localLayout, "2006-01-02 15:04:05.999999999", time.DateOnly} {
		if v, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			*t = Time{Time: v, local: true}
			return nil
		}
	}
	return fmt.Errorf("models: unrecognised time %q", s)
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	if t.local {
		return json.Marshal(t.Format(localLayout))
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}
