package api

import (
	"bytes"
	"encoding/json"
	"time"

	"droscher.com/BrewLog/pkg/validation"
)

const dateLayout = "2006-01-02"

// Date accepts either a calendar date or a full RFC 3339 timestamp. An empty
// string decodes to the zero Date, which clears the field on update.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return validation.InvalidValue("", "日付は文字列で指定してください")
	}

	if raw == "" {
		d.Time = time.Time{}

		return nil
	}

	for _, layout := range []string{time.RFC3339Nano, dateLayout} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			d.Time = parsed

			return nil
		}
	}

	return validation.InvalidValue("", "日付の形式が不正です: "+raw)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// Ptr returns the time, or nil for the zero Date.
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}

	t := d.Time

	return &t
}
