package json_types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/byturco/ambulatory/internal/config"
)

func parseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Dates without an offset are interpreted in the configured timezone
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, config.TimeZone)
		if err != nil {
			parsedDate, err = time.ParseInLocation("2006-01-02", str, config.TimeZone)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse date %q: %v", str, err)
			}
		}
	}

	return parsedDate, nil
}

// Date is a calendar date, rendered "2006-01-02".
type Date struct {
	Date time.Time
}

func ParseDate(str string) (Date, error) {
	parsedDate, err := parseDate(str)
	if err != nil {
		return Date{}, err
	}
	return Date{Date: parsedDate}, nil
}

func (t *Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("failed to parse date: %v", err)
	}

	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format("2006-01-02"))
}

func (t Date) String() string {
	return t.Date.Format("2006-01-02")
}

// DateTime is a point in time, accepting RFC3339 or offset-less forms.
type DateTime struct {
	Date time.Time
}

func ParseDateTime(str string) (DateTime, error) {
	parsedDate, err := parseDate(str)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Date: parsedDate}, nil
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("failed to parse datetime: %v", err)
	}

	parsed, err := ParseDateTime(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format("2006-01-02T15:04:05Z07:00"))
}
