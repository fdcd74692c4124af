package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay carries a wall-clock time without a date. Accepts "15:04"
// and "15:04:05" on input, always renders "15:04".
type TimeOfDay struct {
	Time time.Time
}

func ParseTimeOfDay(str string) (TimeOfDay, error) {
	parsedTime, err := time.Parse("15:04:05", str)
	if err != nil {
		parsedTime, err = time.Parse("15:04", str)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("failed to parse time of day %q: %v", str, err)
		}
	}
	return TimeOfDay{Time: parsedTime}, nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("failed to parse time of day: %v", err)
	}

	parsed, err := ParseTimeOfDay(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format("15:04"))
}

func (t TimeOfDay) String() string {
	return t.Time.Format("15:04")
}
