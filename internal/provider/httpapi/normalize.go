package httpapi

import (
	"encoding/json"
	"strings"
	"time"
)

// looseID tolerates upstream rows that serialize identifiers sometimes
// as JSON strings and sometimes as bare numbers.
type looseID string

func (id *looseID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*id = looseID(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*id = looseID(num.String())
	return nil
}

// firstNonEmpty picks the first field variant the upstream row filled in.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// parseLooseDate parses the upstream's date values, which come as
// "2006-01-02" or as a full "2006-01-02 15:04:05" timestamp. A value
// that parses to nothing yields the zero time; the classifier treats it
// as non-matching rather than failing the row set.
func parseLooseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if len(value) > 10 {
		value = value[:10]
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}
