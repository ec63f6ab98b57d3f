package manifest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const layoutISO = "2006-01-02"

// Date is a calendar date carried in ISO form.
type Date struct {
	time.Time
}

// Today returns the current calendar date.
func Today() Date {
	return Date{Time: time.Now()}
}

// ParseDate parses an ISO YYYY-MM-DD date. Blank input returns the zero
// Date without error.
func ParseDate(v string) (Date, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return Date{}, nil
	}
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// MustParseDate parses an ISO date and panics on malformed input. For seed
// data and tests.
func MustParseDate(v string) Date {
	d, err := ParseDate(v)
	if err != nil {
		panic(err)
	}
	return d
}

// Equal compares calendar days, ignoring time of day.
func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layoutISO)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	parsed, err := ParseDate(v)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}
