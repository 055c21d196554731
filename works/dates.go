package works

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// A partial calendar date. Any component may be empty (absent). Components
// are kept as given by upstream, so ORCID's "03" and Crossref's 3 both live
// here as strings.
type PartialDate struct {
	Year, Month, Day string
}

// builds a partial date from Crossref-style date parts [year, month, day],
// any suffix of which may be missing
func DateFromParts(parts []int) PartialDate {
	var date PartialDate
	if len(parts) > 0 {
		date.Year = strconv.Itoa(parts[0])
	}
	if len(parts) > 1 {
		date.Month = strconv.Itoa(parts[1])
	}
	if len(parts) > 2 {
		date.Day = strconv.Itoa(parts[2])
	}
	return date
}

// returns true if the date has no year (and so can't be rendered)
func (d PartialDate) IsZero() bool {
	return strings.TrimSpace(d.Year) == ""
}

// renders the date as YYYY-MM-DD. Month and day are zero-padded to two
// digits, and each defaults to 01 when absent. The year passes through as is.
// A date without a year renders as an empty string.
func (d PartialDate) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", strings.TrimSpace(d.Year), padOrDefault(d.Month),
		padOrDefault(d.Day))
}

func padOrDefault(component string) string {
	component = strings.TrimSpace(component)
	if component == "" {
		return "01"
	}
	if len(component) < 2 {
		return strings.Repeat("0", 2-len(component)) + component
	}
	return component
}

// checks that the date's components name a real calendar day, returning an
// error describing the first problem found. Absent month and day are fine.
// String() renders invalid dates anyway.
func (d PartialDate) Validate() error {
	if d.IsZero() {
		return fmt.Errorf("No year given")
	}
	year, err := strconv.Atoi(strings.TrimSpace(d.Year))
	if err != nil {
		return fmt.Errorf("Invalid year: '%s'", d.Year)
	}
	month := 1
	if strings.TrimSpace(d.Month) != "" {
		month, err = strconv.Atoi(strings.TrimSpace(d.Month))
		if err != nil || month < 1 || month > 12 {
			return fmt.Errorf("Invalid month: '%s' (must be 1-12)", d.Month)
		}
	}
	if strings.TrimSpace(d.Day) != "" {
		day, err := strconv.Atoi(strings.TrimSpace(d.Day))
		// day 0 of the following month is the last day of this one
		lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
		if err != nil || day < 1 || day > lastDay {
			return fmt.Errorf("Invalid day: '%s' (must be 1-%d)", d.Day, lastDay)
		}
	}
	return nil
}
