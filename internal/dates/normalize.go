// Package dates turns the date encodings seen on bank statements into
// canonical ISO YYYY-MM-DD strings.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slashYear4 = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	slashYear2 = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`)
	isoDash    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dashYear4  = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)
)

// Normalize converts a raw date cell into ISO form. It never fails: a value
// that matches no known format yields today's date, so one malformed date
// cannot abort an otherwise valid row.
//
// Slash dates with four-digit years are read day-first (DD/MM/YYYY), the
// convention on international statements. A US-style MM/DD/YYYY therefore
// parses with day and month swapped; only the two-digit-year form (MM/DD/YY)
// is read month-first.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)

	if m := slashYear4.FindStringSubmatch(s); m != nil {
		return m[3] + "-" + pad2(m[2]) + "-" + pad2(m[1])
	}

	if m := slashYear2.FindStringSubmatch(s); m != nil {
		// Two-digit year pivot: <50 is 2000s, >=50 is 1900s.
		year := "20" + m[3]
		if v, _ := strconv.Atoi(m[3]); v >= 50 {
			year = "19" + m[3]
		}
		return year + "-" + pad2(m[1]) + "-" + pad2(m[2])
	}

	if m := isoDash.FindStringSubmatch(s); m != nil {
		return m[1] + "-" + pad2(m[2]) + "-" + pad2(m[3])
	}

	if m := dashYear4.FindStringSubmatch(s); m != nil {
		return m[3] + "-" + pad2(m[2]) + "-" + pad2(m[1])
	}

	return time.Now().Format("2006-01-02")
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// MonthLabel renders a sortable "YYYY-MM" key as a human month name, e.g.
// "2025-02" becomes "February 2025". Unparseable keys are returned verbatim.
func MonthLabel(sortKey string) string {
	t, err := time.Parse("2006-01", sortKey)
	if err != nil {
		return sortKey
	}
	return t.Format("January 2006")
}
