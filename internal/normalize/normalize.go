// Package normalize converts raw matched substrings for time and date
// fields into canonical forms (24-hour HH:MM, YYYY-MM-DD). Both functions
// are pure, total and idempotent: anything unrecognized passes through
// unchanged rather than erroring, so a bad OCR token degrades to a
// needs-review signal downstream instead of a failure here.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reTime24  = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
	reTime12  = regexp.MustCompile(`(?i)^(\d{1,2}):([0-5]\d)\s*(AM|PM)$`)
	reDateMDY = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
	reDateISO = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Time returns the 24-hour "HH:MM" form of raw. Accepted inputs are
// already-24-hour strings and "H:MM AM/PM" variants (marker is
// case-insensitive, noon and midnight handled per convention: 12 AM -> 00,
// 12 PM stays 12).
func Time(raw string) string {
	s := strings.TrimSpace(raw)
	if m := reTime24.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%02d:%s", h, m[2])
	}
	m := reTime12.FindStringSubmatch(s)
	if m == nil {
		return raw
	}
	h, _ := strconv.Atoi(m[1])
	if h < 1 || h > 12 {
		return raw
	}
	marker := strings.ToUpper(m[3])
	if marker == "AM" && h == 12 {
		h = 0
	}
	if marker == "PM" && h != 12 {
		h += 12
	}
	return fmt.Sprintf("%02d:%s", h, m[2])
}

// Date returns the "YYYY-MM-DD" form of raw. Accepts "MM/DD/YYYY" and
// "MM-DD-YYYY". Day-first inputs are NOT distinguished: the documented
// policy is month-first, a deliberate simplification carried over from the
// source data, not something to silently fix.
func Date(raw string) string {
	s := strings.TrimSpace(raw)
	if reDateISO.MatchString(s) {
		return s
	}
	m := reDateMDY.FindStringSubmatch(s)
	if m == nil {
		return raw
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return raw
	}
	return fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
}
