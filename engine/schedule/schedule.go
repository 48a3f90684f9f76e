// Package schedule understands just enough of the natural-language schedule
// grammar to rewrite legacy schedule entries. It never evaluates them.
package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	shortHourRe   = regexp.MustCompile(`( \d?\d)((a|p)m)`)
	boundRe       = regexp.MustCompile(`\b(after|before) (\d{1,2})(?::(\d{2}))? ?(am|pm)?\b`)
	afterBeforeRe = regexp.MustCompile(`^(.*?)(after|before) (.*?) and (after|before) (.*?)( |$)(.*)`)
	everyDayOfRe  = regexp.MustCompile(`every (mon|tues|wednes|thurs|fri|satur|sun)day$`)
	trailingDayRe = regexp.MustCompile(`every ([a-z]*day)$`)
)

// FixShortHours expands hours without minutes, e.g. "after 10pm" becomes
// "after 10:00pm".
func FixShortHours(input string) string {
	return shortHourRe.ReplaceAllString(input, "${1}:00${2}")
}

// Window is the time-of-day range described by an "after X and before Y"
// entry.
type Window struct {
	After     time.Duration
	Before    time.Duration
	HasAfter  bool
	HasBefore bool
}

// WrapsMidnight reports whether the after bound is later than the before
// bound, i.e. the window crosses midnight.
func (w Window) WrapsMidnight() bool {
	return w.HasAfter && w.HasBefore && w.After > w.Before
}

// ParseWindow extracts the first after and before times from text. ok is
// false when neither bound holds a valid time of day.
func ParseWindow(text string) (Window, bool) {
	var w Window
	for _, m := range boundRe.FindAllStringSubmatch(strings.ToLower(text), -1) {
		at, valid := timeOfDay(m[2], m[3], m[4])
		if !valid {
			continue
		}
		switch m[1] {
		case "after":
			if !w.HasAfter {
				w.After, w.HasAfter = at, true
			}
		case "before":
			if !w.HasBefore {
				w.Before, w.HasBefore = at, true
			}
		}
	}
	return w, w.HasAfter || w.HasBefore
}

func timeOfDay(hourText, minuteText, meridiem string) (time.Duration, bool) {
	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return 0, false
	}
	minute := 0
	if minuteText != "" {
		if minute, err = strconv.Atoi(minuteText); err != nil || minute > 59 {
			return 0, false
		}
	}
	switch meridiem {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		hour %= 12
		if meridiem == "pm" {
			hour += 12
		}
	default:
		if hour > 23 {
			return 0, false
		}
	}
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute, true
}

// IsCompoundRange reports whether entry combines an after and a before bound.
func IsCompoundRange(entry string) bool {
	return strings.Contains(entry, " and ") &&
		strings.Contains(entry, "before ") &&
		strings.Contains(entry, "after ")
}

// SplitWrappingRange splits an entry such as "after 10pm and before 5am"
// into its two bounds when the window crosses midnight. Any leading or
// trailing qualifier ("every weekday") is kept on both halves. ok is false
// when entry does not need splitting.
func SplitWrappingRange(entry string) (first, second string, ok bool) {
	if !IsCompoundRange(entry) {
		return "", "", false
	}
	w, parsed := ParseWindow(FixShortHours(entry))
	if !parsed || !w.WrapsMidnight() {
		return "", "", false
	}
	if !afterBeforeRe.MatchString(entry) {
		return "", "", false
	}
	first = strings.TrimSpace(afterBeforeRe.ReplaceAllString(entry, "${1}${2} ${3} ${7}"))
	second = strings.TrimSpace(afterBeforeRe.ReplaceAllString(entry, "${1}${4} ${5} ${7}"))
	return first, second, true
}

// Canonicalize applies the legacy textual rewrites to a single entry, in
// order.
func Canonicalize(entry string) string {
	// Legacy behavior: "last day" has always been mapped onto the first day.
	entry = strings.Replace(entry, "on the last day of the month", "on the first day of the month", 1)
	entry = strings.Replace(entry, "on every weekday", "every weekday", 1)
	entry = strings.TrimSuffix(entry, " every day")
	if everyDayOfRe.MatchString(entry) {
		entry = trailingDayRe.ReplaceAllString(entry, "on ${1}")
	}
	if strings.HasSuffix(entry, "days") {
		entry = strings.Replace(entry, "days", "day", 1)
	}
	return entry
}
