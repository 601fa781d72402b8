package constants

import (
	"regexp"
	"strings"
)

// Weekdays in output order; day_of_week values are always one of these full names.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Varies is the literal price used when no single number applies.
const Varies = "Varies"

var dayTokens = map[string]int{
	"monday": 0, "mon": 0, "mo": 0, "m": 0,
	"tuesday": 1, "tues": 1, "tue": 1, "tu": 1, "t": 1,
	"wednesday": 2, "weds": 2, "wed": 2, "we": 2, "w": 2,
	"thursday": 3, "thurs": 3, "thur": 3, "thu": 3, "th": 3, "r": 3,
	"friday": 4, "fri": 4, "fr": 4, "f": 4,
	"saturday": 5, "sat": 5, "sa": 5,
	"sunday": 6, "sun": 6, "su": 6,
}

// groups that name a fixed set of days outright
var dayGroups = map[string][]int{
	"daily":     {0, 1, 2, 3, 4, 5, 6},
	"everyday":  {0, 1, 2, 3, 4, 5, 6},
	"every day": {0, 1, 2, 3, 4, 5, 6},
	"all week":  {0, 1, 2, 3, 4, 5, 6},
	"7 days":    {0, 1, 2, 3, 4, 5, 6},
	"weekdays":  {0, 1, 2, 3, 4},
	"weekday":   {0, 1, 2, 3, 4},
	"weekends":  {5, 6},
	"weekend":   {5, 6},
}

var (
	reRangeWords = regexp.MustCompile(`\s+(?:to|thru|through|until)\s+`)
	reListSep    = regexp.MustCompile(`\s*(?:,|&|/|\+|;|\band\b)\s*`)
	reDashes     = regexp.MustCompile(`\s*[-‐‑‒–—]\s*`)
)

// CanonicalDay maps a single day token ("Mon", "thurs", "Fridays") to its full name.
func CanonicalDay(input string) (string, bool) {
	idx, ok := dayIndex(input)
	if !ok {
		return "", false
	}
	return Weekdays[idx], true
}

// ExpandDays turns a day expression into the full day names it covers, in order
// of appearance. Ranges wrap around the week ("Fri-Mon"). ok is false when any part
// of the expression is not recognizable as a day.
func ExpandDays(input string) ([]string, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return nil, false
	}
	if g, ok := dayGroups[s]; ok {
		return names(g), true
	}

	s = reRangeWords.ReplaceAllString(s, "-")
	s = reDashes.ReplaceAllString(s, "-")

	var out []int
	for _, part := range reListSep.Split(s, -1) {
		if part == "" {
			continue
		}
		if g, ok := dayGroups[part]; ok {
			out = append(out, g...)
			continue
		}
		bounds := strings.Split(part, "-")
		switch len(bounds) {
		case 1:
			idx, ok := dayIndex(bounds[0])
			if !ok {
				return nil, false
			}
			out = append(out, idx)
		case 2:
			from, ok1 := dayIndex(bounds[0])
			to, ok2 := dayIndex(bounds[1])
			if !ok1 || !ok2 {
				return nil, false
			}
			for i := from; ; i = (i + 1) % 7 {
				out = append(out, i)
				if i == to {
					break
				}
			}
		default:
			return nil, false
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return names(dedupe(out)), true
}

func dayIndex(tok string) (int, bool) {
	t := strings.ToLower(strings.TrimSpace(tok))
	t = strings.TrimSuffix(t, ".")
	if idx, ok := dayTokens[t]; ok {
		return idx, true
	}
	// plurals: "mondays", "fridays"
	if len(t) > 3 {
		if idx, ok := dayTokens[strings.TrimSuffix(t, "s")]; ok {
			return idx, true
		}
	}
	return 0, false
}

func dedupe(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	out := in[:0]
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func names(idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = Weekdays[v]
	}
	return out
}
