package console

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// FormatINR renders an amount with the rupee sign and Indian digit grouping
// (last three digits, then groups of two): 1234567.5 -> "₹12,34,567.50".
// Whole amounts drop the fraction: 0 -> "₹0".
func FormatINR(amount float64) string {
	cents := int64(math.Round(amount * 100))
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole, rem := cents/100, cents%100

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteRune('₹')
	b.WriteString(groupIndian(strconv.FormatInt(whole, 10)))
	if rem != 0 {
		fmt.Fprintf(&b, ".%02d", rem)
	}
	return b.String()
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// FormatDuration renders total minutes as "Xh Ym". Sub-hour durations drop
// the hour part and whole hours drop the minutes: 150 -> "2h 30m",
// 45 -> "45m", 120 -> "2h".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// ParseDuration reverses FormatDuration: "2h 30m" -> 150. It accepts any
// combination of an hour and a minute component.
func ParseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("console: empty duration")
	}
	total := 0
	seen := false
	for _, part := range strings.Fields(s) {
		switch {
		case strings.HasSuffix(part, "h"):
			v, err := strconv.Atoi(strings.TrimSuffix(part, "h"))
			if err != nil {
				return 0, fmt.Errorf("console: parse duration %q: %w", s, err)
			}
			total += v * 60
			seen = true
		case strings.HasSuffix(part, "m"):
			v, err := strconv.Atoi(strings.TrimSuffix(part, "m"))
			if err != nil {
				return 0, fmt.Errorf("console: parse duration %q: %w", s, err)
			}
			total += v
			seen = true
		default:
			return 0, fmt.Errorf("console: parse duration %q: unknown component %q", s, part)
		}
	}
	if !seen {
		return 0, fmt.Errorf("console: parse duration %q: no components", s)
	}
	return total, nil
}

// CombineDuration folds the separate hour/minute selectors used by the
// subcategory form back into total minutes.
func CombineDuration(hours, minutes int) int {
	return hours*60 + minutes
}

// Initials derives the two-letter badge shown when an entity has no image or
// the image failed to load: "Asha" -> "AS", "Ravi Kumar" -> "RK".
func Initials(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		runes := []rune(fields[0])
		if len(runes) == 1 {
			return strings.ToUpper(string(runes[0]))
		}
		return strings.ToUpper(string(runes[:2]))
	default:
		first := []rune(fields[0])
		last := []rune(fields[len(fields)-1])
		return strings.ToUpper(string(first[0]) + string(last[0]))
	}
}

// FormatRating renders the star glyph plus the numeric value: "★ 4.5".
func FormatRating(rating float64) string {
	return fmt.Sprintf("★ %.1f", rating)
}

// FormatDate renders a timestamp for table cells.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02 Jan 2006")
}

// FormatDateTime renders a timestamp with the time of day, for detail views.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02 Jan 2006, 3:04 PM")
}

// FormatSlot renders a scheduled window as "02 Jan 2006, 10:00 AM – 12:00 PM".
func FormatSlot(s ScheduledSlot) string {
	if s.Start.IsZero() {
		return "—"
	}
	return fmt.Sprintf("%s, %s – %s",
		s.Start.Format("02 Jan 2006"),
		s.Start.Format("3:04 PM"),
		s.End.Format("3:04 PM"),
	)
}

// TitleCase uppercases the first rune of each word, for status badges.
func TitleCase(s string) string {
	prev := ' '
	return strings.Map(func(r rune) rune {
		out := r
		if unicode.IsSpace(prev) {
			out = unicode.ToUpper(r)
		}
		prev = r
		return out
	}, s)
}
