package console

import (
	"testing"
	"time"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{499, "₹499"},
		{1000, "₹1,000"},
		{1234567.5, "₹12,34,567.50"},
		{100000, "₹1,00,000"},
		{249.99, "₹249.99"},
		{-1500, "-₹1,500"},
	}
	for _, tc := range cases {
		if got := FormatINR(tc.amount); got != tc.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{150, "2h 30m"},
		{45, "45m"},
		{120, "2h"},
		{0, "0m"},
		{60, "1h"},
		{61, "1h 1m"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.minutes); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestDurationRoundTrip(t *testing.T) {
	for _, minutes := range []int{1, 45, 60, 61, 120, 150, 1439} {
		s := FormatDuration(minutes)
		got, err := ParseDuration(s)
		if err != nil {
			t.Fatalf("ParseDuration(%q) returned error: %v", s, err)
		}
		if got != minutes {
			t.Errorf("round-trip %d -> %q -> %d", minutes, s, got)
		}
	}
}

func TestParseDurationRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2x", "h", "2h 30", "ninety m"} {
		if _, err := ParseDuration(s); err == nil {
			t.Errorf("ParseDuration(%q) should fail", s)
		}
	}
}

func TestCombineDuration(t *testing.T) {
	if got := CombineDuration(2, 30); got != 150 {
		t.Fatalf("CombineDuration(2, 30) = %d, want 150", got)
	}
}

func TestInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Asha", "AS"},
		{"Ravi Kumar", "RK"},
		{"ravi kumar", "RK"},
		{"Anita Sharma Rao", "AR"},
		{"", "?"},
		{"   ", "?"},
		{"X", "X"},
	}
	for _, tc := range cases {
		if got := Initials(tc.name); got != tc.want {
			t.Errorf("Initials(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestFormatRating(t *testing.T) {
	if got := FormatRating(4.5); got != "★ 4.5" {
		t.Fatalf("FormatRating(4.5) = %q", got)
	}
	if got := FormatRating(5); got != "★ 5.0" {
		t.Fatalf("FormatRating(5) = %q", got)
	}
}

func TestFormatDateZero(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "—" {
		t.Fatalf("zero time should render placeholder, got %q", got)
	}
	at := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)
	if got := FormatDate(at); got != "07 Mar 2025" {
		t.Fatalf("FormatDate = %q", got)
	}
	if got := FormatDateTime(at); got != "07 Mar 2025, 2:30 PM" {
		t.Fatalf("FormatDateTime = %q", got)
	}
}

func TestFormatSlot(t *testing.T) {
	slot := ScheduledSlot{
		Start: time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC),
	}
	if got := FormatSlot(slot); got != "07 Mar 2025, 10:00 AM – 12:00 PM" {
		t.Fatalf("FormatSlot = %q", got)
	}
	if got := FormatSlot(ScheduledSlot{}); got != "—" {
		t.Fatalf("empty slot should render placeholder, got %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	if got := TitleCase("in progress"); got != "In Progress" {
		t.Fatalf("TitleCase = %q", got)
	}
}
