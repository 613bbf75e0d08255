package console

import "time"

// ActivityType classifies recent-activity feed entries.
type ActivityType string

const (
	ActivityBooking      ActivityType = "booking"
	ActivityRegistration ActivityType = "registration"
	ActivityPayment      ActivityType = "payment"
	ActivityDispute      ActivityType = "dispute"
	ActivityReview       ActivityType = "review"
)

// ActivityEntry is one row of the dashboard's recent-activity feed.
type ActivityEntry struct {
	Type    ActivityType
	Title   string
	Detail  string
	Status  string
	At      time.Time
}

var activityIcons = map[ActivityType]string{
	ActivityBooking:      "calendar",
	ActivityRegistration: "user-plus",
	ActivityPayment:      "credit-card",
	ActivityDispute:      "alert-triangle",
	ActivityReview:       "star",
}

var statusColors = map[string]string{
	"pending":    "amber",
	"assigned":   "blue",
	"accepted":   "blue",
	"completed":  "green",
	"rejected":   "red",
	"failed":     "red",
	"refunded":   "purple",
	"open":       "amber",
	"inProgress": "blue",
	"closed":     "green",
	"reopen":     "red",
}

// ActivityIcon maps an entry type to its icon name; unknown types fall back
// to a neutral dot.
func ActivityIcon(t ActivityType) string {
	if icon, ok := activityIcons[t]; ok {
		return icon
	}
	return "circle"
}

// StatusColor maps a status string to its badge color; unknown statuses are
// gray.
func StatusColor(status string) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return "gray"
}
