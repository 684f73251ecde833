package utils

import "time"

// StartOfDay truncates t to midnight in the server's local zone
func StartOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
