package srs

import "time"

// learningDayZone is the fixed UTC+8 offset the learning day is anchored
// to. The window is computed from UTC time plus eight hours, never from
// the store's or host's timezone.
var learningDayZone = time.FixedZone("UTC+8", 8*60*60)

// LearningDayWindow returns the inclusive [start, end] bounds of the
// current learning day for the given instant: local midnight to 23:59:59
// in the fixed UTC+8 offset. Used both to restrict new_today_only
// selection by first-learn date and to count today's review events.
func LearningDayWindow(now time.Time) (start, end time.Time) {
	local := now.In(learningDayZone)
	start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, learningDayZone)
	end = time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 0, learningDayZone)
	return start, end
}
