package generator

import "time"

// PostingWindow lists the best posting slots for one weekday.
type PostingWindow struct {
	Day     string   `json:"day"`
	Times   []string `json:"times"`
	Quality string   `json:"quality"`
}

// OptimalPostingTimes returns the weekly posting-time table.
func OptimalPostingTimes() []PostingWindow {
	return []PostingWindow{
		{Day: "Monday", Times: []string{"8:00 AM", "12:00 PM", "5:00 PM"}, Quality: "good"},
		{Day: "Tuesday", Times: []string{"9:00 AM", "1:00 PM", "6:00 PM"}, Quality: "excellent"},
		{Day: "Wednesday", Times: []string{"9:00 AM", "12:00 PM", "5:00 PM"}, Quality: "excellent"},
		{Day: "Thursday", Times: []string{"8:00 AM", "1:00 PM", "5:00 PM"}, Quality: "good"},
		{Day: "Friday", Times: []string{"9:00 AM", "12:00 PM"}, Quality: "moderate"},
		{Day: "Saturday", Times: []string{"10:00 AM", "2:00 PM"}, Quality: "moderate"},
		{Day: "Sunday", Times: []string{"11:00 AM", "4:00 PM", "7:00 PM"}, Quality: "good"},
	}
}

// PostingAdvice says whether now is a good moment to post and, if not,
// when the next window opens.
type PostingAdvice struct {
	IsGoodTime   bool   `json:"is_good_time"`
	NextBestTime string `json:"next_best_time,omitempty"`
	Reason       string `json:"reason"`
}

// BestPostingTime evaluates a moment against the engagement peaks:
// weekdays 8-9 AM, 12-1 PM, and 5-6 PM; weekends 10-11 AM and 2-4 PM.
func BestPostingTime(now time.Time) PostingAdvice {
	hour := now.Hour()
	weekday := now.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday

	var isGoodTime bool
	if isWeekend {
		isGoodTime = (hour >= 10 && hour <= 11) || (hour >= 14 && hour <= 16)
	} else {
		isGoodTime = (hour >= 8 && hour <= 9) || (hour >= 12 && hour <= 13) || (hour >= 17 && hour <= 18)
	}

	if isGoodTime {
		return PostingAdvice{
			IsGoodTime: true,
			Reason:     "Peak engagement hour - post now!",
		}
	}

	var next string
	switch {
	case hour < 8:
		next = "8:00 AM"
	case hour < 12:
		next = "12:00 PM"
	case hour < 17:
		next = "5:00 PM"
	default:
		next = "Tomorrow 8:00 AM"
	}

	return PostingAdvice{
		NextBestTime: next,
		Reason:       "Wait for " + next + " for better reach",
	}
}
