package model

const fallbackFocusText = "Stay consistent today!"

var weeklyFocus = [7]string{
	"Kickstart the week with clear priorities and a structured plan.",
	"Deep dive into a challenging task to build momentum.",
	"Reflect on progress and adjust goals for the week.",
	"Strengthen connections through meaningful interactions.",
	"Complete key tasks and prepare for a restful weekend.",
	"Explore a new skill or hobby to spark creativity.",
	"Rest, recharge, and plan for the upcoming week.",
}

// FocusText maps a 1-based day number onto a seven-day cycle of prompts.
// Day numbers below 1 fall back to a generic prompt.
func FocusText(dayNumber int) string {
	weekday := (dayNumber - 1) % 7
	if weekday < 0 || weekday >= len(weeklyFocus) {
		return fallbackFocusText
	}
	return weeklyFocus[weekday]
}
