package progression

import (
	"sort"

	"github.com/sandeepkv93/habitd/internal/model"
)

// CurrentStreak counts fully completed days walking back from boundary to
// day 1, stopping at the first day that is incomplete or missing.
func CurrentStreak(days []model.Day, boundary int) int {
	byNumber := indexByNumber(days)
	streak := 0
	for n := boundary; n >= 1; n-- {
		day, ok := byNumber[n]
		if !ok || !day.FullyCompleted() {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive fully completed days
// within 1..boundary. Missing days break a run.
func LongestStreak(days []model.Day, boundary int) int {
	byNumber := indexByNumber(days)
	longest, run := 0, 0
	for n := 1; n <= boundary; n++ {
		day, ok := byNumber[n]
		if ok && day.FullyCompleted() {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return longest
}

// CompletedDays lists the numbers of all fully completed days in ascending order.
func CompletedDays(days []model.Day) []int {
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d.FullyCompleted() {
			out = append(out, d.DayNumber)
		}
	}
	sort.Ints(out)
	return out
}

func indexByNumber(days []model.Day) map[int]model.Day {
	m := make(map[int]model.Day, len(days))
	for _, d := range days {
		m[d.DayNumber] = d
	}
	return m
}
