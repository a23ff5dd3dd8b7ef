package views

import (
	"fmt"
	"time"
)

const dateLayout = "January 2, 2006"

// Greeting picks the salutation for the local hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

type HeaderData struct {
	Username      string
	Now           time.Time
	CurrentStreak int
}

func RenderHeader(data HeaderData) string {
	name := data.Username
	if name == "" {
		name = "User"
	}
	return fmt.Sprintf("%s, %s | %s | 🔥 %d", Greeting(data.Now), name, FormatDate(data.Now), data.CurrentStreak)
}
