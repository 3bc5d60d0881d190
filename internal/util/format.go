package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatBytes renders a size for upload hints and file lists, e.g. "512 B",
// "1.5 MB", "2 MB".
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	const units = "KMGTPE"
	value, exp := float64(bytes)/unit, 0
	for value >= unit && exp < len(units)-1 {
		value /= unit
		exp++
	}

	return strings.TrimSuffix(strconv.FormatFloat(value, 'f', 1, 64), ".0") + " " + string(units[exp]) + "B"
}

// FormatDuration renders a lifetime in words, e.g. "45 seconds",
// "30 minutes", "1 hour 30 minutes".
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)
	if duration < time.Minute {
		return plural(int(duration.Seconds()), "second")
	}

	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60

	switch {
	case hours == 0:
		return plural(minutes, "minute")
	case minutes == 0:
		return plural(hours, "hour")
	default:
		return plural(hours, "hour") + " " + plural(minutes, "minute")
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return strconv.Itoa(n) + " " + noun + "s"
}
