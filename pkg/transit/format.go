package transit

import "fmt"

// FormatDuration renders a duration in seconds in the display format stored on
// itineraries ("3분 20초", "45초").
func FormatDuration(seconds int) string {
	if seconds >= 60 {
		return fmt.Sprintf("%d분 %d초", seconds/60, seconds%60)
	}

	return fmt.Sprintf("%d초", seconds)
}

// FormatDistance renders a distance in metres ("450m", "1.50km").
func FormatDistance(metres int) string {
	if metres > 1000 {
		return fmt.Sprintf("%.2fkm", float64(metres)/1000)
	}

	return fmt.Sprintf("%dm", metres)
}

func FormatFare(won int) string {
	return fmt.Sprintf("%d원", won)
}
