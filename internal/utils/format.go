// Package utils provides shared utility functions
package utils

import (
	"fmt"
	"math"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes converts a byte count to a human-readable string using
// decimal (base-1000) units, e.g. "512 B", "1.0 KB", "4.2 MB". Bytes
// render without decimal places, larger units with exactly one. A value
// that would round to 1000.0 is promoted to the next unit instead.
func FormatBytes(size int64) string {
	value := float64(size)
	magnitude := 0
	for magnitude < len(byteUnits)-1 {
		rounded := math.Round(math.Abs(value)*10) / 10
		if rounded < 1000 {
			break
		}
		value /= 1000
		magnitude++
	}
	if magnitude == 0 {
		return fmt.Sprintf("%.0f %s", value, byteUnits[magnitude])
	}
	return fmt.Sprintf("%.1f %s", value, byteUnits[magnitude])
}
