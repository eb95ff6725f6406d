package memreport

import (
	"fmt"
	"strings"

	units "github.com/docker/go-units"
)

var kibUnits = []string{"KiB", "MiB", "GiB", "TiB", "PiB"}

// Bar turns a fraction 0.0 - 1.0 into a bar graph of the given length
func Bar(fraction float64, length int) string {
	if length <= 0 {
		return ""
	}
	fraction = min(max(fraction, 0), 1)

	hashes := int(fraction * float64(length))
	return strings.Repeat("#", hashes) + strings.Repeat(" ", length-hashes)
}

// HumanKiB formats a KiB amount with binary units, e.g. 1536 -> "1.50 MiB"
func HumanKiB(kib uint64, decimals int) string {
	format := fmt.Sprintf("%%.%df %%s", decimals)
	return units.CustomSize(format, float64(kib), 1024, kibUnits)
}

// Percent returns the whole percentage of a fraction, rounded down
func Percent(fraction float64) int {
	return int(fraction * 100)
}
