package internal

import (
	"fmt"
	"strconv"
)

// byteUnit is one (threshold, suffix) pair of the decimal size scale.
type byteUnit struct {
	threshold float64
	suffix    string
}

// Decimal SI scale, largest first. Built once, never mutated.
var byteUnits = []byteUnit{
	{1e24, "YB"},
	{1e21, "ZB"},
	{1e18, "EB"},
	{1e15, "PB"},
	{1e12, "TB"},
	{1e9, "GB"},
	{1e6, "MB"},
	{1e3, "kB"},
}

// HumanizeBytes renders n with the largest unit whose threshold it reaches.
// Scaled values keep exactly one decimal place ("%.1f", round half to even);
// counts below 1000 keep their exact integer form with a "B" suffix.
func HumanizeBytes(n int64) string {
	if n < 0 {
		n = 0
	}

	v := float64(n)
	for _, u := range byteUnits {
		if v >= u.threshold {
			return fmt.Sprintf("%.1f%s", v/u.threshold, u.suffix)
		}
	}

	return strconv.FormatInt(n, 10) + "B"
}
