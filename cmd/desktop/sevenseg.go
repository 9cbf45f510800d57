package main

import (
	"strconv"
	"strings"
)

// segmentedZero is SEGMENTED DIGIT ZERO; digits 1-9 follow it
const segmentedZero = 0x1FBF0

// sevenSeg renders n with seven-segment digit glyphs
func sevenSeg(n int) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return segmentedZero + r - '0'
		}
		return r
	}, strconv.Itoa(n))
}
