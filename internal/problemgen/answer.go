package problemgen

import (
	"math"
	"strconv"
	"strings"
)

// WrongAnswer is what unparsable input becomes. Every generated answer is
// non-negative, so it never matches.
const WrongAnswer int32 = math.MinInt32

// MaxAnswerLen caps the typed answer, sign included.
const MaxAnswerLen = 8

// ParseAnswer converts typed input to a number. Whitespace is trimmed and
// leading zeros are ignored ("007" is 7). Anything else maps to WrongAnswer.
func ParseAnswer(input string) int32 {
	input = strings.TrimSpace(input)
	if input == "" {
		return WrongAnswer
	}
	n, err := strconv.ParseInt(input, 10, 32)
	if err != nil {
		return WrongAnswer
	}
	return int32(n)
}

// FormatAnswer renders a parsed answer for review lists.
func FormatAnswer(n int32) string {
	if n == WrongAnswer {
		return "?"
	}
	return strconv.FormatInt(int64(n), 10)
}
