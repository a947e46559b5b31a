package entity

import "strings"

const (
	cpfDigits   = 11
	phoneDigits = 11
)

// Digits drops every character that is not an ASCII digit.
func Digits(raw string) string {
	var b strings.Builder

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// FormatCPF masks up to 11 digits as 000.000.000-00. Punctuation is added only
// for the digits actually present.
func FormatCPF(raw string) string {
	nums := truncate(Digits(raw), cpfDigits)

	switch {
	case len(nums) <= 3:
		return nums
	case len(nums) <= 6:
		return nums[:3] + "." + nums[3:]
	case len(nums) <= 9:
		return nums[:3] + "." + nums[3:6] + "." + nums[6:]
	default:
		return nums[:3] + "." + nums[3:6] + "." + nums[6:9] + "-" + nums[9:]
	}
}

// FormatPhone masks up to 11 digits as (00) 00000-0000.
func FormatPhone(raw string) string {
	nums := truncate(Digits(raw), phoneDigits)

	switch {
	case len(nums) == 0:
		return ""
	case len(nums) <= 2:
		return "(" + nums
	case len(nums) <= 7:
		return "(" + nums[:2] + ") " + nums[2:]
	default:
		return "(" + nums[:2] + ") " + nums[2:7] + "-" + nums[7:]
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}

	return s
}
