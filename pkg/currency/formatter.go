package currency

import (
	"strconv"
)

const RupeeSymbol = "₹"

// FormatINR renders whole rupees with Indian digit grouping, e.g. ₹1,23,456.
func FormatINR(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	result := RupeeSymbol + addIndianSeparators(strconv.Itoa(amount), ",")
	if negative {
		result = "-" + result
	}

	return result
}

// The last three digits form one group, every group before that has two.
func addIndianSeparators(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	head := s[:n-3]
	tail := s[n-3:]

	numSeps := (len(head)-1)/2 + 1
	result := make([]byte, 0, n+numSeps)

	lead := len(head) % 2
	if lead == 0 {
		lead = 2
	}
	result = append(result, head[:lead]...)
	for i := lead; i < len(head); i += 2 {
		result = append(result, sep[0])
		result = append(result, head[i:i+2]...)
	}
	result = append(result, sep[0])
	result = append(result, tail...)

	return string(result)
}
