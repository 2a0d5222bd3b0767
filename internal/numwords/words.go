// Package numwords renders non-negative integers as English words in the
// short scale, for the amount-in-words line of printed invoices.
package numwords

import (
	"strings"
)

var ones = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}

var teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// scales are applied largest-first by repeated grouping; the list covers
// the full int64 range.
var scales = []struct {
	value int64
	word  string
}{
	{1_000_000_000_000_000_000, "Quintillion"},
	{1_000_000_000_000_000, "Quadrillion"},
	{1_000_000_000_000, "Trillion"},
	{1_000_000_000, "Billion"},
	{1_000_000, "Million"},
	{1_000, "Thousand"},
}

// ToWords converts a non-negative integer into English words.
// Groups are joined by single spaces; there is no "and" insertion and no
// hyphenation. Negative input is out of contract: callers round or clamp
// first, the way the invoice aggregator's rounded total already does.
func ToWords(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var parts []string
	for _, scale := range scales {
		if n >= scale.value {
			parts = append(parts, ToWords(n/scale.value), scale.word)
			n %= scale.value
		}
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	return strings.Join(parts, " ")
}

func belowThousand(n int64) string {
	if n >= 100 {
		s := ones[n/100] + " Hundred"
		if rest := n % 100; rest > 0 {
			s += " " + belowHundred(rest)
		}
		return s
	}
	return belowHundred(n)
}

func belowHundred(n int64) string {
	switch {
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	default:
		s := tens[n/10]
		if rest := n % 10; rest > 0 {
			s += " " + ones[rest]
		}
		return s
	}
}
