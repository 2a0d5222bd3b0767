package branch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFinalNumber(t *testing.T) {
	b := &Branch{Code: "MB"}

	tests := []struct {
		name     string
		now      time.Time
		seq      int64
		expected string
	}{
		{
			name:     "mid_fiscal_year",
			now:      time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			seq:      1,
			expected: "MB24250001",
		},
		{
			name:     "january_belongs_to_previous_fiscal_year",
			now:      time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			seq:      42,
			expected: "MB24250042",
		},
		{
			name:     "april_starts_new_fiscal_year",
			now:      time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			seq:      1,
			expected: "MB25260001",
		},
		{
			name:     "march_closes_fiscal_year",
			now:      time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
			seq:      9999,
			expected: "MB24259999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.FormatFinalNumber(tt.seq, tt.now))
		})
	}
}
