package branch

import (
	"fmt"
	"time"

	"github.com/billcraft/billcraft/internal/types"
)

// Branch is an issuing branch address. Each branch owns the monotonic
// sequence from which final invoice numbers are issued, e.g. MB24250001:
// branch code, fiscal year pair, 4-digit sequence.
type Branch struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Address      string `json:"branch_address"`
	LastSequence int64  `json:"last_sequence"`
	types.BaseModel
}

// FormatFinalNumber renders the final invoice number for a given sequence
// value at a point in time. The fiscal year runs April to March.
func (b *Branch) FormatFinalNumber(seq int64, now time.Time) string {
	year := now.Year()
	if now.Month() < time.April {
		year--
	}
	return fmt.Sprintf("%s%02d%02d%04d", b.Code, year%100, (year+1)%100, seq)
}
