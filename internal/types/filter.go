package types

import (
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/samber/lo"
)

const (
	defaultFilterLimit = 50
	maxFilterLimit     = 1000
)

// BaseFilter is the minimal paging contract shared by list filters.
type BaseFilter interface {
	GetLimit() int
	GetOffset() int
	IsUnlimited() bool
}

// QueryFilter holds common pagination options for list operations.
// A nil Limit means the default page size; NoLimit disables paging.
type QueryFilter struct {
	Limit   *int `json:"limit,omitempty" form:"limit" validate:"omitempty,min=1,max=1000"`
	Offset  *int `json:"offset,omitempty" form:"offset" validate:"omitempty,min=0"`
	NoLimit bool `json:"-" form:"-"`
}

// NewDefaultQueryFilter creates a new query filter with default options
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(defaultFilterLimit),
		Offset: lo.ToPtr(0),
	}
}

// NewNoLimitQueryFilter creates a new query filter without pagination
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		NoLimit: true,
	}
}

func (f *QueryFilter) Validate() error {
	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > maxFilterLimit) {
		return ierr.NewError("limit out of range").
			WithHintf("Limit must be between 1 and %d", maxFilterLimit).
			Mark(ierr.ErrValidation)
	}
	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("offset must be non negative").
			WithHint("Offset must be non negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (f *QueryFilter) GetLimit() int {
	if f == nil || f.Limit == nil {
		return defaultFilterLimit
	}
	return *f.Limit
}

func (f *QueryFilter) GetOffset() int {
	if f == nil || f.Offset == nil {
		return 0
	}
	return *f.Offset
}

func (f *QueryFilter) IsUnlimited() bool {
	return f != nil && f.NoLimit
}
