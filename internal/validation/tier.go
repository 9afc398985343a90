package validation

import (
	"github.com/contractflow/contractflow/internal/apperr"
	"github.com/contractflow/contractflow/internal/models"
	"github.com/shopspring/decimal"
)

// CheckTier validates tier fields. Nil means the field was not supplied on
// a partial update and is skipped; the combined min/max ordering is only
// checked when both sides are known, so callers merge in persisted values
// before calling.
func CheckTier(minCalls, maxCalls *int, unitPrice *decimal.Decimal) error {
	if minCalls != nil && *minCalls < 0 {
		return apperr.NewField(apperr.KindInvalidRange, "min_calls", "min_calls must not be negative")
	}
	if maxCalls != nil && *maxCalls < models.UnlimitedCalls {
		return apperr.NewField(apperr.KindInvalidRange, "max_calls", "max_calls must be -1 (unlimited) or non-negative")
	}
	if minCalls != nil && maxCalls != nil && *maxCalls != models.UnlimitedCalls && *minCalls >= *maxCalls {
		return apperr.NewField(apperr.KindInvalidRange, "min_calls", "min_calls must be less than max_calls")
	}
	if unitPrice != nil && unitPrice.IsNegative() {
		return apperr.NewField(apperr.KindInvalidValue, "unit_price", "unit_price must not be negative")
	}
	return nil
}
