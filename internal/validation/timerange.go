package validation

import (
	"fmt"
	"time"

	"github.com/contractflow/contractflow/internal/apperr"
	"github.com/google/uuid"
)

// Period is a half-open [Start, End) interval. Touching endpoints do not
// overlap: a card ending exactly when the next one begins is valid.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod normalizes both endpoints to UTC. Naive callers that hand in
// local timestamps compare consistently afterwards.
func NewPeriod(start, end time.Time) Period {
	return Period{Start: start.UTC(), End: end.UTC()}
}

// Sibling is an existing period the candidate must not collide with.
type Sibling struct {
	ID     uuid.UUID
	Period Period
}

// Overlaps reports whether two half-open intervals intersect.
func (p Period) Overlaps(o Period) bool {
	return p.Start.Before(o.End) && o.Start.Before(p.End)
}

// CheckOrder fails unless Start is strictly before End.
func (p Period) CheckOrder() error {
	if !p.Start.Before(p.End) {
		return apperr.NewField(apperr.KindInvalidRange, "start_date", "start_date must be before end_date")
	}
	return nil
}

// CheckWithin fails unless p lies entirely inside bounds. Used to keep a
// rate card period inside its contract.
func (p Period) CheckWithin(bounds Period) error {
	if p.Start.Before(bounds.Start) {
		return apperr.NewField(apperr.KindOutOfBounds, "start_date", "start_date cannot be before the contract start_date")
	}
	if p.End.After(bounds.End) {
		return apperr.NewField(apperr.KindOutOfBounds, "end_date", "end_date cannot be after the contract end_date")
	}
	return nil
}

// CheckOverlap fails if p intersects any sibling. The record being updated
// passes its own id as exclude so it never conflicts with itself; on create
// exclude is uuid.Nil.
func (p Period) CheckOverlap(siblings []Sibling, exclude uuid.UUID) error {
	for _, s := range siblings {
		if s.ID == exclude {
			continue
		}
		if p.Overlaps(s.Period) {
			return apperr.NewConflict("start_date",
				fmt.Sprintf("period overlaps with existing rate card %s", s.ID), s.ID)
		}
	}
	return nil
}
