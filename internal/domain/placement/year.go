package placement

import (
	"time"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
)

// Year aggregates per-batch placement analytics
type Year struct {
	shared.BaseAggregateRoot
	Year                      int
	TotalStudentsParticipated int
	TotalPlaced               int
}

// CompanyYearStats is the per-company breakdown inside a year's analytics
type CompanyYearStats struct {
	CompanyName string `json:"companyName"`
	Placed      int    `json:"placed"`
	Status      string `json:"status"`
}

// NewYear creates analytics for a placement year
func NewYear(year int) (*Year, error) {
	if year <= 0 {
		return nil, shared.NewDomainError("INVALID_YEAR", "Year must be positive")
	}
	return &Year{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Year:              year,
	}, nil
}

// RecordParticipation increments the participating-student counter
func (y *Year) RecordParticipation() {
	y.TotalStudentsParticipated++
	y.touch()
}

// RecordPlacement increments the placed counter
func (y *Year) RecordPlacement() {
	y.TotalPlaced++
	y.touch()
}

// RemoveParticipation decrements the participating-student counter,
// flooring at zero
func (y *Year) RemoveParticipation() {
	if y.TotalStudentsParticipated > 0 {
		y.TotalStudentsParticipated--
	}
	y.touch()
}

// RemovePlacements decrements the placed counter by n, flooring at zero
func (y *Year) RemovePlacements(n int) {
	y.TotalPlaced -= n
	if y.TotalPlaced < 0 {
		y.TotalPlaced = 0
	}
	y.touch()
}

func (y *Year) touch() {
	y.UpdatedAt = time.Now()
	y.IncrementVersion()
}
