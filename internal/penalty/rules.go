// Package penalty holds the pure penalty point and sanction rules. Nothing in
// here touches storage; callers persist the results.
package penalty

import (
	"time"

	"council-rental-backend/internal/domain"
)

// Point values per penalty event. Per-day types are multiplied by the number
// of days charged.
const (
	PointsOverduePerDay     int32 = 1
	PointsReturnDelayPerDay int32 = 2
	PointsDamageMinor       int32 = 5
	PointsMultipleOverdue   int32 = 5
	PointsDamageMajor       int32 = 15
	PointsLoss              int32 = 30
)

// Sanction thresholds on cumulative points, evaluated top-down. First match
// wins.
const (
	ThresholdPermanentBan     int32 = 50
	ThresholdSuspension3Month int32 = 30
	ThresholdSuspension1Month int32 = 20
	ThresholdWarning          int32 = 10
)

// PointsFor returns the point value of an event. days applies only to the
// per-day types and is clamped to zero.
func PointsFor(t domain.PenaltyType, days int32) int32 {
	if days < 0 {
		days = 0
	}
	switch t {
	case domain.PenaltyTypeOverdue:
		return PointsOverduePerDay * days
	case domain.PenaltyTypeReturnDelay:
		return PointsReturnDelayPerDay * days
	case domain.PenaltyTypeDamageMinor:
		return PointsDamageMinor
	case domain.PenaltyTypeDamageMajor:
		return PointsDamageMajor
	case domain.PenaltyTypeLoss:
		return PointsLoss
	case domain.PenaltyTypeMultipleOverdue:
		return PointsMultipleOverdue
	default:
		return 0
	}
}

// Sanction is the outcome of classifying a point total. EndDate is nil for
// the warning tier and the permanent ban.
type Sanction struct {
	Type    domain.SanctionType
	EndDate *time.Time
}

// Classify maps a cumulative point total to a sanction tier. It returns nil
// when the total is below the warning threshold. The tier is recomputed from
// the total every time, never stepped incrementally, so a large jump lands
// directly on the matching tier.
func Classify(totalPoints int32, now time.Time) *Sanction {
	switch {
	case totalPoints >= ThresholdPermanentBan:
		return &Sanction{Type: domain.SanctionPermanentBan}
	case totalPoints >= ThresholdSuspension3Month:
		end := now.AddDate(0, 3, 0)
		return &Sanction{Type: domain.SanctionSuspension3Month, EndDate: &end}
	case totalPoints >= ThresholdSuspension1Month:
		end := now.AddDate(0, 1, 0)
		return &Sanction{Type: domain.SanctionSuspension1Month, EndDate: &end}
	case totalPoints >= ThresholdWarning:
		return &Sanction{Type: domain.SanctionWarning}
	default:
		return nil
	}
}

// OverdueDays returns the number of full 24-hour periods the rental is past
// due at now, truncated. Zero or negative means not overdue.
func OverdueDays(dueOn, now time.Time) int32 {
	if !now.After(dueOn) {
		return 0
	}
	return int32(now.Sub(dueOn).Hours() / 24)
}
