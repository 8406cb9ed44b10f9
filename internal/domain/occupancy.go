package domain

import "context"

// HallOccupancy is the per-hall entry of an occupancy report.
// UtilizationRatio is the unrounded disabled/capacity fraction;
// UtilizationPercent is the same value as a percentage rounded to two decimals
// for display.
// swagger:model HallOccupancy
type HallOccupancy struct {
	Hall                 *Hall   `json:"hall"`
	RequiredReservations int     `json:"required_reservations"`
	UtilizationRatio     float64 `json:"utilization_ratio"`
	UtilizationPercent   float64 `json:"utilization_percent"`
}

// OccupancyReport aggregates reservation targets over all halls for a given
// target percentage.
// swagger:model OccupancyReport
type OccupancyReport struct {
	TargetPercent float64         `json:"target_percent"`
	Halls         []HallOccupancy `json:"halls"`
	TotalCapacity int             `json:"total_capacity"`
	TotalRequired int             `json:"total_required"`
}

// OccupancyService derives capacity metrics from the hall catalog. It is
// read-only and does not depend on the scheduler.
type OccupancyService interface {
	Report(ctx context.Context, targetPercent float64) (*OccupancyReport, error)
}
