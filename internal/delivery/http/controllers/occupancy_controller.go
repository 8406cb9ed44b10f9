package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"cinephoria/internal/delivery/http/helpers"
	"cinephoria/internal/domain"
)

// OccupancyController exposes the occupancy report.
type OccupancyController struct {
	Logger        *slog.Logger
	Service       domain.OccupancyService
	DefaultTarget float64
}

func NewOccupancyController(logger *slog.Logger, svc domain.OccupancyService, defaultTarget float64) *OccupancyController {
	return &OccupancyController{
		Logger:        logger,
		Service:       svc,
		DefaultTarget: defaultTarget,
	}
}

// Report godoc
// @Summary Occupancy report over all halls
// @Description Computes, per hall, the number of reservations needed to reach
// @Description the target occupancy percentage, plus accessibility utilization.
// @Tags occupancy
// @Produce json
// @Param target query number false "Target occupancy percentage"
// @Success 200 {object} helpers.APIResponse "data contains the report"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /occupancy/report [get]
func (c *OccupancyController) Report(w http.ResponseWriter, r *http.Request) {
	target := c.DefaultTarget
	if raw := r.URL.Query().Get("target"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "target must be a non-negative number")
			return
		}
		target = parsed
	}

	report, err := c.Service.Report(r.Context(), target)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "occupancy report failed", "target", target, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}
