package inbound

import (
	"github.com/healthmate/healthmate/internal/health/usecase"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/pkg/jwt"
	"github.com/healthmate/healthmate/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for plan retrieval and health insights.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) userID(r *router.Request) (string, error) {
	clm := jwt.GetAuth(r.Context())
	if clm == nil {
		return "", goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return clm.UserID, nil
}

// PlanGet returns the caller's health plan, regenerating it when stale.
// @Summary Get health plan
// @Description Returns the current plan. A plan from a previous day, or one missing meal suggestions, is recomputed first.
// @Tags Health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=HealthPlanResponse} "Health plan"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/health/plan [get]
func (h *HTTPEndpoint) PlanGet(r *router.Request) (any, error) {
	uid, err := h.userID(r)
	if err != nil {
		return nil, err
	}

	plan, err := h.uc.PlanGet(r.Context(), usecase.PlanGetInput{UserID: uid})
	if err != nil {
		return nil, err
	}

	return newHealthPlanResponse(plan), nil
}

// PlanRegenerate discards the stored plan and computes a fresh one.
// @Summary Regenerate health plan
// @Description Deletes the stored plan and derives a new one from the current profile.
// @Tags Health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=HealthPlanResponse} "Regenerated health plan"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/health/plan/regenerate [post]
func (h *HTTPEndpoint) PlanRegenerate(r *router.Request) (any, error) {
	uid, err := h.userID(r)
	if err != nil {
		return nil, err
	}

	plan, err := h.uc.PlanRegenerate(r.Context(), usecase.PlanRegenerateInput{UserID: uid})
	if err != nil {
		return nil, err
	}

	return newHealthPlanResponse(plan), nil
}

// BmiStatus returns the caller's BMI value and category.
// @Summary Get BMI status
// @Description Returns the BMI and its category from the current plan.
// @Tags Health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=BmiStatusResponse} "BMI status"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/health/bmi [get]
func (h *HTTPEndpoint) BmiStatus(r *router.Request) (any, error) {
	uid, err := h.userID(r)
	if err != nil {
		return nil, err
	}

	out, err := h.uc.BmiStatus(r.Context(), usecase.BmiStatusInput{UserID: uid})
	if err != nil {
		return nil, err
	}

	return BmiStatusResponse{BMI: out.BMI, Category: out.Category}, nil
}

// DailyTip returns the health tip for today's weekday.
// @Summary Get daily tip
// @Description Returns the fixed tip assigned to today's day of the week.
// @Tags Health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=DailyTipResponse} "Daily tip"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/health/tips/daily [get]
func (h *HTTPEndpoint) DailyTip(r *router.Request) (any, error) {
	tip, err := h.uc.DailyTip(r.Context())
	if err != nil {
		return nil, err
	}

	return DailyTipResponse{Title: tip.Title, Tip: tip.Tip, Icon: tip.Icon, Color: tip.Color}, nil
}
