package inbound

import (
	"context"

	"github.com/healthmate/healthmate/internal/health/entity"
	"github.com/healthmate/healthmate/internal/health/usecase"
	"github.com/healthmate/healthmate/internal/pkg/router"
)

type uc interface {
	PlanGet(ctx context.Context, in usecase.PlanGetInput) (*entity.HealthPlan, error)
	PlanRegenerate(ctx context.Context, in usecase.PlanRegenerateInput) (*entity.HealthPlan, error)
	BmiStatus(ctx context.Context, in usecase.BmiStatusInput) (*usecase.BmiStatusOutput, error)
	DailyTip(ctx context.Context) (*entity.Tip, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/health/plan", end.PlanGet)
	r.POST("/api/v1/health/plan/regenerate", end.PlanRegenerate)
	r.GET("/api/v1/health/bmi", end.BmiStatus)
	r.GET("/api/v1/health/tips/daily", end.DailyTip)
}
