package inbound

import (
	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/pkg/jwt"
	"github.com/healthmate/healthmate/internal/pkg/router"
	"github.com/healthmate/healthmate/internal/tracker/entity"
	"github.com/healthmate/healthmate/internal/tracker/usecase"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes HTTP handlers for daily logs, workouts and meals.
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

// LogUpsert records or replaces today's metrics for the caller.
// @Summary Log daily stats
// @Description Upserts the metrics document for the given date (defaults to today) and syncs the user's current weight.
// @Tags Tracker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LogUpsertRequest true "Daily stats payload"
// @Success 200 {object} router.successResponse{data=DailyLogResponse} "Stored daily log"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/tracker/logs [post]
func (h *HTTPEndpoint) LogUpsert(r *router.Request) (any, error) {
	uid, err := h.userID(r)
	if err != nil {
		return nil, err
	}

	var req LogUpsertRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	log, err := h.uc.LogUpsert(r.Context(), usecase.LogUpsertInput{
		UserID:             uid,
		Date:               req.Date,
		Weight:             req.Weight,
		CaloriesBurned:     req.CaloriesBurned,
		WaterIntake:        req.WaterIntake,
		SleepDuration:      req.SleepDuration,
		Notes:              req.Notes,
		DailyCalorieTarget: req.DailyCalorieTarget,
		DailyWaterTarget:   req.DailyWaterTarget,
		DailySleepTarget:   req.DailySleepTarget,
	})
	if err != nil {
		return nil, err
	}

	return newDailyLogResponse(*log), nil
}

// LogHistory returns the caller's daily logs in ascending date order.
// @Summary Get log history
// @Description Returns every daily log for the caller, oldest first.
// @Tags Tracker
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=[]DailyLogResponse} "Daily logs"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/tracker/logs [get]
func (h *HTTPEndpoint) LogHistory(r *router.Request) (any, error) {
	uid, err := h.userID(r)
	if err != nil {
		return nil, err
	}

	logs, err := h.uc.LogHistory(r.Context(), usecase.LogHistoryInput{UserID: uid})
	if err != nil {
		return nil, err
	}

	return lo.Map(logs, func(l entity.DailyLog, _ int) DailyLogResponse {
		return newDailyLogResponse(l)
	}), nil
}

// Streak returns the caller's consecutive-day logging streak.
// @Summary Get logging streak
// @Description Counts consecutive logged days ending today or yesterday.
// @Tags Tracker
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=StreakResponse} "Streak count"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/tracker/streak [get]
func (h *HTTPEndpoint) Streak(r *router.Request) (any, error) {
	uid, err := h.userID(r)
	if err != nil {
		return nil, err
	}

	out, err := h.uc.Streak(r.Context(), usecase.StreakInput{UserID: uid})
	if err != nil {
		return nil, err
	}

	return StreakResponse{Streak: out.Days}, nil
}

// WorkoutSave records a workout for the caller.
// @Summary Add workout
// @Description Stores a workout entry for the caller.
// @Tags Tracker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body WorkoutSaveRequest true "Workout payload"
// @Success 200 {object} router.successResponse{data=WorkoutResponse} "Stored workout"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/tracker/workouts [post]
func (h *HTTPEndpoint) WorkoutSave(r *router.Request) (any, error) {
	uid, err := h.userID(r)
	if err != nil {
		return nil, err
	}

	var req WorkoutSaveRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	workout, err := h.uc.WorkoutSave(r.Context(), usecase.WorkoutSaveInput{
		UserID:         uid,
		Date:           req.Date,
		ExerciseType:   req.ExerciseType,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
		Notes:          req.Notes,
	})
	if err != nil {
		return nil, err
	}

	return newWorkoutResponse(*workout), nil
}

// WorkoutList returns the caller's workouts, newest first.
// @Summary List workouts
// @Description Returns the caller's workout entries.
// @Tags Tracker
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=[]WorkoutResponse} "Workouts"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/tracker/workouts [get]
func (h *HTTPEndpoint) WorkoutList(r *router.Request) (any, error) {
	uid, err := h.userID(r)
	if err != nil {
		return nil, err
	}

	workouts, err := h.uc.WorkoutList(r.Context(), usecase.WorkoutListInput{UserID: uid})
	if err != nil {
		return nil, err
	}

	return lo.Map(workouts, func(w entity.Workout, _ int) WorkoutResponse {
		return newWorkoutResponse(w)
	}), nil
}

// WorkoutDelete removes one of the caller's workouts.
// @Summary Delete workout
// @Description Deletes a workout entry owned by the caller.
// @Tags Tracker
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout ID"
// @Success 200 {object} router.successResponse "Deletion result"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 404 {object} router.errorResponse "Workout not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/tracker/workouts/{id} [delete]
func (h *HTTPEndpoint) WorkoutDelete(r *router.Request) (any, error) {
	uid, err := h.userID(r)
	if err != nil {
		return nil, err
	}

	if err := h.uc.WorkoutDelete(r.Context(), usecase.WorkoutDeleteInput{
		UserID:    uid,
		WorkoutID: r.GetParam("id"),
	}); err != nil {
		return nil, err
	}

	return WorkoutDeleteResponse{}, nil
}

// MealSave records a meal for the caller.
// @Summary Log meal
// @Description Stores a meal entry for the caller.
// @Tags Tracker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MealSaveRequest true "Meal payload"
// @Success 200 {object} router.successResponse{data=MealResponse} "Stored meal"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/tracker/meals [post]
func (h *HTTPEndpoint) MealSave(r *router.Request) (any, error) {
	uid, err := h.userID(r)
	if err != nil {
		return nil, err
	}

	var req MealSaveRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	meal, err := h.uc.MealSave(r.Context(), usecase.MealSaveInput{
		UserID:   uid,
		Date:     req.Date,
		MealType: req.MealType,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
		Notes:    req.Notes,
	})
	if err != nil {
		return nil, err
	}

	return newMealResponse(*meal), nil
}

// MealList returns the caller's meals, newest first.
// @Summary List meals
// @Description Returns the caller's meal entries.
// @Tags Tracker
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=[]MealResponse} "Meals"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/tracker/meals [get]
func (h *HTTPEndpoint) MealList(r *router.Request) (any, error) {
	uid, err := h.userID(r)
	if err != nil {
		return nil, err
	}

	meals, err := h.uc.MealList(r.Context(), usecase.MealListInput{UserID: uid})
	if err != nil {
		return nil, err
	}

	return lo.Map(meals, func(m entity.Meal, _ int) MealResponse {
		return newMealResponse(m)
	}), nil
}

// MealDelete removes one of the caller's meals.
// @Summary Delete meal
// @Description Deletes a meal entry owned by the caller.
// @Tags Tracker
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meal ID"
// @Success 200 {object} router.successResponse "Deletion result"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 404 {object} router.errorResponse "Meal not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/tracker/meals/{id} [delete]
func (h *HTTPEndpoint) MealDelete(r *router.Request) (any, error) {
	uid, err := h.userID(r)
	if err != nil {
		return nil, err
	}

	if err := h.uc.MealDelete(r.Context(), usecase.MealDeleteInput{
		UserID: uid,
		MealID: r.GetParam("id"),
	}); err != nil {
		return nil, err
	}

	return MealDeleteResponse{}, nil
}
