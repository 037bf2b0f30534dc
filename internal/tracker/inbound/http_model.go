package inbound

import "github.com/healthmate/healthmate/internal/tracker/entity"

type LogUpsertRequest struct {
	Date               string  `json:"date"`
	Weight             float64 `json:"weight"`
	CaloriesBurned     int     `json:"calories_burned"`
	WaterIntake        float64 `json:"water_intake"`
	SleepDuration      float64 `json:"sleep_duration"`
	Notes              string  `json:"notes"`
	DailyCalorieTarget int     `json:"daily_calorie_target"`
	DailyWaterTarget   float64 `json:"daily_water_target"`
	DailySleepTarget   float64 `json:"daily_sleep_target"`
}

type DailyLogResponse struct {
	ID                 string  `json:"id"`
	Date               string  `json:"date"`
	Weight             float64 `json:"weight"`
	CaloriesBurned     int     `json:"calories_burned"`
	WaterIntake        float64 `json:"water_intake"`
	SleepDuration      float64 `json:"sleep_duration"`
	Notes              string  `json:"notes"`
	DailyCalorieTarget int     `json:"daily_calorie_target"`
	DailyWaterTarget   float64 `json:"daily_water_target"`
	DailySleepTarget   float64 `json:"daily_sleep_target"`
}

func (DailyLogResponse) Message() string {
	return "Daily stats logged successfully!"
}

func newDailyLogResponse(log entity.DailyLog) DailyLogResponse {
	return DailyLogResponse{
		ID:                 log.ID,
		Date:               log.Date,
		Weight:             log.Weight,
		CaloriesBurned:     log.CaloriesBurned,
		WaterIntake:        log.WaterIntake,
		SleepDuration:      log.SleepDuration,
		Notes:              log.Notes,
		DailyCalorieTarget: log.DailyCalorieTarget,
		DailyWaterTarget:   log.DailyWaterTarget,
		DailySleepTarget:   log.DailySleepTarget,
	}
}

type StreakResponse struct {
	Streak int `json:"streak"`
}

type WorkoutSaveRequest struct {
	Date           string `json:"date"`
	ExerciseType   string `json:"exercise_type"`
	Duration       int    `json:"duration"`
	CaloriesBurned int    `json:"calories_burned"`
	Notes          string `json:"notes"`
}

type WorkoutResponse struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	ExerciseType   string `json:"exercise_type"`
	Duration       int    `json:"duration"`
	CaloriesBurned int    `json:"calories_burned"`
	Notes          string `json:"notes"`
}

func newWorkoutResponse(w entity.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:             w.ID,
		Date:           w.Date,
		ExerciseType:   w.ExerciseType,
		Duration:       w.Duration,
		CaloriesBurned: w.CaloriesBurned,
		Notes:          w.Notes,
	}
}

type WorkoutDeleteResponse struct{}

func (WorkoutDeleteResponse) Message() string {
	return "Workout deleted successfully"
}

type MealSaveRequest struct {
	Date     string  `json:"date"`
	MealType string  `json:"meal_type"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Notes    string  `json:"notes"`
}

type MealResponse struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	MealType string  `json:"meal_type"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Notes    string  `json:"notes"`
}

func newMealResponse(m entity.Meal) MealResponse {
	return MealResponse{
		ID:       m.ID,
		Date:     m.Date,
		MealType: m.MealType,
		Calories: m.Calories,
		Protein:  m.Protein,
		Carbs:    m.Carbs,
		Fats:     m.Fats,
		Notes:    m.Notes,
	}
}

type MealDeleteResponse struct{}

func (MealDeleteResponse) Message() string {
	return "Meal deleted successfully"
}
