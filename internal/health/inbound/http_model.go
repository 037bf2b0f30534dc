package inbound

import "github.com/healthmate/healthmate/internal/health/entity"

type MealSuggestionResponse struct {
	MealType     string   `json:"meal_type"`
	Calories     int      `json:"calories"`
	Protein      int      `json:"protein"`
	Carbs        int      `json:"carbs"`
	Fats         int      `json:"fats"`
	Suggestion   string   `json:"suggestion"`
	Alternatives []string `json:"alternatives"`
}

type HealthPlanResponse struct {
	UserID              string                   `json:"user_id"`
	LastUpdated         string                   `json:"last_updated"`
	CalculatedBMI       float64                  `json:"calculated_bmi"`
	BMICategory         string                   `json:"bmi_category"`
	Goal                string                   `json:"goal"`
	DailyCalories       int                      `json:"daily_calories"`
	ProteinGrams        int                      `json:"protein_grams"`
	CarbsGrams          int                      `json:"carbs_grams"`
	FatsGrams           int                      `json:"fats_grams"`
	DailyWaterIntake    string                   `json:"daily_water_intake"`
	SleepRecommendation string                   `json:"sleep_recommendation"`
	DietPlan            []string                 `json:"diet_plan"`
	ExercisePlan        []string                 `json:"exercise_plan"`
	MealSuggestions     []MealSuggestionResponse `json:"meal_suggestions"`
}

func newHealthPlanResponse(plan *entity.HealthPlan) HealthPlanResponse {
	meals := make([]MealSuggestionResponse, 0, len(plan.MealSuggestions))
	for _, m := range plan.MealSuggestions {
		meals = append(meals, MealSuggestionResponse{
			MealType:     m.MealType,
			Calories:     m.Calories,
			Protein:      m.Protein,
			Carbs:        m.Carbs,
			Fats:         m.Fats,
			Suggestion:   m.Suggestion,
			Alternatives: m.Alternatives,
		})
	}

	return HealthPlanResponse{
		UserID:              plan.UserID,
		LastUpdated:         plan.LastUpdated,
		CalculatedBMI:       plan.CalculatedBMI,
		BMICategory:         plan.BMICategory,
		Goal:                plan.Goal,
		DailyCalories:       plan.DailyCalories,
		ProteinGrams:        plan.ProteinGrams,
		CarbsGrams:          plan.CarbsGrams,
		FatsGrams:           plan.FatsGrams,
		DailyWaterIntake:    plan.DailyWaterIntake,
		SleepRecommendation: plan.SleepRecommendation,
		DietPlan:            plan.DietPlan,
		ExercisePlan:        plan.ExercisePlan,
		MealSuggestions:     meals,
	}
}

type BmiStatusResponse struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

type DailyTipResponse struct {
	Title string `json:"title"`
	Tip   string `json:"tip"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
