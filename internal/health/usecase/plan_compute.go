package usecase

import (
	"strings"
	"time"

	"github.com/healthmate/healthmate/internal/health/entity"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
)

const minDailyCalories = 1200

// mealShares are the fixed calorie shares of the daily totals.
var mealShares = []struct {
	mealType string
	share    float64
}{
	{"Breakfast", 0.25},
	{"Lunch", 0.35},
	{"Snack", 0.10},
	{"Dinner", 0.30},
}

// mealTables holds candidate suggestions per goal category and meal type.
// The weekday cycles through the entries, so order matters.
var mealTables = map[string]map[string][]string{
	"loss": {
		"Breakfast": {
			"Oatmeal with Berries",
			"Egg White Omelette with Spinach",
			"Greek Yogurt with Chia Seeds",
		},
		"Lunch": {
			"Grilled Chicken Salad",
			"Steamed Vegetables with Fish",
			"Quinoa Bowl with Grilled Turkey",
		},
		"Snack": {
			"Green Tea + Almonds",
			"Apple Slices with Peanut Butter",
			"Carrot Sticks with Hummus",
		},
		"Dinner": {
			"Steamed Vegetables with Fish",
			"Grilled Chicken Breast with Broccoli",
			"Zucchini Noodles with Shrimp",
		},
	},
	"muscle": {
		"Breakfast": {
			"Eggs + Whole Wheat Toast",
			"Protein Pancakes with Banana",
			"Scrambled Eggs with Avocado Toast",
		},
		"Lunch": {
			"Brown Rice + Lean Beef/Chicken",
			"Quinoa + Salmon",
			"Pasta with Ground Turkey",
		},
		"Snack": {
			"Protein Shake / Greek Yogurt",
			"Cottage Cheese with Pineapple",
			"Peanut Butter Banana Toast",
		},
		"Dinner": {
			"Quinoa + Salmon",
			"Steak with Sweet Potato",
			"Chicken Stir Fry with Rice",
		},
	},
	"balanced": {
		"Breakfast": {
			"Whole Grain Cereal with Milk",
			"Avocado Toast with Eggs",
			"Fruit Smoothie with Oats",
		},
		"Lunch": {
			"Turkey Sandwich on Whole Wheat",
			"Mixed Grain Bowl with Chicken",
			"Vegetable Soup with Bread",
		},
		"Snack": {
			"Mixed Nuts",
			"Fresh Fruit Salad",
			"Yogurt with Granola",
		},
		"Dinner": {
			"Grilled Fish with Rice and Salad",
			"Chicken with Roasted Vegetables",
			"Tofu Stir Fry with Noodles",
		},
	},
}

func goalCategory(goal string) string {
	switch {
	case strings.Contains(goal, "loss"):
		return "loss"
	case strings.Contains(goal, "muscle"):
		return "muscle"
	default:
		return "balanced"
	}
}

// activityMultiplier resolves the TDEE multiplier by ordered substring match.
// "active" is checked before "very", so "very active" resolves to 1.725 rather
// than 1.9. Existing clients depend on the resulting targets, keep the order
// until product decides otherwise.
func activityMultiplier(activity string) float64 {
	switch {
	case strings.Contains(activity, "light"):
		return 1.375
	case strings.Contains(activity, "medium"):
		return 1.55
	case strings.Contains(activity, "active"):
		return 1.725
	case strings.Contains(activity, "very"):
		return 1.9
	default:
		return 1.2
	}
}

// computePlan derives the full plan from the profile at the given time. The
// derivation is deterministic for a fixed profile and calendar day.
func (s *Usecase) computePlan(profile entity.UserProfile, now time.Time) (entity.HealthPlan, error) {
	if profile.Height <= 0 {
		return entity.HealthPlan{}, goerror.NewBusiness("Height must be greater than zero", goerror.CodeInvalidInput)
	}

	heightM := profile.Height / 100
	bmi := profile.Weight / (heightM * heightM)

	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 24.9:
		category = "Normal"
	case bmi < 29.9:
		category = "Overweight"
	default:
		category = "Obese"
	}

	activity := strings.ToLower(profile.ActivityLevel)
	goal := strings.ToLower(profile.HealthGoal)

	bmr := 10*profile.Weight + 6.25*profile.Height - 5*float64(profile.Age) - 80
	tdee := bmr * activityMultiplier(activity)

	calories := tdee
	proteinRatio, carbsRatio, fatsRatio := 0.25, 0.45, 0.30
	switch {
	case strings.Contains(goal, "loss"):
		calories -= 500
		proteinRatio, carbsRatio, fatsRatio = 0.35, 0.35, 0.30
	case strings.Contains(goal, "muscle"):
		calories += 500
		proteinRatio, carbsRatio, fatsRatio = 0.30, 0.50, 0.20
	}

	if calories < minDailyCalories {
		calories = minDailyCalories
	}

	dailyCalories := int(calories)
	protein := int(calories * proteinRatio / 4)
	carbs := int(calories * carbsRatio / 4)
	fats := int(calories * fatsRatio / 9)

	dayIndex := int(now.Weekday())
	if dayIndex == 0 {
		dayIndex = 7
	}

	table := mealTables[goalCategory(goal)]
	meals := make([]entity.MealSuggestion, 0, len(mealShares))
	for _, m := range mealShares {
		candidates := table[m.mealType]
		meals = append(meals, entity.MealSuggestion{
			MealType:     m.mealType,
			Calories:     int(float64(dailyCalories) * m.share),
			Protein:      int(float64(protein) * m.share),
			Carbs:        int(float64(carbs) * m.share),
			Fats:         int(float64(fats) * m.share),
			Suggestion:   candidates[dayIndex%len(candidates)],
			Alternatives: candidates,
		})
	}

	diet := dietAdvisory(goal)
	exercise := exerciseAdvisory(activity)
	if category == "Obese" {
		exercise = []string{
			"Low Impact Cardio (Swimming/Walking) - Start Slow",
			"Consult a doctor before intense training",
		}
	}

	return entity.HealthPlan{
		ID:                  s.oid.Generate(),
		UserID:              profile.ID,
		LastUpdated:         now.Format(time.DateOnly),
		CalculatedBMI:       bmi,
		BMICategory:         category,
		Goal:                profile.HealthGoal,
		DailyCalories:       dailyCalories,
		ProteinGrams:        protein,
		CarbsGrams:          carbs,
		FatsGrams:           fats,
		DailyWaterIntake:    "2.5 Liters",
		SleepRecommendation: "7-8 Hours",
		DietPlan:            diet,
		ExercisePlan:        exercise,
		MealSuggestions:     meals,
	}, nil
}

func dietAdvisory(goal string) []string {
	switch {
	case strings.Contains(goal, "loss"):
		return []string{
			"Breakfast: Oatmeal with Berries",
			"Lunch: Grilled Chicken Salad",
			"Dinner: Steamed Vegetables with Fish",
			"Snack: Green Tea + Almonds",
			"Calorie Deficit: Maintain 500 kcal deficit",
		}
	case strings.Contains(goal, "muscle"):
		return []string{
			"Breakfast: Eggs + Whole Wheat Toast",
			"Lunch: Brown Rice + Lean Beef/Chicken",
			"Dinner: Quinoa + Salmon",
			"Snack: Protein Shake / Greek Yogurt",
			"High Protein Intake: 2g per kg of body weight",
		}
	default:
		return []string{
			"Balanced Diet: 50% Carbs, 30% Protein, 20% Fats",
			"Focus on Whole Foods",
			"Limit Sugar intake",
		}
	}
}

func exerciseAdvisory(activity string) []string {
	switch activity {
	case "low":
		return []string{
			"Daily 30 min brisk walk",
			"Light Yoga / Stretching",
		}
	case "medium":
		return []string{
			"Cardio (Running/Cycling) 3x a week",
			"Bodyweight Strength Training 2x a week",
		}
	default:
		return []string{
			"HIIT Workouts 3x a week",
			"Heavy Weight Training 4x a week",
		}
	}
}
