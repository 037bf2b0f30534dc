package entity

// UserProfile is the read-only slice of the account document the plan
// derivation needs.
type UserProfile struct {
	ID            string  `bson:"_id"`
	Weight        float64 `bson:"weight"`
	Height        float64 `bson:"height"`
	Age           int     `bson:"age"`
	ActivityLevel string  `bson:"activityLevel"`
	HealthGoal    string  `bson:"healthGoal"`
}

// HealthPlan is the derived plan document, one live document per user,
// replaced wholesale on regeneration.
type HealthPlan struct {
	ID                  string           `bson:"_id,omitempty"`
	UserID              string           `bson:"userId"`
	LastUpdated         string           `bson:"lastUpdated"` // calendar date, YYYY-MM-DD
	CalculatedBMI       float64          `bson:"calculatedBmi"`
	BMICategory         string           `bson:"bmiCategory"`
	Goal                string           `bson:"goal"`
	DailyCalories       int              `bson:"dailyCalories"`
	ProteinGrams        int              `bson:"proteinGrams"`
	CarbsGrams          int              `bson:"carbsGrams"`
	FatsGrams           int              `bson:"fatsGrams"`
	DailyWaterIntake    string           `bson:"dailyWaterIntake"`
	SleepRecommendation string           `bson:"sleepRecommendation"`
	DietPlan            []string         `bson:"dietPlan"`
	ExercisePlan        []string         `bson:"exercisePlan"`
	MealSuggestions     []MealSuggestion `bson:"mealSuggestions"`
}

type MealSuggestion struct {
	MealType     string   `bson:"mealType"`
	Calories     int      `bson:"calories"`
	Protein      int      `bson:"protein"`
	Carbs        int      `bson:"carbs"`
	Fats         int      `bson:"fats"`
	Suggestion   string   `bson:"suggestion"`
	Alternatives []string `bson:"alternatives"`
}

// Tip is the fixed day-of-week health tip.
type Tip struct {
	Title string
	Tip   string
	Icon  string
	Color string
}
