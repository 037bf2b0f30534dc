package entity

// DailyLog is one metrics document per user per calendar date.
type DailyLog struct {
	ID                 string  `bson:"_id,omitempty"`
	UserID             string  `bson:"userId"`
	Date               string  `bson:"date"` // YYYY-MM-DD
	Weight             float64 `bson:"weight"`
	CaloriesBurned     int     `bson:"caloriesBurned"`
	WaterIntake        float64 `bson:"waterIntake"`
	SleepDuration      float64 `bson:"sleepDuration"`
	Notes              string  `bson:"notes"`
	DailyCalorieTarget int     `bson:"dailyCalorieTarget"`
	DailyWaterTarget   float64 `bson:"dailyWaterTarget"`
	DailySleepTarget   float64 `bson:"dailySleepTarget"`
}

type Workout struct {
	ID             string `bson:"_id,omitempty"`
	UserID         string `bson:"userId"`
	Date           string `bson:"date"`
	ExerciseType   string `bson:"exerciseType"`
	Duration       int    `bson:"duration"` // minutes
	CaloriesBurned int    `bson:"caloriesBurned"`
	Notes          string `bson:"notes"`
}

type Meal struct {
	ID       string  `bson:"_id,omitempty"`
	UserID   string  `bson:"userId"`
	Date     string  `bson:"date"`
	MealType string  `bson:"mealType"`
	Calories int     `bson:"calories"`
	Protein  float64 `bson:"protein"`
	Carbs    float64 `bson:"carbs"`
	Fats     float64 `bson:"fats"`
	Notes    string  `bson:"notes"`
}
