package usecase

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/healthmate/healthmate/internal/health/entity"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/validator"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeOID struct {
	n int
}

func (f *fakeOID) Generate() string {
	f.n++
	return fmt.Sprintf("oid-%03d", f.n)
}

// monday June 2 2025
var testNow = time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

func newTestUsecase(t *testing.T, repo repoDB) (*Usecase, *fakeClock) {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	clk := &fakeClock{now: testNow}
	uc := New(Dependency{
		RepoDB:     repo,
		Validator:  v,
		OID:        &fakeOID{},
		Clock:      clk,
		Instrument: instrument.NewNoop(),
	})

	return uc, clk
}

func testProfile() entity.UserProfile {
	return entity.UserProfile{
		ID:            "user-1",
		Weight:        70,
		Height:        175,
		Age:           30,
		ActivityLevel: "sedentary",
		HealthGoal:    "maintain",
	}
}

func TestComputePlan(t *testing.T) {

	t.Run("NormalCategory", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t, nil)
		profile := testProfile()
		profile.Weight = 68.5
		profile.Height = 170

		// Act
		plan, err := uc.computePlan(profile, testNow)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.BMICategory != "Normal" {
			t.Fatalf("expected Normal, got %q (bmi=%f)", plan.BMICategory, plan.CalculatedBMI)
		}
		if math.Abs(plan.CalculatedBMI-23.7) > 0.05 {
			t.Fatalf("expected bmi near 23.7, got %f", plan.CalculatedBMI)
		}
	})

	t.Run("CategoryBoundariesAreExclusive", func(t *testing.T) {

		// Arrange: height 100cm makes BMI equal to the weight
		cases := []struct {
			weight float64
			want   string
		}{
			{17, "Underweight"},
			{18.5, "Normal"},
			{24.9, "Overweight"},
			{29.9, "Obese"},
		}

		for _, tc := range cases {
			uc, _ := newTestUsecase(t, nil)
			profile := testProfile()
			profile.Weight = tc.weight
			profile.Height = 100

			// Act
			plan, err := uc.computePlan(profile, testNow)

			// Assert
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if plan.BMICategory != tc.want {
				t.Fatalf("bmi %.1f: expected %q, got %q", tc.weight, tc.want, plan.BMICategory)
			}
		}
	})

	t.Run("ObeseOverridesExercise", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t, nil)
		profile := testProfile()
		profile.Weight = 100
		profile.Height = 170
		profile.ActivityLevel = "medium"

		// Act
		plan, err := uc.computePlan(profile, testNow)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.BMICategory != "Obese" {
			t.Fatalf("expected Obese, got %q", plan.BMICategory)
		}
		want := []string{
			"Low Impact Cardio (Swimming/Walking) - Start Slow",
			"Consult a doctor before intense training",
		}
		if len(plan.ExercisePlan) != len(want) {
			t.Fatalf("expected %d exercise entries, got %d", len(want), len(plan.ExercisePlan))
		}
		for i := range want {
			if plan.ExercisePlan[i] != want[i] {
				t.Fatalf("exercise[%d]: expected %q, got %q", i, want[i], plan.ExercisePlan[i])
			}
		}
	})

	t.Run("MaintainTargets", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t, nil)

		// Act
		plan, err := uc.computePlan(testProfile(), testNow)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// BMR 1563.75, sedentary x1.2 = 1876.5
		if plan.DailyCalories != 1876 {
			t.Fatalf("expected 1876 kcal, got %d", plan.DailyCalories)
		}
		if plan.ProteinGrams != 117 {
			t.Fatalf("expected 117g protein, got %d", plan.ProteinGrams)
		}
		if plan.CarbsGrams != 211 {
			t.Fatalf("expected 211g carbs, got %d", plan.CarbsGrams)
		}
		if plan.FatsGrams != 62 {
			t.Fatalf("expected 62g fats, got %d", plan.FatsGrams)
		}
	})

	t.Run("MinimumCalorieClamp", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t, nil)
		profile := testProfile()
		profile.Weight = 30
		profile.Height = 140
		profile.Age = 80
		profile.HealthGoal = "weight loss"

		// Act
		plan, err := uc.computePlan(profile, testNow)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.DailyCalories != 1200 {
			t.Fatalf("expected clamp to 1200 kcal, got %d", plan.DailyCalories)
		}
	})

	t.Run("VeryActiveResolvesToActive", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t, nil)
		profile := testProfile()
		profile.ActivityLevel = "Very Active"

		// Act
		plan, err := uc.computePlan(profile, testNow)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 1563.75 x 1.725 = 2697.46, not the 1.9 multiplier
		if plan.DailyCalories != 2697 {
			t.Fatalf("expected 2697 kcal, got %d", plan.DailyCalories)
		}
	})

	t.Run("MealSharesTruncatedIndependently", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t, nil)

		// Act
		plan, err := uc.computePlan(testProfile(), testNow)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plan.MealSuggestions) != 4 {
			t.Fatalf("expected 4 meal suggestions, got %d", len(plan.MealSuggestions))
		}
		shares := map[string]float64{"Breakfast": 0.25, "Lunch": 0.35, "Snack": 0.10, "Dinner": 0.30}
		for _, m := range plan.MealSuggestions {
			share, ok := shares[m.MealType]
			if !ok {
				t.Fatalf("unexpected meal type %q", m.MealType)
			}
			if want := int(float64(plan.DailyCalories) * share); m.Calories != want {
				t.Fatalf("%s calories: expected %d, got %d", m.MealType, want, m.Calories)
			}
			if want := int(float64(plan.ProteinGrams) * share); m.Protein != want {
				t.Fatalf("%s protein: expected %d, got %d", m.MealType, want, m.Protein)
			}
			if len(m.Alternatives) < 3 {
				t.Fatalf("%s: expected at least 3 alternatives, got %d", m.MealType, len(m.Alternatives))
			}
		}
	})

	t.Run("SuggestionSelectionByWeekday", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t, nil)
		profile := testProfile()
		profile.HealthGoal = "weight loss"
		monday := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
		wednesday := time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)

		// Act
		planMon, errMon := uc.computePlan(profile, monday)
		planWed, errWed := uc.computePlan(profile, wednesday)

		// Assert
		if errMon != nil || errWed != nil {
			t.Fatalf("unexpected errors: %v %v", errMon, errWed)
		}
		// weekday 1 mod 3 = 1, weekday 3 mod 3 = 0
		if planMon.MealSuggestions[0].Suggestion != planMon.MealSuggestions[0].Alternatives[1] {
			t.Fatalf("monday breakfast: expected alternatives[1], got %q", planMon.MealSuggestions[0].Suggestion)
		}
		if planWed.MealSuggestions[0].Suggestion != planWed.MealSuggestions[0].Alternatives[0] {
			t.Fatalf("wednesday breakfast: expected alternatives[0], got %q", planWed.MealSuggestions[0].Suggestion)
		}
	})

	t.Run("DeterministicForSameDay", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t, nil)

		// Act
		first, err1 := uc.computePlan(testProfile(), testNow)
		second, err2 := uc.computePlan(testProfile(), testNow)

		// Assert
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected errors: %v %v", err1, err2)
		}
		first.ID, second.ID = "", ""
		if fmt.Sprintf("%+v", first) != fmt.Sprintf("%+v", second) {
			t.Fatalf("expected identical plans for identical inputs")
		}
	})

	t.Run("ZeroHeightRejected", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t, nil)
		profile := testProfile()
		profile.Height = 0

		// Act
		_, err := uc.computePlan(profile, testNow)

		// Assert
		if err == nil {
			t.Fatalf("expected an error for zero height")
		}
	})
}
