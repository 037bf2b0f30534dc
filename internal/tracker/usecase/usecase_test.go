package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/validator"
	"github.com/healthmate/healthmate/internal/tracker/entity"
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

type fakeRepo struct {
	logs     map[string]entity.DailyLog // keyed userID+date
	workouts map[string]entity.Workout
	meals    map[string]entity.Meal
	weights  map[string]float64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		logs:     map[string]entity.DailyLog{},
		workouts: map[string]entity.Workout{},
		meals:    map[string]entity.Meal{},
		weights:  map[string]float64{},
	}
}

func (f *fakeRepo) GetLogByUserAndDate(ctx context.Context, userID, date string) (*entity.DailyLog, error) {
	log, ok := f.logs[userID+"|"+date]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &log, nil
}

func (f *fakeRepo) UpsertLog(ctx context.Context, log entity.DailyLog) error {
	f.logs[log.UserID+"|"+log.Date] = log
	return nil
}

func (f *fakeRepo) ListLogsByUser(ctx context.Context, userID string) ([]entity.DailyLog, error) {
	var logs []entity.DailyLog
	for _, l := range f.logs {
		if l.UserID == userID {
			logs = append(logs, l)
		}
	}
	return logs, nil
}

func (f *fakeRepo) UpdateUserWeight(ctx context.Context, userID string, weight float64) error {
	f.weights[userID] = weight
	return nil
}

func (f *fakeRepo) CreateWorkout(ctx context.Context, workout entity.Workout) error {
	f.workouts[workout.ID] = workout
	return nil
}

func (f *fakeRepo) ListWorkoutsByUser(ctx context.Context, userID string) ([]entity.Workout, error) {
	var workouts []entity.Workout
	for _, w := range f.workouts {
		if w.UserID == userID {
			workouts = append(workouts, w)
		}
	}
	return workouts, nil
}

func (f *fakeRepo) GetWorkoutByID(ctx context.Context, id string) (*entity.Workout, error) {
	w, ok := f.workouts[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &w, nil
}

func (f *fakeRepo) DeleteWorkout(ctx context.Context, id string) error {
	delete(f.workouts, id)
	return nil
}

func (f *fakeRepo) CreateMeal(ctx context.Context, meal entity.Meal) error {
	f.meals[meal.ID] = meal
	return nil
}

func (f *fakeRepo) ListMealsByUser(ctx context.Context, userID string) ([]entity.Meal, error) {
	var meals []entity.Meal
	for _, m := range f.meals {
		if m.UserID == userID {
			meals = append(meals, m)
		}
	}
	return meals, nil
}

func (f *fakeRepo) GetMealByID(ctx context.Context, id string) (*entity.Meal, error) {
	m, ok := f.meals[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &m, nil
}

func (f *fakeRepo) DeleteMeal(ctx context.Context, id string) error {
	delete(f.meals, id)
	return nil
}

type fakeMessaging struct {
	published []UserWeightUpdatedEvent
}

func (f *fakeMessaging) PublishUserWeightUpdated(ctx context.Context, msg UserWeightUpdatedEvent) error {
	f.published = append(f.published, msg)
	return nil
}

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func newTestUsecase(t *testing.T, repo *fakeRepo) (*Usecase, *fakeRepo, *fakeMessaging, *fakeClock) {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	if repo == nil {
		repo = newFakeRepo()
	}
	msg := &fakeMessaging{}
	clk := &fakeClock{now: testNow}

	uc := New(Dependency{
		RepoDB:        repo,
		RepoMessaging: msg,
		Validator:     v,
		OID:           &fakeOID{},
		Clock:         clk,
		Instrument:    instrument.NewNoop(),
	})

	return uc, repo, msg, clk
}

func seedLog(repo *fakeRepo, userID string, day time.Time) {
	date := day.Format(time.DateOnly)
	repo.logs[userID+"|"+date] = entity.DailyLog{ID: date, UserID: userID, Date: date, Weight: 70}
}

func TestLogUpsert(t *testing.T) {

	t.Run("CreatesAndSyncsWeight", func(t *testing.T) {

		// Arrange
		uc, repo, msg, _ := newTestUsecase(t, nil)

		// Act
		log, err := uc.LogUpsert(context.Background(), LogUpsertInput{
			UserID:         "user-1",
			Weight:         71.5,
			CaloriesBurned: 300,
			WaterIntake:    2.0,
			SleepDuration:  7.5,
		})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if log.Date != testNow.Format(time.DateOnly) {
			t.Fatalf("expected today's date, got %q", log.Date)
		}
		if repo.weights["user-1"] != 71.5 {
			t.Fatalf("expected user weight synced to 71.5, got %f", repo.weights["user-1"])
		}
		if len(msg.published) != 1 || msg.published[0].Weight != 71.5 {
			t.Fatalf("expected one weight-updated event, got %+v", msg.published)
		}
	})

	t.Run("ReplacesSameDayLog", func(t *testing.T) {

		// Arrange
		uc, repo, _, _ := newTestUsecase(t, nil)
		if _, err := uc.LogUpsert(context.Background(), LogUpsertInput{UserID: "user-1", Weight: 70}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Act
		second, err := uc.LogUpsert(context.Background(), LogUpsertInput{UserID: "user-1", Weight: 72, Notes: "evening update"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.logs) != 1 {
			t.Fatalf("expected a single log document per day, got %d", len(repo.logs))
		}
		stored := repo.logs["user-1|"+second.Date]
		if stored.Weight != 72 || stored.Notes != "evening update" {
			t.Fatalf("expected the stored log replaced, got %+v", stored)
		}
	})

	t.Run("RejectsZeroWeight", func(t *testing.T) {

		// Arrange
		uc, _, _, _ := newTestUsecase(t, nil)

		// Act
		_, err := uc.LogUpsert(context.Background(), LogUpsertInput{UserID: "user-1"})

		// Assert
		if err == nil {
			t.Fatalf("expected a validation error")
		}
	})
}

func TestStreak(t *testing.T) {

	t.Run("CountsBackFromToday", func(t *testing.T) {

		// Arrange
		repo := newFakeRepo()
		for i := range 3 {
			seedLog(repo, "user-1", testNow.AddDate(0, 0, -i))
		}
		uc, _, _, _ := newTestUsecase(t, repo)

		// Act
		out, err := uc.Streak(context.Background(), StreakInput{UserID: "user-1"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Days != 3 {
			t.Fatalf("expected streak 3, got %d", out.Days)
		}
	})

	t.Run("AnchorsAtYesterdayWhenTodayUnlogged", func(t *testing.T) {

		// Arrange
		repo := newFakeRepo()
		seedLog(repo, "user-1", testNow.AddDate(0, 0, -1))
		seedLog(repo, "user-1", testNow.AddDate(0, 0, -2))
		uc, _, _, _ := newTestUsecase(t, repo)

		// Act
		out, err := uc.Streak(context.Background(), StreakInput{UserID: "user-1"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Days != 2 {
			t.Fatalf("expected streak 2, got %d", out.Days)
		}
	})

	t.Run("GapBreaksStreak", func(t *testing.T) {

		// Arrange
		repo := newFakeRepo()
		seedLog(repo, "user-1", testNow)
		seedLog(repo, "user-1", testNow.AddDate(0, 0, -2)) // hole at yesterday
		uc, _, _, _ := newTestUsecase(t, repo)

		// Act
		out, err := uc.Streak(context.Background(), StreakInput{UserID: "user-1"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Days != 1 {
			t.Fatalf("expected streak 1, got %d", out.Days)
		}
	})

	t.Run("NoRecentLogs", func(t *testing.T) {

		// Arrange
		repo := newFakeRepo()
		seedLog(repo, "user-1", testNow.AddDate(0, 0, -5))
		uc, _, _, _ := newTestUsecase(t, repo)

		// Act
		out, err := uc.Streak(context.Background(), StreakInput{UserID: "user-1"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Days != 0 {
			t.Fatalf("expected streak 0, got %d", out.Days)
		}
	})
}

func TestWorkoutDelete(t *testing.T) {

	t.Run("OwnerCanDelete", func(t *testing.T) {

		// Arrange
		uc, repo, _, _ := newTestUsecase(t, nil)
		workout, err := uc.WorkoutSave(context.Background(), WorkoutSaveInput{
			UserID:       "user-1",
			ExerciseType: "Cardio",
			Duration:     30,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Act
		err = uc.WorkoutDelete(context.Background(), WorkoutDeleteInput{UserID: "user-1", WorkoutID: workout.ID})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.workouts) != 0 {
			t.Fatalf("expected the workout removed")
		}
	})

	t.Run("NonOwnerRejected", func(t *testing.T) {

		// Arrange
		uc, repo, _, _ := newTestUsecase(t, nil)
		workout, err := uc.WorkoutSave(context.Background(), WorkoutSaveInput{
			UserID:       "user-1",
			ExerciseType: "Strength",
			Duration:     45,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Act
		err = uc.WorkoutDelete(context.Background(), WorkoutDeleteInput{UserID: "intruder", WorkoutID: workout.ID})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeNotFound {
			t.Fatalf("expected a not-found error for non-owner, got %v", err)
		}
		if len(repo.workouts) != 1 {
			t.Fatalf("expected the workout kept")
		}
	})
}

func TestMealDelete(t *testing.T) {

	t.Run("NonOwnerRejected", func(t *testing.T) {

		// Arrange
		uc, repo, _, _ := newTestUsecase(t, nil)
		meal, err := uc.MealSave(context.Background(), MealSaveInput{
			UserID:   "user-1",
			MealType: "Lunch",
			Calories: 600,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Act
		err = uc.MealDelete(context.Background(), MealDeleteInput{UserID: "intruder", MealID: meal.ID})

		// Assert
		if err == nil {
			t.Fatalf("expected an error for non-owner")
		}
		if len(repo.meals) != 1 {
			t.Fatalf("expected the meal kept")
		}
	})

	t.Run("OwnerCanDelete", func(t *testing.T) {

		// Arrange
		uc, repo, _, _ := newTestUsecase(t, nil)
		meal, err := uc.MealSave(context.Background(), MealSaveInput{
			UserID:   "user-1",
			MealType: "Dinner",
			Calories: 700,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Act
		err = uc.MealDelete(context.Background(), MealDeleteInput{UserID: "user-1", MealID: meal.ID})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.meals) != 0 {
			t.Fatalf("expected the meal removed")
		}
	})
}
