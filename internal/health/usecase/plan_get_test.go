package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/healthmate/healthmate/internal/health/entity"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
)

type fakeRepo struct {
	profile *entity.UserProfile
	plan    *entity.HealthPlan

	saves   int
	deletes int
}

func (f *fakeRepo) GetUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	if f.profile == nil || f.profile.ID != userID {
		return nil, goerror.ErrNotFound
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeRepo) GetPlanByUser(ctx context.Context, userID string) (*entity.HealthPlan, error) {
	if f.plan == nil || f.plan.UserID != userID {
		return nil, goerror.ErrNotFound
	}
	p := *f.plan
	return &p, nil
}

func (f *fakeRepo) SavePlan(ctx context.Context, plan entity.HealthPlan) error {
	f.saves++
	f.plan = &plan
	return nil
}

func (f *fakeRepo) DeletePlanByUser(ctx context.Context, userID string) error {
	f.deletes++
	if f.plan != nil && f.plan.UserID == userID {
		f.plan = nil
	}
	return nil
}

func TestPlanGet(t *testing.T) {

	t.Run("ComputesAndPersistsWhenMissing", func(t *testing.T) {

		// Arrange
		profile := testProfile()
		repo := &fakeRepo{profile: &profile}
		uc, _ := newTestUsecase(t, repo)

		// Act
		plan, err := uc.PlanGet(context.Background(), PlanGetInput{UserID: "user-1"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.saves != 1 {
			t.Fatalf("expected 1 save, got %d", repo.saves)
		}
		if plan.LastUpdated != testNow.Format(time.DateOnly) {
			t.Fatalf("expected lastUpdated %q, got %q", testNow.Format(time.DateOnly), plan.LastUpdated)
		}
	})

	t.Run("ReturnsFreshPlanUnchanged", func(t *testing.T) {

		// Arrange
		profile := testProfile()
		repo := &fakeRepo{profile: &profile}
		uc, _ := newTestUsecase(t, repo)

		first, err := uc.PlanGet(context.Background(), PlanGetInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Act
		second, err := uc.PlanGet(context.Background(), PlanGetInput{UserID: "user-1"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.saves != 1 {
			t.Fatalf("expected no second regeneration, saves=%d", repo.saves)
		}
		if first.ID != second.ID {
			t.Fatalf("expected the stored plan back, got a different one")
		}
	})

	t.Run("RegeneratesWhenStale", func(t *testing.T) {

		// Arrange
		profile := testProfile()
		repo := &fakeRepo{profile: &profile}
		uc, clk := newTestUsecase(t, repo)

		stale, err := uc.PlanGet(context.Background(), PlanGetInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clk.now = clk.now.Add(24 * time.Hour)

		// Act
		fresh, err := uc.PlanGet(context.Background(), PlanGetInput{UserID: "user-1"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.saves != 2 || repo.deletes != 2 {
			t.Fatalf("expected delete+save on staleness, saves=%d deletes=%d", repo.saves, repo.deletes)
		}
		if fresh.LastUpdated == stale.LastUpdated {
			t.Fatalf("expected a new lastUpdated date")
		}
	})

	t.Run("RegeneratesLegacyPlanWithoutSuggestions", func(t *testing.T) {

		// Arrange
		profile := testProfile()
		repo := &fakeRepo{
			profile: &profile,
			plan: &entity.HealthPlan{
				ID:          "legacy",
				UserID:      "user-1",
				LastUpdated: testNow.Format(time.DateOnly),
			},
		}
		uc, _ := newTestUsecase(t, repo)

		// Act
		plan, err := uc.PlanGet(context.Background(), PlanGetInput{UserID: "user-1"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.ID == "legacy" {
			t.Fatalf("expected the legacy plan to be replaced")
		}
		if len(plan.MealSuggestions) == 0 {
			t.Fatalf("expected meal suggestions on the rebuilt plan")
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {

		// Arrange
		repo := &fakeRepo{}
		uc, _ := newTestUsecase(t, repo)

		// Act
		_, err := uc.PlanGet(context.Background(), PlanGetInput{UserID: "ghost"})

		// Assert
		if err == nil {
			t.Fatalf("expected an error for a missing profile")
		}
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeNotFound {
			t.Fatalf("expected a not-found business error, got %v", err)
		}
	})
}

func TestPlanRegenerate(t *testing.T) {

	t.Run("AlwaysReplacesStoredPlan", func(t *testing.T) {

		// Arrange
		profile := testProfile()
		repo := &fakeRepo{profile: &profile}
		uc, _ := newTestUsecase(t, repo)

		first, err := uc.PlanRegenerate(context.Background(), PlanRegenerateInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Act
		second, err := uc.PlanRegenerate(context.Background(), PlanRegenerateInput{UserID: "user-1"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.saves != 2 || repo.deletes != 2 {
			t.Fatalf("expected unconditional delete+save, saves=%d deletes=%d", repo.saves, repo.deletes)
		}
		if first.ID == second.ID {
			t.Fatalf("expected a new plan document on each regeneration")
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {

		// Arrange
		repo := &fakeRepo{}
		uc, _ := newTestUsecase(t, repo)

		// Act
		_, err := uc.PlanRegenerate(context.Background(), PlanRegenerateInput{UserID: "ghost"})

		// Assert
		if err == nil {
			t.Fatalf("expected an error for a missing profile")
		}
	})
}

func TestBmiStatus(t *testing.T) {

	// Arrange
	profile := testProfile()
	profile.Weight = 100
	profile.Height = 170
	repo := &fakeRepo{profile: &profile}
	uc, _ := newTestUsecase(t, repo)

	// Act
	out, err := uc.BmiStatus(context.Background(), BmiStatusInput{UserID: "user-1"})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Category != "Obese" {
		t.Fatalf("expected Obese, got %q", out.Category)
	}
}

func TestDailyTip(t *testing.T) {

	// Arrange: testNow is a Monday
	uc, clk := newTestUsecase(t, nil)

	// Act
	monday, err := uc.DailyTip(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clk.now = clk.now.Add(24 * time.Hour)
	tuesday, err := uc.DailyTip(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if monday.Title != "Weight Training" {
		t.Fatalf("expected the Monday tip, got %q", monday.Title)
	}
	if tuesday.Title != "Cardio Blast" {
		t.Fatalf("expected the Tuesday tip, got %q", tuesday.Title)
	}
}
