package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/healthmate/healthmate/internal/health/entity"
	"github.com/healthmate/healthmate/internal/health/outbound/db"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/testcontainers/testcontainers-go"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func setupDB(t *testing.T) *db.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	ctr, err := tcmongodb.Run(ctx, "mongo:8")
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}

	uri, err := ctr.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to connect to mongodb: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return db.NewDB(client.Database("healthmate_test"), instrument.NewNoop())
}

func testPlan(userID string) entity.HealthPlan {
	return entity.HealthPlan{
		ID:            "plan-" + userID,
		UserID:        userID,
		LastUpdated:   time.Now().Format(time.DateOnly),
		CalculatedBMI: 22.9,
		BMICategory:   "Normal",
		Goal:          "maintain",
		DailyCalories: 1876,
		ProteinGrams:  117,
		CarbsGrams:    211,
		FatsGrams:     62,
		MealSuggestions: []entity.MealSuggestion{
			{MealType: "Breakfast", Calories: 469, Suggestion: "Avocado Toast with Eggs"},
		},
	}
}

func TestDB_PlanLifecycle(t *testing.T) {
	store := setupDB(t)
	ctx := context.Background()

	t.Run("MissingPlanReturnsNotFound", func(t *testing.T) {
		// Act
		_, err := store.GetPlanByUser(ctx, "nobody")

		// Assert
		if !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("SaveThenGetRoundTrip", func(t *testing.T) {
		// Arrange
		plan := testPlan("user-001")

		// Act
		if err := store.SavePlan(ctx, plan); err != nil {
			t.Fatalf("SavePlan failed: %v", err)
		}
		got, err := store.GetPlanByUser(ctx, "user-001")

		// Assert
		if err != nil {
			t.Fatalf("GetPlanByUser failed: %v", err)
		}
		if got.ID != plan.ID || got.DailyCalories != plan.DailyCalories {
			t.Fatalf("stored plan mismatch: got %+v", got)
		}
		if len(got.MealSuggestions) != 1 || got.MealSuggestions[0].Suggestion != "Avocado Toast with Eggs" {
			t.Fatalf("meal suggestions not preserved: %+v", got.MealSuggestions)
		}
	})

	t.Run("DuplicatePlanIDConflicts", func(t *testing.T) {
		// Arrange
		plan := testPlan("user-002")
		if err := store.SavePlan(ctx, plan); err != nil {
			t.Fatalf("SavePlan failed: %v", err)
		}

		// Act
		err := store.SavePlan(ctx, plan)

		// Assert
		if !errors.Is(err, goerror.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("DeleteRemovesEveryPlanForUser", func(t *testing.T) {
		// Arrange
		first := testPlan("user-003")
		second := testPlan("user-003")
		second.ID = "plan-user-003-old"
		if err := store.SavePlan(ctx, first); err != nil {
			t.Fatalf("SavePlan failed: %v", err)
		}
		if err := store.SavePlan(ctx, second); err != nil {
			t.Fatalf("SavePlan failed: %v", err)
		}

		// Act
		if err := store.DeletePlanByUser(ctx, "user-003"); err != nil {
			t.Fatalf("DeletePlanByUser failed: %v", err)
		}

		// Assert
		_, err := store.GetPlanByUser(ctx, "user-003")
		if !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestDB_GetUserProfile(t *testing.T) {
	store := setupDB(t)
	ctx := context.Background()

	t.Run("MissingUserReturnsNotFound", func(t *testing.T) {
		// Act
		_, err := store.GetUserProfile(ctx, "nobody")

		// Assert
		if !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
