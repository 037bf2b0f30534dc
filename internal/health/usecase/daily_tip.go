package usecase

import (
	"context"
	"time"

	"github.com/healthmate/healthmate/internal/health/entity"
)

var dailyTips = map[time.Weekday]entity.Tip{
	time.Monday: {
		Title: "Weight Training",
		Tip:   "Focus on heavy compound movements today (Squats, Deadlifts). Remember to get at least 8 hours of sleep tonight for optimal muscle recovery and growth.",
		Icon:  "🏋️‍♂️",
		Color: "#8b5cf6",
	},
	time.Tuesday: {
		Title: "Cardio Blast",
		Tip:   "Prioritize complex carbohydrates like oats or brown rice today. Your body needs to replenish glycogen stores after intense cardio sessions.",
		Icon:  "🏃‍♂️",
		Color: "#10b981",
	},
	time.Wednesday: {
		Title: "Yoga & Mindfulness",
		Tip:   "Focus on 'clean eating' today. Avoid processed sugars to reduce inflammation and improve your mental clarity for meditation.",
		Icon:  "🧘‍♂️",
		Color: "#0ea5e9",
	},
	time.Thursday: {
		Title: "Active Recovery",
		Tip:   "Low-intensity movement is key today. Try some light stretching or mobility work to keep blood flowing without overtaxing your nervous system.",
		Icon:  "🔄",
		Color: "#f59e0b",
	},
	time.Friday: {
		Title: "HIIT / Strength",
		Tip:   "Ensure high protein intake across all meals today (2g per kg of body weight) to support tissue repair following a week of training.",
		Icon:  "⚡",
		Color: "#ec4899",
	},
	time.Saturday: {
		Title: "Nature & Movement",
		Tip:   "Take your workout outdoors! Sunlight exposure helps regulate your circadian rhythm and boosts Vitamin D for bone health.",
		Icon:  "🌳",
		Color: "#22c55e",
	},
	time.Sunday: {
		Title: "Reset & Plan",
		Tip:   "Preparation is 80% of the battle. Use today to meal prep for the upcoming week and set your fitness intentions for tomorrow.",
		Icon:  "📋",
		Color: "#6366f1",
	},
}

// DailyTip returns the fixed tip for today's weekday.
func (s *Usecase) DailyTip(ctx context.Context) (*entity.Tip, error) {
	_, span := s.startSpan(ctx, "DailyTip")
	defer span.End()

	tip := dailyTips[s.clock.Now().Weekday()]

	return &tip, nil
}
