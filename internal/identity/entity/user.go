package entity

import "time"

type User struct {
	ID            string     `bson:"_id,omitempty"`
	Username      string     `bson:"username"`
	Email         string     `bson:"email"`
	Password      string     `bson:"password"`
	Age           int        `bson:"age"`
	Height        float64    `bson:"height"`
	Weight        float64    `bson:"weight"`
	ActivityLevel string     `bson:"activityLevel"`
	HealthGoal    string     `bson:"healthGoal"`
	AvatarURL     string     `bson:"avatarUrl,omitempty"`
	Status        UserStatus `bson:"status"`
	CreatedAt     time.Time  `bson:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt"`
}

type UserMetrics struct {
	Weight        float64
	Height        float64
	Age           int
	ActivityLevel string
	HealthGoal    string
}
