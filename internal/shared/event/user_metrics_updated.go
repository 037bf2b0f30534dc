package event

const UserMetricsUpdatedDestination string = "user_metrics_updated"
const UserMetricsUpdatedConsumerHealth string = "user_metrics_updated_health"

type UserMetricsUpdatedMessage struct {
	UserID        string  `json:"user_id"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Age           int     `json:"age"`
	ActivityLevel string  `json:"activity_level"`
	HealthGoal    string  `json:"health_goal"`
}
