package event

const OtpRequestedDestination string = "otp_requested"
const OtpRequestedConsumerNotification string = "otp_requested_notification"

type OtpRequestedMessage struct {
	Email   string `json:"email"`
	Code    string `json:"code"`
	Purpose string `json:"purpose"`
}
