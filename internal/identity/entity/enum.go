package entity

type UserStatus int16

const (
	// UserStatusUnknown is mean status is not known / not set.
	UserStatusUnknown UserStatus = 0

	// UserStatusUnverified mean user exists but has not completed email verification.
	UserStatusUnverified UserStatus = 1

	// UserStatusActive mean user is verified and allowed to use the app.
	UserStatusActive UserStatus = 2
)

func (us UserStatus) String() string {
	switch us {
	case UserStatusActive:
		return "Active"
	case UserStatusUnverified:
		return "Unverified"
	default:
		return "Unknown"
	}
}

type OtpPurpose string

const (
	OtpPurposeEmailVerification OtpPurpose = "email_verification"
	OtpPurposePasswordReset     OtpPurpose = "password_reset"
	OtpPurposeUsernameRecovery  OtpPurpose = "username_recovery"
)

func OtpPurposeFromString(s string) OtpPurpose {
	switch s {
	case string(OtpPurposeEmailVerification):
		return OtpPurposeEmailVerification
	case string(OtpPurposePasswordReset):
		return OtpPurposePasswordReset
	case string(OtpPurposeUsernameRecovery):
		return OtpPurposeUsernameRecovery
	default:
		return ""
	}
}

func (p OtpPurpose) IsValid() bool {
	return p != ""
}

func (p OtpPurpose) String() string {
	return string(p)
}
