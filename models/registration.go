package models

// RegistrationDraft holds the signup form fields before step one is
// submitted. It lives only in memory and is never persisted across restarts.
type RegistrationDraft struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

// RegisterInitRequest is the step-one payload creating a pending registration.
type RegisterInitRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RegisterInitResponse carries the opaque handle correlating the remaining
// registration steps.
type RegisterInitResponse struct {
	RegistrationID string `json:"registrationId"`
}

// VerifyOTPRequest submits a one-time code for either channel.
type VerifyOTPRequest struct {
	RegistrationID string `json:"registrationId"`
	OTP            string `json:"otp"`
}

// VerifyEmailResponse is returned after the email channel is verified.
type VerifyEmailResponse struct {
	Phone string `json:"phone"` // masked, display-only
}

// ResendOTPRequest asks the backend to re-send a code for the session.
type ResendOTPRequest struct {
	RegistrationID string `json:"registrationId"`
}
