package api

import (
	"context"
	"net/http"

	"storefront/models"
)

// RegisterInit creates a pending registration and returns its opaque handle.
func (c *client) RegisterInit(ctx context.Context, req models.RegisterInitRequest) (*models.RegisterInitResponse, error) {
	out := new(models.RegisterInitResponse)
	if err := c.do(ctx, http.MethodPost, c.apipath("auth", "register", "init"), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// VerifyEmailOTP confirms the email channel; the response carries the masked
// phone number the next step displays.
func (c *client) VerifyEmailOTP(ctx context.Context, registrationID, otp string) (*models.VerifyEmailResponse, error) {
	req := models.VerifyOTPRequest{RegistrationID: registrationID, OTP: otp}
	out := new(models.VerifyEmailResponse)
	if err := c.do(ctx, http.MethodPost, c.apipath("auth", "register", "verify-email"), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) ResendEmailOTP(ctx context.Context, registrationID string) error {
	req := models.ResendOTPRequest{RegistrationID: registrationID}
	return c.do(ctx, http.MethodPost, c.apipath("auth", "register", "resend-email-otp"), req, nil)
}

// VerifyPhoneOTP completes registration; the backend answers with an auth
// token and user snapshot.
func (c *client) VerifyPhoneOTP(ctx context.Context, registrationID, otp string) (*models.AuthResponse, error) {
	req := models.VerifyOTPRequest{RegistrationID: registrationID, OTP: otp}
	out := new(models.AuthResponse)
	if err := c.do(ctx, http.MethodPost, c.apipath("auth", "register", "verify-phone"), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) ResendPhoneOTP(ctx context.Context, registrationID string) error {
	req := models.ResendOTPRequest{RegistrationID: registrationID}
	return c.do(ctx, http.MethodPost, c.apipath("auth", "register", "resend-phone-otp"), req, nil)
}

func (c *client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := map[string]string{"email": email, "password": password}
	out := new(models.AuthResponse)
	if err := c.do(ctx, http.MethodPost, c.apipath("auth", "login"), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, c.apipath("auth", "logout"), nil, nil)
}
