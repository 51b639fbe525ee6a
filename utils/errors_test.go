package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSessionExpired(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		expired bool
	}{
		{"structured code", &RequestError{Status: 410, Code: CodeRegistrationExpired, Message: "Please restart"}, true},
		{"legacy expired substring", &RequestError{Status: 400, Message: "Registration session expired"}, true},
		{"legacy start-again substring", &RequestError{Status: 400, Message: "Please start again from step one"}, true},
		{"case-insensitive match", &RequestError{Status: 400, Message: "Session EXPIRED"}, true},
		{"ordinary backend failure", &RequestError{Status: 400, Message: "Invalid OTP"}, false},
		{"wrapped request error", fmt.Errorf("verify: %w", &RequestError{Status: 410, Message: "expired"}), true},
		{"plain error never matches", errors.New("connection expired"), false},
		{"validation error never matches", &ValidationError{Fields: map[string]string{"otp": "expired"}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expired, IsSessionExpired(tc.err))
		})
	}
}

func TestDisplayMessage(t *testing.T) {
	assert.Equal(t, "Invalid OTP", DisplayMessage(&RequestError{Status: 400, Message: "Invalid OTP"}))
	assert.Equal(t, "Please sign in to continue", DisplayMessage(ErrUnauthenticated))
	assert.Equal(t, "Something went wrong, please try again", DisplayMessage(errors.New("dial tcp: refused")))

	verr := &ValidationError{Fields: map[string]string{"email": "Enter a valid email address"}}
	assert.Contains(t, DisplayMessage(verr), "email")
}

func TestRequestErrorMessageFallback(t *testing.T) {
	assert.Equal(t, "request failed with status 502", (&RequestError{Status: 502}).Error())
}
