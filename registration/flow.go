package registration

import (
	"context"
	"fmt"
	"sync"

	"storefront/api"
	"storefront/config"
	"storefront/models"
	"storefront/session"
	"storefront/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Step is the current position in the 4-step signup.
type Step int

const (
	StepForm Step = iota + 1
	StepEmailOTP
	StepPhoneOTP
	StepSuccess
)

func (s Step) String() string {
	switch s {
	case StepForm:
		return "form"
	case StepEmailOTP:
		return "email-otp"
	case StepPhoneOTP:
		return "phone-otp"
	case StepSuccess:
		return "success"
	}
	return "unknown"
}

// Channel selects which OTP is being resent.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPhone Channel = "phone"
)

// Flow drives the multi-step signup: form, email OTP, phone OTP, success.
// All authority lives server-side; the flow owns only the draft, the OTP
// input buffers, the resend cool-down, and the opaque registrationId.
//
// Every operation captures the flow epoch before its backend call and applies
// the response only if the flow has not been reset meanwhile, so a late
// response can never resurrect an abandoned registration.
type Flow struct {
	mu           sync.Mutex
	backend      api.Client
	session      *session.Session
	cooldownSecs int

	step           Step
	draft          models.RegistrationDraft
	registrationID string
	maskedPhone    string
	emailOTP       *OTPBuffer
	phoneOTP       *OTPBuffer
	countdown      *Countdown
	epoch          string

	onChange func()
}

// NewFlow builds a flow at StepForm. onChange, when non-nil, is invoked after
// every state change so the presentation layer can re-render; it also fires
// on every countdown tick.
func NewFlow(backend api.Client, sess *session.Session, onChange func()) *Flow {
	f := &Flow{
		backend:      backend,
		session:      sess,
		cooldownSecs: config.ResendCooldown(),
		step:         StepForm,
		emailOTP:     &OTPBuffer{},
		phoneOTP:     &OTPBuffer{},
		epoch:        uuid.NewString(),
		onChange:     onChange,
	}
	f.countdown = NewCountdown(func(int) { f.notify() })
	return f
}

func (f *Flow) notify() {
	if f.onChange != nil {
		f.onChange()
	}
}

// SubmitForm validates the draft, creates a pending registration, and on
// success moves to StepEmailOTP with a fresh resend cool-down. Validation
// failures are returned without any backend call; backend failures leave the
// flow at StepForm with the draft intact.
func (f *Flow) SubmitForm(ctx context.Context, draft models.RegistrationDraft) error {
	if verr := ValidateDraft(draft); verr != nil {
		return verr
	}

	f.mu.Lock()
	if f.step != StepForm {
		f.mu.Unlock()
		return fmt.Errorf("registration already in progress")
	}
	f.draft = draft
	epoch := f.epoch
	f.mu.Unlock()

	resp, err := f.backend.RegisterInit(ctx, models.RegisterInitRequest{
		Name:     draft.Name,
		Email:    draft.Email,
		Phone:    draft.Phone,
		Password: draft.Password,
	})

	f.mu.Lock()
	if f.epoch != epoch {
		f.mu.Unlock()
		utils.GetLogger().Debug("SubmitForm: dropping response for reset flow")
		return err
	}
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.registrationID = resp.RegistrationID
	f.step = StepEmailOTP
	f.emailOTP.Clear()
	f.phoneOTP.Clear()
	f.countdown.Reset(f.cooldownSecs)
	f.mu.Unlock()

	f.notify()
	return nil
}

// SubmitEmailOTP verifies the email channel. An incomplete buffer
// short-circuits without a backend call. On success the flow advances to
// StepPhoneOTP; an expiry signal resets everything to StepForm; any other
// failure keeps the buffer intact for retry.
func (f *Flow) SubmitEmailOTP(ctx context.Context) error {
	f.mu.Lock()
	if f.step != StepEmailOTP {
		f.mu.Unlock()
		return fmt.Errorf("email verification is not the current step")
	}
	if !f.emailOTP.Complete() {
		f.mu.Unlock()
		return &utils.ValidationError{Fields: map[string]string{"otp": "Enter the 6-digit code"}}
	}
	regID, epoch, code := f.registrationID, f.epoch, f.emailOTP.String()
	f.mu.Unlock()

	resp, err := f.backend.VerifyEmailOTP(ctx, regID, code)
	return f.applyStep(epoch, err, func() {
		f.maskedPhone = resp.Phone
		f.step = StepPhoneOTP
		f.countdown.Reset(f.cooldownSecs)
	})
}

// SubmitPhoneOTP verifies the phone channel. On success the backend's token
// and user snapshot are handed to the auth session — the only place this flow
// writes session state — and the flow finishes at StepSuccess with every
// sensitive field cleared.
func (f *Flow) SubmitPhoneOTP(ctx context.Context) error {
	f.mu.Lock()
	if f.step != StepPhoneOTP {
		f.mu.Unlock()
		return fmt.Errorf("phone verification is not the current step")
	}
	if !f.phoneOTP.Complete() {
		f.mu.Unlock()
		return &utils.ValidationError{Fields: map[string]string{"otp": "Enter the 6-digit code"}}
	}
	regID, epoch, code := f.registrationID, f.epoch, f.phoneOTP.String()
	f.mu.Unlock()

	resp, err := f.backend.VerifyPhoneOTP(ctx, regID, code)
	if aerr := f.applyStep(epoch, err, func() {
		f.step = StepSuccess
		f.clearSensitiveLocked()
		f.countdown.Stop()
	}); aerr != nil {
		return aerr
	}
	if err == nil {
		if aerr := f.session.SetAuth(*resp); aerr != nil {
			utils.GetLogger().Error("SubmitPhoneOTP: failed to store auth session", zap.Error(aerr))
		}
	}
	return nil
}

// applyStep applies a transition for the response of one backend call.
// A response for a reset flow never mutates state; an expiry signal resets
// the whole flow; any other error is returned with state unchanged.
func (f *Flow) applyStep(epoch string, err error, onSuccess func()) error {
	f.mu.Lock()
	if f.epoch != epoch {
		f.mu.Unlock()
		utils.GetLogger().Debug("registration: dropping response for reset flow")
		return err
	}
	if err != nil {
		if utils.IsSessionExpired(err) {
			f.resetLocked()
			f.mu.Unlock()
			f.notify()
			return err
		}
		f.mu.Unlock()
		return err
	}
	onSuccess()
	f.mu.Unlock()

	f.notify()
	return nil
}

// Resend asks the backend to re-send the code for channel. It is a silent
// no-op while the cool-down is running; on success the matching buffer is
// cleared and the cool-down restarts.
func (f *Flow) Resend(ctx context.Context, channel Channel) error {
	f.mu.Lock()
	if f.countdown.Remaining() > 0 {
		f.mu.Unlock()
		return nil
	}
	if f.registrationID == "" {
		f.mu.Unlock()
		return fmt.Errorf("no registration in progress")
	}
	regID, epoch := f.registrationID, f.epoch

	var buffer *OTPBuffer
	switch channel {
	case ChannelEmail:
		buffer = f.emailOTP
	case ChannelPhone:
		buffer = f.phoneOTP
	default:
		f.mu.Unlock()
		return fmt.Errorf("unknown resend channel %q", channel)
	}
	f.mu.Unlock()

	var err error
	if channel == ChannelEmail {
		err = f.backend.ResendEmailOTP(ctx, regID)
	} else {
		err = f.backend.ResendPhoneOTP(ctx, regID)
	}

	return f.applyStep(epoch, err, func() {
		buffer.Clear()
		f.countdown.Reset(f.cooldownSecs)
	})
}

// Reset abandons the current registration and returns to StepForm. Used for
// the "change email/phone" navigation and by expiry handling.
func (f *Flow) Reset() {
	f.mu.Lock()
	f.resetLocked()
	f.mu.Unlock()
	f.notify()
}

func (f *Flow) resetLocked() {
	f.step = StepForm
	f.clearSensitiveLocked()
	f.countdown.Stop()
	f.epoch = uuid.NewString()
}

func (f *Flow) clearSensitiveLocked() {
	f.draft = models.RegistrationDraft{}
	f.registrationID = ""
	f.maskedPhone = ""
	f.emailOTP.Clear()
	f.phoneOTP.Clear()
}

// Close releases the flow's countdown task. The flow must not be used after.
func (f *Flow) Close() {
	f.countdown.Stop()
}

// Step returns the current step.
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Draft returns a copy of the form fields held by the flow.
func (f *Flow) Draft() models.RegistrationDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// RegistrationID returns the backend's pending-registration handle, or ""
// before step one succeeds.
func (f *Flow) RegistrationID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registrationID
}

// MaskedPhone returns the display-only masked number from email verification.
func (f *Flow) MaskedPhone() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maskedPhone
}

// EmailOTP returns the email code input buffer.
func (f *Flow) EmailOTP() *OTPBuffer { return f.emailOTP }

// PhoneOTP returns the phone code input buffer.
func (f *Flow) PhoneOTP() *OTPBuffer { return f.phoneOTP }

// ResendRemaining returns the seconds left on the resend cool-down.
func (f *Flow) ResendRemaining() int {
	return f.countdown.Remaining()
}
