package registration

import (
	"fmt"
	"strings"
	"sync"
)

// OTPLength is the number of code digits for both channels.
const OTPLength = 6

// OTPBuffer holds the six single-digit input slots of one OTP field. Focus
// movement is reported to the caller (the input widgets); the buffer itself
// only stores digits.
type OTPBuffer struct {
	mu    sync.Mutex
	slots [OTPLength]string
}

// SetDigit replaces slot i with a single digit and returns the index the
// focus should advance to.
func (b *OTPBuffer) SetDigit(i int, digit string) (int, error) {
	if i < 0 || i >= OTPLength {
		return i, fmt.Errorf("otp slot %d out of range", i)
	}
	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return i, fmt.Errorf("otp slot accepts a single digit")
	}

	b.mu.Lock()
	b.slots[i] = digit
	b.mu.Unlock()

	next := i + 1
	if next >= OTPLength {
		next = OTPLength - 1
	}
	return next, nil
}

// Backspace clears slot i when it holds a digit. On an already-empty slot it
// leaves the buffer untouched and moves the focus back one index.
func (b *OTPBuffer) Backspace(i int) int {
	if i < 0 || i >= OTPLength {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.slots[i] != "" {
		b.slots[i] = ""
		return i
	}
	if i > 0 {
		return i - 1
	}
	return 0
}

// Paste fills all six slots at once. Anything other than exactly six digits
// is rejected wholesale and the buffer is left unchanged.
func (b *OTPBuffer) Paste(code string) error {
	if len(code) != OTPLength {
		return fmt.Errorf("pasted code must be %d digits", OTPLength)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return fmt.Errorf("pasted code must contain only digits")
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := 0; i < OTPLength; i++ {
		b.slots[i] = string(code[i])
	}
	return nil
}

// Complete reports whether all six slots hold a digit.
func (b *OTPBuffer) Complete() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.slots {
		if s == "" {
			return false
		}
	}
	return true
}

// String joins the slots into the code submitted to the backend.
func (b *OTPBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Join(b.slots[:], "")
}

// Digits returns a copy of the slots for rendering.
func (b *OTPBuffer) Digits() [OTPLength]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.slots
}

// Clear empties every slot.
func (b *OTPBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slots = [OTPLength]string{}
}
