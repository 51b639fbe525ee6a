package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPBufferSetDigit(t *testing.T) {
	buf := &OTPBuffer{}

	next, err := buf.SetDigit(0, "7")
	require.NoError(t, err)
	assert.Equal(t, 1, next, "entering a digit advances focus")

	next, err = buf.SetDigit(5, "9")
	require.NoError(t, err)
	assert.Equal(t, 5, next, "focus stays on the last slot")

	_, err = buf.SetDigit(2, "a")
	assert.Error(t, err, "non-digit input is rejected")

	_, err = buf.SetDigit(2, "12")
	assert.Error(t, err, "multi-character input is rejected")

	_, err = buf.SetDigit(6, "1")
	assert.Error(t, err, "out-of-range slot is rejected")
}

func TestOTPBufferBackspace(t *testing.T) {
	buf := &OTPBuffer{}
	_, err := buf.SetDigit(2, "5")
	require.NoError(t, err)

	focus := buf.Backspace(2)
	assert.Equal(t, 2, focus, "backspace on a filled slot clears it in place")
	assert.Equal(t, "", buf.Digits()[2])

	focus = buf.Backspace(2)
	assert.Equal(t, 1, focus, "backspace on an empty slot moves focus back")

	focus = buf.Backspace(0)
	assert.Equal(t, 0, focus, "focus never goes below the first slot")
}

func TestOTPBufferPaste(t *testing.T) {
	buf := &OTPBuffer{}

	require.NoError(t, buf.Paste("123456"))
	assert.Equal(t, [OTPLength]string{"1", "2", "3", "4", "5", "6"}, buf.Digits())
	assert.True(t, buf.Complete())
	assert.Equal(t, "123456", buf.String())

	err := buf.Paste("12a456")
	assert.Error(t, err, "paste with a non-digit is rejected wholesale")
	assert.Equal(t, "123456", buf.String(), "buffer unchanged after rejected paste")

	assert.Error(t, buf.Paste("12345"), "short paste is rejected")
	assert.Error(t, buf.Paste("1234567"), "long paste is rejected")
}

func TestOTPBufferComplete(t *testing.T) {
	buf := &OTPBuffer{}
	assert.False(t, buf.Complete())

	for i := 0; i < OTPLength-1; i++ {
		_, err := buf.SetDigit(i, "1")
		require.NoError(t, err)
	}
	assert.False(t, buf.Complete(), "five digits are not a complete code")

	_, err := buf.SetDigit(OTPLength-1, "1")
	require.NoError(t, err)
	assert.True(t, buf.Complete())

	buf.Clear()
	assert.False(t, buf.Complete())
	assert.Equal(t, "", buf.String())
}
