package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSender(t *testing.T) {
	t.Run("explicit sender address wins", func(t *testing.T) {
		assert.Equal(t, "noreply@buildhive.dev", resolveSender("noreply@buildhive.dev", "account@gmail.com"))
	})

	t.Run("falls back to the smtp account", func(t *testing.T) {
		assert.Equal(t, "account@gmail.com", resolveSender("", "account@gmail.com"))
	})
}

func TestNewEmailServiceConsoleMode(t *testing.T) {
	// Without SMTP credentials the mailer must not dial anywhere.
	svc := NewEmailService("", 587, "", "", "", "BuildHive")

	assert.NoError(t, svc.SendOTP("dev@example.com", "123456"))
	assert.NoError(t, svc.SendInterestNotification("owner@example.com", "CLI Tool", "Sam", "I want to help"))
}
