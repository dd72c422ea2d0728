package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOTP(toEmail, otp string) error
	SendInterestNotification(toEmail, projectTitle, applicantName, message string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	enabled     bool
}

// resolveSender picks the From address: an explicit sender address
// wins, otherwise mail goes out as the SMTP account itself.
func resolveSender(senderEmail, username string) string {
	if senderEmail != "" {
		return senderEmail
	}
	return username
}

// NewEmailService builds the SMTP mailer. With empty credentials the
// service runs in console mode and prints what it would have sent,
// which keeps local signup flows usable without an SMTP account.
func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	enabled := host != "" && username != "" && password != ""
	var d *gomail.Dialer
	if enabled {
		d = gomail.NewDialer(host, port, username, password)
	}
	return &emailService{
		dialer:      d,
		senderEmail: resolveSender(senderEmail, username),
		senderName:  senderName,
		enabled:     enabled,
	}
}

func (s *emailService) SendOTP(toEmail, otp string) error {
	if !s.enabled {
		fmt.Printf("[MAILER] SMTP disabled, OTP for %s: %s\n", toEmail, otp)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your BuildHive Verification Code")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to BuildHive!</h2>
			<p>Your verification code is:</p>
			<h1 style="color: #F59E0B; letter-spacing: 5px;">%s</h1>
			<p>This code will expire in 10 minutes.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, otp)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send OTP to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] OTP sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendInterestNotification(toEmail, projectTitle, applicantName, message string) error {
	if !s.enabled {
		fmt.Printf("[MAILER] SMTP disabled, interest notification for %s skipped\n", toEmail)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New interest in %s", projectTitle))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Someone wants to join your project!</h2>
			<p><strong>%s</strong> expressed interest in <strong>%s</strong>:</p>
			<blockquote style="border-left: 4px solid #F59E0B; padding-left: 12px; color: #555;">%s</blockquote>
			<p>Log in to BuildHive to accept or decline.</p>
		</div>
	`, applicantName, projectTitle, message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send interest notification to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Interest notification sent to %s\n", toEmail)
	return nil
}
