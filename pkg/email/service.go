package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendVerificationEmail sends an email verification link
func (s *Service) SendVerificationEmail(toEmail, toName, token string) error {
	verificationURL := fmt.Sprintf("%s/verify-email/%s", s.baseURL, token)

	subject := "Verify your DealPage account"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to DealPage!</h2>
			<p>Hi %s,</p>
			<p>Thank you for registering with DealPage. Please verify your email address by clicking the button below:</p>
			<p><a href="%s" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Verify Email</a></p>
			<p>Or copy and paste this link into your browser:</p>
			<p><a href="%s">%s</a></p>
			<p><strong>This link will expire in 24 hours.</strong></p>
			<p>If you didn't create an account, you can safely ignore this email.</p>
			<p>Thanks,<br>The DealPage Team</p>
		</body>
		</html>
	`, toName, verificationURL, verificationURL, verificationURL)

	plainText := fmt.Sprintf(`
Hi %s,

Welcome to DealPage! Please verify your email address by clicking the link below:

%s

This link will expire in 24 hours.

If you didn't create an account, you can safely ignore this email.

Thanks,
The DealPage Team
	`, toName, verificationURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	return s.logEmailToConsole(toEmail, toName, subject, verificationURL)
}

// SendPasswordResetEmail sends a password reset link
func (s *Service) SendPasswordResetEmail(toEmail, toName, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password/%s", s.baseURL, token)

	subject := "Reset your DealPage password"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Reset Request</h2>
			<p>Hi %s,</p>
			<p>We received a request to reset your password for your DealPage account.</p>
			<p>Click the button below to reset your password:</p>
			<p><a href="%s" style="background-color: #2196F3; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Reset Password</a></p>
			<p>Or copy and paste this link into your browser:</p>
			<p><a href="%s">%s</a></p>
			<p><strong>This link will expire in 1 hour.</strong></p>
			<p>If you didn't request a password reset, you can safely ignore this email. Your password will remain unchanged.</p>
			<p>Thanks,<br>The DealPage Team</p>
		</body>
		</html>
	`, toName, resetURL, resetURL, resetURL)

	plainText := fmt.Sprintf(`
Hi %s,

We received a request to reset your password for your DealPage account.

Click the link below to reset your password:

%s

This link will expire in 1 hour.

If you didn't request a password reset, you can safely ignore this email.
Your password will remain unchanged.

Thanks,
The DealPage Team
	`, toName, resetURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	return s.logEmailToConsole(toEmail, toName, subject, resetURL)
}

// SendCRMReconnectEmail tells the user a CRM connection stopped working and
// needs to be re-authorized. Sent when a token refresh is rejected and the
// integration gets disconnected.
func (s *Service) SendCRMReconnectEmail(toEmail, toName, providerName string) error {
	settingsURL := fmt.Sprintf("%s/settings/integrations", s.baseURL)

	subject := fmt.Sprintf("Your %s connection needs attention", providerName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>CRM Connection Disconnected</h2>
			<p>Hi %s,</p>
			<p>DealPage can no longer sync with your <strong>%s</strong> account. This usually happens when access was revoked on the CRM side or the authorization expired.</p>
			<p>Your proposals are safe, but status updates will not sync until you reconnect.</p>
			<p><a href="%s" style="background-color: #4A90E2; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Reconnect %s</a></p>
			<p>Or copy and paste this link into your browser:</p>
			<p><a href="%s">%s</a></p>
			<p>Thanks,<br>The DealPage Team</p>
		</body>
		</html>
	`, toName, providerName, settingsURL, providerName, settingsURL, settingsURL)

	plainText := fmt.Sprintf(`
Hi %s,

DealPage can no longer sync with your %s account. This usually happens when
access was revoked on the CRM side or the authorization expired.

Your proposals are safe, but status updates will not sync until you reconnect:

%s

Thanks,
The DealPage Team
	`, toName, providerName, settingsURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	return s.logEmailToConsole(toEmail, toName, subject, settingsURL)
}

// SendProposalStatusEmail notifies the proposal owner about a status change,
// including changes observed through a CRM webhook.
func (s *Service) SendProposalStatusEmail(toEmail, toName, proposalTitle, status string, proposalID int) error {
	proposalURL := fmt.Sprintf("%s/proposals/%d", s.baseURL, proposalID)

	subject := fmt.Sprintf("Proposal %q is now %s", proposalTitle, status)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Proposal Update</h2>
			<p>Hi %s,</p>
			<p>Your proposal <strong>%s</strong> changed status to <strong>%s</strong>.</p>
			<p><a href="%s" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">View Proposal</a></p>
			<p>Or copy and paste this link into your browser:</p>
			<p><a href="%s">%s</a></p>
			<p>Thanks,<br>The DealPage Team</p>
		</body>
		</html>
	`, toName, proposalTitle, status, proposalURL, proposalURL, proposalURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your proposal %q changed status to %s.

View it here:

%s

Thanks,
The DealPage Team
	`, toName, proposalTitle, status, proposalURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	return s.logEmailToConsole(toEmail, toName, subject, proposalURL)
}

// SendRawEmail sends an email with custom subject and body content.
func (s *Service) SendRawEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody)
	}

	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject, actionURL string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Action URL: %s", actionURL)
	log.Printf("   ---")
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	log.Printf("   Set SENDGRID_API_KEY environment variable to enable email sending")
	log.Printf("   ---")
	return nil
}
