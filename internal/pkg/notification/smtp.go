package notification

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// SMTPGateway delivers notification intents over SMTP
type SMTPGateway struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPGateway creates a new SMTP-backed notification gateway
func NewSMTPGateway(config SMTPConfig, logger zerolog.Logger) *SMTPGateway {
	return &SMTPGateway{
		config: config,
		logger: logger,
	}
}

// Dispatch renders and sends the email for an intent. Failures are logged and
// swallowed: a notification problem must never fail the workflow operation
// that produced the intent.
func (g *SMTPGateway) Dispatch(intent Intent) {
	subject, body, err := render(intent)
	if err != nil {
		g.logger.Error().Err(err).Str("kind", string(intent.Kind)).Msg("Failed to render notification")
		return
	}

	// Without SMTP credentials, log the notification instead of sending it
	// (development mode).
	if g.config.Username == "" || g.config.Password == "" {
		g.logger.Warn().
			Str("to", intent.RecipientEmail).
			Str("kind", string(intent.Kind)).
			Str("subject", subject).
			Msg("SMTP credentials not configured - notification not sent")
		return
	}

	if err := g.sendHTMLEmail(intent.RecipientEmail, subject, body); err != nil {
		g.logger.Error().Err(err).
			Str("to", intent.RecipientEmail).
			Str("kind", string(intent.Kind)).
			Msg("Failed to send notification email")
	}
}

// sendHTMLEmail sends an HTML email
func (g *SMTPGateway) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		g.config.Username,
		g.config.Password,
		g.config.Host,
	)

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", g.config.FromName, g.config.FromEmail)
	headers["To"] = toEmail
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := g.config.Host + ":" + strconv.Itoa(g.config.Port)

	if !g.config.UseTLS {
		if err := smtp.SendMail(
			serverAddress,
			auth,
			g.config.FromEmail,
			[]string{toEmail},
			[]byte(message),
		); err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         g.config.Host,
	}

	conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, g.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err = client.Mail(g.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return nil
}
