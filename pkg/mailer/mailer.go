package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"
)

// Config contains the SMTP settings used to deliver invitation mail.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
	// InviteBaseURL is the frontend location the confirmation link points at.
	InviteBaseURL string
}

// Service delivers juror invitation mail over SMTP.
type Service struct {
	cfg    Config
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	logger zerolog.Logger
}

// New constructs a mailer instance.
func New(cfg Config, logger zerolog.Logger) (*Service, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("smtp host and from address must be provided")
	}

	return &Service{
		cfg:    cfg,
		send:   smtp.SendMail,
		logger: logger.With().Str("component", "mailer").Logger(),
	}, nil
}

// SendInvitacion delivers the invitation mail carrying the confirmation
// token to the juror.
func (s *Service) SendInvitacion(ctx context.Context, email, nombre, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	link := token
	if s.cfg.InviteBaseURL != "" {
		link = fmt.Sprintf("%s?token=%s", strings.TrimRight(s.cfg.InviteBaseURL, "/"), token)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", email)
	msg.WriteString("Subject: Invitación como jurado de la Game Jam\r\n")
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	fmt.Fprintf(&msg, "Hola %s,\r\n\r\n", nombre)
	msg.WriteString("Has sido invitado como jurado de la Game Jam.\r\n")
	fmt.Fprintf(&msg, "Confirma tu invitación y establece tu contraseña aquí: %s\r\n", link)

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	if err := s.send(addr, auth, s.cfg.From, []string{email}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send invitation mail: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("invitation mail sent")

	return nil
}
