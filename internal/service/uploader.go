package service

import (
	"context"
	"io"
)

// FileUploader abstracts uploading binary data and returning a URL.
type FileUploader interface {
	Upload(ctx context.Context, name string, reader io.Reader) (string, error)
}

// Mailer abstracts delivery of juror invitation mail.
type Mailer interface {
	SendInvitacion(ctx context.Context, email, nombre, token string) error
}
