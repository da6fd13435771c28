package mailer

import (
	"context"
	"io"
	"net/smtp"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSendInvitacionBuildsConfirmationLink(t *testing.T) {
	svc, err := New(Config{
		Host:          "smtp.uni.edu",
		Port:          "587",
		From:          "gamejam@uni.edu",
		InviteBaseURL: "https://jam.uni.edu/jurado/confirmar/",
	}, zerolog.New(io.Discard))
	require.NoError(t, err)

	var sentTo []string
	var sentBody string
	svc.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		require.Equal(t, "smtp.uni.edu:587", addr)
		require.Equal(t, "gamejam@uni.edu", from)
		sentTo = to
		sentBody = string(msg)
		return nil
	}

	err = svc.SendInvitacion(context.Background(), "marta@jam.dev", "Marta", "tok123")
	require.NoError(t, err)
	require.Equal(t, []string{"marta@jam.dev"}, sentTo)
	require.Contains(t, sentBody, "https://jam.uni.edu/jurado/confirmar?token=tok123")
	require.Contains(t, sentBody, "Hola Marta")
}

func TestNewRequiresHostAndFrom(t *testing.T) {
	_, err := New(Config{}, zerolog.New(io.Discard))
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "smtp"))
}
