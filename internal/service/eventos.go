package service

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Domain event subjects published on team removal, juror confirmation and
// evaluation registration.
const (
	EventEquipoEliminado      = "gamejam.equipo.eliminado"
	EventJuradoConfirmado     = "gamejam.jurado.confirmado"
	EventEvaluacionRegistrada = "gamejam.evaluacion.registrada"
)

// Eventos publishes domain events to NATS. A nil receiver or nil connection
// is a no-op so services stay usable without a broker.
type Eventos struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

// NewEventos constructs the event publisher.
func NewEventos(conn *nats.Conn, logger zerolog.Logger) *Eventos {
	return &Eventos{
		conn:   conn,
		logger: logger.With().Str("component", "eventos").Logger(),
	}
}

// Publish serializes the payload and sends it on the subject. Failures are
// logged, never propagated; events are best-effort.
func (e *Eventos) Publish(subject string, payload any) {
	if e == nil || e.conn == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		e.logger.Warn().Err(err).Str("subject", subject).Msg("failed to serialize event payload")
		return
	}

	if err := e.conn.Publish(subject, data); err != nil {
		e.logger.Warn().Err(err).Str("subject", subject).Msg("failed to publish event")
		return
	}

	e.logger.Debug().Str("subject", subject).Msg("event published")
}
