package service

import (
	"context"
	"fmt"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

// NotificationLogger records the informational push events; the device has
// no screen, so logging them is all it does.
type NotificationLogger struct {
	logger *logger.Logger
}

func NewNotificationLogger(log *logger.Logger) *NotificationLogger {
	return &NotificationLogger{logger: log.WithComponent("notifications")}
}

func (n *NotificationLogger) HandleNewActivity(_ context.Context, ev models.PushEvent) error {
	var a models.NewActivity
	if err := ev.Decode(&a); err != nil {
		return fmt.Errorf("decode %s: %w", ev.Name, err)
	}
	n.logger.Info().Str("event", ev.Name).Str("title", a.Title).Str("date", a.Date).Str("time", a.Time).Msg("new activity")
	return nil
}

func (n *NotificationLogger) HandleNewMedication(_ context.Context, ev models.PushEvent) error {
	var m models.NewMedication
	if err := ev.Decode(&m); err != nil {
		return fmt.Errorf("decode %s: %w", ev.Name, err)
	}
	n.logger.Info().Str("event", ev.Name).Str("name", m.Name).Str("dosage", m.Dosage).Msg("new medication")
	return nil
}

func (n *NotificationLogger) HandleNewAppointment(_ context.Context, ev models.PushEvent) error {
	var a models.NewAppointment
	if err := ev.Decode(&a); err != nil {
		return fmt.Errorf("decode %s: %w", ev.Name, err)
	}
	n.logger.Info().Str("event", ev.Name).Str("doctor", a.Doctor).Str("date", a.Date).Str("time", a.Time).Msg("new appointment")
	return nil
}

// HandlePushToTalk logs ptt_active and ptt_inactive.
func (n *NotificationLogger) HandlePushToTalk(_ context.Context, ev models.PushEvent) error {
	n.logger.Debug().Str("event", ev.Name).Int("payload_bytes", len(ev.Payload)).Msg("push-to-talk state")
	return nil
}
