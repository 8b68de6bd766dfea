package service

import (
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/adapter"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/push"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/utils"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/validators"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

// HandlerRegistry is where push handlers get bound; *push.Router satisfies
// it.
type HandlerRegistry interface {
	Register(name string, h push.Handler)
}

type ClientServices struct {
	UploadService  ClientUploadService
	MessageService ClientMessageService
	MemoryService  ClientMemoryService
	Fetcher        *ResponseFetcher
	Notifications  *NotificationLogger
}

func NewClientServices(serverAdapter adapter.ServerAdapter, sink PlaybackSink, cfg config.DeviceApp, log *logger.Logger) *ClientServices {
	return &ClientServices{
		UploadService:  NewClientUploadService(serverAdapter, log),
		MessageService: NewClientMessageService(serverAdapter, cfg.Name, log),
		MemoryService:  NewClientMemoryService(serverAdapter, validators.NewMemoryValidator(), log),
		Fetcher: NewResponseFetcher(serverAdapter, sink, utils.NewUUIDGenerator(), ResponseFetcherConfig{
			DeviceName:        cfg.Name,
			PlayAudioMessages: cfg.PlayAudioMessages,
		}, log),
		Notifications: NewNotificationLogger(log),
	}
}

// RegisterHandlers binds every push event the device understands.
func (s *ClientServices) RegisterHandlers(r HandlerRegistry) {
	r.Register(models.EventAgentResponse, s.Fetcher.HandleAgentResponse)
	r.Register(models.EventAudioMessage, s.Fetcher.HandleAudioMessage)
	r.Register(models.EventNewActivity, s.Notifications.HandleNewActivity)
	r.Register(models.EventNewMedication, s.Notifications.HandleNewMedication)
	r.Register(models.EventNewAppointment, s.Notifications.HandleNewAppointment)
	r.Register(models.EventPTTActive, s.Notifications.HandlePushToTalk)
	r.Register(models.EventPTTInactive, s.Notifications.HandlePushToTalk)
}
