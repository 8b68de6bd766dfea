package client

import (
	"fmt"
	"sync"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/push"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/reconnect"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/transport"
)

// Device is the explicitly constructed context of one running device.
type Device struct {
	Session    *transport.Session
	Router     *push.Router
	Controller *reconnect.Controller

	firstConnect     chan struct{}
	firstConnectOnce sync.Once
}

// NewDevice builds a disconnected device. opts are passed to the
// reconnection controller.
func NewDevice(cfg config.DeviceConfig, log *logger.Logger, opts ...reconnect.Option) (*Device, error) {
	router := push.NewRouter(log)

	session, err := transport.NewSession(cfg.Transport, router, log)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	d := &Device{
		Session:      session,
		Router:       router,
		firstConnect: make(chan struct{}),
	}

	opts = append([]reconnect.Option{reconnect.WithTransitionHook(d.observe)}, opts...)
	d.Controller = reconnect.NewController(session, cfg.Reconnect, log, opts...)

	return d, nil
}

func (d *Device) observe(_, to reconnect.State) {
	if to == reconnect.Connected {
		d.firstConnectOnce.Do(func() { close(d.firstConnect) })
	}
}

// FirstConnect is closed once the push channel is up for the first time.
func (d *Device) FirstConnect() <-chan struct{} {
	return d.firstConnect
}
