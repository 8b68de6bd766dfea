// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"sync"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/adapter"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/service"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/workers"
)

type App struct {
	device        *Device
	services      *service.ClientServices
	serverAdapter adapter.ServerAdapter
	cfg           config.DeviceApp
	logger        *logger.Logger

	startup sync.WaitGroup
}

func NewApp(device *Device, services *service.ClientServices, serverAdapter adapter.ServerAdapter, cfg config.DeviceApp, log *logger.Logger) *App {
	services.RegisterHandlers(device.Router)

	return &App{
		device:        device,
		services:      services,
		serverAdapter: serverAdapter,
		cfg:           cfg,
		logger:        log.WithComponent("app"),
	}
}

// Run pings the server, starts the router and the reconnection controller
// and blocks until ctx is cancelled. Configured one-shot uploads run once
// the first connection is up.
func (a *App) Run(ctx context.Context) error {
	a.checkServer(ctx)

	a.startup.Add(1)
	go a.runStartupActions(ctx)

	err := workers.NewWorkers().
		Add("router", a.device.Router).
		Add("reconnect", a.device.Controller).
		Run(ctx)

	a.Shutdown()
	a.startup.Wait()

	if err != nil {
		a.logger.Error().Err(err).Msg("device stopped with error")
		return err
	}
	a.logger.Info().Msg("device stopped")
	return nil
}

// Shutdown stops reconnecting and closes the push channel. In-flight uploads
// and downloads are left to finish.
func (a *App) Shutdown() {
	a.device.Controller.Shutdown()
}

func (a *App) checkServer(ctx context.Context) {
	if err := a.serverAdapter.Ping(ctx); err != nil {
		a.logger.Warn().
			Str("op", "ping").
			Int("status", adapter.StatusCodeOf(err)).
			Err(err).
			Msg("server not reachable yet")
		return
	}
	a.logger.Info().Str("op", "ping").Msg("server reachable")
}

func (a *App) runStartupActions(ctx context.Context) {
	defer a.startup.Done()

	if a.cfg.UploadPath == "" && a.cfg.MessagePath == "" {
		return
	}

	select {
	case <-a.device.FirstConnect():
	case <-ctx.Done():
		return
	}

	// started work is not cut short by shutdown; adapter timeouts bound it
	opCtx := context.WithoutCancel(ctx)

	if a.cfg.UploadPath != "" {
		if _, err := a.services.UploadService.UploadFile(opCtx, a.cfg.UploadPath); err != nil {
			a.logger.Error().Str("op", "upload").Str("target", a.cfg.UploadPath).Err(err).Msg("startup upload failed")
		}
	}
	if a.cfg.MessagePath != "" {
		if _, err := a.services.MessageService.SendFile(opCtx, a.cfg.MessagePath); err != nil {
			a.logger.Error().Str("op", "send_message").Str("target", a.cfg.MessagePath).Err(err).Msg("startup message failed")
		}
	}
}
