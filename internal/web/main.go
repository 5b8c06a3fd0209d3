// Package web runs the http service exposing the ERP operations as a json
// api.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/GeovaneMT/LavaCar/internal/config"
	"github.com/GeovaneMT/LavaCar/internal/erp"
	loggeradapter "github.com/GeovaneMT/LavaCar/internal/logger/adapter/fiber"
	notificationsvc "github.com/GeovaneMT/LavaCar/internal/notification"
	accounthandler "github.com/GeovaneMT/LavaCar/internal/web/handler/account"
	attachmenthandler "github.com/GeovaneMT/LavaCar/internal/web/handler/attachment"
	breakdownhandler "github.com/GeovaneMT/LavaCar/internal/web/handler/breakdown"
	customerhandler "github.com/GeovaneMT/LavaCar/internal/web/handler/customer"
	notificationhandler "github.com/GeovaneMT/LavaCar/internal/web/handler/notification"
	phonehandler "github.com/GeovaneMT/LavaCar/internal/web/handler/phone"
)

const (
	// CheckAlivePath is polled by the load balancer.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus collectors, including the log
	// line counters registered by the logger.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a termination signal and stops the http server.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// fail the checkalive first so the LB drains this pod
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the web service with the given configuration and services.
func New(cfg *config.Config, erpSvc *erp.Service, notifications *notificationsvc.Service) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if erpSvc == nil || notifications == nil {
		panic("services cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(loggeradapter.New(loggeradapter.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	service := &Service{
		cfg: cfg,
		App: app,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("alive")
	})

	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(AuthMiddleware)

	accounthandler.Handler.Init(app, cfg, erpSvc)
	customerhandler.Handler.Init(app, cfg, erpSvc)
	phonehandler.Handler.Init(app, cfg, erpSvc)
	breakdownhandler.Handler.Init(app, cfg, erpSvc)
	attachmenthandler.Handler.Init(app, cfg, erpSvc)
	notificationhandler.Handler.Init(app, cfg, notifications)

	return service
}
