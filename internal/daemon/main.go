// Package daemon wires the database, the permission registry, the event
// bus and the web service into one runnable unit.
package daemon

import (
	"fmt"

	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GeovaneMT/LavaCar/internal/ability"
	"github.com/GeovaneMT/LavaCar/internal/config"
	adminctl "github.com/GeovaneMT/LavaCar/internal/db/controller/admin"
	attachmentctl "github.com/GeovaneMT/LavaCar/internal/db/controller/attachment"
	breakdownctl "github.com/GeovaneMT/LavaCar/internal/db/controller/breakdown"
	customerctl "github.com/GeovaneMT/LavaCar/internal/db/controller/customer"
	notificationctl "github.com/GeovaneMT/LavaCar/internal/db/controller/notification"
	phonectl "github.com/GeovaneMT/LavaCar/internal/db/controller/phone"
	vehiclectl "github.com/GeovaneMT/LavaCar/internal/db/controller/vehicle"
	"github.com/GeovaneMT/LavaCar/internal/db/dsn"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	"github.com/GeovaneMT/LavaCar/internal/erp"
	"github.com/GeovaneMT/LavaCar/internal/events"
	notificationsvc "github.com/GeovaneMT/LavaCar/internal/notification"
	"github.com/GeovaneMT/LavaCar/internal/policy"
	"github.com/GeovaneMT/LavaCar/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start runs the web service until a termination signal arrives.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db := openDB(cfg)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Customer{},
		&models.Phone{},
		&models.CustomerVehicle{},
		&models.VehicleBreakdown{},
		&models.Attachment{},
		&models.BreakdownAttachment{},
		&models.Notification{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	seed(cfg, db)

	// a registry or projector gap is a programming error, refuse to start
	registry := ability.DefaultRegistry()
	if err := registry.Validate(); err != nil {
		log.Fatal().Err(err).Msg("permission registry is incomplete")
	}

	if err := ability.ValidateProjectors(); err != nil {
		log.Fatal().Err(err).Msg("subject projection is incomplete")
	}

	admins := adminctl.NewStore(db)
	customers := customerctl.NewStore(db)
	phones := phonectl.NewStore(db)
	vehicles := vehiclectl.NewStore(db)
	breakdowns := breakdownctl.NewStore(db)
	attachments := attachmentctl.NewStore(db)
	notifications := notificationctl.NewStore(db)

	policySvc := policy.NewService(admins, customers, registry)

	bus := events.NewBus()

	notificationService := notificationsvc.NewService(notifications, policySvc)
	notificationsvc.NewOnVehicleBreakdownCreated(vehicles, notificationService).Register(bus)

	erpService := erp.NewService(
		admins,
		customers,
		phones,
		vehicles,
		breakdowns,
		attachments,
		policySvc,
		bus,
	)

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, erpService, notificationService),
	}
}

// openDB opens the configured gorm engine. sqlite is meant for dev mode
// and tests, mysql for everything else.
func openDB(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case "sqlite":
		dialector = gormsqlite.Open(cfg.DB.Name)
	default:
		dialector = gormmysql.Open(dsn.Create(cfg))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	return db
}
