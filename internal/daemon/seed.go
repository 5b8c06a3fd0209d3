package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GeovaneMT/LavaCar/internal/brgen"
	"github.com/GeovaneMT/LavaCar/internal/config"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
)

// seed creates the bootstrap admin account on an empty database. In dev
// mode it also creates a demo customer with a vehicle and a phone.
func seed(cfg *config.Config, db *gorm.DB) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)

	if count > 0 {
		return
	}

	admin, err := models.NewAdmin(cfg.Seed.AdminName, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid seed admin config")
		return
	}

	if err := db.Create(admin).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
		return
	}

	log.Info().Str("email", admin.Email).Msg("seeded bootstrap admin account")

	if cfg.DevMode {
		seedDemoCustomer(db)
	}
}

func seedDemoCustomer(db *gorm.DB) {
	customer, err := models.NewCustomer("Demo Customer", "demo@lavacar.local", "demo-password")
	if err != nil {
		log.Error().Err(err).Msg("failed to build demo customer")
		return
	}

	vehicle, err := models.NewCustomerVehicle(
		customer.ID, models.VehicleTypeCar, brgen.MercosulPlate(), "Demo Hatch", "2020")
	if err != nil {
		log.Error().Err(err).Msg("failed to build demo vehicle")
		return
	}

	phone, err := models.NewPhone(
		customer.ID, models.RoleCustomer, models.PhoneTypeMobile, brgen.Phone(), true)
	if err != nil {
		log.Error().Err(err).Msg("failed to build demo phone")
		return
	}

	for _, record := range []any{customer, vehicle, phone} {
		if err := db.Create(record).Error; err != nil {
			log.Error().Err(err).Msg("failed to seed demo data")
			return
		}
	}

	log.Info().Str("customer_id", customer.ID).Str("plate", vehicle.Plate).
		Msg("seeded demo customer")
}
