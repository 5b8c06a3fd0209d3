package config

import (
	"github.com/GeovaneMT/LavaCar/internal/logger"
)

// Config is the overall configuration.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Seed      Seed
}

// Webserver holds the http service settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown in seconds
	URL            string // base url for the webserver
}

// Seed holds the bootstrap admin account created on an empty database.
type Seed struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
}
