// Package main is the entry point of the LavaCar backend service. It wires
// a fiber web api over the ERP operations, a gorm backed persistence layer
// and an in-process event bus, all guarded by an attribute based
// permission model.
package main

import (
	"os"

	"github.com/GeovaneMT/LavaCar/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
