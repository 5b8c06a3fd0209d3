package brgen_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GeovaneMT/LavaCar/internal/brgen"
)

var (
	platePattern    = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
	phonePattern    = regexp.MustCompile(`^[0-9]{11}$`)
)

func TestPlate(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Regexp(t, platePattern, brgen.Plate())
	}
}

func TestMercosulPlate(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Regexp(t, mercosulPattern, brgen.MercosulPlate())
	}
}

func TestPhone(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Regexp(t, phonePattern, brgen.Phone())
	}
}
