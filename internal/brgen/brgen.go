// Package brgen generates random Brazilian license plates and phone
// numbers, used by dev mode seeding and tests.
package brgen

import (
	"crypto/rand"
)

var (
	letters = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	digits  = []byte("0123456789")
)

const (
	maxByteValue = 255
	byteRange    = 256
)

// pick fills out with random characters from chars, rejecting bytes that
// would introduce modulo bias.
func pick(out []byte, chars []byte) {
	clen := len(chars)
	maxRb := maxByteValue - (byteRange % clen)

	buf := make([]byte, len(out)*2)

	var i int
	for {
		if _, err := rand.Read(buf); err != nil {
			panic("brgen: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			c := int(rb)
			if c > maxRb {
				continue
			}

			out[i] = chars[c%clen]
			i++
			if i == len(out) {
				return
			}
		}
	}
}

// Plate returns a random plate in the pre Mercosul format (AAA9999).
func Plate() string {
	out := make([]byte, 7)
	pick(out[:3], letters)
	pick(out[3:], digits)

	return string(out)
}

// MercosulPlate returns a random plate in the Mercosul format (AAA9A99).
func MercosulPlate() string {
	out := make([]byte, 7)
	pick(out[:3], letters)
	pick(out[3:4], digits)
	pick(out[4:5], letters)
	pick(out[5:], digits)

	return string(out)
}

// Phone returns a random 11 digit mobile number.
func Phone() string {
	out := make([]byte, 11)
	pick(out, digits)

	return string(out)
}
