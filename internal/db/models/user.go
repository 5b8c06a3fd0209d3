// Package models contains the database model definitions for the ERP.
package models

import (
	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// Role is the role assigned to a user account at creation. It is immutable
// for the lifetime of the account and drives every permission rule set.
type Role string

const (
	// RoleAdmin is the back-office operator role.
	RoleAdmin Role = "ADMIN"
	// RoleCustomer is the end-customer role.
	RoleCustomer Role = "CUSTOMER"
)

// Roles lists every role the permission registry must cover. Bootstrap
// validation iterates this slice.
func Roles() []Role {
	return []Role{RoleAdmin, RoleCustomer}
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// This function should be used when creating or updating account passwords.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against a stored Argon2id
// hash using constant-time comparison.
func VerifyPassword(password, hash string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
