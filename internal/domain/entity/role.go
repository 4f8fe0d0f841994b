// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RoleTag is the validation tag that accepts only known roles.
const RoleTag = "role"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleClient indicates a customer who browses shops and may own stores.
	RoleClient Role = "CLIENT"
	// RoleShopper indicates a delivery partner.
	RoleShopper Role = "SHOPPER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleShopper:
		return true
	default:
		return false
	}
}

// RegisterRoleValidation adds the RoleTag rule to v.
func RegisterRoleValidation(v *validator.Validate) error {
	err := v.RegisterValidation(RoleTag, func(fl validator.FieldLevel) bool {
		return Role(fl.Field().String()).IsValid()
	})

	return errors.Wrap(err, "failed to register role validation")
}

// HomeRoute returns the landing route for an authenticated user of this role.
func (r Role) HomeRoute() Route {
	if r == RoleShopper {
		return RouteShopperDashboard
	}

	return RouteClientHome
}
