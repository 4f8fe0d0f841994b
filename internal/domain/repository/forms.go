// Package repository defines the ports through which the client reaches the backend.
package repository

import "storefront/internal/domain/entity"

// Multipart forms enumerate exactly the fields an upload may carry.
// A nil scalar is omitted from the request; a nil or empty file reference sends no part.

// StoreForm is the multipart body of store create and update.
type StoreForm struct {
	Name           *string
	Slug           *string
	Latitude       *float64
	Longitude      *float64
	CommissionRate *float64
	IsActive       *bool

	Logo   entity.FileRef
	Avatar entity.FileRef
}

// ProductForm is the multipart body of product create and update.
type ProductForm struct {
	Name        *string
	Brand       *string
	Barcode     *string
	Description *string
	Price       *float64
	IsAvailable *bool

	Image entity.FileRef
}

// ProfileForm is the multipart body of a profile update.
type ProfileForm struct {
	FullName *string
	Phone    *string

	Avatar entity.FileRef
}
