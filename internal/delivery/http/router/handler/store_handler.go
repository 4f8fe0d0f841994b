package handler

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/sandbox"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler serves the store endpoints. The :store segment is a slug on reads and an id on writes.
type StoreHandler struct {
	backend *sandbox.Backend
	uploads *sandbox.Uploads
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(backend *sandbox.Backend, uploads *sandbox.Uploads) *StoreHandler {
	return &StoreHandler{backend: backend, uploads: uploads}
}

func (h *StoreHandler) List(c echo.Context) error {
	return response.OK(c, h.backend.ListStores())
}

// Mine returns the caller's store as a single object, 404 when there is none.
func (h *StoreHandler) Mine(c echo.Context) error {
	shop, err := h.backend.MyStore(middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, shop)
}

func (h *StoreHandler) BySlug(c echo.Context) error {
	detail, err := h.backend.StoreBySlug(c.Param("store"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, detail)
}

func (h *StoreHandler) Create(c echo.Context) error {
	fields, err := h.readFields(c)
	if err != nil {
		return err
	}

	shop, err := h.backend.CreateStore(middleware.UserID(c), fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, shop)
}

func (h *StoreHandler) Update(c echo.Context) error {
	fields, err := h.readFields(c)
	if err != nil {
		return err
	}

	shop, err := h.backend.UpdateStore(middleware.UserID(c), c.Param("store"), fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, shop)
}

func (h *StoreHandler) Delete(c echo.Context) error {
	if err := h.backend.DeleteStore(middleware.UserID(c), c.Param("store")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func (h *StoreHandler) readFields(c echo.Context) (sandbox.StoreFields, error) {
	form, err := readMultipart(c, h.uploads)
	if err != nil {
		return sandbox.StoreFields{}, err
	}

	fields := sandbox.StoreFields{
		Name: form.String("name"),
		Slug: form.String("slug"),
	}
	if fields.Latitude, err = form.Float("latitude"); err != nil {
		return fields, err
	}
	if fields.Longitude, err = form.Float("longitude"); err != nil {
		return fields, err
	}
	if fields.CommissionRate, err = form.Float("commissionRate"); err != nil {
		return fields, err
	}
	if fields.IsActive, err = form.Bool("isActive"); err != nil {
		return fields, err
	}
	if fields.LogoURL, err = form.File("logo"); err != nil {
		return fields, err
	}
	if fields.AvatarURL, err = form.File("avatar"); err != nil {
		return fields, err
	}

	return fields, nil
}
