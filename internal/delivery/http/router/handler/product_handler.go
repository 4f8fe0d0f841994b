package handler

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/sandbox"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler serves the product catalog endpoints.
type ProductHandler struct {
	backend *sandbox.Backend
	uploads *sandbox.Uploads
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(backend *sandbox.Backend, uploads *sandbox.Uploads) *ProductHandler {
	return &ProductHandler{backend: backend, uploads: uploads}
}

func (h *ProductHandler) Global(c echo.Context) error {
	return response.OK(c, h.backend.ListProducts())
}

func (h *ProductHandler) ByStore(c echo.Context) error {
	products, err := h.backend.StoreProducts(c.Param("store"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.backend.Product(c.Param("product"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, product)
}

func (h *ProductHandler) Create(c echo.Context) error {
	fields, err := h.readFields(c)
	if err != nil {
		return err
	}

	product, err := h.backend.CreateProduct(middleware.UserID(c), c.Param("store"), fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	fields, err := h.readFields(c)
	if err != nil {
		return err
	}

	product, err := h.backend.UpdateProduct(middleware.UserID(c), c.Param("product"), fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.backend.DeleteProduct(middleware.UserID(c), c.Param("product")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func (h *ProductHandler) readFields(c echo.Context) (sandbox.ProductFields, error) {
	form, err := readMultipart(c, h.uploads)
	if err != nil {
		return sandbox.ProductFields{}, err
	}

	fields := sandbox.ProductFields{
		Name:        form.String("name"),
		Brand:       form.String("brand"),
		Barcode:     form.String("barcode"),
		Description: form.String("description"),
	}
	if fields.Price, err = form.Float("price"); err != nil {
		return fields, err
	}
	if fields.IsAvailable, err = form.Bool("isAvailable"); err != nil {
		return fields, err
	}
	if fields.ImageURL, err = form.File("image"); err != nil {
		return fields, err
	}

	return fields, nil
}
