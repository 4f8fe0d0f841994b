package handler

import (
	"net/http"

	"storefront/internal/sandbox"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler serves stored images.
type UploadHandler struct {
	uploads *sandbox.Uploads
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uploads *sandbox.Uploads) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

func (h *UploadHandler) Get(c echo.Context) error {
	data, contentType, err := h.uploads.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		return errors.WithStack(err)
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return c.Blob(http.StatusOK, contentType, data)
}
