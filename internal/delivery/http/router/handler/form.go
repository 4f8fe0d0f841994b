package handler

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/sandbox"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// multipartForm reads optional fields of a multipart request. An absent field yields nil.
type multipartForm struct {
	c       echo.Context
	form    *multipart.Form
	uploads *sandbox.Uploads
}

func readMultipart(c echo.Context, uploads *sandbox.Uploads) (*multipartForm, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("multipart/form-data body expected")
	}

	return &multipartForm{c: c, form: form, uploads: uploads}, nil
}

func (f *multipartForm) String(name string) *string {
	values := f.form.Value[name]
	if len(values) == 0 {
		return nil
	}
	v := strings.TrimSpace(values[0])

	return &v
}

func (f *multipartForm) Float(name string) (*float64, error) {
	s := f.String(name)
	if s == nil {
		return nil, nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a number")
	}

	return &v, nil
}

func (f *multipartForm) Bool(name string) (*bool, error) {
	s := f.String(name)
	if s == nil {
		return nil, nil
	}
	v, err := strconv.ParseBool(*s)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a boolean value")
	}

	return &v, nil
}

// File stores the uploaded part and returns its public URL.
func (f *multipartForm) File(name string) (*string, error) {
	headers := f.form.File[name]
	if len(headers) == 0 {
		return nil, nil
	}
	header := headers[0]

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open part %s", name)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read part %s", name)
	}

	url, err := f.uploads.Save(f.c.Request().Context(), header.Filename, header.Header.Get(echo.HeaderContentType), data)
	if err != nil {
		return nil, err
	}

	return &url, nil
}
