package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// Form is an ordered multipart body. Nil values are skipped, so a field is either sent with a value or not at all.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	name string
	ref  entity.FileRef
}

// NewForm creates an empty Form.
func NewForm() *Form {
	return &Form{}
}

// String adds a text field when v is not nil.
func (f *Form) String(name string, v *string) *Form {
	if v != nil {
		f.fields = append(f.fields, formField{name: name, value: *v})
	}

	return f
}

// Float adds a numeric field when v is not nil.
func (f *Form) Float(name string, v *float64) *Form {
	if v != nil {
		f.fields = append(f.fields, formField{name: name, value: strconv.FormatFloat(*v, 'f', -1, 64)})
	}

	return f
}

// Bool adds a boolean field when v is not nil.
func (f *Form) Bool(name string, v *bool) *Form {
	if v != nil {
		f.fields = append(f.fields, formField{name: name, value: strconv.FormatBool(*v)})
	}

	return f
}

// File adds a file part when ref is set.
func (f *Form) File(name string, ref entity.FileRef) *Form {
	if strings.TrimSpace(string(ref)) != "" {
		f.files = append(f.files, formFile{name: name, ref: ref})
	}

	return f
}

// FieldNames lists the parts in the order they will be written.
func (f *Form) FieldNames() []string {
	names := make([]string, 0, len(f.fields)+len(f.files))
	for _, field := range f.fields {
		names = append(names, field.name)
	}
	for _, file := range f.files {
		names = append(names, file.name)
	}

	return names
}

func (f *Form) encode(ctx context.Context, files service.FileResolver) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", errors.Wrapf(err, "write field %s", field.name)
		}
	}

	for _, file := range f.files {
		if files == nil {
			return nil, "", errors.New("no file resolver configured")
		}

		payload, err := files.Resolve(ctx, file.ref)
		if err != nil {
			return nil, "", errors.Wrapf(err, "resolve %s", file.name)
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			`form-data; name="`+escapeQuotes(file.name)+`"; filename="`+escapeQuotes(payload.Name)+`"`)
		h.Set(headerContentType, payload.ContentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", errors.Wrapf(err, "create part %s", file.name)
		}
		if _, err := part.Write(payload.Data); err != nil {
			return nil, "", errors.Wrapf(err, "write part %s", file.name)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart writer")
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// StoreFormData maps a StoreForm onto its multipart fields.
func StoreFormData(form *repository.StoreForm) *Form {
	return NewForm().
		String("name", form.Name).
		String("slug", form.Slug).
		Float("latitude", form.Latitude).
		Float("longitude", form.Longitude).
		Float("commissionRate", form.CommissionRate).
		Bool("isActive", form.IsActive).
		File("logo", form.Logo).
		File("avatar", form.Avatar)
}

// ProductFormData maps a ProductForm onto its multipart fields.
func ProductFormData(form *repository.ProductForm) *Form {
	return NewForm().
		String("name", form.Name).
		String("brand", form.Brand).
		String("barcode", form.Barcode).
		String("description", form.Description).
		Float("price", form.Price).
		Bool("isAvailable", form.IsAvailable).
		File("image", form.Image)
}

// ProfileFormData maps a ProfileForm onto its multipart fields.
func ProfileFormData(form *repository.ProfileForm) *Form {
	return NewForm().
		String("fullName", form.FullName).
		String("phone", form.Phone).
		File("avatar", form.Avatar)
}
