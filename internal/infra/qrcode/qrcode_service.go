package qrcode

import (
	"net/url"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const storePathPrefix = "/store/"

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance.
// Codes encode <baseURL>/store/<slug>.
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig creates the QR code service from the qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// StoreLink returns the public page URL of a store.
func (s *qrcodeService) StoreLink(slug string) string {
	return s.baseURL + storePathPrefix + url.PathEscape(slug)
}

// GenerateStoreQR generates a PNG QR code pointing at the store page
func (s *qrcodeService) GenerateStoreQR(slug string) ([]byte, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, domainerrors.ErrStoreNotIdentified
	}

	qrCode, err := qrcode.New(s.StoreLink(slug), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseStoreQR extracts the store slug from scanned content.
// Any URL whose path ends in /store/<slug> is accepted, so links from other hosts still resolve.
func (s *qrcodeService) ParseStoreQR(content string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(content))
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("not a store link"), err.Error())
	}

	idx := strings.LastIndex(u.Path, storePathPrefix)
	if idx < 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("not a store link")
	}

	slug := strings.Trim(u.Path[idx+len(storePathPrefix):], "/")
	if slug == "" || strings.Contains(slug, "/") {
		return "", domainerrors.ErrValidationFailed.WithDetails("store link has no slug")
	}

	return slug, nil
}
