package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-lightpack/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldBrightness targets the brightness level of a BrightnessRequest.
	FieldBrightness = "brightness"

	// FieldProfile targets the profile name of a ProfileRequest.
	FieldProfile = "profile"

	// FieldAPIKey targets the API key of a ConnectRequest.
	FieldAPIKey = "api_key"

	// FieldLimit targets the page size of an EventsRequest.
	FieldLimit = "limit"
)

// Brightness and listing bounds accepted by the device API.
const (
	MinBrightness = 0
	MaxBrightness = 100

	MaxEventsLimit = 1000
)

// DeviceValidator implements [Validator] for the request models of the
// device API. Every value that ends up on the Prismatik wire is checked so
// that one request can never produce a second protocol line.
type DeviceValidator struct {
}

// NewDeviceValidator constructs a DeviceValidator and returns it as the
// Validator interface.
func NewDeviceValidator() Validator {
	return &DeviceValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of BrightnessRequest, ProfileRequest, ConnectRequest and
// EventsRequest are accepted. StatusRequest has nothing to check.
//
// Returns ErrUnsupportedType for any other type.
func (v *DeviceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BrightnessRequest:
		return v.validateBrightness(value, fields...)
	case *models.BrightnessRequest:
		return v.validateBrightness(*value, fields...)
	case models.ProfileRequest:
		return v.validateProfile(value, fields...)
	case *models.ProfileRequest:
		return v.validateProfile(*value, fields...)
	case models.ConnectRequest:
		return v.validateConnect(value, fields...)
	case *models.ConnectRequest:
		return v.validateConnect(*value, fields...)
	case models.EventsRequest:
		return v.validateEvents(value, fields...)
	case *models.EventsRequest:
		return v.validateEvents(*value, fields...)
	case models.StatusRequest, *models.StatusRequest:
		return nil
	default:
		return ErrUnsupportedType
	}
}

func (v *DeviceValidator) validateBrightness(req models.BrightnessRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBrightness}
	}

	for _, f := range fields {
		switch f {
		case FieldBrightness:
			if req.Brightness < MinBrightness || req.Brightness > MaxBrightness {
				return ErrBrightnessOutOfRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DeviceValidator) validateProfile(req models.ProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfile}
	}

	for _, f := range fields {
		switch f {
		case FieldProfile:
			if strings.TrimSpace(req.Profile) == "" {
				return ErrEmptyProfile
			}
			if strings.ContainsAny(req.Profile, ";\r\n") {
				return ErrInvalidProfile
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DeviceValidator) validateConnect(req models.ConnectRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAPIKey}
	}

	for _, f := range fields {
		switch f {
		case FieldAPIKey:
			// empty means "use the configured key"
			if strings.ContainsAny(req.APIKey, "\r\n") {
				return ErrInvalidAPIKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DeviceValidator) validateEvents(req models.EventsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			if req.Limit < 1 || req.Limit > MaxEventsLimit {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
