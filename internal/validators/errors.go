package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrBrightnessOutOfRange = errors.New("brightness must be within 0..100")
	ErrEmptyProfile         = errors.New("profile name is required")
	ErrInvalidProfile       = errors.New("profile name must not contain ';', CR or LF")
	ErrInvalidAPIKey        = errors.New("api key must not contain CR or LF")
	ErrInvalidLimit         = errors.New("limit must be within 1..1000")
)
