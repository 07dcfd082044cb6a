package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lightpack/internal/validators"
	"github.com/MKhiriev/go-lightpack/models"
)

// LightValidationService checks every value that reaches the device wire
// before delegating to the wrapped LightService.
type LightValidationService struct {
	inner     LightService
	validator validators.Validator
}

func NewLightValidationService() LightServiceWrapper {
	return &LightValidationService{
		validator: validators.NewDeviceValidator(),
	}
}

func (v *LightValidationService) Connect(ctx context.Context, apiKey string) error {
	if err := v.validator.Validate(ctx, models.ConnectRequest{APIKey: apiKey}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Connect(ctx, apiKey)
}

func (v *LightValidationService) State(ctx context.Context) models.DeviceState {
	return v.inner.State(ctx)
}

func (v *LightValidationService) GetProfiles(ctx context.Context) ([]string, error) {
	return v.inner.GetProfiles(ctx)
}

func (v *LightValidationService) GetProfile(ctx context.Context) (string, error) {
	return v.inner.GetProfile(ctx)
}

func (v *LightValidationService) GetStatus(ctx context.Context) (string, error) {
	return v.inner.GetStatus(ctx)
}

func (v *LightValidationService) GetStatusAPI(ctx context.Context) (bool, error) {
	return v.inner.GetStatusAPI(ctx)
}

func (v *LightValidationService) SetBrightness(ctx context.Context, level int) error {
	if err := v.validator.Validate(ctx, models.BrightnessRequest{Brightness: level}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SetBrightness(ctx, level)
}

func (v *LightValidationService) SetProfile(ctx context.Context, name string) error {
	if err := v.validator.Validate(ctx, models.ProfileRequest{Profile: name}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SetProfile(ctx, name)
}

func (v *LightValidationService) SetStatus(ctx context.Context, on bool) error {
	return v.inner.SetStatus(ctx, on)
}

func (v *LightValidationService) Events(ctx context.Context, limit int) ([]models.DeviceEvent, error) {
	if err := v.validator.Validate(ctx, models.EventsRequest{Limit: limit}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Events(ctx, limit)
}

func (v *LightValidationService) Subscribe(fn StateListener) func() {
	return v.inner.Subscribe(fn)
}

func (v *LightValidationService) Wrap(inner LightService) LightService {
	v.inner = inner
	return v
}
