// Package grpc exposes the standard gRPC health service of the daemon. The
// serving status of [DeviceServiceName] follows the device connection.
package grpc

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/service"
	"github.com/MKhiriev/go-lightpack/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// DeviceServiceName is the health service name reporting device
// connectivity. The empty name reports the daemon itself.
const DeviceServiceName = "lightpack.Device"

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	mu          sync.Mutex
	unsubscribe func()

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Nothing is registered until
// [Handler.Register] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register adds the health service to server and starts following the
// device connection.
func (h *Handler) Register(server grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(server, h.health)

	light := h.services.LightService
	h.setDeviceServing(light.State(context.Background()).Connected)

	h.mu.Lock()
	h.unsubscribe = light.Subscribe(func(_, next models.DeviceState) {
		h.setDeviceServing(next.Connected)
	})
	h.mu.Unlock()
}

// Shutdown reports NOT_SERVING for every service and stops following the
// device.
func (h *Handler) Shutdown() {
	h.mu.Lock()
	if h.unsubscribe != nil {
		h.unsubscribe()
		h.unsubscribe = nil
	}
	h.mu.Unlock()

	h.health.Shutdown()
}

func (h *Handler) setDeviceServing(connected bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if connected {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus(DeviceServiceName, status)
	h.logger.Debug().Str("status", status.String()).Msg("device health updated")
}
