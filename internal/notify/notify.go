// Package notify shows desktop notifications about device state changes
// through the freedesktop notification service on the session D-Bus.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/models"
	"github.com/godbus/dbus/v5"
)

const (
	notificationsDest   = "org.freedesktop.Notifications"
	notificationsPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	notificationsMethod = notificationsDest + ".Notify"

	appName       = "go-lightpack"
	appIcon       = "preferences-desktop-display"
	expireTimeout = int32(5000)
	callTimeout   = 2 * time.Second
)

// caller is the part of dbus.BusObject used to send notifications.
type caller interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...any) *dbus.Call
}

// DBusNotifier sends one notification per device state change. Consecutive
// notifications replace each other instead of piling up.
type DBusNotifier struct {
	conn *dbus.Conn
	obj  caller

	mu     sync.Mutex
	lastID uint32

	logger *logger.Logger
}

// NewDBusNotifier connects to the session bus.
func NewDBusNotifier(log *logger.Logger) (*DBusNotifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("error connecting to session bus: %w", err)
	}

	return &DBusNotifier{
		conn:   conn,
		obj:    conn.Object(notificationsDest, notificationsPath),
		logger: log,
	}, nil
}

func newNotifier(obj caller, log *logger.Logger) *DBusNotifier {
	return &DBusNotifier{obj: obj, logger: log}
}

// Notify shows a notification and remembers its id so the next one replaces
// it.
func (n *DBusNotifier) Notify(ctx context.Context, summary, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	call := n.obj.CallWithContext(ctx, notificationsMethod, 0,
		appName, n.lastID, appIcon, summary, body,
		[]string{}, map[string]dbus.Variant{}, expireTimeout)
	if call.Err != nil {
		return fmt.Errorf("notification was not delivered: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("unexpected notification reply: %w", err)
	}
	n.lastID = id

	return nil
}

// OnStateChange has the shape of service.StateListener.
func (n *DBusNotifier) OnStateChange(prev, next models.DeviceState) {
	summary, body, ok := stateMessage(prev, next)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	if err := n.Notify(ctx, summary, body); err != nil {
		n.logger.Warn().Err(err).Str("summary", summary).Msg("desktop notification failed")
	}
}

func (n *DBusNotifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}

// stateMessage describes the transition from prev to next. ok is false when
// nothing worth a notification changed.
func stateMessage(prev, next models.DeviceState) (summary, body string, ok bool) {
	switch {
	case prev.Connected && !next.Connected:
		return "Lightpack disconnected", "Prismatik is not reachable.", true
	case !prev.Connected && next.Connected:
		return "Lightpack connected", "Session with Prismatik established.", true
	case prev.Status != next.Status && next.Status != "":
		return "Lightpack " + next.Status, fmt.Sprintf("Status changed from %q to %q.", prev.Status, next.Status), true
	default:
		return "", "", false
	}
}
