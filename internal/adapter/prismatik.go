package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-lightpack/internal/config"
	"github.com/MKhiriev/go-lightpack/internal/logger"
)

// PrismatikAdapter is a session client for the Prismatik Lightpack API.
//
// It owns at most one TCP connection. All exchanges run under a single
// mutex, so commands from concurrent callers are never interleaved on the
// wire. Any transport failure drops the connection; later calls report
// [ErrNotConnected] until SetupConnection succeeds again.
type PrismatikAdapter struct {
	mu sync.Mutex

	address string
	timeout time.Duration

	conn   net.Conn
	reader *bufio.Reader

	logger *logger.Logger
}

// NewPrismatikAdapter constructs a disconnected [PrismatikAdapter] for the
// address and timeout in cfg. A non-positive timeout falls back to
// [config.DefaultDeviceTimeout].
func NewPrismatikAdapter(cfg config.Device, log *logger.Logger) *PrismatikAdapter {
	address := cfg.Address
	if address == "" {
		address = config.DefaultDeviceAddress
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultDeviceTimeout
	}

	return &PrismatikAdapter{
		address: address,
		timeout: timeout,
		logger:  log,
	}
}

// Address returns the "host:port" the adapter dials.
func (p *PrismatikAdapter) Address() string {
	return p.address
}

// IsConnected implements [DeviceAdapter].
func (p *PrismatikAdapter) IsConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn != nil
}

// SetupConnection implements [DeviceAdapter]. It dials the device, checks
// the welcome banner and sends the API key. On any failure the adapter is
// left disconnected.
func (p *PrismatikAdapter) SetupConnection(ctx context.Context, apiKey string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn != nil {
		return nil
	}

	dialCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(dialCtx, "tcp", p.address)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %w", ErrConnectionFailed, p.address, err)
	}
	p.conn = conn
	p.reader = bufio.NewReader(conn)

	banner, err := p.readLine(ctx)
	if err != nil {
		return fmt.Errorf("%w: read banner: %w", ErrConnectionFailed, err)
	}
	if !strings.Contains(banner, bannerMarker) {
		p.reset()
		return &ProtocolError{Response: banner, Kind: ErrUnexpectedHandshake}
	}

	if err = p.authenticate(ctx, apiKey); err != nil {
		p.reset()
		return err
	}

	p.logger.Info().Str("address", p.address).Msg("connected to Prismatik")
	return nil
}

// Close implements [DeviceAdapter].
func (p *PrismatikAdapter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil
	}

	err := p.conn.Close()
	p.conn = nil
	p.reader = nil
	return err
}

// GetProfiles implements [DeviceAdapter].
func (p *PrismatikAdapter) GetProfiles(ctx context.Context) ([]string, error) {
	reply, err := p.locked(ctx, cmdGetProfiles)
	if err != nil {
		return nil, err
	}
	return parseProfiles(reply), nil
}

// GetProfile implements [DeviceAdapter].
//
// It sends `getprofiles`, not `getprofile`, and strips "profile:" from the
// reply. Against a device answering "profiles:..." the reply comes back
// unchanged. The command is kept as is until the device's reply for this
// call is confirmed.
func (p *PrismatikAdapter) GetProfile(ctx context.Context) (string, error) {
	reply, err := p.locked(ctx, cmdGetProfiles)
	if err != nil {
		return "", err
	}
	return parseProfile(reply), nil
}

// GetStatus implements [DeviceAdapter].
func (p *PrismatikAdapter) GetStatus(ctx context.Context) (string, error) {
	reply, err := p.locked(ctx, cmdGetStatus)
	if err != nil {
		return "", err
	}
	return parseStatus(reply), nil
}

// GetStatusAPI implements [DeviceAdapter]. The probe is sent without the
// device lock.
func (p *PrismatikAdapter) GetStatusAPI(ctx context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return false, ErrNotConnected
	}

	reply, err := p.exchange(ctx, cmdGetStatusAPI)
	if err != nil {
		return false, err
	}
	if !strings.Contains(reply, replyStatusAPI) {
		return false, &ProtocolError{Command: cmdGetStatusAPI, Response: reply, Kind: ErrUnexpectedResponse}
	}
	return strings.Contains(reply, replyStatusAPIIdle), nil
}

// SetBrightness implements [DeviceAdapter].
func (p *PrismatikAdapter) SetBrightness(ctx context.Context, level int) error {
	return p.lockedOK(ctx, setBrightnessCommand(level))
}

// SetProfile implements [DeviceAdapter].
func (p *PrismatikAdapter) SetProfile(ctx context.Context, name string) error {
	return p.lockedOK(ctx, setProfileCommand(name))
}

// SetStatus implements [DeviceAdapter]. See setStatusCommand for the wire
// form.
func (p *PrismatikAdapter) SetStatus(ctx context.Context, on bool) error {
	return p.lockedOK(ctx, setStatusCommand(on))
}

func (p *PrismatikAdapter) lockedOK(ctx context.Context, command string) error {
	reply, err := p.locked(ctx, command)
	if err != nil {
		return err
	}
	if !strings.Contains(reply, replyOK) {
		return &ProtocolError{Command: command, Response: reply, Kind: ErrCommandRejected}
	}
	return nil
}

// locked runs command inside a lock/unlock bracket and returns its reply.
// When the lock is refused neither the command nor `unlock` is sent. Once
// the lock is held, `unlock` is sent whatever happened to the command,
// unless the connection is already gone (closing the socket releases the
// lock on the device side).
func (p *PrismatikAdapter) locked(ctx context.Context, command string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return "", ErrNotConnected
	}

	if err := p.lock(ctx); err != nil {
		return "", err
	}

	reply, err := p.exchange(ctx, command)
	if p.conn != nil {
		p.unlock(ctx)
	}
	if err != nil {
		return "", err
	}

	return reply, nil
}

func (p *PrismatikAdapter) authenticate(ctx context.Context, apiKey string) error {
	reply, err := p.exchange(ctx, apiKeyCommand(apiKey))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}
	if !strings.Contains(reply, replyOK) {
		return &ProtocolError{Command: cmdAPIKey, Response: reply, Kind: ErrAuthenticationFailed}
	}
	return nil
}

func (p *PrismatikAdapter) lock(ctx context.Context) error {
	reply, err := p.exchange(ctx, cmdLock)
	if err != nil {
		return err
	}
	if !strings.Contains(reply, replyLockSuccess) {
		return &ProtocolError{Command: cmdLock, Response: reply, Kind: ErrLockFailed}
	}
	return nil
}

// unlock releases the device lock. It ignores cancellation of ctx and is
// bounded by the configured timeout only. Its outcome is only logged.
func (p *PrismatikAdapter) unlock(ctx context.Context) {
	reply, err := p.exchange(context.WithoutCancel(ctx), cmdUnlock)
	if err != nil {
		p.logger.Warn().Err(err).Msg("unlock failed")
		return
	}
	if !isUnlocked(reply) {
		p.logger.Warn().Str("reply", reply).Msg("unexpected unlock reply")
	}
}

// exchange writes one command line and reads one reply line. The caller
// must hold p.mu and p.conn must be set.
func (p *PrismatikAdapter) exchange(ctx context.Context, command string) (string, error) {
	if err := p.armDeadline(ctx); err != nil {
		return "", err
	}
	conn := p.conn
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	if _, err := conn.Write([]byte(command + "\n")); err != nil {
		return "", p.transportError(ctx, command, err)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil {
		return "", p.transportError(ctx, command, err)
	}

	reply := trimLine(line)
	p.logger.Debug().Str("command", command).Str("reply", reply).Msg("prismatik exchange")
	return reply, nil
}

// readLine reads the welcome banner. The caller must hold p.mu.
func (p *PrismatikAdapter) readLine(ctx context.Context) (string, error) {
	if err := p.armDeadline(ctx); err != nil {
		p.reset()
		return "", err
	}

	line, err := p.reader.ReadString('\n')
	if err != nil {
		return "", p.transportError(ctx, "", err)
	}
	return trimLine(line), nil
}

// armDeadline bounds the next exchange by the earlier of the context
// deadline and the configured timeout.
func (p *PrismatikAdapter) armDeadline(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	deadline := time.Now().Add(p.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	return p.conn.SetDeadline(deadline)
}

// transportError drops the connection and classifies err.
func (p *PrismatikAdapter) transportError(ctx context.Context, command string, err error) error {
	p.reset()

	var netErr net.Error
	timedOut := errors.As(err, &netErr) && netErr.Timeout()

	if d, ok := ctx.Deadline(); ok && timedOut && !time.Now().Before(d) {
		return fmt.Errorf("%w: %q: %w", ErrTimeout, command, context.DeadlineExceeded)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %q: %w", ErrTimeout, command, ctxErr)
		}
		return fmt.Errorf("%q: %w", command, ctxErr)
	}
	if timedOut {
		return fmt.Errorf("%w: %q", ErrTimeout, command)
	}
	return fmt.Errorf("%w: %q: %w", ErrConnectionFailed, command, err)
}

func (p *PrismatikAdapter) reset() {
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn = nil
	p.reader = nil
}
