package adapter

import (
	"bufio"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakePrismatik is an in-process Lightpack API server recording every line
// it receives.
type fakePrismatik struct {
	ln net.Listener

	mu      sync.Mutex
	banner  string
	replies map[string]string
	silent  map[string]bool
	trace   []string
	accepts int
	conns   []net.Conn
}

func newFakePrismatik(t *testing.T) *fakePrismatik {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	f := &fakePrismatik{
		ln:      ln,
		banner:  "Lightpack API v1.4 - Prismatik API v2.2 (type \"help\" for more info)",
		replies: map[string]string{},
		silent:  map[string]bool{},
	}
	go f.serve()

	t.Cleanup(f.close)
	return f
}

func (f *fakePrismatik) addr() string {
	return f.ln.Addr().String()
}

// reply overrides the answer to the exact command line.
func (f *fakePrismatik) reply(command, answer string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[command] = answer
}

// mute makes the server swallow command without answering.
func (f *fakePrismatik) mute(command string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.silent[command] = true
}

func (f *fakePrismatik) setBanner(banner string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.banner = banner
}

func (f *fakePrismatik) getTrace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.trace...)
}

func (f *fakePrismatik) resetTrace() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = nil
}

func (f *fakePrismatik) acceptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accepts
}

// dropConnections closes every accepted connection from the server side.
func (f *fakePrismatik) dropConnections() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.conns {
		_ = c.Close()
	}
	f.conns = nil
}

func (f *fakePrismatik) close() {
	_ = f.ln.Close()
	f.dropConnections()
}

func (f *fakePrismatik) serve() {
	for {
		conn, err := f.ln.Accept()
		if err != nil {
			return
		}

		f.mu.Lock()
		f.accepts++
		f.conns = append(f.conns, conn)
		banner := f.banner
		f.mu.Unlock()

		go f.handle(conn, banner)
	}
}

func (f *fakePrismatik) handle(conn net.Conn, banner string) {
	defer conn.Close()

	if _, err := conn.Write([]byte(banner + "\r\n")); err != nil {
		return
	}

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()

		f.mu.Lock()
		f.trace = append(f.trace, line)
		answer, overridden := f.replies[line]
		silent := f.silent[line]
		f.mu.Unlock()

		if silent {
			continue
		}
		if !overridden {
			answer = defaultReply(line)
		}
		if _, err := conn.Write([]byte(answer + "\r\n")); err != nil {
			return
		}
	}
}

func defaultReply(line string) string {
	name, _, _ := strings.Cut(line, ":")
	switch name {
	case "apikey", "setbrightness", "setprofile", "setstatus":
		return "ok"
	case "lock":
		return "lock:success"
	case "unlock":
		return "unlock:success"
	case "getprofiles":
		return "profiles:movie;game;general"
	case "getstatus":
		return "status:on"
	case "getstatusapi":
		return "statusapi:idle"
	default:
		return "error"
	}
}
