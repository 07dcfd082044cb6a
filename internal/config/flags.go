package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a daemon http address in format [host]:[port]
//	-grpc-address daemon grpc health address in format [host]:[port]
//	-d journal database DSN
//	-c/-config json file path with configs
//	-device prismatik address in format [host]:[port]
//	-api-key prismatik api key
//	-device-timeout prismatik exchange timeout (e.g., "5s")
//	-server remote daemon url used by clients
//	-password remote daemon operator password
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-poll-interval status poller interval
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-hue-bridge hue bridge ip
//	-hue-user hue bridge user name
//	-hue-group hue group id
//	-notify enable desktop notifications
//	-log-level zerolog level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-lightpack", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcServerAddress, deviceAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var apiKey string
	var deviceTimeout time.Duration
	var remoteURL string
	var remotePassword string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var hueBridge string
	var hueUser string
	var hueGroup int
	var notify bool
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.Var(&deviceAddress, "device", "Prismatik address host:port")
	fs.StringVar(&apiKey, "api-key", "", "Prismatik API key")
	fs.DurationVar(&deviceTimeout, "device-timeout", 0, "Prismatik exchange timeout (e.g., 5s)")
	fs.StringVar(&remoteURL, "server", "", "Remote daemon URL")
	fs.StringVar(&remotePassword, "password", "", "Remote daemon password")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Status poll interval (e.g., 10s)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&hueBridge, "hue-bridge", "", "Hue bridge IP")
	fs.StringVar(&hueUser, "hue-user", "", "Hue bridge user name")
	fs.IntVar(&hueGroup, "hue-group", 0, "Hue group ID")
	fs.BoolVar(&notify, "notify", false, "Enable desktop notifications")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:      logLevel,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Device: Device{
			Address: deviceAddress.String(),
			APIKey:  apiKey,
			Timeout: deviceTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteURL,
			Password:       remotePassword,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{PollInterval: pollInterval},
		Hue: Hue{
			BridgeIP: hueBridge,
			Username: hueUser,
			GroupID:  hueGroup,
		},
		Notify:       Notify{Enabled: notify},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
