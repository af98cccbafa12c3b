package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "8h", "30m")
//	-login-delay simulated login gate delay (e.g., "1500ms")
//	-analyzer-url scene analyzer base URL
//	-analyzer-key scene analyzer API key
//	-analyzer-model scene analyzer model id
//	-scan-interval sentry loop scan period (e.g., "6s")
//	-sentry-auto-start arm the sentry loop at startup
//	-feed-auto-start acquire the camera feed at startup
//	-location camera location label
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-server-url console target server base URL
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var loginDelay time.Duration
	var analyzerURL string
	var analyzerKey string
	var analyzerModel string
	var scanInterval time.Duration
	var sentryAutoStart bool
	var feedAutoStart bool
	var location string
	var requestTimeout time.Duration
	var consoleServerURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 8h, 30m)")
	flag.DurationVar(&loginDelay, "login-delay", 0, "Simulated login gate delay (e.g., 1500ms)")
	flag.StringVar(&analyzerURL, "analyzer-url", "", "Scene analyzer base URL")
	flag.StringVar(&analyzerKey, "analyzer-key", "", "Scene analyzer API key")
	flag.StringVar(&analyzerModel, "analyzer-model", "", "Scene analyzer model id")
	flag.DurationVar(&scanInterval, "scan-interval", 0, "Sentry scan period (e.g., 6s)")
	flag.BoolVar(&sentryAutoStart, "sentry-auto-start", false, "Arm the sentry loop at startup")
	flag.BoolVar(&feedAutoStart, "feed-auto-start", false, "Acquire the camera feed at startup")
	flag.StringVar(&location, "location", "", "Camera location label")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&consoleServerURL, "server-url", "", "Console target server base URL")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LoginDelay:    loginDelay,
		},
		Analyzer: Analyzer{
			BaseURL: analyzerURL,
			APIKey:  analyzerKey,
			Model:   analyzerModel,
		},
		Capture: Capture{
			Location: location,
		},
		Sentry: Sentry{
			ScanInterval: scanInterval,
			AutoStart:    sentryAutoStart,
		},
		Feed: Feed{
			AutoStart: feedAutoStart,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Console: Console{
			ServerURL: consoleServerURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so mergo can
// treat the field as unset.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
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
