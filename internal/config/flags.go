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
//	-d database DSN (PostgreSQL)
//	-sqlite-path SQLite database file path
//	-e environment name ("production" selects PostgreSQL)
//	-c/-config json file path with configs
//	-secret-key token signing secret
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m"; 0 disables expiry)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cors-origin allowed cross-origin caller
//	-reset-sweep-interval reset-token sweeper interval (0 disables)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var sqlitePath string
	var environment string
	var jsonConfigPath string
	var secretKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var corsAllowedOrigin string
	var resetSweepInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&sqlitePath, "sqlite-path", "", "SQLite database file path")
	flag.StringVar(&environment, "e", "", "Environment name")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&secretKey, "secret-key", "", "Token signing secret")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&corsAllowedOrigin, "cors-origin", "", "Allowed cross-origin caller")
	flag.DurationVar(&resetSweepInterval, "reset-sweep-interval", 0, "Reset-token sweeper interval")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Environment: environment,
		},
		Auth: Auth{
			SecretKey:     secretKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			SQLite: SQLite{
				Path: sqlitePath,
			},
		},
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			RequestTimeout:    requestTimeout,
			CORSAllowedOrigin: corsAllowedOrigin,
		},
		Workers: Workers{
			ResetTokenSweepInterval: resetSweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
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
