package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server's command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database/sql driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-auth-type authentication scheme
//	-session-name session cookie name
//	-session-duration session lifetime in seconds (<=0 never expires)
//	-single-session keep at most one session per user
//	-password-hasher bcrypt or argon2id
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-storage-timeout storage call timeout (e.g., "5s")
//	-log-level minimum log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("auth-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var authType, sessionName, passwordHasher, logLevel string
	var sessionDuration int
	var singleSession bool
	var requestTimeout, storageTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&authType, "auth-type", "", "Authentication type")
	fs.StringVar(&sessionName, "session-name", "", "Session cookie name")
	fs.IntVar(&sessionDuration, "session-duration", 0, "Session duration in seconds")
	fs.BoolVar(&singleSession, "single-session", false, "Keep at most one session per user")
	fs.StringVar(&passwordHasher, "password-hasher", "", "Password hasher (bcrypt or argon2id)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&storageTimeout, "storage-timeout", 0, "Storage call timeout (e.g., 5s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AuthType:        models.AuthType(authType),
			SessionName:     sessionName,
			SessionDuration: sessionDuration,
			SingleSession:   singleSession,
			PasswordHasher:  passwordHasher,
			LogLevel:        logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
			Timeout: storageTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
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
