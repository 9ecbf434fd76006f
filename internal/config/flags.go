package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-c/-config json or toml file path with configs
//	-a status http address in format [host]:[port]
//	-grpc-address grpc health address in format [host]:[port]
//	-storage token storage backend (file, sqlite, postgres, redis)
//	-token-dir token directory of the file backend
//	-d database DSN
//	-transport remote gateway address host:port
//	-auth-url authentication service base URL
//	-log-level zerolog level
//	-interactive prompt for guard codes on the terminal
func ParseFlags(args []string) (*StructuredConfig, error) {
	var httpAddress, grpcAddress NetAddress
	var configPath string
	var backend string
	var tokenDir string
	var databaseDSN string
	var transport string
	var authURL string
	var logLevel string
	var interactive bool

	fs := flag.NewFlagSet("session-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&configPath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or TOML config file path (alias)")
	fs.Var(&httpAddress, "a", "Status API address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health address host:port")
	fs.StringVar(&backend, "storage", "", "Token storage backend")
	fs.StringVar(&tokenDir, "token-dir", "", "Token directory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&transport, "transport", "", "Remote gateway address host:port")
	fs.StringVar(&authURL, "auth-url", "", "Authentication service URL")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&interactive, "interactive", false, "Prompt for guard codes")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Interactive: interactive,
			LogLevel:    logLevel,
		},
		Storage: Storage{
			Backend:  backend,
			TokenDir: tokenDir,
			DSN:      databaseDSN,
		},
		Server: Server{
			HTTPAddress: httpAddress.String(),
			GRPCAddress: grpcAddress.String(),
		},
		Adapter: Adapter{
			TransportAddress: transport,
			AuthURL:          authURL,
		},
		FilePath: configPath,
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
