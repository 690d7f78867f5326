// Package config builds the immutable runtime configuration from an optional
// JSON file, command-line flags and environment variables, in that order of
// increasing precedence.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// ErrMissingSecret is returned by Validate when no JWT secret is configured.
var ErrMissingSecret = errors.New("jwt secret is not configured")

// Options holds the configuration values for the application.
type Options struct {
	// ServerAddress is the HTTP listen address (ip:port).
	ServerAddress string `json:"server_address"`

	// DatabaseDSN selects the PostgreSQL store when set.
	DatabaseDSN string `json:"database_dsn"`

	// MySQLDSN selects the gorm MySQL store when set and DatabaseDSN is not.
	MySQLDSN string `json:"mysql_dsn"`

	// FilePath makes the in-memory store persistent.
	FilePath string `json:"file_storage_path"`

	JWTSecret string `json:"jwt_secret"`

	// TokenTTL adds an expiry to issued tokens; zero means no expiry.
	TokenTTL time.Duration `json:"-"`

	GRPCPort      int    `json:"grpc_port"`
	TrustedSubnet string `json:"trusted_subnet"`
	LogLevel      string `json:"log_level"`

	EnablePprof bool `json:"enable_pprof"`
	EnableHTTPS bool `json:"enable_https"`

	// Config is the path of the JSON config file.
	Config string `json:"-"`
}

// fileOptions is the on-disk shape; the TTL is a duration string like "24h".
type fileOptions struct {
	Options
	TokenTTL string `json:"token_ttl"`
}

func defaults() Options {
	return Options{
		ServerAddress: "localhost:8080",
		GRPCPort:      3200,
		LogLevel:      "info",
	}
}

// Parse reads os.Args and the process environment.
func Parse() (*Options, error) {
	return ParseArgs(os.Args[1:], os.Getenv)
}

// ParseArgs builds Options from args and getenv.
func ParseArgs(args []string, getenv func(string) string) (*Options, error) {
	def := defaults()
	flagged := def
	var ttl string

	fs := flag.NewFlagSet("brain", flag.ContinueOnError)
	fs.StringVar(&flagged.ServerAddress, "a", def.ServerAddress, "run on ip:port server")
	fs.StringVar(&flagged.DatabaseDSN, "d", "", "postgres dsn")
	fs.StringVar(&flagged.MySQLDSN, "m", "", "mysql dsn")
	fs.StringVar(&flagged.FilePath, "f", "", "path to storage file")
	fs.StringVar(&flagged.JWTSecret, "j", "", "jwt signing secret")
	fs.StringVar(&ttl, "t", "", "token ttl, e.g. 24h")
	fs.IntVar(&flagged.GRPCPort, "g", def.GRPCPort, "grpc port")
	fs.StringVar(&flagged.TrustedSubnet, "n", "", "trusted subnet CIDR")
	fs.StringVar(&flagged.LogLevel, "l", def.LogLevel, "log level")
	fs.BoolVar(&flagged.EnablePprof, "p", false, "enable pprof")
	fs.BoolVar(&flagged.EnableHTTPS, "s", false, "enable https")
	fs.StringVar(&flagged.Config, "c", "", "path to json config")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := def

	cfgPath := flagged.Config
	if v := getenv("CONFIG"); v != "" {
		cfgPath = v
	}
	if cfgPath != "" {
		if err := loadFile(cfgPath, &opts); err != nil {
			return nil, err
		}
		opts.Config = cfgPath
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			opts.ServerAddress = flagged.ServerAddress
		case "d":
			opts.DatabaseDSN = flagged.DatabaseDSN
		case "m":
			opts.MySQLDSN = flagged.MySQLDSN
		case "f":
			opts.FilePath = flagged.FilePath
		case "j":
			opts.JWTSecret = flagged.JWTSecret
		case "t":
			if opts.TokenTTL, err = time.ParseDuration(ttl); err != nil {
				err = fmt.Errorf("flag -t: %w", err)
			}
		case "g":
			opts.GRPCPort = flagged.GRPCPort
		case "n":
			opts.TrustedSubnet = flagged.TrustedSubnet
		case "l":
			opts.LogLevel = flagged.LogLevel
		case "p":
			opts.EnablePprof = flagged.EnablePprof
		case "s":
			opts.EnableHTTPS = flagged.EnableHTTPS
		}
	})
	if err != nil {
		return nil, err
	}

	if err := applyEnv(&opts, getenv); err != nil {
		return nil, err
	}

	return &opts, nil
}

func loadFile(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	f := fileOptions{Options: *opts}
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	*opts = f.Options
	if f.TokenTTL != "" {
		ttl, err := time.ParseDuration(f.TokenTTL)
		if err != nil {
			return fmt.Errorf("config token_ttl: %w", err)
		}
		opts.TokenTTL = ttl
	}

	return nil
}

func applyEnv(opts *Options, getenv func(string) string) error {
	strs := map[string]*string{
		"SERVER_ADDRESS":    &opts.ServerAddress,
		"DATABASE_DSN":      &opts.DatabaseDSN,
		"MYSQL_DSN":         &opts.MySQLDSN,
		"FILE_STORAGE_PATH": &opts.FilePath,
		"JWT_SECRET":        &opts.JWTSecret,
		"TRUSTED_SUBNET":    &opts.TrustedSubnet,
		"LOG_LEVEL":         &opts.LogLevel,
	}
	for key, dst := range strs {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	if v := getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TOKEN_TTL: %w", err)
		}
		opts.TokenTTL = ttl
	}

	if v := getenv("GRPC_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GRPC_PORT: %w", err)
		}
		opts.GRPCPort = port
	}

	bools := map[string]*bool{
		"ENABLE_PPROF": &opts.EnablePprof,
		"ENABLE_HTTPS": &opts.EnableHTTPS,
	}
	for key, dst := range bools {
		if v := getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = b
		}
	}

	return nil
}

// Validate reports configuration faults that must stop the process.
func (o *Options) Validate() error {
	if o.JWTSecret == "" {
		return ErrMissingSecret
	}

	if o.TokenTTL < 0 {
		return fmt.Errorf("token ttl must not be negative: %s", o.TokenTTL)
	}

	if o.TrustedSubnet != "" {
		if _, _, err := net.ParseCIDR(o.TrustedSubnet); err != nil {
			return fmt.Errorf("trusted subnet: %w", err)
		}
	}

	return nil
}

// StorageKind names the backend selected by the options.
func (o *Options) StorageKind() string {
	switch {
	case o.DatabaseDSN != "":
		return "postgres"
	case o.MySQLDSN != "":
		return "mysql"
	case o.FilePath != "":
		return "file"
	default:
		return "memory"
	}
}
