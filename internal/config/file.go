// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/MKhiriev/go-session-keeper/models"
)

// Duration wraps time.Duration so it can be decoded from strings such as
// "30s" in both JSON and TOML files.
type Duration time.Duration

// UnmarshalJSON accepts either a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText parses a time.ParseDuration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// fileConfig is the on-disk layout of the config file.
type fileConfig struct {
	App struct {
		Version     string `json:"version" toml:"version"`
		Interactive bool   `json:"interactive" toml:"interactive"`
		LogLevel    string `json:"log_level" toml:"log_level"`
		LogFormat   string `json:"log_format" toml:"log_format"`
	} `json:"app" toml:"app"`

	Storage struct {
		Backend       string `json:"backend" toml:"backend"`
		TokenDir      string `json:"token_dir" toml:"token_dir"`
		DSN           string `json:"dsn" toml:"dsn"`
		EncryptionKey string `json:"encryption_key" toml:"encryption_key"`
		Redis         struct {
			Address   string `json:"address" toml:"address"`
			Password  string `json:"password" toml:"password"`
			DB        int    `json:"db" toml:"db"`
			KeyPrefix string `json:"key_prefix" toml:"key_prefix"`
		} `json:"redis" toml:"redis"`
	} `json:"storage" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" toml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"server" toml:"server"`

	Adapter struct {
		TransportAddress      string   `json:"transport_address" toml:"transport_address"`
		TransportTLS          bool     `json:"transport_tls" toml:"transport_tls"`
		TLSInsecureSkipVerify bool     `json:"tls_insecure_skip_verify" toml:"tls_insecure_skip_verify"`
		DialTimeout           Duration `json:"dial_timeout" toml:"dial_timeout"`
		AuthURL               string   `json:"auth_url" toml:"auth_url"`
		RequestTimeout        Duration `json:"request_timeout" toml:"request_timeout"`
		PollInterval          Duration `json:"poll_interval" toml:"poll_interval"`
	} `json:"adapter" toml:"adapter"`

	Session struct {
		LoginTimeout Duration `json:"login_timeout" toml:"login_timeout"`
	} `json:"session" toml:"session"`

	Accounts []models.AccountConfig `json:"accounts" toml:"accounts"`

	// SteamAccounts is the legacy key of the account list.
	SteamAccounts []models.AccountConfig `json:"SteamAccounts" toml:"SteamAccounts"`
}

// parseFile reads the config file at path. Files ending in .toml are decoded
// as TOML. Everything else is JSON, where a bare array is read as the
// account list.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg fileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &fileCfg); err != nil {
			return nil, fmt.Errorf("%w: decoding toml: %w", ErrInvalidConfigFile, err)
		}
	} else if err := decodeJSON(data, &fileCfg); err != nil {
		return nil, err
	}

	return fileCfg.toStructured(), nil
}

func decodeJSON(data []byte, fileCfg *fileConfig) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &fileCfg.Accounts); err != nil {
			return fmt.Errorf("%w: decoding account list: %w", ErrInvalidConfigFile, err)
		}
		return nil
	}

	if err := json.Unmarshal(trimmed, fileCfg); err != nil {
		return fmt.Errorf("%w: decoding json: %w", ErrInvalidConfigFile, err)
	}
	return nil
}

func (f *fileConfig) toStructured() *StructuredConfig {
	accounts := make([]models.AccountConfig, 0, len(f.Accounts)+len(f.SteamAccounts))
	accounts = append(accounts, f.Accounts...)
	accounts = append(accounts, f.SteamAccounts...)

	return &StructuredConfig{
		App: App{
			Version:     f.App.Version,
			Interactive: f.App.Interactive,
			LogLevel:    f.App.LogLevel,
			LogFormat:   f.App.LogFormat,
		},
		Storage: Storage{
			Backend:       f.Storage.Backend,
			TokenDir:      f.Storage.TokenDir,
			DSN:           f.Storage.DSN,
			EncryptionKey: f.Storage.EncryptionKey,
			Redis: Redis{
				Address:   f.Storage.Redis.Address,
				Password:  f.Storage.Redis.Password,
				DB:        f.Storage.Redis.DB,
				KeyPrefix: f.Storage.Redis.KeyPrefix,
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			GRPCAddress:    f.Server.GRPCAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Adapter: Adapter{
			TransportAddress:      f.Adapter.TransportAddress,
			TransportTLS:          f.Adapter.TransportTLS,
			TLSInsecureSkipVerify: f.Adapter.TLSInsecureSkipVerify,
			DialTimeout:           time.Duration(f.Adapter.DialTimeout),
			AuthURL:               f.Adapter.AuthURL,
			RequestTimeout:        time.Duration(f.Adapter.RequestTimeout),
			PollInterval:          time.Duration(f.Adapter.PollInterval),
		},
		Session: Session{
			LoginTimeout: time.Duration(f.Session.LoginTimeout),
		},
		Accounts: accounts,
	}
}
