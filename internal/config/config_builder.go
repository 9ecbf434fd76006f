package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

const (
	defaultConfigPath     = "config.json"
	defaultTokenDir       = "tokens"
	defaultRedisKeyPrefix = "session-keeper:tokens:"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithAppendSlice); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if config.Storage.TokenDir != "" {
		config.Storage.TokenDir = resolveNearExecutable(config.Storage.TokenDir)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withFile loads the file named by an earlier source. Without one, a
// config.json next to the executable is used when it exists.
func (b *configBuilder) withFile() *configBuilder {
	path := ""
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
			break
		}
	}

	if path == "" {
		candidate := resolveNearExecutable(defaultConfigPath)
		if _, err := os.Stat(candidate); err != nil {
			return b
		}
		path = candidate
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:  "info",
			LogFormat: "json",
		},
		Storage: Storage{
			Backend:  BackendFile,
			TokenDir: defaultTokenDir,
			Redis: Redis{
				KeyPrefix: defaultRedisKeyPrefix,
			},
		},
		Server: Server{
			RequestTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			DialTimeout:    10 * time.Second,
			RequestTimeout: 15 * time.Second,
			PollInterval:   2 * time.Second,
		},
		Session: Session{
			LoginTimeout: 10 * time.Minute,
		},
	}
}

// resolveNearExecutable makes a relative path relative to the directory of
// the running binary instead of the working directory.
func resolveNearExecutable(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	exe, err := os.Executable()
	if err != nil {
		return path
	}
	return filepath.Join(filepath.Dir(exe), path)
}
