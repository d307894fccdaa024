// Package config loads the arbor.yaml project file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/arbor/pkg/domain"
)

// DefaultFile is looked up in the working directory when no --config is given.
const DefaultFile = "arbor.yaml"

// Journal drivers.
const (
	DriverNone   = "none"
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config is the resolved project configuration.
type Config struct {
	Dir                 string  `yaml:"dir" json:"dir"`
	Unknown             string  `yaml:"unknown" json:"unknown"`
	MissingConfirmation string  `yaml:"missing_confirmation" json:"missing_confirmation"`
	Topics              []Topic `yaml:"topics" json:"topics"`
	Journal             Journal `yaml:"-" json:"-"`
	Log                 Log     `yaml:"log" json:"log"`
}

// Topic binds a topic name to a document id of the repository.
type Topic struct {
	Name   string `yaml:"name" json:"name"`
	Source string `yaml:"source" json:"source"`
}

// Journal selects where finished plays are recorded.
type Journal struct {
	Driver   string        `mapstructure:"driver"`
	Path     string        `mapstructure:"path"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// file is the on-disk shape; the journal block is decoded separately so
// durations like "24h" and numeric seconds are both accepted.
type file struct {
	Config  `yaml:",inline"`
	Journal map[string]any `yaml:"journal" json:"journal"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Dir:                 ".",
		Unknown:             domain.Unknown,
		MissingConfirmation: string(domain.ConfirmInconclusive),
		Journal:             Journal{Driver: DriverNone, Prefix: "arbor:"},
		Log:                 Log{Level: "info", Format: "text"},
	}
}

// Load reads path (YAML, or JSON when the extension is .json).
// A missing file yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes raw configuration bytes on top of Default.
func Parse(path string, data []byte) (Config, error) {
	raw := file{Config: Default()}
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg := raw.Config
	cfg.Journal = Default().Journal
	if raw.Journal != nil {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			Result:           &cfg.Journal,
		})
		if err != nil {
			return Default(), err
		}
		if err := dec.Decode(raw.Journal); err != nil {
			return Default(), fmt.Errorf("parse config %s: journal: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if _, err := domain.ParseConfirmationPolicy(c.MissingConfirmation); err != nil {
		return err
	}
	switch c.Journal.Driver {
	case "", DriverNone, DriverMemory:
	case DriverSQLite:
		if c.Journal.Path == "" {
			return fmt.Errorf("journal: sqlite driver requires a path")
		}
	case DriverRedis:
		if c.Journal.Addr == "" {
			return fmt.Errorf("journal: redis driver requires an addr")
		}
	default:
		return fmt.Errorf("journal: unknown driver %q", c.Journal.Driver)
	}
	seen := make(map[string]bool, len(c.Topics))
	for _, t := range c.Topics {
		if t.Name == "" {
			return fmt.Errorf("topics: entry without name")
		}
		if seen[t.Name] {
			return fmt.Errorf("topics: duplicate name %q", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

// Policy returns the parsed confirmation policy.
func (c Config) Policy() domain.ConfirmationPolicy {
	p, err := domain.ParseConfirmationPolicy(c.MissingConfirmation)
	if err != nil {
		return domain.ConfirmInconclusive
	}
	return p
}

// Sources maps every configured topic name to its document id.
// Entries without a source use the topic name.
func (c Config) Sources() map[string]string {
	out := make(map[string]string, len(c.Topics))
	for _, t := range c.Topics {
		src := t.Source
		if src == "" {
			src = t.Name
		}
		out[t.Name] = src
	}
	return out
}
