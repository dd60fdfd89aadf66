package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/v2"
	"primamateria.systems/reliquary/internal/report"
	"primamateria.systems/reliquary/pkg/annotations"
	"primamateria.systems/reliquary/pkg/data"
)

type Config struct {
	Debug           bool
	UseStdout       bool
	Diffs           bool
	Reclaim         bool
	AttributePrefix string
	ScanMarker      string
	Format          report.Format
}

var defaults = map[string]any{
	"diffs":      true,
	"reclaim":    true,
	"prefix":     annotations.DefaultPrefix,
	"scanmarker": data.DefaultScanMarker,
	"format":     string(report.FormatText),
}

func NewConfig(k *koanf.Koanf) (*Config, error) {
	var c Config
	var err error
	for key, v := range defaults {
		if !k.Exists(key) {
			if err := k.Set(key, v); err != nil {
				return nil, err
			}
		}
	}
	c.Debug = k.Bool("debug")
	c.UseStdout = k.Bool("stdout")
	c.Diffs = k.Bool("diffs")
	c.Reclaim = k.Bool("reclaim")
	c.AttributePrefix = k.String("prefix")
	c.ScanMarker = k.String("scanmarker")
	c.Format, err = report.ParseFormat(k.String("format"))
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) Validate() error {
	if c.AttributePrefix == "" {
		return errors.New("need attribute prefix")
	}
	if strings.ContainsFunc(c.AttributePrefix, func(r rune) bool { return r == ' ' || r == '=' }) {
		return fmt.Errorf("invalid attribute prefix %q", c.AttributePrefix)
	}
	if c.ScanMarker == "" {
		return errors.New("need scan marker key")
	}
	return nil
}

// Options translates the config into registry options.
func (c *Config) Options() []data.Option {
	return []data.Option{
		data.WithAttributePrefix(c.AttributePrefix),
		data.WithScanMarker(c.ScanMarker),
		data.WithReclaim(c.Reclaim),
	}
}

func (c *Config) String() string {
	var result string
	result += fmt.Sprintf("Debug mode: %v\n", c.Debug)
	result += fmt.Sprintf("STDOUT: %v\n", c.UseStdout)
	result += fmt.Sprintf("Show Diffs: %v\n", c.Diffs)
	result += fmt.Sprintf("Reclaim: %v\n", c.Reclaim)
	result += fmt.Sprintf("Attribute prefix: %v\n", c.AttributePrefix)
	result += fmt.Sprintf("Scan marker: %v\n", c.ScanMarker)
	result += fmt.Sprintf("Output format: %v\n", c.Format)
	return result
}
