package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"primamateria.systems/reliquary/internal/config"
	"primamateria.systems/reliquary/pkg/data"
	"primamateria.systems/reliquary/pkg/element"
	"primamateria.systems/reliquary/pkg/manifests"
)

func setupLogger(c *config.Config) {
	if c.UseStdout {
		log.Default().SetOutput(os.Stdout)
	}
	if c.Debug {
		log.Default().SetLevel(log.DebugLevel)
		log.Default().SetReportCaller(true)
	}
}

func setup(ctx context.Context, configFile string, cliflags map[string]any) (*config.Config, error) {
	k, err := LoadConfigs(ctx, configFile, cliflags)
	if err != nil {
		return nil, fmt.Errorf("error generating config blob: %w", err)
	}
	c, err := config.NewConfig(k)
	if err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	err = c.Validate()
	if err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}
	setupLogger(c)
	return c, nil
}

// session is one loaded document with a registry tracking its elements.
type session struct {
	config   *config.Config
	doc      *manifests.Document
	registry *data.Registry[element.Element]
}

func openSession(ctx context.Context, configFile string, cliflags map[string]any, docPath string) (*session, error) {
	c, err := setup(ctx, configFile, cliflags)
	if err != nil {
		return nil, err
	}
	doc, err := manifests.Load(docPath)
	if err != nil {
		return nil, fmt.Errorf("error loading document: %w", err)
	}
	log.Debug("loaded document", "path", docPath, "elements", doc.Len())
	return &session{
		config:   c,
		doc:      doc,
		registry: data.New[element.Element](c.Options()...),
	}, nil
}

func (s *session) selection(id string) (*data.Selection[element.Element], *element.Element, error) {
	el, err := s.doc.Lookup(id)
	if err != nil {
		return nil, nil, err
	}
	return s.registry.Select(el), el, nil
}

func LoadConfigs(_ context.Context, configFile string, cliflags map[string]any) (*koanf.Koanf, error) {
	k := koanf.New(".")
	fileConf := koanf.New(".")
	envConf := koanf.New(".")
	cliConf := koanf.New(".")
	if configFile != "" {
		err := fileConf.Load(file.Provider(configFile), toml.Parser())
		if err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}
	err := envConf.Load(env.Provider("RELIQUARY_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "RELIQUARY_")), "__", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("error loading config from env: %w", err)
	}
	err = cliConf.Load(confmap.Provider(cliflags, "."), nil)
	if err != nil {
		return nil, err
	}
	for _, layer := range []*koanf.Koanf{fileConf, envConf, cliConf} {
		if err := k.Merge(layer); err != nil {
			return nil, fmt.Errorf("error building config: %w", err)
		}
	}
	return k, nil
}
