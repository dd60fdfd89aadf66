package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
	"primamateria.systems/reliquary/internal/config"
	"primamateria.systems/reliquary/internal/report"
	"primamateria.systems/reliquary/pkg/coerce"
	"primamateria.systems/reliquary/pkg/manifests"
)

var Version string

func main() {
	cliflags := make(map[string]any)
	ctx := context.Background()

	var configFile string

	app := &cli.Command{
		Name:    "reliquary",
		Usage:   "Inspect data attached to document elements",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "Specifed TOML config file",
				Required:    false,
				Destination: &configFile,
				Aliases:     []string{"c"},
				Sources:     cli.EnvVars("RELIQUARY_CONFIG"),
				Action: func(ctx context.Context, cCtx *cli.Command, v string) error {
					if v == "" {
						return errors.New("config file passed without value")
					}
					if _, err := os.Stat(v); err != nil && os.IsNotExist(err) {
						return errors.New("config file not found")
					} else if err != nil {
						return err
					}
					return nil
				},
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Action: func(ctx context.Context, cm *cli.Command, b bool) error {
					cliflags["debug"] = b
					return nil
				},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Control output format. Supports text,json",
				Action: func(ctx context.Context, cm *cli.Command, v string) error {
					cliflags["format"] = v
					return nil
				},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Dump active config",
				Action: func(ctx context.Context, cCtx *cli.Command) error {
					k, err := LoadConfigs(ctx, configFile, cliflags)
					if err != nil {
						return err
					}
					c, err := config.NewConfig(k)
					if err != nil {
						return err
					}
					fmt.Println(c)
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "Read one data key of an element",
				ArgsUsage: "DOC ELEMENT KEY",
				Action: func(ctx context.Context, cCtx *cli.Command) error {
					if cCtx.Args().Len() != 3 {
						return cli.Exit("usage: get DOC ELEMENT KEY", 1)
					}
					s, err := openSession(ctx, configFile, cliflags, cCtx.Args().Get(0))
					if err != nil {
						return err
					}
					sel, _, err := s.selection(cCtx.Args().Get(1))
					if err != nil {
						return elementExit(err)
					}
					key := cCtx.Args().Get(2)
					v, ok := sel.Get(key)
					if !ok {
						return cli.Exit(fmt.Sprintf("no data stored under %v", key), 1)
					}
					fmt.Println(report.Value(v))
					return nil
				},
			},
			{
				Name:      "dump",
				Usage:     "Show all data of an element, loading its annotations",
				ArgsUsage: "DOC ELEMENT",
				Action: func(ctx context.Context, cCtx *cli.Command) error {
					if cCtx.Args().Len() != 2 {
						return cli.Exit("usage: dump DOC ELEMENT", 1)
					}
					s, err := openSession(ctx, configFile, cliflags, cCtx.Args().Get(0))
					if err != nil {
						return err
					}
					sel, _, err := s.selection(cCtx.Args().Get(1))
					if err != nil {
						return elementExit(err)
					}
					out, err := report.Render(sel.All(), s.config.Format)
					if err != nil {
						return err
					}
					fmt.Print(out)
					return nil
				},
			},
			{
				Name:      "set",
				Usage:     "Write data keys on an element and show the change",
				ArgsUsage: "DOC ELEMENT KEY=VALUE...",
				Action: func(ctx context.Context, cCtx *cli.Command) error {
					args := cCtx.Args().Slice()
					if len(args) < 3 {
						return cli.Exit("usage: set DOC ELEMENT KEY=VALUE...", 1)
					}
					s, err := openSession(ctx, configFile, cliflags, args[0])
					if err != nil {
						return err
					}
					sel, el, err := s.selection(args[1])
					if err != nil {
						return elementExit(err)
					}
					before := sel.All()
					for _, pair := range args[2:] {
						key, value, found := strings.Cut(pair, "=")
						if !found || key == "" {
							return cli.Exit(fmt.Sprintf("invalid assignment %q", pair), 1)
						}
						sel.Set(key, coerce.Value(value))
					}
					after := s.registry.User().Get(el)
					if !s.config.Diffs {
						out, err := report.Render(after, s.config.Format)
						if err != nil {
							return err
						}
						fmt.Print(out)
						return nil
					}
					diffs := report.Diff(before, after)
					if !report.Changed(diffs) {
						fmt.Println("No changes made")
						return nil
					}
					fmt.Print(report.Pretty(diffs))
					return nil
				},
			},
			{
				Name:      "remove",
				Usage:     "Remove data keys, or all data, from an element",
				ArgsUsage: "DOC ELEMENT [KEY...]",
				Action: func(ctx context.Context, cCtx *cli.Command) error {
					args := cCtx.Args().Slice()
					if len(args) < 2 {
						return cli.Exit("usage: remove DOC ELEMENT [KEY...]", 1)
					}
					s, err := openSession(ctx, configFile, cliflags, args[0])
					if err != nil {
						return err
					}
					sel, el, err := s.selection(args[1])
					if err != nil {
						return elementExit(err)
					}
					sel.All()
					sel.Remove(args[2:]...)
					out, err := report.Render(s.registry.User().Get(el), s.config.Format)
					if err != nil {
						return err
					}
					fmt.Print(out)
					fmt.Printf("user data remains: %v\n", s.registry.User().HasData(el))
					return nil
				},
			},
		},
	}
	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func elementExit(err error) error {
	if errors.Is(err, manifests.ErrElementNotFound) {
		return cli.Exit(err.Error(), 1)
	}
	return err
}
