// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/authdex"
	"github.com/poiesic/authdex/core"
	"github.com/poiesic/authdex/dataset"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "authdex",
		Usage:     "Search curated authentication and security datasets",
		ArgsUsage: "<query...>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "domain",
				Aliases: []string{"d"},
				Usage:   "Search domain (auto-detected from the query when omitted)",
			},
			&cli.StringFlag{
				Name:    "stack",
				Aliases: []string{"s"},
				Usage:   "Restrict results to one technology stack",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of results",
				Value:   core.DefaultLimit,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output results as JSON",
			},
			&cli.StringFlag{
				Name:  "data",
				Usage: "Directory holding dataset files (default: embedded datasets)",
			},
			&cli.StringFlag{
				Name:  "registry",
				Usage: "Domain registry YAML file (default: embedded registry)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Action: searchCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	query := &core.Query{
		Text:   strings.Join(c.Args().Slice(), " "),
		Domain: c.String("domain"),
		Stack:  c.String("stack"),
		Limit:  c.Int("limit"),
	}

	var engineOpts []authdex.EngineOption
	if dir := c.String("data"); dir != "" {
		engineOpts = append(engineOpts, authdex.WithDataDir(dir))
	}
	if path := c.String("registry"); path != "" {
		engineOpts = append(engineOpts, authdex.WithRegistryFile(path))
	}

	engine, err := authdex.NewEngine(engineOpts...)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	defer engine.Release()

	results, domain, err := engine.Search(context.Background(), query)
	if err != nil {
		return cli.Exit(searchErrorMessage(err, engine.Registry()), 1)
	}

	config, _ := engine.Registry().Lookup(domain)
	if c.Bool("json") {
		out, err := formatJSON(domain, query.Text, config, results)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
		fmt.Println(out)
		return nil
	}

	fmt.Println(formatText(domain, query.Text, config, results))
	return nil
}

// searchErrorMessage maps engine failures to user-facing messages.
// Domain resolution failures list the valid domain names.
func searchErrorMessage(err error, registry *dataset.Registry) string {
	domains := strings.Join(registry.Names(), ", ")
	switch {
	case errors.Is(err, core.ErrEmptyQuery):
		return "Error: query cannot be empty"
	case errors.Is(err, core.ErrDomainNotFound):
		return fmt.Sprintf("Error: %v. Valid domains: %s", err, domains)
	case errors.Is(err, core.ErrAmbiguousQuery):
		return fmt.Sprintf("Error: cannot determine domain from query, please specify one with --domain. Valid domains: %s", domains)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
