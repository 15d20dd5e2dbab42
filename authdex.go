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


// Package authdex retrieves ranked rows from curated, domain-tagged
// authentication and security datasets using BM25 relevance ranking.
//
// NewEngine wires a ready-to-use engine over the datasets embedded in
// the binary; options swap in an external data directory or registry.
package authdex

import (
	"log/slog"
	"os"

	"github.com/poiesic/authdex/dataset"
	"github.com/poiesic/authdex/search"
)

// EngineOption configures NewEngine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	dataDir      string
	registryPath string
	logger       *slog.Logger
	poolSize     int
}

// WithDataDir reads datasets from an on-disk directory instead of the
// embedded defaults. The directory layout must match the registry's
// file paths.
func WithDataDir(dir string) EngineOption {
	return func(o *engineOptions) {
		o.dataDir = dir
	}
}

// WithRegistryFile loads the domain registry from a YAML file instead
// of the embedded default registry.
func WithRegistryFile(path string) EngineOption {
	return func(o *engineOptions) {
		o.registryPath = path
	}
}

// WithLogger sets a custom logger for the engine and loader.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithPoolSize sets the worker pool size used to warm indices.
func WithPoolSize(size int) EngineOption {
	return func(o *engineOptions) {
		o.poolSize = size
	}
}

// NewEngine creates a search engine over the curated datasets. With no
// options it uses the registry and dataset files embedded in the
// binary.
func NewEngine(opts ...EngineOption) (*search.Engine, error) {
	options := &engineOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	registry, err := loadRegistry(options)
	if err != nil {
		return nil, err
	}

	fsys := dataset.DefaultFS()
	if options.dataDir != "" {
		fsys = os.DirFS(options.dataDir)
	}
	loader := dataset.NewLoader(fsys, dataset.WithLogger(options.logger))

	engineOpts := []search.Option{search.WithLogger(options.logger)}
	if options.poolSize > 0 {
		engineOpts = append(engineOpts, search.WithPoolSize(options.poolSize))
	}
	return search.NewEngine(registry, loader, engineOpts...)
}

func loadRegistry(options *engineOptions) (*dataset.Registry, error) {
	if options.registryPath != "" {
		return dataset.LoadRegistryFile(options.registryPath)
	}
	return dataset.DefaultRegistry()
}
