package dataset

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/poiesic/authdex/core"
)

// Loader reads domain datasets from a filesystem into records.
type Loader struct {
	fsys   fs.FS
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// NewLoader creates a loader over the given filesystem. Pass
// DefaultFS() for the embedded curated datasets or os.DirFS for an
// external data directory.
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{
		fsys:   fsys,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads all rows of the domain's dataset, in file order.
//
// The header row must contain every column the domain config names, and
// every data row must have exactly as many cells as the header
// (rectangular schema). Any violation is an ErrDatasetRead.
func (l *Loader) Load(domain *DomainConfig) ([]*core.Record, error) {
	f, err := l.fsys.Open(domain.File)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDatasetRead, domain.File, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDatasetRead, domain.File, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q: missing header row", ErrDatasetRead, domain.File)
	}

	header := rows[0]
	columnIndex := make(map[string]int, len(header))
	for i, name := range header {
		columnIndex[name] = i
	}
	if err := checkSchema(domain, columnIndex); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDatasetRead, domain.File, err)
	}

	records := make([]*core.Record, 0, len(rows)-1)
	for position, row := range rows[1:] {
		fields := make(map[string]string, len(header))
		for i, name := range header {
			fields[name] = row[i]
		}

		searchValues := make([]string, len(domain.SearchColumns))
		for i, column := range domain.SearchColumns {
			searchValues[i] = fields[column]
		}

		records = append(records, &core.Record{
			Position:   position,
			Domain:     domain.Name,
			Fields:     fields,
			SearchText: strings.Join(searchValues, " "),
		})
	}

	l.logger.Debug("loaded dataset", "domain", domain.Name, "file", domain.File, "records", len(records))
	return records, nil
}

// checkSchema verifies every configured column exists in the header.
func checkSchema(domain *DomainConfig, columnIndex map[string]int) error {
	var wanted []string
	wanted = append(wanted, domain.SearchColumns...)
	wanted = append(wanted, domain.OutputColumns...)
	if domain.StackColumn != "" {
		wanted = append(wanted, domain.StackColumn)
	}

	for _, column := range wanted {
		if _, ok := columnIndex[column]; !ok {
			return fmt.Errorf("missing column %q", column)
		}
	}
	return nil
}
