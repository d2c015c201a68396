// Package dataset loads the company benchmark from a file, a URL or the
// copy embedded in the binary.
package dataset

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/Veraticus/dataact/internal/common"
	"github.com/Veraticus/dataact/internal/model"
)

//go:embed companies.json
var embedded []byte

// EmbeddedSource names the built-in dataset in logs and reports.
const EmbeddedSource = "embedded"

// Format is the encoding of a dataset document.
type Format string

// Supported dataset formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Dataset is a loaded benchmark. Summary is the block shipped alongside the
// companies, when the document has one; it is kept only for reconciliation.
type Dataset struct {
	Summary   *model.SummaryStats
	Source    string
	Companies []model.Company
}

// Option configures Load.
type Option func(*loader)

type loader struct {
	client *http.Client
}

// WithHTTPClient sets the client used for URL sources.
func WithHTTPClient(client *http.Client) Option {
	return func(l *loader) {
		l.client = client
	}
}

// Load reads a dataset from source: an http(s) URL, a file path, or the
// embedded dataset when source is empty. Exactly one attempt is made.
func Load(ctx context.Context, source string, opts ...Option) (*Dataset, error) {
	l := &loader{client: http.DefaultClient}
	for _, opt := range opts {
		opt(l)
	}

	var (
		data   []byte
		format Format
		err    error
	)

	switch {
	case source == "" || source == EmbeddedSource:
		data, format, source = embedded, FormatJSON, EmbeddedSource
	case isURL(source):
		data, format, err = l.fetch(ctx, source)
	default:
		data, err = os.ReadFile(source) // #nosec G304 -- user supplied dataset path
		format = DetectFormat(source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrDataLoad, source, err)
	}

	ds, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrDataLoad, source, err)
	}
	ds.Source = source

	slog.Debug("dataset loaded", "source", source, "companies", len(ds.Companies))
	return ds, nil
}

// Embedded returns the built-in dataset.
func Embedded() (*Dataset, error) {
	return Load(context.Background(), "")
}

// DetectFormat picks the format from a path or URL extension. Anything that
// is not YAML is read as JSON.
func DetectFormat(name string) Format {
	if u, err := url.Parse(name); err == nil && u.Scheme != "" {
		name = u.Path
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes a dataset document. A document whose companies list is
// missing or malformed yields an empty list; only undecodable documents
// are errors.
func Parse(data []byte, format Format) (*Dataset, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data)
	case FormatJSON, "":
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", format)
	}
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func (l *loader) fetch(ctx context.Context, source string) ([]byte, Format, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response: %w", err)
	}

	format := DetectFormat(source)
	if strings.Contains(resp.Header.Get("Content-Type"), "yaml") {
		format = FormatYAML
	}
	return data, format, nil
}
