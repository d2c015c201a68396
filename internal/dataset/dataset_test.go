package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dataact/internal/common"
	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/summary"
)

func TestLoad_Embedded(t *testing.T) {
	ds, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, EmbeddedSource, ds.Source)
	require.Len(t, ds.Companies, 11)
	assert.Equal(t, "Teradata", ds.Companies[0].Name)
	assert.Equal(t, "Toggl", ds.Companies[10].Name)

	mural := ds.Companies[3]
	assert.Equal(t, "Mural", mural.Name)
	assert.Equal(t, model.ApproachModerate, mural.Approach)
	require.NotNil(t, mural.NoticeMonths)
	assert.Equal(t, 2, *mural.NoticeMonths)
	assert.NotEmpty(t, mural.SpecificClauses.TransitionClause)

	require.NotNil(t, ds.Summary)
	assert.Equal(t, 11, ds.Summary.TotalCompanies)
}

func TestEmbedded_DeclaredSummaryDrift(t *testing.T) {
	ds, err := Embedded()
	require.NoError(t, err)

	computed := summary.Summarize(ds.Companies)
	mismatches := summary.Reconcile(*ds.Summary, computed)

	// The shipped block counts Braze's explicit "No Refunds" as not specified.
	require.Len(t, mismatches, 2)
	assert.Equal(t, "refundStats.noRefunds", mismatches[0].Field)
	assert.Equal(t, 4, mismatches[0].Declared)
	assert.Equal(t, 5, mismatches[0].Computed)
	assert.Equal(t, "refundStats.notSpecified", mismatches[1].Field)
}

func TestLoad_Files(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		file      string
		content   string
		wantNames []string
		wantErr   bool
	}{
		{
			name:      "json",
			file:      "data.json",
			content:   `{"companies":[{"name":"Acme","noticeMonths":1,"approach":"Strict","refundPolicy":"No Refunds"}]}`,
			wantNames: []string{"Acme"},
		},
		{
			name: "yaml",
			file: "data.yaml",
			content: `companies:
  - name: Acme
    approach: Balanced
    terminationFee: Proportionate Fee
  - name: Globex
    noticeMonths: 3
`,
			wantNames: []string{"Acme", "Globex"},
		},
		{
			name:      "companies not a list",
			file:      "bad-list.json",
			content:   `{"companies":{"name":"Acme"}}`,
			wantNames: []string{},
		},
		{
			name:      "companies missing",
			file:      "empty.json",
			content:   `{"summary":{"totalCompanies":0}}`,
			wantNames: []string{},
		},
		{
			name:      "top level array",
			file:      "array.json",
			content:   `[1, 2, 3]`,
			wantNames: []string{},
		},
		{
			name:      "yaml companies scalar",
			file:      "scalar.yml",
			content:   "companies: nope\n",
			wantNames: []string{},
		},
		{
			name:    "invalid json",
			file:    "broken.json",
			content: `{"companies": [`,
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			file:    "broken.yaml",
			content: "companies: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			ds, err := Load(context.Background(), path)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrDataLoad)
				return
			}
			require.NoError(t, err)

			names := make([]string, 0, len(ds.Companies))
			for _, c := range ds.Companies {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, path, ds.Source)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, common.ErrDataLoad)
}

func TestLoad_AbsentNoticeMonths(t *testing.T) {
	ds, err := Parse([]byte(`{"companies":[{"name":"Acme","noticeMonths":null},{"name":"Globex"}]}`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, ds.Companies, 2)

	for _, c := range ds.Companies {
		assert.Nil(t, c.NoticeMonths)
		assert.Equal(t, model.NotSpecified, c.NoticePeriod())
	}
}

func TestLoad_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.json":
			_, _ = w.Write([]byte(`{"companies":[{"name":"Acme"}]}`))
		case "/data":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write([]byte("companies:\n  - name: Globex\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	opt := WithHTTPClient(server.Client())

	ds, err := Load(context.Background(), server.URL+"/data.json", opt)
	require.NoError(t, err)
	require.Len(t, ds.Companies, 1)
	assert.Equal(t, "Acme", ds.Companies[0].Name)

	ds, err = Load(context.Background(), server.URL+"/data", opt)
	require.NoError(t, err)
	require.Len(t, ds.Companies, 1)
	assert.Equal(t, "Globex", ds.Companies[0].Name)

	_, err = Load(context.Background(), server.URL+"/missing.json", opt)
	require.ErrorIs(t, err, common.ErrDataLoad)
	assert.Contains(t, err.Error(), "404")
}

func TestLoad_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"companies":[]}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, server.URL+"/data.json", WithHTTPClient(server.Client()))
	require.ErrorIs(t, err, common.ErrDataLoad)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("companies.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("/tmp/Companies.YML"))
	assert.Equal(t, FormatYAML, DetectFormat("https://example.com/data.yml?raw=1"))
	assert.Equal(t, FormatJSON, DetectFormat("companies.json"))
	assert.Equal(t, FormatJSON, DetectFormat("companies"))
}
