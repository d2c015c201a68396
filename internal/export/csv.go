// Package export writes the current benchmark view as CSV.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Veraticus/dataact/internal/model"
)

// DefaultFileName is the file written when no path is configured.
const DefaultFileName = "eu_data_act_compliance_benchmark_with_mural.csv"

// Header lists the exported columns.
var Header = []string{"Company", "Approach", "Termination Fee", "Refund Policy", "Notice Period"}

// Row returns the exported fields of c. Missing values are empty.
func Row(c model.Company) []string {
	notice := ""
	if c.NoticeMonths != nil {
		notice = strconv.Itoa(*c.NoticeMonths) + " months"
	}
	return []string{
		c.Name,
		string(c.Approach),
		c.TerminationFee,
		c.RefundPolicy,
		notice,
	}
}

// WriteCSV writes the header and one row per company in the order given.
// Data fields are always quoted with internal quotes doubled; the header is
// written bare. encoding/csv only quotes when a field requires it, which
// would leave empty values unquoted.
func WriteCSV(w io.Writer, companies []model.Company) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(Header, ",") + "\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, c := range companies {
		fields := Row(c)
		for i, f := range fields {
			fields[i] = quote(f)
		}
		if _, err := bw.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", c.Name, err)
		}
	}

	return bw.Flush()
}

// WriteFile writes the CSV to path, creating parent directories, and returns
// the number of company rows written.
func WriteFile(path string, companies []model.Company) (int, error) {
	if path == "" {
		path = DefaultFileName
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return 0, fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	f, err := os.Create(path) // #nosec G304 -- user supplied export path
	if err != nil {
		return 0, fmt.Errorf("failed to create export file: %w", err)
	}

	if err := WriteCSV(f, companies); err != nil {
		_ = f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close export file: %w", err)
	}

	return len(companies), nil
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
