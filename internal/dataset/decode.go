package dataset

import (
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/Veraticus/dataact/internal/model"
)

func parseJSON(data []byte) (*Dataset, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		if json.Valid(data) {
			slog.Debug("dataset document is not an object")
			return &Dataset{Companies: []model.Company{}}, nil
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	ds := &Dataset{Companies: []model.Company{}}

	if raw, ok := doc["companies"]; ok {
		var companies []model.Company
		if err := json.Unmarshal(raw, &companies); err != nil {
			slog.Debug("ignoring malformed companies list", "error", err)
		} else if companies != nil {
			ds.Companies = companies
		}
	}

	if raw, ok := doc["summary"]; ok {
		var summary model.SummaryStats
		if err := json.Unmarshal(raw, &summary); err != nil {
			slog.Debug("ignoring malformed summary block", "error", err)
		} else {
			ds.Summary = &summary
		}
	}

	return ds, nil
}

func parseYAML(data []byte) (*Dataset, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	ds := &Dataset{Companies: []model.Company{}}

	var doc map[string]yaml.Node
	if err := root.Decode(&doc); err != nil {
		slog.Debug("dataset document is not a mapping", "error", err)
		return ds, nil
	}

	if node, ok := doc["companies"]; ok {
		var companies []model.Company
		if err := node.Decode(&companies); err != nil {
			slog.Debug("ignoring malformed companies list", "error", err)
		} else if companies != nil {
			ds.Companies = companies
		}
	}

	if node, ok := doc["summary"]; ok {
		var summary model.SummaryStats
		if err := node.Decode(&summary); err != nil {
			slog.Debug("ignoring malformed summary block", "error", err)
		} else {
			ds.Summary = &summary
		}
	}

	return ds, nil
}
