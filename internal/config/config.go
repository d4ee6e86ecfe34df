package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/containeroo/resolver"
	"github.com/gi8lino/jirareport/internal/output"
	"gopkg.in/yaml.v3"
)

// Default values for the report
const (
	defaultClosedStatus  = "Closed"
	defaultEstimateField = "customfield_10004"
)

// reservedParams are set by the report itself and may not be overridden.
var reservedParams = []string{"jql"}

// LoadConfig loads the report configuration from the given path.
// An empty path yields the defaults.
func LoadConfig(path string) (ReportConfig, error) {
	cfg := ReportConfig{}
	if path == "" {
		setDefaults(&cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)
	return cfg, nil
}

// ValidateConfig checks the consistency of a report config.
func ValidateConfig(cfg *ReportConfig, needTemplate bool) error {
	var errs []string

	if strings.TrimSpace(cfg.ClosedStatus) == "" {
		errs = append(errs, "closedStatus must not be blank")
	}
	if !strings.HasPrefix(cfg.EstimateField, "customfield_") {
		errs = append(errs, fmt.Sprintf("estimateField %q must be a custom field id (customfield_NNNNN)", cfg.EstimateField))
	}
	for _, k := range reservedParams {
		if _, ok := cfg.Params[k]; ok {
			errs = append(errs, fmt.Sprintf("params.%s is reserved, use --jql", k))
		}
	}
	for k := range cfg.Params {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, "params: empty key")
		}
	}

	switch {
	case needTemplate && strings.TrimSpace(cfg.Template) == "":
		errs = append(errs, "template is required for template output")
	case cfg.Template != "":
		if _, err := template.New("report").Funcs(output.FuncMap()).Parse(cfg.Template); err != nil {
			errs = append(errs, fmt.Sprintf("template: %v", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ResolveCredentials resolves resolver references (env:, file:, json:, yaml:, ini:, toml:)
// in every credential field. Plain values are returned unchanged.
func ResolveCredentials(c Credentials) (Credentials, error) {
	fields := []struct {
		name string
		val  *string
	}{
		{"username", &c.Username},
		{"api token", &c.APIToken},
		{"bearer token", &c.BearerToken},
		{"domain", &c.Domain},
	}
	for _, f := range fields {
		if *f.val == "" {
			continue
		}
		v, err := resolver.ResolveVariable(*f.val)
		if err != nil {
			return Credentials{}, fmt.Errorf("resolve %s: %w", f.name, err)
		}
		*f.val = strings.TrimSpace(v)
	}
	return c, nil
}

// setDefaults fills in missing fields with default values.
func setDefaults(cfg *ReportConfig) {
	if cfg.ClosedStatus == "" {
		cfg.ClosedStatus = defaultClosedStatus
	}
	if cfg.EstimateField == "" {
		cfg.EstimateField = defaultEstimateField
	}
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
}
