package config

// ReportConfig tunes the issue report. Every field is optional.
type ReportConfig struct {
	ClosedStatus       string            `yaml:"closedStatus"`       // status excluded from the report
	EstimateField      string            `yaml:"estimateField"`      // custom field id holding story points
	IncludeDescription bool              `yaml:"includeDescription"` // add the flattened description
	ExpandEmbedded     bool              `yaml:"expandEmbedded"`     // decode JSON embedded in titles
	SkipTLSVerify      bool              `yaml:"skipTLSVerify"`
	Params             map[string]string `yaml:"params"`   // extra search params (e.g. maxResults, fields)
	Template           string            `yaml:"template"` // text/template used by --output=template
}

// Credentials holds the connection settings. Values may be resolver references
// such as "env:API_TOKEN" or "file:/run/secrets/jira".
type Credentials struct {
	Username    string
	APIToken    string
	BearerToken string
	Domain      string
}
