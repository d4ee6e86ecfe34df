package flag

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/containeroo/tinyflags"
	"github.com/gi8lino/jirareport/internal/logging"
	"github.com/gi8lino/jirareport/internal/output"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Config aggregates CLI flags after parsing.
type Config struct {
	Username    string            // Account name for basic auth (USERNAME)
	APIToken    string            // API token for basic auth (API_TOKEN)
	BearerToken string            // Personal access token (BEARER_TOKEN)
	Domain      string            // Site name or URL (DOMAIN)
	JQL         string            // Report query (JQL_EXAMPLE)
	Config      string            // Optional path to report config
	EnvFile     string            // Dotenv file filling unset variables
	Output      output.Format     // Report output format
	Debug       bool              // Enables debug logging
	LogFormat   logging.LogFormat // Log output format (text or json)
}

// ParseArgs parses CLI arguments into Config, handling version/help flags.
// Unset connection flags fall back to the environment, then to the env file.
func ParseArgs(version string, args []string, out io.Writer, getEnv func(string) string) (Config, error) {
	var cfg Config
	tf := tinyflags.NewFlagSet("jirareport", tinyflags.ContinueOnError)
	tf.Version(version)
	tf.SetGetEnvFn(getEnv)
	tf.EnvPrefix("JIRAREPORT")
	tf.SetOutput(out)

	// Connection
	tf.StringVar(&cfg.Username, "username", "", "Account name for basic auth (default $USERNAME)").Placeholder("NAME").Value()
	tf.StringVar(&cfg.APIToken, "api-token", "", "API token for basic auth (default $API_TOKEN)").Placeholder("TOKEN").Value()
	tf.StringVar(&cfg.BearerToken, "bearer-token", "", "Bearer token, wins over basic auth (default $BEARER_TOKEN)").Placeholder("TOKEN").Value()
	tf.StringVar(&cfg.Domain, "domain", "", "Atlassian site name or URL (default $DOMAIN)").Placeholder("SITE").Value()
	tf.StringVar(&cfg.JQL, "jql", "", "JQL query of the report (default $JQL_EXAMPLE)").Placeholder("QUERY").Value()

	// Report
	tf.StringVar(&cfg.Config, "config", "", "Path to optional report config").Placeholder("PATH").Value()
	tf.StringVar(&cfg.EnvFile, "env-file", defaultEnvFile, "Dotenv file for unset variables").Placeholder("PATH").Value()
	outFormat := tf.String("output", "json", "Report output format").Choices("json", "template").Short("o").Value()

	// Logging
	tf.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging").Value()
	logFormat := tf.String("log-format", "text", "Log format").Choices("text", "json").Short("l").Value()

	// Parse
	if err := tf.Parse(args); err != nil {
		return Config{}, err
	}

	// Post-parse
	cfg.Output = output.Format(*outFormat)
	cfg.LogFormat = logging.LogFormat(*logFormat)

	dotenv, err := readEnvFile(cfg.EnvFile)
	if err != nil {
		return Config{}, err
	}
	lookup := func(key string) string {
		if v := getEnv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	fill(&cfg.Username, lookup("USERNAME"))
	fill(&cfg.APIToken, lookup("API_TOKEN"))
	fill(&cfg.BearerToken, lookup("BEARER_TOKEN"))
	fill(&cfg.Domain, lookup("DOMAIN"))
	fill(&cfg.JQL, lookup("JQL_EXAMPLE"))

	return cfg, nil
}

// readEnvFile reads a dotenv file. A missing default file is not an error.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == defaultEnvFile {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return env, nil
}

// fill sets *dst to val when *dst is empty.
func fill(dst *string, val string) {
	if *dst == "" {
		*dst = val
	}
}
