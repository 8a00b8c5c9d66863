// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting the experiment
// configuration file.
package appconfig

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the experiment configuration file.
	DefaultConfigPath = "config/experiment.json"
	// defaultRequestTimeout is the default timeout for API requests.
	defaultRequestTimeout = 600 * time.Second
	// defaultTemperature matches the sampling temperature used by the study
	// when the config omits one.
	defaultTemperature = 0.7
	// defaultMaxTokens caps the completion length per query.
	defaultMaxTokens = 500
	// defaultOutputFile is where results land when the config omits output_file.
	defaultOutputFile = "results.json"
	// defaultBaseURL is the OpenAI API endpoint; any server exposing the
	// /v1/chat/completions shape can be substituted via api_base_url.
	defaultBaseURL = "https://api.openai.com"
)

// Config represents the experiment configuration.
type Config struct {
	PersonaVariations    map[string][]string `json:"persona_variations"`
	DischargeSummaryIDs  []string            `json:"discharge_summary_ids,omitempty"`
	QuestionIDs          []string            `json:"question_ids,omitempty"`
	Model                string              `json:"model"`
	Temperature          *float64            `json:"temperature,omitempty"`
	MaxTokens            int                 `json:"max_tokens,omitempty"`
	MaxPersonas          int                 `json:"max_personas,omitempty"`
	OutputFile           string              `json:"output_file,omitempty"`
	ReasoningInstruction string              `json:"reasoning_instruction,omitempty"`
	APIBaseURL           string              `json:"api_base_url,omitempty"`
	TimeoutSeconds       int                 `json:"timeout,omitempty"`
	LogFile              string              `json:"logFile,omitempty"`
	Debug                bool                `json:"debug"`
	ConfigPath           string              `json:"-"`
}

// RequestTimeout returns the timeout duration for API requests, falling back
// to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SamplingTemperature returns the configured temperature, applying the
// default when the config omits the key. An explicit 0 is honored.
func (c Config) SamplingTemperature() float64 {
	if c.Temperature == nil {
		return defaultTemperature
	}
	return *c.Temperature
}

// CompletionMaxTokens returns the per-query completion cap.
func (c Config) CompletionMaxTokens() int {
	if c.MaxTokens <= 0 {
		return defaultMaxTokens
	}
	return c.MaxTokens
}

// OutputPath returns the results file path, applying the default if not set.
func (c Config) OutputPath() string {
	if path := strings.TrimSpace(c.OutputFile); path != "" {
		return path
	}
	return defaultOutputFile
}

// LogFilePath returns the path to the application log file, applying a
// default if not set.
func (c Config) LogFilePath() string {
	if path := strings.TrimSpace(c.LogFile); path != "" {
		return path
	}
	return "personasweep.log"
}

// BaseURL returns the API base URL with any trailing slash removed.
func (c Config) BaseURL() string {
	url := strings.TrimSpace(c.APIBaseURL)
	if url == "" {
		url = defaultBaseURL
	}
	return strings.TrimRight(url, "/")
}

// Load reads and validates the experiment configuration from the specified
// path. A missing file, unparsable JSON, or a schema violation is fatal to
// the run and reported before any external call is made.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}

// loadFromPath is a helper function that loads the configuration from a
// specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return Config{}, err
	}

	if err := validateSchema(raw); err != nil {
		return Config{}, err
	}

	var config Config
	if err := json.Unmarshal(raw, &config); err != nil {
		return Config{}, err
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = int(defaultRequestTimeout.Seconds())
	}

	return config, nil
}
