package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shanehull/dateaug/internal/augment"
	"github.com/shanehull/dateaug/internal/dateformat"
	"github.com/shanehull/dateaug/internal/notify"
	"github.com/shanehull/dateaug/internal/pipeline"
)

// Config holds all dateaug configuration.
type Config struct {
	Model   ModelConfig   `yaml:"model"`
	Augment AugmentConfig `yaml:"augment"`
	Run     RunConfig     `yaml:"run"`
	Email   EmailConfig   `yaml:"email"`
}

// ModelConfig configures the generative backend.
type ModelConfig struct {
	Backend     string  `yaml:"backend"`
	Name        string  `yaml:"name"`
	APIKey      string  `yaml:"api_key"`
	Timeout     string  `yaml:"timeout"`
	Temperature float32 `yaml:"temperature"`
	BaseURL     string  `yaml:"base_url"`
}

// AugmentConfig configures the augmentation strategies.
type AugmentConfig struct {
	// Count is the number of rewrites requested per strategy.
	Count           int      `yaml:"count"`
	SynonymAugP     float64  `yaml:"synonym_aug_p"`
	CompletionAugP  float64  `yaml:"completion_aug_p"`
	BeforeTextLimit int      `yaml:"before_text_limit"`
	AfterTextLimit  int      `yaml:"after_text_limit"`
	ContextualModel string   `yaml:"contextual_model"`
	CompletionModel string   `yaml:"completion_model"`
	Languages       []string `yaml:"backtranslation_languages"`
	ChangeMonth     bool     `yaml:"change_month"`
	ChangeDay       bool     `yaml:"change_day"`
}

type RunConfig struct {
	MinExamples int    `yaml:"min_examples"`
	Seed        uint64 `yaml:"seed"`
	Workers     int    `yaml:"workers"`
	OutputDir   string `yaml:"output_dir"`
	Indent      string `yaml:"indent"`
	Resume      bool   `yaml:"resume"`
}

type EmailConfig struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	SMTPUser   string `yaml:"smtp_user"`
	SMTPPass   string `yaml:"smtp_pass"`
	FromEmail  string `yaml:"from_email"`
	ToEmail    string `yaml:"to_email"`
}

// ValidBackends lists the supported generation backends.
var ValidBackends = []string{"gemini"}

func DefaultConfig() *Config {
	aug := augment.DefaultConfig()
	run := pipeline.DefaultOptions()

	languages := make([]string, 0, len(run.Languages))
	for _, l := range run.Languages {
		languages = append(languages, string(l))
	}

	return &Config{
		Model: ModelConfig{
			Backend:     "gemini",
			Name:        "gemini-2.5-flash",
			Timeout:     "120s",
			Temperature: 1.0,
		},
		Augment: AugmentConfig{
			Count:           run.Count,
			SynonymAugP:     aug.SynonymAugP,
			CompletionAugP:  aug.CompletionAugP,
			BeforeTextLimit: aug.BeforeTextLimit,
			AfterTextLimit:  aug.AfterTextLimit,
			ContextualModel: aug.ContextualModel,
			CompletionModel: aug.CompletionModel,
			Languages:       languages,
			ChangeMonth:     true,
			ChangeDay:       true,
		},
		Run: RunConfig{
			MinExamples: run.MinExamples,
			Workers:     run.Workers,
			OutputDir:   ".",
		},
		Email: EmailConfig{
			SMTPServer: "smtp.gmail.com",
			SMTPPort:   587,
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing
// file yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		c.Model.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Model.APIKey = key
	}
	if model := os.Getenv("DATEAUG_MODEL"); model != "" {
		c.Model.Name = model
	}

	if v := os.Getenv("DATEAUG_SMTP_SERVER"); v != "" {
		c.Email.SMTPServer = v
	}
	if v := os.Getenv("DATEAUG_SMTP_USER"); v != "" {
		c.Email.SMTPUser = v
	}
	if v := os.Getenv("DATEAUG_SMTP_PASS"); v != "" {
		c.Email.SMTPPass = v
	}
	if v := os.Getenv("DATEAUG_TO_EMAIL"); v != "" {
		c.Email.ToEmail = v
	}
}

// GetModelTimeout returns the per-request model timeout.
func (c *Config) GetModelTimeout() time.Duration {
	d, err := time.ParseDuration(c.Model.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validBackend := false
	for _, b := range ValidBackends {
		if c.Model.Backend == b {
			validBackend = true
			break
		}
	}
	if !validBackend {
		return fmt.Errorf("invalid model backend: %s (valid: %v)", c.Model.Backend, ValidBackends)
	}

	if c.Model.APIKey == "" {
		return fmt.Errorf("model API key not configured (set GEMINI_API_KEY or GOOGLE_API_KEY)")
	}

	if c.Augment.Count <= 0 {
		return fmt.Errorf("augment.count must be positive, got %d", c.Augment.Count)
	}
	if c.Augment.BeforeTextLimit <= 0 || c.Augment.AfterTextLimit <= 0 {
		return fmt.Errorf("augment text limits must be positive")
	}
	if c.Augment.SynonymAugP <= 0 || c.Augment.SynonymAugP > 1 || c.Augment.CompletionAugP <= 0 || c.Augment.CompletionAugP > 1 {
		return fmt.Errorf("augment aug_p values must be in (0, 1]")
	}
	for _, l := range c.Augment.Languages {
		if l == "" || l == string(augment.English) {
			return fmt.Errorf("invalid backtranslation language %q", l)
		}
	}

	if c.Run.MinExamples < 0 {
		return fmt.Errorf("run.min_examples must not be negative, got %d", c.Run.MinExamples)
	}
	if c.Run.Workers <= 0 {
		return fmt.Errorf("run.workers must be positive, got %d", c.Run.Workers)
	}

	return nil
}

func (c *Config) AugmentConfig() augment.Config {
	return augment.Config{
		SynonymAugP:     c.Augment.SynonymAugP,
		CompletionAugP:  c.Augment.CompletionAugP,
		BeforeTextLimit: c.Augment.BeforeTextLimit,
		AfterTextLimit:  c.Augment.AfterTextLimit,
		ContextualModel: c.Augment.ContextualModel,
		CompletionModel: c.Augment.CompletionModel,
	}
}

func (c *Config) GeminiConfig() augment.GeminiConfig {
	return augment.GeminiConfig{
		APIKey:      c.Model.APIKey,
		Model:       c.Model.Name,
		Temperature: c.Model.Temperature,
		Timeout:     c.GetModelTimeout(),
		BaseURL:     c.Model.BaseURL,
	}
}

func (c *Config) PipelineOptions() pipeline.Options {
	languages := make([]augment.Language, 0, len(c.Augment.Languages))
	for _, l := range c.Augment.Languages {
		languages = append(languages, augment.Language(l))
	}

	return pipeline.Options{
		Count:       c.Augment.Count,
		MinExamples: c.Run.MinExamples,
		Seed:        c.Run.Seed,
		Workers:     c.Run.Workers,
		Languages:   languages,
		Date: dateformat.Options{
			ChangeMonth: c.Augment.ChangeMonth,
			ChangeDay:   c.Augment.ChangeDay,
		},
		Resume: c.Run.Resume,
	}
}

func (c *Config) NotifyConfig() notify.EmailConfig {
	return notify.EmailConfig{
		SMTPServer: c.Email.SMTPServer,
		SMTPPort:   c.Email.SMTPPort,
		SMTPUser:   c.Email.SMTPUser,
		SMTPPass:   c.Email.SMTPPass,
		FromEmail:  c.Email.FromEmail,
		ToEmail:    c.Email.ToEmail,
	}
}
