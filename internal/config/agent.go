package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAgentName         = "ARBITER_AGENT_NAME"
	EnvAgentProviderName = "ARBITER_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "ARBITER_AGENT_BASE_URL"
	EnvAgentToken        = "ARBITER_AGENT_TOKEN"
	EnvAgentDeployment   = "ARBITER_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "ARBITER_AGENT_API_VERSION"
	EnvAgentAuthType     = "ARBITER_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "ARBITER_AGENT_MODEL_NAME"
)

// evaluationTemperature is the fixed sampling temperature for governance
// evaluation calls. Kept low so repeated evaluations of the same output
// stay consistent; deliberately not exposed as configuration.
const evaluationTemperature = 0.2

// AgentConfig holds model gateway settings. It mirrors the go-agents agent
// configuration with TOML tags; ToAgentConfig converts the finalized values
// into the go-agents form.
type AgentConfig struct {
	Name     string         `toml:"name"`
	Provider ProviderConfig `toml:"provider"`
	Model    ModelConfig    `toml:"model"`
}

// ProviderConfig holds model provider connection settings.
type ProviderConfig struct {
	Name    string         `toml:"name"`
	BaseURL string         `toml:"base_url"`
	Options map[string]any `toml:"options"`
}

// ModelConfig holds model selection and sampling settings.
type ModelConfig struct {
	Name    string         `toml:"name"`
	Options map[string]any `toml:"options"`
}

// Finalize applies defaults, environment variable overrides, and validation.
// A provider that requires authentication must have a token by the time
// validation runs; a missing credential is a fatal configuration error
// raised here, before any evaluation request is accepted.
func (c *AgentConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AgentConfig) Merge(overlay *AgentConfig) {
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
	if overlay.Provider.Name != "" {
		c.Provider.Name = overlay.Provider.Name
	}
	if overlay.Provider.BaseURL != "" {
		c.Provider.BaseURL = overlay.Provider.BaseURL
	}
	for k, v := range overlay.Provider.Options {
		c.Provider.Options[k] = v
	}
	if overlay.Model.Name != "" {
		c.Model.Name = overlay.Model.Name
	}
	for k, v := range overlay.Model.Options {
		c.Model.Options[k] = v
	}
}

// ToAgentConfig converts the finalized settings into a go-agents AgentConfig,
// layered over the go-agents defaults.
func (c *AgentConfig) ToAgentConfig() gaconfig.AgentConfig {
	cfg := gaconfig.DefaultAgentConfig()
	cfg.Merge(&gaconfig.AgentConfig{
		Name: c.Name,
		Provider: &gaconfig.ProviderConfig{
			Name:    c.Provider.Name,
			BaseURL: c.Provider.BaseURL,
			Options: c.Provider.Options,
		},
		Model: &gaconfig.ModelConfig{
			Name: c.Model.Name,
		},
	})
	return cfg
}

func (c *AgentConfig) loadDefaults() {
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model.Options == nil {
		c.Model.Options = make(map[string]any)
	}
	if c.Name == "" {
		c.Name = "arbiter-evaluator"
	}
	if c.Provider.Name == "" {
		c.Provider.Name = "ollama"
	}
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = "http://localhost:11434"
	}
	if c.Model.Name == "" {
		c.Model.Name = "llama3.1:8b"
	}
	if _, ok := c.Model.Options["temperature"]; !ok {
		c.Model.Options["temperature"] = evaluationTemperature
	}
}

func (c *AgentConfig) loadEnv() {
	if v := os.Getenv(EnvAgentName); v != "" {
		c.Name = v
	}
	if v := os.Getenv(EnvAgentProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		c.Model.Name = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			c.Provider.Options[key] = v
		}
	}

	setOption(EnvAgentToken, "token")
	setOption(EnvAgentDeployment, "deployment")
	setOption(EnvAgentAPIVersion, "api_version")
	setOption(EnvAgentAuthType, "auth_type")
}

func (c *AgentConfig) validate() error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider base_url required")
	}
	if c.Model.Name == "" {
		return fmt.Errorf("model name required")
	}
	if providerRequiresToken(c.Provider.Name) {
		if _, ok := c.Provider.Options["token"]; !ok {
			return fmt.Errorf(
				"provider %s requires a token: set it in config or %s",
				c.Provider.Name, EnvAgentToken,
			)
		}
	}
	return nil
}

// providerRequiresToken reports whether the named provider needs an API
// credential. Local ollama runs unauthenticated; hosted providers do not.
func providerRequiresToken(name string) bool {
	return name != "ollama"
}
