package decision

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// PolicyHandStrength selects the offline HandStrength provider
const PolicyHandStrength = "hand-strength"

// OpenRouterConfig configures language model decisions
type OpenRouterConfig struct {
	APIKey string   `yaml:"apiKey" envconfig:"api_key"`
	URL    string   `yaml:"url" envconfig:"url"`
	Models []string `yaml:"models" envconfig:"models"`
}

// ForPolicy returns the provider for a seat's policy.
// An empty policy, PolicyHandStrength, or a missing API key selects HandStrength.
// Any other policy is taken as a model name and tried before the configured models.
func ForPolicy(logger logrus.FieldLogger, policy string, cfg OpenRouterConfig) Provider {
	policy = strings.TrimSpace(policy)
	if policy == "" || policy == PolicyHandStrength || cfg.APIKey == "" {
		return HandStrength{}
	}

	models := []string{policy}
	for _, m := range cfg.Models {
		if m != policy {
			models = append(models, m)
		}
	}

	return NewOpenRouter(logger.WithField("policy", policy), cfg.APIKey, cfg.URL, models...)
}
