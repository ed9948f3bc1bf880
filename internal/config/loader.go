package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a variant.
// Search order: customPath -> ~/.crawl/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default.
//
// Files are decoded on top of the variant's hard-coded defaults, so a file only
// needs the keys it changes. Only an explicit customPath can produce an error.
func Load(variant, customPath string) (CrawlConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultConfig(variant)
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(variant), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultConfig(variant), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := variant + ".yaml"

	// Try user config directory, then the local configs directory
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		if cfg, ok := tryFile(variant, path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultConfig(variant)
	if data := GetDefaultYAML(variant); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil || cfg.Validate() != nil {
			return DefaultConfig(variant), nil // Fallback to hardcoded if embed is broken
		}
	}
	return cfg, nil
}

// tryFile decodes path if it exists and is valid.
func tryFile(variant, path string) (CrawlConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CrawlConfig{}, false
	}
	cfg := DefaultConfig(variant)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrawlConfig{}, false
	}
	if cfg.Validate() != nil {
		return CrawlConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crawl", "configs", filename)
}
