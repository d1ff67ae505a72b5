package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gowikitext/pkg/config"
)

// envVarPrefix is the prefix for all gowikitext environment variables.
const envVarPrefix = "GOWIKITEXT_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOWIKITEXT_ (e.g., GOWIKITEXT_BASE_URL).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envVarPrefix + "SELECT"); v != "" {
		cfg.Select = v
	}
	if v := os.Getenv(envVarPrefix + "IGNORE"); v != "" {
		cfg.Ignore = append(cfg.Ignore, parseSliceValue(v)...)
	}

	boolVars := []struct {
		suffix string
		target *bool
	}{
		{"PRESERVE_BOLD", &cfg.PreserveBold},
		{"PRESERVE_ITALIC", &cfg.PreserveItalic},
		{"DETECT_CODE_LANGUAGE", &cfg.DetectCodeLanguage},
	}
	for _, bv := range boolVars {
		envVar := envVarPrefix + bv.suffix
		v := os.Getenv(envVar)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, v)
		}
		*bv.target = b
	}

	if v := os.Getenv(envVarPrefix + "JOBS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sJOBS: %q", envVarPrefix, v)
		}
		cfg.Jobs = i
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOWIKITEXT_BASE_URL":             "Wiki base article URL for internal link detection",
		"GOWIKITEXT_SELECT":               "CSS selector restricting conversion to a subtree",
		"GOWIKITEXT_PRESERVE_BOLD":        "Emit <b> tags instead of ''' markup: true or false",
		"GOWIKITEXT_PRESERVE_ITALIC":      "Emit <i> tags instead of '' markup: true or false",
		"GOWIKITEXT_DETECT_CODE_LANGUAGE": "Detect code language in pre blocks: true or false",
		"GOWIKITEXT_IGNORE":               "Comma-separated list of ignore patterns",
		"GOWIKITEXT_JOBS":                 "Number of parallel workers (0 = auto)",
	}
}
