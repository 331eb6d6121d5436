package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateConfig checks that the loaded configuration is usable before the
// server starts. Secrets for the optional integrations (Gemini, weather,
// Spotify) are deliberately NOT required here: a missing credential degrades
// the relevant feature at call time with a user-facing message instead of
// refusing to boot the whole site.
func ValidateConfig(cfg *Config) error {
	var problems []string

	if cfg.ServerPort == "" {
		problems = append(problems, "server port is required")
	} else if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		problems = append(problems, fmt.Sprintf("server port %q is not a number", cfg.ServerPort))
	}

	if cfg.DBHost == "" {
		problems = append(problems, "database host is required")
	}
	if cfg.DBUser == "" {
		problems = append(problems, "database user is required")
	}
	if cfg.DBName == "" {
		problems = append(problems, "database name is required")
	}

	switch cfg.DBSSLMode {
	case "disable", "require", "verify-ca", "verify-full", "prefer", "allow":
	default:
		problems = append(problems, fmt.Sprintf("invalid db ssl mode %q", cfg.DBSSLMode))
	}

	if IsProduction() {
		if cfg.JWTSecret == "" {
			problems = append(problems, "JWT_SECRET is required in production")
		}
		if cfg.DBPassword == "" {
			problems = append(problems, "DB_PASSWORD is required in production")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
