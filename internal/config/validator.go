package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be non-empty for the server to start
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
	"VOTER_SALT",
}

// MinFinalizeSweepInterval is the shortest catch-up period that does not
// warn; each sweep takes the per-day finalize locks.
const MinFinalizeSweepInterval = time.Minute

// envWarning flags a setting that starts fine but is probably a mistake.
type envWarning struct {
	when    func(env func(string) string) bool
	message string
}

var envWarnings = []envWarning{
	{
		when:    func(env func(string) string) bool { return env("DB_PASSWORD") == "change_this_secure_password" },
		message: "DB_PASSWORD appears to be using the example value - please use a secure password",
	},
	{
		when:    func(env func(string) string) bool { return env("API_KEY") == "generate_with_openssl_rand_hex_32" },
		message: "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32",
	},
	{
		when:    func(env func(string) string) bool { return env("VOTER_SALT") == env("API_KEY") },
		message: "VOTER_SALT equals API_KEY - voter hashes can be recomputed by anyone holding the API key",
	},
	{
		when: func(env func(string) string) bool {
			return (env("DISCORD_WEBHOOK_ID") == "") != (env("DISCORD_WEBHOOK_TOKEN") == "")
		},
		message: "only one of DISCORD_WEBHOOK_ID / DISCORD_WEBHOOK_TOKEN is set - winner announcements are disabled",
	},
	{
		when:    func(env func(string) string) bool { return env("VOTING_DAY_OFFSET") == "0" },
		message: "VOTING_DAY_OFFSET is 0 - votes are taken on catches of the current day and close at midnight",
	},
	{
		when: func(env func(string) string) bool {
			d, err := time.ParseDuration(env("FINALIZE_SWEEP_INTERVAL"))
			return err == nil && d > 0 && d < MinFinalizeSweepInterval
		},
		message: fmt.Sprintf("FINALIZE_SWEEP_INTERVAL is below %s - the catch-up sweep will contend with vote writes", MinFinalizeSweepInterval),
	},
}

// ValidateEnv fails when the schema version is missing or stale, or when a
// required variable is empty.
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	case ExpectedEnvSchemaVersion:
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, v)
	}

	var missing []string
	for _, name := range RequiredEnvVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then lists the non-fatal
// problems in declaration order.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.when(os.Getenv) {
			warnings = append(warnings, w.message)
		}
	}
	return warnings, nil
}
