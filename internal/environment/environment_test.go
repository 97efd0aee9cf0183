package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosthogAPIKeyDefault(t *testing.T) {
	assert.Equal(t, "REPL_POSTHOG_API_KEY", PosthogAPIKey())
}

func TestPosthogAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv("POSTHOG_API_KEY", "phc_test")

	assert.Equal(t, "phc_test", PosthogAPIKey())
}

func TestAppVersion(t *testing.T) {
	assert.Equal(t, "REPL_VERSION", AppVersion())
}
