package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DisabledByEnvVar(t *testing.T) {
	t.Setenv("SKILLSM_TELEMETRY_TRACKING_ENABLED", "false")

	client := New()
	_, ok := client.(*noopClient)
	assert.True(t, ok, "Should return noopClient when disabled")
}

func TestNew_DisabledWithoutAPIKey(t *testing.T) {
	originalKey := PostHogAPIKey
	PostHogAPIKey = ""
	defer func() { PostHogAPIKey = originalKey }()

	client := New()
	_, ok := client.(*noopClient)
	assert.True(t, ok, "Should return noopClient without API key")
	assert.Empty(t, client.GetTrackingID())
}

func TestNoopClient_DoesNotPanic(t *testing.T) {
	client := &noopClient{}

	client.Track("test_event", map[string]interface{}{"key": "value"})
	client.TrackAppStarted("all-time")
	client.TrackViewNavigated("hot", "all-time")
	client.TrackListRefreshed("hot", 25)
	client.TrackSkillPreviewed("owner/repo", "my-skill", false)
	client.TrackSearchPerformed(4, 3)
	client.TrackHelpViewed("LIST")
	client.TrackSkillInstalled("owner/repo", "my-skill", true)
	client.TrackSkillCopied("my-skill")
	client.TrackErrorDisplayed("not_found", "DETAIL")
	client.TrackSessionSummary(60000, 3, 2, 5, 1)
	client.TrackAppExited(60000)

	client.Close()
}

func TestBaseProperties(t *testing.T) {
	props := baseProperties()

	assert.Contains(t, props, "os")
	assert.Contains(t, props, "arch")
	assert.Contains(t, props, "version")
	assert.Contains(t, props, "dev_build")
}
