package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventConstants(t *testing.T) {
	assert.Equal(t, "app_started", EventAppStarted)
	assert.Equal(t, "app_exited", EventAppExited)
	assert.Equal(t, "view_navigated", EventViewNavigated)
	assert.Equal(t, "list_refreshed", EventListRefreshed)
	assert.Equal(t, "skill_previewed", EventSkillPreviewed)
	assert.Equal(t, "search_performed", EventSearchPerformed)
	assert.Equal(t, "help_viewed", EventHelpViewed)
	assert.Equal(t, "skill_installed", EventSkillInstalled)
	assert.Equal(t, "skill_copied", EventSkillCopied)
	assert.Equal(t, "error_displayed", EventErrorDisplayed)
	assert.Equal(t, "session_summary", EventSessionSummary)
}
