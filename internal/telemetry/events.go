package telemetry

import (
	"runtime"

	"github.com/asteroid-belt/skillsm/pkg/version"
)

// Event names
const (
	EventAppStarted      = "app_started"
	EventAppExited       = "app_exited"
	EventViewNavigated   = "view_navigated"
	EventListRefreshed   = "list_refreshed"
	EventSkillPreviewed  = "skill_previewed"
	EventSearchPerformed = "search_performed"
	EventHelpViewed      = "help_viewed"
	EventSkillInstalled  = "skill_installed"
	EventSkillCopied     = "skill_copied"
	EventErrorDisplayed  = "error_displayed"
	EventSessionSummary  = "session_summary"
)

// baseProperties returns common properties for all events.
func baseProperties() map[string]interface{} {
	return map[string]interface{}{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"version":    version.Version,
		"prerelease": version.IsPrerelease(),
		"dev_build":  version.IsDevBuild(),
	}
}

// TrackAppStarted tracks application startup.
func (c *posthogClient) TrackAppStarted(initialView string) {
	props := baseProperties()
	props["initial_view"] = initialView
	c.Track(EventAppStarted, props)
}

// TrackAppExited tracks application exit.
func (c *posthogClient) TrackAppExited(sessionDurationMs int64) {
	props := baseProperties()
	props["session_duration_ms"] = sessionDurationMs
	c.Track(EventAppExited, props)
}

// TrackViewNavigated tracks a tab change.
func (c *posthogClient) TrackViewNavigated(viewName, previousView string) {
	props := baseProperties()
	props["view_name"] = viewName
	props["previous_view"] = previousView
	c.Track(EventViewNavigated, props)
}

// TrackListRefreshed tracks a manual refresh.
func (c *posthogClient) TrackListRefreshed(viewName string, skillCount int) {
	props := baseProperties()
	props["view_name"] = viewName
	props["skill_count"] = skillCount
	c.Track(EventListRefreshed, props)
}

// TrackSkillPreviewed tracks opening a skill's detail screen.
func (c *posthogClient) TrackSkillPreviewed(sourceRepo, skillID string, cached bool) {
	props := baseProperties()
	props["source_repo"] = sourceRepo
	props["skill_id"] = skillID
	props["cached"] = cached
	c.Track(EventSkillPreviewed, props)
}

// TrackSearchPerformed tracks a confirmed search. The query text is not sent.
func (c *posthogClient) TrackSearchPerformed(queryLength, resultCount int) {
	props := baseProperties()
	props["query_length"] = queryLength
	props["result_count"] = resultCount
	c.Track(EventSearchPerformed, props)
}

// TrackHelpViewed tracks opening the help overlay.
func (c *posthogClient) TrackHelpViewed(contextMode string) {
	props := baseProperties()
	props["context_mode"] = contextMode
	c.Track(EventHelpViewed, props)
}

// TrackSkillInstalled tracks the end of an install.
func (c *posthogClient) TrackSkillInstalled(sourceRepo, skillID string, success bool) {
	props := baseProperties()
	props["source_repo"] = sourceRepo
	props["skill_id"] = skillID
	props["success"] = success
	c.Track(EventSkillInstalled, props)
}

// TrackSkillCopied tracks copying an install command.
func (c *posthogClient) TrackSkillCopied(skillID string) {
	props := baseProperties()
	props["skill_id"] = skillID
	c.Track(EventSkillCopied, props)
}

// TrackErrorDisplayed tracks an error shown in the status line.
func (c *posthogClient) TrackErrorDisplayed(errorType, contextMode string) {
	props := baseProperties()
	props["error_type"] = errorType
	props["context_mode"] = contextMode
	c.Track(EventErrorDisplayed, props)
}

// TrackSessionSummary tracks session totals on exit.
func (c *posthogClient) TrackSessionSummary(durationMs int64, viewsVisited, searchesPerformed, skillsPreviewed, skillsInstalled int) {
	props := baseProperties()
	props["duration_ms"] = durationMs
	props["views_visited"] = viewsVisited
	props["searches_performed"] = searchesPerformed
	props["skills_previewed"] = skillsPreviewed
	props["skills_installed"] = skillsInstalled
	c.Track(EventSessionSummary, props)
}

// No-op implementations
func (c *noopClient) TrackAppStarted(initialView string)                                 {}
func (c *noopClient) TrackAppExited(sessionDurationMs int64)                             {}
func (c *noopClient) TrackViewNavigated(viewName, previousView string)                   {}
func (c *noopClient) TrackListRefreshed(viewName string, skillCount int)                 {}
func (c *noopClient) TrackSkillPreviewed(sourceRepo, skillID string, cached bool)        {}
func (c *noopClient) TrackSearchPerformed(queryLength, resultCount int)                  {}
func (c *noopClient) TrackHelpViewed(contextMode string)                                 {}
func (c *noopClient) TrackSkillInstalled(sourceRepo, skillID string, success bool)       {}
func (c *noopClient) TrackSkillCopied(skillID string)                                    {}
func (c *noopClient) TrackErrorDisplayed(errorType, contextMode string)                  {}
func (c *noopClient) TrackSessionSummary(durationMs int64, viewsVisited, searchesPerformed, skillsPreviewed, skillsInstalled int) {
}
