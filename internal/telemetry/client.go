// Package telemetry provides anonymous usage tracking via PostHog.
package telemetry

import (
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/posthog/posthog-go"
)

// PostHogAPIKey is set at compile time via ldflags.
var PostHogAPIKey string

// Client interface for telemetry operations.
type Client interface {
	Track(event string, properties map[string]interface{})
	Close()
	GetTrackingID() string

	TrackAppStarted(initialView string)
	TrackAppExited(sessionDurationMs int64)
	TrackViewNavigated(viewName, previousView string)
	TrackListRefreshed(viewName string, skillCount int)
	TrackSkillPreviewed(sourceRepo, skillID string, cached bool)
	TrackSearchPerformed(queryLength, resultCount int)
	TrackHelpViewed(contextMode string)
	TrackSkillInstalled(sourceRepo, skillID string, success bool)
	TrackSkillCopied(skillID string)
	TrackErrorDisplayed(errorType, contextMode string)
	TrackSessionSummary(durationMs int64, viewsVisited, searchesPerformed, skillsPreviewed, skillsInstalled int)
}

// posthogClient wraps the PostHog SDK.
type posthogClient struct {
	client    posthog.Client
	sessionID string
	mu        sync.Mutex
}

// noopClient does nothing (for disabled telemetry).
type noopClient struct{}

// IsEnabled returns true if telemetry is enabled.
// Telemetry is opt-out: enabled by default unless SKILLSM_TELEMETRY_TRACKING_ENABLED=false.
func IsEnabled() bool {
	return os.Getenv("SKILLSM_TELEMETRY_TRACKING_ENABLED") != "false" && PostHogAPIKey != ""
}

// New creates a telemetry client with a fresh anonymous id for this session.
func New() Client {
	if !IsEnabled() {
		return &noopClient{}
	}

	client, err := posthog.NewWithConfig(PostHogAPIKey, posthog.Config{
		Endpoint:  "https://us.i.posthog.com",
		BatchSize: 250,
		Interval:  5 * time.Second,
	})
	if err != nil {
		return &noopClient{}
	}

	return &posthogClient{
		client:    client,
		sessionID: uuid.New().String(),
	}
}

// Track sends an event to PostHog.
func (c *posthogClient) Track(event string, properties map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	props := posthog.NewProperties()
	props.Set("$process_person_profile", false)
	props.Set("$geoip_disable", true)

	for k, v := range properties {
		props.Set(k, v)
	}

	_ = c.client.Enqueue(posthog.Capture{
		DistinctId: c.sessionID,
		Event:      event,
		Properties: props,
	})
}

// Close flushes remaining events and closes the client.
func (c *posthogClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.client.Close()
}

// GetTrackingID returns the anonymous tracking ID for the session.
func (c *posthogClient) GetTrackingID() string {
	return c.sessionID
}

// Track is a no-op for disabled telemetry.
func (c *noopClient) Track(event string, properties map[string]interface{}) {}

// Close is a no-op for disabled telemetry.
func (c *noopClient) Close() {}

// GetTrackingID returns empty string for disabled telemetry.
func (c *noopClient) GetTrackingID() string {
	return ""
}
