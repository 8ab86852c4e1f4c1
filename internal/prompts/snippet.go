package prompts

import (
	"fmt"

	"github.com/daydemir/eventato/internal/types"
)

// Snippet returns an example capture call for event in the given flavor's idiom.
// It is shown in preview mode only and never written to disk.
func Snippet(flavor types.Flavor, event string) string {
	switch flavor {
	case types.FlavorJavaScript, types.FlavorReact:
		return fmt.Sprintf(`// PostHog analytics event
posthog.capture('%s', {
  // Add relevant properties here
  timestamp: new Date().toISOString(),
  // Add more properties as needed
});`, event)
	case types.FlavorPython:
		return fmt.Sprintf(`# PostHog analytics event
posthog.capture('%s', {
    # Add relevant properties here
    'timestamp': datetime.now().isoformat(),
    # Add more properties as needed
})`, event)
	default:
		return fmt.Sprintf(`// PostHog analytics event for %s
// Add your PostHog capture call here with appropriate properties`, event)
	}
}
