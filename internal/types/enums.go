package types

// Flavor identifies which PostHog integration idiom a project uses
type Flavor string

const (
	// FlavorJavaScript is the plain posthog-js browser/node client
	FlavorJavaScript Flavor = "javascript"
	// FlavorReact is the posthog-js/react binding
	FlavorReact Flavor = "react"
	// FlavorPython is the posthog Python package
	FlavorPython Flavor = "python"
	// FlavorUnknown is used when no recognized idiom applies
	FlavorUnknown Flavor = "unknown"
)

// IsValid checks if a flavor value is valid
func (f Flavor) IsValid() bool {
	for _, valid := range AllFlavors() {
		if f == valid {
			return true
		}
	}
	return false
}

// AllFlavors returns all valid flavor values
func AllFlavors() []Flavor {
	return []Flavor{FlavorJavaScript, FlavorReact, FlavorPython, FlavorUnknown}
}

// String returns the string representation of the flavor
func (f Flavor) String() string {
	return string(f)
}
