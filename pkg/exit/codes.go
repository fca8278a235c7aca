// Package exit provides standard exit codes for drop commands.
package exit

// Standard exit codes used by drop commands.
const (
	// Success indicates successful execution.
	Success = 0

	// GeneralError indicates a general error occurred.
	GeneralError = 1

	// UsageError indicates invalid input, flags, or arguments.
	UsageError = 2

	// ConnectionError indicates the bookmark service could not be reached.
	ConnectionError = 3

	// NotFound indicates the requested bookmark or collection was not found.
	NotFound = 4

	// RateLimited indicates the service rejected the request with a 429.
	RateLimited = 5
)

// CodeDescriptions maps exit codes to their descriptions.
var CodeDescriptions = map[int]string{
	Success:         "Success",
	GeneralError:    "General error",
	UsageError:      "Usage error",
	ConnectionError: "Connection error",
	NotFound:        "Not found",
	RateLimited:     "Rate limited",
}

// GetDescription returns the description for an exit code.
func GetDescription(code int) string {
	if desc, ok := CodeDescriptions[code]; ok {
		return desc
	}
	return "Unknown error"
}
