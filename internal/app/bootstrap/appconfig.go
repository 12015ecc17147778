// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where everything specific to this application lives:
// the backend service location and the session cookie settings.
type AppConfig struct {
	// Backend user-account service
	BackendBaseURL string        // Base URL of the backend REST service (e.g., http://localhost:8080)
	BackendTimeout time.Duration // Per-request timeout for backend calls

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: userhub-session)
	SessionDomain string // Cookie domain (blank means current host)
}
