package constants

const (
	// AppName is the application name used for config paths and log prefixes
	AppName = "ritual"

	// DefaultConfigPath is the default database location
	DefaultConfigPath = "~/.config/ritual/ritual.db"

	// AgentIdentifier is the config directory name of the notification agent
	AgentIdentifier = "ritual-agent"

	// AgentLockfileName is the lockfile the notification agent writes on startup
	AgentLockfileName = "agent.lock"

	// NotificationDurationMs is how long a desktop notification stays visible
	NotificationDurationMs = 8000
)
