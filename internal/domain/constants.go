package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Timeout and duration constants
const (
	// DefaultHTTPClientTimeout is the timeout for outbound HTTP requests
	DefaultHTTPClientTimeout = 60 * time.Second
	// DefaultAssistantTimeout bounds a single remote model call
	DefaultAssistantTimeout = 30 * time.Second
	// DefaultTypewriterDelay is the per-character reveal delay
	DefaultTypewriterDelay = 50 * time.Millisecond
	// DefaultShutdownTimeout bounds graceful server shutdown
	DefaultShutdownTimeout = 10 * time.Second
	// DefaultAnswerCacheTTL is how long a model answer is reused
	DefaultAnswerCacheTTL = time.Hour
)

// DefaultAnswerCacheEntries caps the on-disk answer cache.
const DefaultAnswerCacheEntries = 100

// Server defaults
const (
	DefaultServerAddr           = ":5000"
	DefaultAskRatePerMinute     = 20
	DefaultContactRatePerMinute = 5
	// MaxRequestBodySize caps JSON request bodies (64KB).
	MaxRequestBodySize = 64 * 1024
)

// Assistant defaults
const (
	DefaultMaxTokens    = 200
	DefaultTemperature  = 0.7
	EmptyModelReply     = "I'd be happy to help! Could you rephrase your question?"
	ContactSuccessReply = "Message sent successfully!"
)

// Terminal defaults
const (
	DefaultSessionLabel = "sophie@portfolio:~"
	DefaultAPIURL       = "http://localhost:5000"
)

// Contacts listing
const (
	DefaultContactListLimit = 20
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
