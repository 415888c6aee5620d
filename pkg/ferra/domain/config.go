package domain

// A list of built-in config keys supported by the bot's core. Frontend-specific keys (IRC server, room etc.)
// live in cmd/.

const (
	// ConfigKeyLogPath file path where to save the logs
	ConfigKeyLogPath = "logPath"
	// ConfigKeyMessageSizeLimit the maximum size of a single chat reply, in bytes. When the assembled reply
	// is larger, the code is uploaded to the playground's gist endpoint and a link is sent instead.
	// The default matches Discord's classic limit; IRC deployments should lower it in config.
	ConfigKeyMessageSizeLimit = "messageSizeLimit"
	// ConfigKeyPlaygroundURL the base URL of the playground instance all code is sent to
	ConfigKeyPlaygroundURL = "playgroundURL"
	// ConfigKeyPlaygroundReferer the Referer header sent with gist uploads, which the playground uses to
	// attribute traffic
	ConfigKeyPlaygroundReferer = "playgroundReferer"
	// ConfigKeyPlaygroundTimeout how long to wait for the playground before a command fails, in milliseconds
	ConfigKeyPlaygroundTimeout = "playgroundTimeout"
	// ConfigKeyRustfmtPath path to the local rustfmt binary
	ConfigKeyRustfmtPath = "rustfmtPath"
	// ConfigKeyRustfmtTimeout how long a rustfmt run may take before it's killed, in milliseconds
	ConfigKeyRustfmtTimeout = "rustfmtTimeout"
	// ConfigKeySnippetFetchTimeout how long to wait when fetching code from a URL given as the command body,
	// in milliseconds
	ConfigKeySnippetFetchTimeout = "snippetFetchTimeout"
)

const (
	DefaultPlaygroundURL    = "https://play.rust-lang.org"
	DefaultMessageSizeLimit = 2000
)
