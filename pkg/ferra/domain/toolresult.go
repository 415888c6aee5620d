package domain

// ToolResult is the uniform outcome of every tool invocation: the playground endpoints and the local rustfmt
// run all reduce to this shape. It is created per request and never shared or cached.
type ToolResult struct {
	Success bool   `json:"success"`
	Stdout  string `json:"stdout"`
	Stderr  string `json:"stderr"`
}

// ExecuteRequest is everything the playground's /execute endpoint needs to know.
type ExecuteRequest struct {
	Code      string
	Channel   Channel
	Edition   Edition
	CrateType CrateType
	Mode      Mode
	Tests     bool
}

// Playground runs code on the remote execution service. Implemented under infrastructure/playground.
type Playground interface {
	Execute(request ExecuteRequest) (ToolResult, error)
	Miri(code string, edition Edition) (ToolResult, error)
	ExpandMacros(code string, edition Edition) (ToolResult, error)
	Clippy(code string, edition Edition, crateType CrateType) (ToolResult, error)
	// PostGist uploads code to the playground's paste endpoint and returns the gist ID.
	PostGist(code string) (string, error)
}

// CodeFormatter formats Rust source. Implemented by the local rustfmt subprocess under infrastructure/rustfmt.
type CodeFormatter interface {
	Format(code string, edition Edition) (ToolResult, error)
}

// SnippetFetcher resolves a command body that consists of a single URL into the code found on that page.
// Implemented under infrastructure/web.
type SnippetFetcher interface {
	// FetchSnippet returns (snippet, true, nil) when the body is a lone URL pointing at a page with a code
	// block, and ("", false, nil) when the body is not a URL at all.
	FetchSnippet(body string) (string, bool, error)
}
