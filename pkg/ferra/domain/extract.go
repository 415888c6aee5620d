package domain

import "strings"

// ExtractionSpec bounds the interesting region of a tool's human-oriented output: everything up to and
// including the line of the best start-token match, and everything from the line of the best end-token match
// onwards, is discarded.
type ExtractionSpec struct {
	StartTokens []string
	EndTokens   []string
}

// Apply runs ExtractRelevantLines with this set of tokens.
func (s ExtractionSpec) Apply(text string) string {
	return ExtractRelevantLines(text, s.StartTokens, s.EndTokens)
}

// Per-tool extraction specs. The tokens come from cargo's and the tools' current banners.
// "Finished " must keep its trailing space: "Finished dev" would break under release mode.
var (
	compilerOutputSpec = ExtractionSpec{
		StartTokens: []string{"Compiling playground"},
		EndTokens:   []string{"warning emitted", "warnings emitted", "error: aborting", "Finished "},
	}
	programStderrSpec = ExtractionSpec{
		StartTokens: []string{"Running `target"},
	}
	miriSpec = ExtractionSpec{
		StartTokens: []string{"Running `/playground"},
		EndTokens:   []string{"error: aborting"},
	}
	expansionSpec = ExtractionSpec{
		StartTokens: []string{"Finished ", "Compiling playground"},
		EndTokens:   []string{"error: aborting"},
	}
	clippySpec = ExtractionSpec{
		StartTokens: []string{"Checking playground", "Running `/playground"},
		EndTokens:   []string{"error: aborting", "1 warning emitted", "warnings emitted", "Finished "},
	}
	mainBoilerplateSpec = ExtractionSpec{
		StartTokens: []string{"fn main() {"},
		EndTokens:   []string{"}"},
	}
)

// ExtractRelevantLines strips `text` according to the lists of start and end tokens. Everything before the
// start token and after the end token is stripped, together with the token lines themselves. Remaining leading
// empty lines are removed, trailing empty lines are collapsed into at most one newline.
//
// If multiple tokens could serve as a stripping point, the output is made as compact as possible: of the start
// tokens, the last occurrence closest to the end wins (to skip past repeated banners); of the end tokens, the
// last occurrence closest to the front wins (to stop at the earliest noise marker). Absent tokens simply skip
// that side of the truncation.
func ExtractRelevantLines(text string, startTokens, endTokens []string) string {
	start := -1
	for _, token := range startTokens {
		if position := strings.LastIndex(text, token); position > start {
			start = position
		}
	}
	if start != -1 {
		// Keep only the lines after the match
		if lineEnd := strings.IndexByte(text[start:], '\n'); lineEnd != -1 {
			text = text[start+lineEnd+1:]
		} else {
			text = ""
		}
	}

	end := -1
	for _, token := range endTokens {
		position := strings.LastIndex(text, token)
		if position != -1 && (end == -1 || position < end) {
			end = position
		}
	}
	if end != -1 {
		// Keep only the lines before the match
		if previousLineEnd := strings.LastIndexByte(text[:end], '\n'); previousLineEnd != -1 {
			text = text[:previousLineEnd+1]
		} else {
			text = ""
		}
	}

	text = strings.TrimLeft(text, "\n")
	for strings.HasSuffix(text, "\n\n") {
		text = text[:len(text)-1]
	}
	return text
}

// formatExecuteStderr reduces the stderr of an /execute run to the compiler warnings plus the program's own
// stderr output, dropping cargo's banners in between.
func formatExecuteStderr(result *ToolResult) {
	compilerWarnings := compilerOutputSpec.Apply(result.Stderr)
	programStderr := ""
	if strings.Contains(result.Stderr, "Running `target") {
		programStderr = programStderrSpec.Apply(result.Stderr)
	}

	switch {
	case compilerWarnings == "" && programStderr == "":
		result.Stderr = ""
	case programStderr == "":
		result.Stderr = compilerWarnings
	case compilerWarnings == "":
		result.Stderr = programStderr
	default:
		result.Stderr = compilerWarnings + "\n" + programStderr
	}
}
