package domain

import "strings"

// ResultHandling selects what the synthesized fn main does with the value of the snippet's trailing expression.
type ResultHandling int

const (
	// ResultHandlingNone doesn't consume the result at all, making rustc report an error when it isn't ()
	ResultHandlingNone ResultHandling = iota
	// ResultHandlingDiscard consumes the result with `let _ = { ... };`
	ResultHandlingDiscard
	// ResultHandlingPrint prints the result with `println!("{:?}", ...)`
	ResultHandlingPrint
)

// ContainsEntryPoint reports whether the code defines its own fn main. This is a literal substring check, not
// a parse: a mention inside a comment or a string literal counts too. Kept as a deliberate heuristic, since the
// bot transforms text and never parses Rust.
func ContainsEntryPoint(code string) bool {
	return strings.Contains(code, "fn main")
}

// MaybeWrap wraps the given code in a fn main if it isn't already wrapped, and reports whether a wrap was done.
func MaybeWrap(code string, resultHandling ResultHandling) (string, bool) {
	if ContainsEntryPoint(code) {
		return code, false
	}

	lines := SplitLines(code)
	var output strings.Builder

	// Crate attributes only work at the very top of the file, so the leading run of them is hoisted above
	// the synthesized fn main. Blank lines inside the run are skipped: more attributes may be coming.
	rest := 0
	for ; rest < len(lines); rest++ {
		line := strings.TrimSpace(lines[rest])
		if strings.HasPrefix(line, "#![") {
			output.WriteString(line)
			output.WriteByte('\n')
		} else if line != "" {
			break
		}
	}

	switch resultHandling {
	case ResultHandlingDiscard:
		output.WriteString("fn main() { let _ = {\n")
	case ResultHandlingPrint:
		output.WriteString("fn main() { println!(\"{:?}\", {\n")
	default:
		output.WriteString("fn main() {\n")
	}

	for _, line := range lines[rest:] {
		output.WriteString(line)
		output.WriteByte('\n')
	}

	switch resultHandling {
	case ResultHandlingDiscard:
		output.WriteString("}; }")
	case ResultHandlingPrint:
		output.WriteString("}); }")
	default:
		output.WriteString("}")
	}

	return output.String(), true
}

// StripMainBoilerplate reverses MaybeWrap on rustfmt-formatted output: it drops the synthesized fn main
// scaffold and the one level of indentation rustfmt introduced for the body.
func StripMainBoilerplate(text string) string {
	var output strings.Builder
	for _, line := range SplitLines(mainBoilerplateSpec.Apply(text)) {
		output.WriteString(strings.TrimPrefix(line, "    "))
		output.WriteByte('\n')
	}
	return output.String()
}

// SplitLines splits on newlines the way text files are usually read: a trailing newline does not produce
// an extra empty line, and empty input produces no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
