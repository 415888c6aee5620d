package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybeWrapLeavesExistingEntryPointAlone(t *testing.T) {
	code := "fn main() { println!(\"hi\"); }"
	wrapped, wasWrapped := MaybeWrap(code, ResultHandlingDiscard)
	assert.Equal(t, code, wrapped)
	assert.False(t, wasWrapped)
}

func TestMaybeWrapNone(t *testing.T) {
	wrapped, wasWrapped := MaybeWrap("println!(\"hi\");", ResultHandlingNone)
	assert.True(t, wasWrapped)
	assert.Equal(t, "fn main() {\nprintln!(\"hi\");\n}", wrapped)
}

func TestMaybeWrapDiscard(t *testing.T) {
	wrapped, wasWrapped := MaybeWrap("1 + 1", ResultHandlingDiscard)
	assert.True(t, wasWrapped)
	assert.True(t, strings.Contains(wrapped, "fn main() { let _ = {"))
	assert.True(t, strings.HasSuffix(wrapped, "}; }"))
}

func TestMaybeWrapPrint(t *testing.T) {
	wrapped, wasWrapped := MaybeWrap("1 + 1", ResultHandlingPrint)
	assert.True(t, wasWrapped)
	assert.True(t, strings.Contains(wrapped, "fn main() { println!(\"{:?}\", {"))
	assert.True(t, strings.HasSuffix(wrapped, "}); }"))
}

func TestMaybeWrapHoistsLeadingCrateAttributes(t *testing.T) {
	code := "#![feature(never_type)]\n" +
		"\n" +
		"  #![allow(dead_code)]\n" +
		"let x = 1;\n" +
		"#![not_hoisted]\n"
	wrapped, wasWrapped := MaybeWrap(code, ResultHandlingDiscard)
	require.True(t, wasWrapped)
	// Only the leading run is hoisted, in original order, trimmed
	assert.True(t, strings.HasPrefix(wrapped, "#![feature(never_type)]\n#![allow(dead_code)]\nfn main() { let _ = {\n"))
	assert.True(t, strings.Contains(wrapped, "let x = 1;\n#![not_hoisted]\n"))
}

func TestStripMainBoilerplateRecoversBody(t *testing.T) {
	// What rustfmt would produce for a wrapped snippet
	formatted := "fn main() {\n    let x = 1;\n    let y = x + 1;\n}\n"
	assert.Equal(t, "let x = 1;\nlet y = x + 1;\n", StripMainBoilerplate(formatted))
}

func TestWrapThenStripRoundTrip(t *testing.T) {
	body := "let x = 1;\nx"
	wrapped, wasWrapped := MaybeWrap(body, ResultHandlingNone)
	require.True(t, wasWrapped)
	recovered := StripMainBoilerplate(wrapped)
	assert.Equal(t, "let x = 1;\nx\n", recovered)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\n\nb\n"))
}
