package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchCandidates(t *testing.T) {
	assert.Equal(t, []string{"bar"}, BenchCandidates("fn foo() {}\npub fn bar() {}"))
	assert.Equal(t, []string{"a", "b_2"}, BenchCandidates("pub fn a() {}\npub fn b_2() {}"))
	assert.Nil(t, BenchCandidates("fn foo() {}"))
	assert.Nil(t, BenchCandidates(""))
}

func TestMicroBenchWithoutCandidatesMakesNoServiceCall(t *testing.T) {
	playground := &fakePlayground{}
	service := newTestService(playground, nil)

	reply, err := service.MicroBench(Args{Body: "fn foo() {}", Params: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, noBenchCandidatesReply, reply)
	assert.Empty(t, playground.executeRequests)
	assert.Equal(t, 0, playground.gistCalls)
}

func TestMicroBenchForcesNightlyRelease(t *testing.T) {
	playground := &fakePlayground{result: ToolResult{Success: true, Stdout: "bar: 1000 iters per second\n"}}
	service := newTestService(playground, nil)

	reply, err := service.MicroBench(Args{Body: "pub fn bar() { black_box(1 + 1); }", Params: map[string]string{
		"channel": "stable",
		"mode":    "debug",
	}})
	require.NoError(t, err)

	require.Len(t, playground.executeRequests, 1)
	request := playground.executeRequests[0]
	assert.Equal(t, ChannelNightly, request.Channel)
	assert.Equal(t, ModeRelease, request.Mode)
	assert.Contains(t, request.Code, "#![feature(test)]")
	assert.Contains(t, request.Code, "bench(&[(\"bar\", bar), ]);")
	assert.Contains(t, reply, "bar: 1000 iters per second")
	// The user already uses black_box, so no hint
	assert.NotContains(t, reply, "Hint: use the black_box function")
}

func TestMicroBenchGistLinkKeepsForcedFlags(t *testing.T) {
	playground := &fakePlayground{
		result: ToolResult{Success: true, Stdout: strings.Repeat("bar: 1000 iters per second\n", 200)},
		gistID: "abc123",
	}
	service := newTestService(playground, nil)

	reply, err := service.MicroBench(Args{Body: "pub fn bar() { black_box(1 + 1); }", Params: map[string]string{
		"channel": "stable",
		"mode":    "debug",
		"edition": "2015",
	}})
	require.NoError(t, err)

	// The deep link reopens what actually ran: nightly/release, regardless of the requested flags
	assert.Equal(t, 1, playground.gistCalls)
	assert.Contains(t, reply, "version=nightly")
	assert.Contains(t, reply, "mode=release")
	assert.Contains(t, reply, "edition=2015")
	assert.Contains(t, reply, "gist=abc123")
}

func TestMicroBenchAddsBlackBoxHint(t *testing.T) {
	playground := &fakePlayground{result: ToolResult{Success: true, Stdout: "bar: 1000 iters per second\n"}}
	service := newTestService(playground, nil)

	reply, err := service.MicroBench(Args{Body: "pub fn bar() { let _ = 1 + 1; }", Params: map[string]string{}})
	require.NoError(t, err)
	assert.Contains(t, reply, "Hint: use the black_box function to prevent computations from being optimized out")
}
