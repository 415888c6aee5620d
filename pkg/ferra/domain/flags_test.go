package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlagsDefaults(t *testing.T) {
	flags, diagnostics := ParseFlags(nil)
	assert.Equal(t, ChannelNightly, flags.Channel)
	assert.Equal(t, ModeDebug, flags.Mode)
	assert.Equal(t, Edition2018, flags.Edition)
	assert.Equal(t, "", diagnostics)
}

func TestParseFlagsRecognizedKeys(t *testing.T) {
	flags, diagnostics := ParseFlags(map[string]string{
		"channel": "stable",
		"mode":    "release",
		"edition": "2015",
	})
	assert.Equal(t, ChannelStable, flags.Channel)
	assert.Equal(t, ModeRelease, flags.Mode)
	assert.Equal(t, Edition2015, flags.Edition)
	assert.Equal(t, "", diagnostics)
}

func TestParseFlagsBadValueKeepsDefaultAndReports(t *testing.T) {
	flags, diagnostics := ParseFlags(map[string]string{"channel": "bogus"})
	assert.Equal(t, ChannelNightly, flags.Channel)
	assert.Contains(t, diagnostics, "bogus")
	assert.True(t, strings.HasSuffix(diagnostics, "\n"))
	assert.False(t, strings.HasSuffix(diagnostics, "\n\n"))
}

func TestParseFlagsAccumulatesErrors(t *testing.T) {
	_, diagnostics := ParseFlags(map[string]string{
		"channel": "bogus",
		"mode":    "weird",
		"edition": "1999",
	})
	assert.Equal(t, 3, strings.Count(diagnostics, "\n"))
	assert.Contains(t, diagnostics, "invalid release channel `bogus`")
	assert.Contains(t, diagnostics, "invalid compilation mode `weird`")
	assert.Contains(t, diagnostics, "invalid edition `1999`")
}

func TestParseFlagsIgnoresUnrecognizedKeys(t *testing.T) {
	flags, diagnostics := ParseFlags(map[string]string{"optlevel": "3"})
	assert.Equal(t, DefaultCommandFlags(), flags)
	assert.Equal(t, "", diagnostics)
}

func TestEnumWireStrings(t *testing.T) {
	assert.Equal(t, "stable", ChannelStable.String())
	assert.Equal(t, "beta", ChannelBeta.String())
	assert.Equal(t, "nightly", ChannelNightly.String())
	assert.Equal(t, "2015", Edition2015.String())
	assert.Equal(t, "2018", Edition2018.String())
	assert.Equal(t, "debug", ModeDebug.String())
	assert.Equal(t, "release", ModeRelease.String())
	assert.Equal(t, "bin", CrateTypeBinary.String())
	assert.Equal(t, "lib", CrateTypeLibrary.String())
}

func TestCrateTypeForCode(t *testing.T) {
	assert.Equal(t, CrateTypeBinary, CrateTypeForCode("fn main() {}"))
	assert.Equal(t, CrateTypeLibrary, CrateTypeForCode("pub fn helper() {}"))
}
