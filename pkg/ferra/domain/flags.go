package domain

import "fmt"

// Channel is the playground's release channel.
type Channel int

const (
	ChannelStable Channel = iota
	ChannelBeta
	ChannelNightly
)

func (c Channel) String() string {
	switch c {
	case ChannelStable:
		return "stable"
	case ChannelBeta:
		return "beta"
	default:
		return "nightly"
	}
}

func ParseChannel(value string) (Channel, error) {
	switch value {
	case "stable":
		return ChannelStable, nil
	case "beta":
		return ChannelBeta, nil
	case "nightly":
		return ChannelNightly, nil
	default:
		return ChannelStable, fmt.Errorf("invalid release channel `%s`", value)
	}
}

// Edition is the Rust language edition.
type Edition int

const (
	Edition2015 Edition = iota
	Edition2018
)

func (e Edition) String() string {
	switch e {
	case Edition2015:
		return "2015"
	default:
		return "2018"
	}
}

func ParseEdition(value string) (Edition, error) {
	switch value {
	case "2015":
		return Edition2015, nil
	case "2018":
		return Edition2018, nil
	default:
		return Edition2015, fmt.Errorf("invalid edition `%s`", value)
	}
}

// Mode is the compilation mode.
type Mode int

const (
	ModeDebug Mode = iota
	ModeRelease
)

func (m Mode) String() string {
	switch m {
	case ModeRelease:
		return "release"
	default:
		return "debug"
	}
}

func ParseMode(value string) (Mode, error) {
	switch value {
	case "debug":
		return ModeDebug, nil
	case "release":
		return ModeRelease, nil
	default:
		return ModeDebug, fmt.Errorf("invalid compilation mode `%s`", value)
	}
}

// CrateType tells the playground whether the code is a standalone program or a library.
type CrateType int

const (
	CrateTypeBinary CrateType = iota
	CrateTypeLibrary
)

func (c CrateType) String() string {
	switch c {
	case CrateTypeBinary:
		return "bin"
	default:
		return "lib"
	}
}

// CrateTypeForCode derives the crate type from the code which is about to be sent.
func CrateTypeForCode(code string) CrateType {
	if ContainsEntryPoint(code) {
		return CrateTypeBinary
	}
	return CrateTypeLibrary
}

// CommandFlags are the per-invocation settings parsed from key=value modifier tokens.
type CommandFlags struct {
	Channel Channel
	Mode    Mode
	Edition Edition
}

// DefaultCommandFlags returns the flags used when the user specifies nothing.
func DefaultCommandFlags() CommandFlags {
	return CommandFlags{
		Channel: ChannelNightly,
		Mode:    ModeDebug,
		Edition: Edition2018,
	}
}

// ParseFlags parses the recognized modifier keys (channel, mode, edition) into flags. Unrecognized keys are
// silently ignored. Parsing never fails as a whole: a bad value keeps the default for that field and appends
// an error line to the returned diagnostics string, which has a trailing newline (except if empty).
func ParseFlags(params map[string]string) (CommandFlags, string) {
	flags := DefaultCommandFlags()
	diagnostics := ""

	if value, ok := params["channel"]; ok {
		channel, err := ParseChannel(value)
		if err == nil {
			flags.Channel = channel
		} else {
			diagnostics += err.Error() + "\n"
		}
	}

	if value, ok := params["mode"]; ok {
		mode, err := ParseMode(value)
		if err == nil {
			flags.Mode = mode
		} else {
			diagnostics += err.Error() + "\n"
		}
	}

	if value, ok := params["edition"]; ok {
		edition, err := ParseEdition(value)
		if err == nil {
			flags.Edition = edition
		} else {
			diagnostics += err.Error() + "\n"
		}
	}

	return flags, diagnostics
}
