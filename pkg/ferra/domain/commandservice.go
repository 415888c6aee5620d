package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"ferrabot.org/ferra/pkg/common"
)

// ErrUnknownCommand is reported when the command word matches nothing. Frontends typically stay silent,
// since any chat line may start with the command prefix by accident.
var ErrUnknownCommand = errors.New("unknown command")

// CommandService implements all chat commands. It holds only injected collaborators and read-only
// configuration: every invocation is self-contained, so concurrent invocations need no locking.
type CommandService struct {
	playground       Playground
	formatter        CodeFormatter
	snippetFetcher   SnippetFetcher
	logger           common.Logger
	messageSizeLimit int
	playgroundURL    string
}

func NewCommandService(
	playground Playground,
	formatter CodeFormatter,
	snippetFetcher SnippetFetcher,
	config *common.Config,
	logger common.Logger,
) *CommandService {
	return &CommandService{
		playground:       playground,
		formatter:        formatter,
		snippetFetcher:   snippetFetcher,
		logger:           logger,
		messageSizeLimit: config.GetIntOrDefault(ConfigKeyMessageSizeLimit, DefaultMessageSizeLimit),
		playgroundURL:    config.GetStringOrDefault(ConfigKeyPlaygroundURL, DefaultPlaygroundURL),
	}
}

type command struct {
	run  func(service *CommandService, args Args) (string, error)
	help string
}

var commands = map[string]command{
	"play":       {(*CommandService).Play, playHelp},
	"eval":       {(*CommandService).Eval, evalHelp},
	"miri":       {(*CommandService).Miri, miriHelp},
	"expand":     {(*CommandService).ExpandMacros, expandHelp},
	"clippy":     {(*CommandService).Clippy, clippyHelp},
	"fmt":        {(*CommandService).Fmt, fmtHelp},
	"microbench": {(*CommandService).MicroBench, microBenchHelp},
}

// CommandNames lists all available commands, sorted.
func CommandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Help returns the help text of the given command, or "" if the command is unknown.
func Help(name string) string {
	return commands[name].help
}

// Execute dispatches the named command and returns the complete chat reply. An empty body or a literal "help"
// body returns the command's help text instead of running it; so does a command invoked without any code.
func (s *CommandService) Execute(name string, raw string) (string, error) {
	chosen, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("%w `%s`", ErrUnknownCommand, name)
	}
	args := ParseArgs(raw)
	if args.Body == "" || args.Body == "help" {
		return chosen.help, nil
	}
	invocationID := uuid.NewString()
	s.logger.Log(fmt.Sprintf("[%s] executing command '%s'", invocationID, name))
	reply, err := chosen.run(s, args)
	if errors.Is(err, ErrNoCode) {
		return chosen.help, nil
	}
	if err != nil {
		s.logger.Log(fmt.Sprintf("[%s] command '%s' failed: %s", invocationID, name, err.Error()))
		return "", err
	}
	return reply, nil
}

// resolveCode extracts the code from the command body, following the URL to its code block when the body is
// a lone link.
func (s *CommandService) resolveCode(args Args) (string, error) {
	code, err := ExtractCode(args.Body)
	if err != nil {
		return "", err
	}
	if s.snippetFetcher != nil {
		snippet, ok, err := s.snippetFetcher.FetchSnippet(code)
		if err != nil {
			return "", err
		}
		if ok {
			return snippet, nil
		}
	}
	return code, nil
}

// Play compiles and runs the code as-is (the snippet must evaluate to () unless it defines its own fn main).
func (s *CommandService) Play(args Args) (string, error) {
	return s.playOrEval(args, ResultHandlingNone)
}

// Eval compiles and runs the code, printing the debug representation of the trailing expression.
func (s *CommandService) Eval(args Args) (string, error) {
	return s.playOrEval(args, ResultHandlingPrint)
}

// play and eval work the same apart from the result handling, so this method abstracts over the two.
func (s *CommandService) playOrEval(args Args, resultHandling ResultHandling) (string, error) {
	rawCode, err := s.resolveCode(args)
	if err != nil {
		return "", err
	}
	code, _ := MaybeWrap(rawCode, resultHandling)
	flags, diagnostics := ParseFlags(args.Params)

	result, err := s.playground.Execute(ExecuteRequest{
		Code:      code,
		Channel:   flags.Channel,
		Edition:   flags.Edition,
		CrateType: CrateTypeForCode(code),
		Mode:      flags.Mode,
		Tests:     false,
	})
	if err != nil {
		return "", err
	}
	formatExecuteStderr(&result)

	return s.buildReply(result, code, flags, diagnostics)
}
