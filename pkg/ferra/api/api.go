package api

import (
	"ferrabot.org/ferra/pkg/common"
	"ferrabot.org/ferra/pkg/ferra/domain"
	"ferrabot.org/ferra/pkg/ferra/infrastructure/playground"
	"ferrabot.org/ferra/pkg/ferra/infrastructure/rustfmt"
	"ferrabot.org/ferra/pkg/ferra/infrastructure/web"
)

// See domain/config.go
const (
	ConfigKeyLogPath = domain.ConfigKeyLogPath
)

// API is the entrypoint to Ferra. It shouldn't contain any logic of its own; it glues all the components
// together and provides a public interface for domain.CommandService.
// This API can be used in various contexts: in an IRC chat, console input/output etc.
type API interface {
	// ExecuteCommand runs the named chat command with everything the user typed after the command word
	// and returns the complete chat reply. An empty (or "help") body yields the command's help text.
	ExecuteCommand(name string, raw string) (string, error)
	// Help returns the help text of the given command, or "" if the command is unknown.
	Help(name string) string
	// CommandNames lists all available commands.
	CommandNames() []string
}

type api struct {
	commandService *domain.CommandService
}

func NewAPI(config *common.Config) API {
	logger := common.NewFileLogger(config.GetStringOrDefault(ConfigKeyLogPath, "log.txt"))
	playgroundClient := playground.NewClient(config, logger)
	formatter := rustfmt.NewFormatter(config)
	snippetFetcher := web.NewSnippetFetcher(config)
	return &api{
		commandService: domain.NewCommandService(
			playgroundClient,
			formatter,
			snippetFetcher,
			config,
			logger,
		),
	}
}

func (a *api) ExecuteCommand(name string, raw string) (string, error) {
	return a.commandService.Execute(name, raw)
}

func (a *api) Help(name string) string {
	return domain.Help(name)
}

func (a *api) CommandNames() []string {
	return domain.CommandNames()
}
