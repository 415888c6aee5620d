package main

import (
	"errors"
	"strings"

	"github.com/whyrusleeping/hellabot"

	"ferrabot.org/ferra/pkg/common"
	"ferrabot.org/ferra/pkg/ferra/api"
	"ferrabot.org/ferra/pkg/ferra/domain"
)

func main() {
	err := mainImpl()
	if err != nil {
		panic(err)
	}
}

func mainImpl() error {
	config, err := common.LoadConfig("config.yaml")
	if err != nil {
		return err
	}
	botName := config.GetStringOrDefault("botName", "Ferra")
	roomName := config.GetStringOrDefault("roomName", "rust")
	serverName := config.GetStringOrDefault("serverName", "irc.libera.chat:6667")
	commandPrefix := config.GetStringOrDefault("commandPrefix", "?")
	ferra := api.NewAPI(config)
	ircBot, err := hbot.NewBot(serverName, botName)
	if err != nil {
		return err
	}
	var trigger = hbot.Trigger{
		Condition: func(b *hbot.Bot, m *hbot.Message) bool {
			return m.Command == "PRIVMSG" && strings.HasPrefix(m.Content, commandPrefix)
		},
		Action: func(b *hbot.Bot, m *hbot.Message) bool {
			name, raw := splitCommand(m.Content[len(commandPrefix):])
			if name == "" {
				return false
			}
			if name == "help" {
				b.Reply(m, m.From+" commands: "+strings.Join(ferra.CommandNames(), ", "))
				return false
			}
			reply, err := ferra.ExecuteCommand(name, raw)
			if errors.Is(err, domain.ErrUnknownCommand) {
				// Any chat line may start with the prefix by accident, don't spam the channel.
				return false
			}
			if err != nil {
				reply = "Error: " + err.Error()
			}
			for _, line := range strings.Split(reply, "\n") {
				// IRC can't carry newlines, so multi-line replies go out line by line
				if line != "" {
					b.Reply(m, line)
				}
			}
			return false
		},
	}
	ircBot.AddTrigger(trigger)
	ircBot.Channels = []string{"#" + roomName}
	ircBot.Run()
	return nil
}

// splitCommand separates the command word from everything the user typed after it.
func splitCommand(content string) (string, string) {
	content = strings.TrimSpace(content)
	spaceIndex := strings.IndexAny(content, " \t\n")
	if spaceIndex == -1 {
		return content, ""
	}
	return content[:spaceIndex], content[spaceIndex+1:]
}
