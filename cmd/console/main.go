package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"ferrabot.org/ferra/pkg/common"
	"ferrabot.org/ferra/pkg/ferra/api"
	"ferrabot.org/ferra/pkg/ferra/domain"
)

// The console frontend runs the same commands as the chat frontends, which is handy for trying the bot out
// locally without connecting it anywhere.

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
	ferra := api.NewAPI(config)
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()
	fmt.Println("commands: " + strings.Join(ferra.CommandNames(), ", "))
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name := line
		raw := ""
		if spaceIndex := strings.IndexAny(line, " \t"); spaceIndex != -1 {
			name = line[:spaceIndex]
			raw = line[spaceIndex+1:]
		}
		reply, err := ferra.ExecuteCommand(name, raw)
		if errors.Is(err, domain.ErrUnknownCommand) {
			fmt.Println("unknown command, available: " + strings.Join(ferra.CommandNames(), ", "))
			continue
		}
		if err != nil {
			fmt.Println("Error: " + err.Error())
			continue
		}
		fmt.Println(reply)
	}
	return nil
}
