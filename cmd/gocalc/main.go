package main

import (
	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/cli/commands"
)

func main() {
	app := cli.NewApp()
	app.Initialize()

	runner := cli.NewRunner()
	runner.RegisterCommand("repl", commands.ReplCommand)
	runner.RegisterCommand("eval", commands.EvalCommand)
	runner.RegisterCommand("run", commands.RunCommand)
	runner.RegisterCommand("watch", commands.WatchCommand)
	runner.RegisterCommand("help", commands.HelpCommand)
	runner.RegisterCommand("version", commands.VersionCommand)

	app.Run(runner)
}
