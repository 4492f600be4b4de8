package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"chipstack.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play at the terminal"`
	Serve   ServeCmd         `cmd:"" help:"Serve the table over HTTP and WebSocket"`
	Split   SplitCmd         `cmd:"" help:"Show how an amount breaks into chips"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("chipstack"),
		kong.Description("Casino chip betting table"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
