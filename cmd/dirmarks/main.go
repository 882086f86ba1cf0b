package main

import (
	"log/slog"
	"os"

	"github.com/AntonioJCosta/dirmarks/internal/adapters/bookmarkparsing"
	"github.com/AntonioJCosta/dirmarks/internal/adapters/dialectformatting"
	"github.com/AntonioJCosta/dirmarks/internal/adapters/yamlexport"
	"github.com/AntonioJCosta/dirmarks/internal/core/services/bookmarkexport"
	"github.com/AntonioJCosta/dirmarks/internal/handlers/cli"
	"github.com/AntonioJCosta/dirmarks/internal/repositories/bookmarkfile"
)

// Version is set at build time
var Version = "dev"

func main() {
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelWarn)
	logger := cli.NewLogger(os.Stderr, logLevel)

	parser := bookmarkparsing.NewLineParser()
	formatter := dialectformatting.NewTemplateFormatter()
	store := bookmarkfile.NewBookmarkFileStore()
	encoder := yamlexport.NewYAMLEncoder()

	exportSvc := bookmarkexport.NewService(parser, formatter, store, logger)
	rootCmd := cli.NewRootCommand(Version, exportSvc, formatter, encoder, logLevel)

	if cmd, err := rootCmd.ExecuteC(); err != nil {
		cli.PrintError(os.Stderr, cmd.CommandPath(), err)
		os.Exit(int(cli.MapExitCode(err)))
	}
}
