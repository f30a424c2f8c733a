package main

import (
	"errors"
	"log"
	"os"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/UnendingLoop/minigrep/internal/runner"
	"github.com/spf13/cobra"
)

const (
	exitConfigErr = 1
	exitIOErr     = 2
)

func main() {
	// все сообщения пользователю идут в stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(0)

	if err := execute(newRootCmd(), os.Args[1:]); err != nil {
		if errors.Is(err, model.ErrMissingArgs) {
			os.Exit(exitConfigErr)
		}
		os.Exit(exitIOErr)
	}
}

// execute runs the root command on raw tokens without cobra's subcommand lookup:
// any first token, "__complete" included, is the search target.
func execute(cmd *cobra.Command, args []string) error {
	return cmd.RunE(cmd, args)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep <target> <file_path> [-n] [-i]",
		Short: "Print lines of a file containing the target string",
		Long: `minigrep scans a file line by line and prints every line containing the target.
  -n  prefix each line with its 1-based line number, separated by ':'
  -i  case-insensitive match`,
		// флаги ищем сами по вхождению в список аргументов
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parser.InitConfig(args)
			if err != nil {
				log.Printf("Failed to launch minigrep: %v\nUsage: %s", err, cmd.UseLine())
				return err
			}

			if _, err := runner.Run(cmd.OutOrStdout(), cfg); err != nil {
				log.Printf("Problem reading file: %v", err)
				return err
			}
			return nil
		},
	}
	cmd.SetOut(os.Stdout)

	return cmd
}
