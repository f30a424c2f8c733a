// Package parser puts os.Args into Config structure and validates it for any issues
package parser

import (
	"slices"

	"github.com/UnendingLoop/minigrep/internal/model"
)

const (
	flagLineNumber = "-n"
	flagIgnoreCase = "-i"
)

// InitConfig builds Config from invocation tokens without the program name.
// Target and file path are always the first two tokens; flags are detected by membership.
func InitConfig(args []string) (*model.Config, error) {
	if len(args) < 2 {
		return nil, model.ErrMissingArgs
	}

	return &model.Config{
		Target:         args[0],
		FilePath:       args[1],
		ShowLineNumber: slices.Contains(args, flagLineNumber),
		IgnoreCase:     slices.Contains(args, flagIgnoreCase),
	}, nil
}
