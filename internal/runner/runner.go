// Package runner reads the input file, searches it and prints matching lines
package runner

import (
	"fmt"
	"io"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/reader"
)

func Run(w io.Writer, cfg *model.Config) (*model.Result, error) {
	// прочитать файл целиком
	contents, err := reader.ReadInput(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	matches := processor.Search(cfg.Target, contents, cfg.IgnoreCase)

	// печатаем результат
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		line := processor.FormatLine(m, cfg.ShowLineNumber)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
		lines = append(lines, line)
	}

	return &model.Result{
		Matches: matches,
		Lines:   lines,
	}, nil
}
