package reader

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/UnendingLoop/minigrep/internal/model"
)

// ReadInput reads the whole file into memory and returns it as text
func ReadInput(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("error opening file: %w", err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("specified source filename %q is a directory", fileName)
	}

	// читаем файл целиком
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("couldn't read file: %w", err)
	}

	// проверяем что это текст
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("file %q: %w", fileName, model.ErrNotText)
	}

	return string(raw), nil
}
