// Package model contains data structures for the parsed invocation parameters, search matches and run result
package model

import "errors"

var (
	ErrMissingArgs = errors.New("missing arguments")
	ErrNotText     = errors.New("file content is not valid UTF-8 text")
)

// Config - хранит параметры запуска, после создания не меняется
type Config struct {
	Target         string // строка для поиска
	FilePath       string // имя файла для чтения данных
	ShowLineNumber bool   // n — выводить номер строки перед каждой найденной строкой
	IgnoreCase     bool   // i — игнорировать регистр
}

// Match - найденная строка и ее номер(с 1) во входном тексте
type Match struct {
	LineNumber int
	Line       string // подстрока исходного текста, не копия
}

type Result struct {
	Matches []Match
	Lines   []string // строки в том виде, в каком выведены
}
