package reader_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	inputLine := "line1\nline2\nline3\nline4\n"

	cases := []struct {
		name    string
		isDir   bool
		isReal  bool // false только для кейса "файл не найден"
		input   []byte
		wantErr error
		wantMsg string
	}{
		{
			name:   "Positive - 1 file",
			isReal: true,
			input:  []byte(inputLine),
		},
		{
			name:   "Positive - empty file",
			isReal: true,
			input:  []byte{},
		},
		{
			name:    "Negative - file is a directory",
			isDir:   true,
			isReal:  true,
			wantMsg: "is a directory",
		},
		{
			name:    "Negative - file not found",
			isReal:  false,
			wantErr: fs.ErrNotExist,
		},
		{
			name:    "Negative - not a text file",
			isReal:  true,
			input:   []byte{0xff, 0xfe, 0xfd},
			wantErr: model.ErrNotText,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			fileName := filepath.Join(t.TempDir(), "test_unreal_file_12345.txt")
			if tt.isReal {
				fileName = createTempFile(t, tt.input, tt.isDir)
			}

			res, err := reader.ReadInput(fileName)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				require.ErrorContains(t, err, tt.wantMsg)
			default:
				require.NoError(t, err)
				require.Equal(t, string(tt.input), res)
			}
		})
	}
}

// вспомогательная функция для создания временного файла
func createTempFile(t *testing.T, content []byte, isDir bool) string {
	t.Helper()
	if isDir {
		return t.TempDir()
	}

	name := filepath.Join(t.TempDir(), "minigrep_test.txt")
	require.NoError(t, os.WriteFile(name, content, 0o600), "failed to write provided content to temp-file")
	return name
}
