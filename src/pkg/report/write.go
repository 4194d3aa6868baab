package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tuumbleweed/xerr"
)

/*
FileWriteError is returned when the report cannot be written to Path.
*/
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("write report file '%s': %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}

/*
Write stores htmlText at path as UTF-8, replacing any existing file. Missing
parent directories are created.
*/
func Write(path string, htmlText string) (e *xerr.Error) {
	writeErr := writeFile(path, htmlText)
	if writeErr != nil {
		e = xerr.NewError(writeErr, "write HTML report file", path)
		return e
	}
	return nil
}

func writeFile(path string, htmlText string) error {
	if path == "" {
		return &FileWriteError{Path: path, Err: fmt.Errorf("output path is empty")}
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		mkdirErr := os.MkdirAll(dir, 0o755)
		if mkdirErr != nil {
			return &FileWriteError{Path: path, Err: mkdirErr}
		}
	}

	writeErr := os.WriteFile(path, []byte(htmlText), 0o644)
	if writeErr != nil {
		return &FileWriteError{Path: path, Err: writeErr}
	}

	return nil
}
