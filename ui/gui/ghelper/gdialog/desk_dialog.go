package gdialog

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

var ErrCancelled = errors.New("dialog cancelled")

type Result struct {
	Path string
	Name string
	Data []byte
}

// OpenFile shows the native picker. Blocks until the user answers.
func OpenFile(title string) (Result, error) {
	path, err := dialog.File().Title(title).Filter("Position", "fen", "txt").Filter("All files", "*").Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return Result{}, ErrCancelled
	} else if err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}
