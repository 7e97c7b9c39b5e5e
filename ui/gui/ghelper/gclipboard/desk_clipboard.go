package gclipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

var ErrEmpty = errors.New("clipboard is empty")

// ReadText returns the trimmed clipboard text.
func ReadText() (string, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmpty
	}
	return s, nil
}

func WriteText(text string) error {
	return clipboard.WriteAll(text)
}
