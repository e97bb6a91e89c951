package linenoise

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
)

type LineNoise struct {
	*liner.State
}

// New builds a line editor that completes the given command words.
func New(commands []string) *LineNoise {
	ln := &LineNoise{liner.NewLiner()}
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		var out []string
		for _, cmd := range commands {
			if strings.HasPrefix(cmd, strings.ToLower(line)) {
				out = append(out, cmd+" ")
			}
		}
		return out
	})
	return ln
}

func (ln *LineNoise) HistoryLoad(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	_, err = ln.ReadHistory(bytes.NewReader(content))
	return err
}

func (ln *LineNoise) HistorySave(filepath string) error {
	var buf bytes.Buffer
	_, err := ln.WriteHistory(&buf)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, buf.Bytes(), 0644)
}

func (ln *LineNoise) ClearScreen() error {
	_, err := fmt.Fprint(os.Stdout, "\x1b[H\x1b[2J")
	return err
}
