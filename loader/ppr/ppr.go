// Package ppr reads the raw lines of a property price register export.
package ppr

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"ppr-analyser/config"
	"ppr-analyser/utils"
)

// Register lines are short, but descriptions occasionally run long.
const maxLineBytes = 1 << 20

// Loader reads the register file named in the config.
type Loader struct {
	cfg    *config.Config
	logger *utils.Logger
}

// New creates a Loader.
func New(cfg *config.Config, logger *utils.Logger) *Loader {
	return &Loader{cfg: cfg, logger: logger}
}

// Load opens the input file and returns its data lines.
func (l *Loader) Load() ([]string, error) {
	l.logger.Info("[ppr] File import started: %s", l.cfg.InputPath)

	f, err := os.Open(l.cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("ppr: open input %q: %w", l.cfg.InputPath, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("ppr: read %q: %w", l.cfg.InputPath, err)
	}

	l.logger.Info("[ppr] File split into lines: %d lines recognised", len(lines))
	return lines, nil
}

// ReadLines discards the header line and returns the remaining non-blank
// lines without terminators. Bytes that are not valid UTF-8 (typically a
// Euro sign saved in a legacy code page) become U+FFFD instead of failing.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	header := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if header {
			header = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.ToValidUTF8(line, "\uFFFD"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
