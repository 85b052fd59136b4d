// Package fixture loads newline-delimited lists of version strings for
// the regression harness.
package fixture

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a fixture list from data if non-nil, otherwise from file.
// One version string per line; blank lines and lines starting with "#"
// are skipped.
func Parse(file string, data []byte) ([]string, error) {
	var reader io.Reader

	if data != nil {
		reader = bytes.NewBuffer(data)
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	}

	return read(reader)
}

func read(r io.Reader) ([]string, error) {
	var versions []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		versions = append(versions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	return versions, nil
}
