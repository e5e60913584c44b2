package fileio

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFileName is read from the root of the source library when present
const IgnoreFileName = ".modpackignore"

// LoadIgnore compiles the configured patterns together with the library's
// ignore file. It returns nil when there is nothing to ignore.
func LoadIgnore(source string, patterns []string) (Matcher, error) {
	var lines []string
	lines = append(lines, patterns...)

	data, err := os.ReadFile(filepath.Join(source, IgnoreFileName))
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		// Trims both CR and LF
		for _, line := range strings.Split(string(data), "\n") {
			lines = append(lines, strings.TrimRight(line, "\r"))
		}
	}

	if !hasPattern(lines) {
		return nil, nil
	}
	return gitignore.CompileIgnoreLines(lines...), nil
}

func hasPattern(lines []string) bool {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) > 0 && !strings.HasPrefix(line, "#") {
			return true
		}
	}
	return false
}
