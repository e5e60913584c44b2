package modpack

import (
	"os"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// Suggest returns up to three directory names in the source library that
// fuzzily match modID, best match first.
func Suggest(source string, modID string) []string {
	entries, err := os.ReadDir(source)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	var suggestions []string
	for _, match := range fuzzy.Find(modID, names) {
		if match.Str == modID {
			continue
		}
		suggestions = append(suggestions, match.Str)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}
