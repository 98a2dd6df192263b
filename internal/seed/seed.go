package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Seed files are read once when the screen starts. Nothing is written back;
// the list lives in memory only.

// Entry is one item to pre-populate the screen with.
type Entry struct {
	Value string `json:"value" toml:"value"`
	Done  bool   `json:"done" toml:"done"`
}

var ErrUnsupportedFormat = errors.New("unsupported seed format")

// Default is the sample data the screen starts with.
func Default() []Entry {
	return []Entry{
		{Value: "Sample Todo 1"},
		{Value: "Sample Todo 2", Done: true},
		{Value: "Sample Todo 3"},
	}
}

// tomlFile is the layout of a .toml seed file:
//
//	[[item]]
//	value = "Buy milk"
//	done = false
type tomlFile struct {
	Items []Entry `toml:"item"`
}

// Load reads entries from a .json (array) or .toml file.
func Load(path string) ([]Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(b, &entries); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	case ".toml":
		var f tomlFile
		if _, err := toml.Decode(string(b), &f); err != nil {
			return nil, fmt.Errorf("toml decode: %w", err)
		}
		entries = f.Items
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Value) == "" {
			return nil, fmt.Errorf("entry %d: empty value", i+1)
		}
	}
	return entries, nil
}

// Resolve picks the entries for a run: the file at path when set, the
// built-in samples when builtin is true, nothing otherwise.
func Resolve(path string, builtin bool) ([]Entry, error) {
	if path != "" {
		return Load(path)
	}
	if builtin {
		return Default(), nil
	}
	return nil, nil
}
