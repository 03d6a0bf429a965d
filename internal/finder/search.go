// Package finder implements the helper binary's file search and
// open-in-editor operations.
package finder

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Options control a search.
type Options struct {
	// Name is a glob matched case-insensitively against file base names.
	Name string
	// Content is a substring searched for inside files.
	Content string
	// Dir is the root to search from; "." when empty.
	Dir string
}

// Search walks the tree under opts.Dir and returns one line per match:
// the file path for name matches, "path:line: text" for content matches.
// An empty result means no matches.
func Search(opts Options) ([]string, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory '%s' does not exist", dir)
		}
		return nil, fmt.Errorf("accessing directory '%s': %w", dir, err)
	}

	var matches []string
	seen := make(map[string]bool)

	err := filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		if opts.Name != "" {
			matched, err := filepath.Match(strings.ToLower(opts.Name), strings.ToLower(filepath.Base(path)))
			if err != nil {
				return fmt.Errorf("invalid name pattern '%s': %w", opts.Name, err)
			}
			if matched && !seen[path] {
				seen[path] = true
				matches = append(matches, path)
			}
		}

		if opts.Content != "" && !seen[path] {
			lines, err := grep(path, opts.Content)
			if err != nil {
				// Skip files we can't read.
				return nil
			}
			if len(lines) > 0 {
				seen[path] = true
				matches = append(matches, lines...)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func grep(path, needle string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		if strings.Contains(scanner.Text(), needle) {
			out = append(out, fmt.Sprintf("%s:%d: %s", path, n, scanner.Text()))
		}
	}
	return out, scanner.Err()
}
