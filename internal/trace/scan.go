package trace

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"path/filepath"
	"slices"
	"strings"
)

// Extension is the file extension of trace files
const Extension = ".jsonl"

// DefaultMaxDepth is how deep Scan descends below each root
const DefaultMaxDepth = 5

// skipDirs are directories that never hold traces
var skipDirs = []string{"node_modules", "vendor", "dist", "build", "target", "__pycache__", "venv"}

// Scanner finds trace files below a set of roots
type Scanner struct {
	MaxDepth int
}

// NewScanner creates a scanner with DefaultMaxDepth
func NewScanner() *Scanner {
	return &Scanner{MaxDepth: DefaultMaxDepth}
}

// Scan walks roots and calls found for every trace file, in lexical order per
// root. It returns how many traces were found.
func (s *Scanner) Scan(ctx context.Context, roots []string, found func(path string)) (int, error) {
	count := 0
	for _, root := range roots {
		n, err := s.scanDirectory(ctx, root, found)
		count += n
		if err != nil {
			return count, err
		}
	}
	return count, nil
}

// scanDirectory recursively scans a directory for trace files
func (s *Scanner) scanDirectory(ctx context.Context, root string, found func(path string)) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		// Check context cancellation
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			if path == root {
				return err
			}
			log.Printf("Error walking path %s: %v", path, err)
			return nil // Continue walking
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			relPath, _ := filepath.Rel(root, path)
			if strings.Count(relPath, string(filepath.Separator)) >= s.MaxDepth {
				return filepath.SkipDir
			}
			// Skip hidden and common non-trace directories
			if strings.HasPrefix(d.Name(), ".") || slices.Contains(skipDirs, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.EqualFold(filepath.Ext(d.Name()), Extension) {
			count++
			found(path)
		}
		return nil
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return count, err
	}
	if err != nil {
		log.Printf("Error scanning directory %s: %v", root, err)
	}
	return count, err
}
