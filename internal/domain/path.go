package domain

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"
)

// CasePolicy decides how two paths are compared. It is passed explicitly to
// every comparison instead of being read from the host.
type CasePolicy int

const (
	CaseSensitive CasePolicy = iota
	CaseInsensitive
)

// PolicyForOS returns the file system case policy of the given GOOS value.
// Only Linux file systems are treated as case sensitive.
func PolicyForOS(goos string) CasePolicy {
	if goos == "linux" {
		return CaseSensitive
	}

	return CaseInsensitive
}

// ParseCasePolicy accepts "auto", "sensitive" or "insensitive". "auto" and the
// empty string resolve through PolicyForOS.
func ParseCasePolicy(raw string, goos string) (CasePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return PolicyForOS(goos), nil
	case "sensitive":
		return CaseSensitive, nil
	case "insensitive":
		return CaseInsensitive, nil
	default:
		return CaseSensitive, fmt.Errorf("%w %q", ErrInvalidCasePolicy, raw)
	}
}

func (p CasePolicy) String() string {
	if p == CaseInsensitive {
		return "insensitive"
	}

	return "sensitive"
}

func (p CasePolicy) key(path string) string {
	cleaned := filepath.Clean(path)
	if p == CaseInsensitive {
		return strings.ToLower(cleaned)
	}

	return cleaned
}

// Equal reports whether a and b name the same path. Empty paths never match.
func (p CasePolicy) Equal(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	return p.key(a) == p.key(b)
}

// IsEqualOrParent reports whether candidate is path or one of its ancestors.
// The prefix must end on a separator boundary: /foo/ba does not own /foo/bar.
func (p CasePolicy) IsEqualOrParent(path, candidate string) bool {
	if path == "" || candidate == "" {
		return false
	}

	target := p.key(path)
	parent := p.key(candidate)
	if target == parent {
		return true
	}
	if !strings.HasPrefix(target, parent) {
		return false
	}
	if strings.HasSuffix(parent, string(filepath.Separator)) {
		return true
	}

	return target[len(parent)] == filepath.Separator
}

// Ancestors yields dir and then each parent directory up to and including the
// file system root.
func Ancestors(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		current := filepath.Clean(dir)
		for {
			if !yield(current) {
				return
			}

			parent := filepath.Dir(current)
			if parent == current {
				return
			}
			current = parent
		}
	}
}
