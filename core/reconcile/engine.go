package reconcile

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// HasExtension reports whether the last segment of name carries a file extension.
// The last dot decides; a leading dot alone (".gitignore") does not count.
func HasExtension(name string) bool {
	base := path.Base(name)
	if base == "." || base == ".." || base == "/" {
		return false
	}
	return strings.LastIndex(base, ".") > 0
}

// ScaleDir returns the folder holding assets exported at the given scale.
// Scale 1 lives at the root, so its folder is empty.
func ScaleDir(scale int) string {
	if scale == 1 {
		return ""
	}
	return fmt.Sprintf("%d.0x", scale)
}

// ScalePath returns the relative path of name exported at the given scale.
func ScalePath(scale int, name string) string {
	dir := ScaleDir(scale)
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

// Expand returns the expected file set of a manifest, every path flagged as not yet seen.
// Empty extension or scale lists fall back to the defaults.
func Expand(m Manifest) map[string]bool {
	m = m.WithDefaults()
	expected := make(map[string]bool)
	for _, file := range m.Files {
		for _, candidate := range candidates(file, m.FileExtensions) {
			for _, scale := range m.FileScales {
				expected[ScalePath(scale, candidate)] = false
			}
		}
	}
	return expected
}

// Reconcile compares the expected file set of a manifest against the actual file paths.
// Both report groups are sorted; a group with no entries is nil.
func Reconcile(m Manifest, actual []string) Report {
	expected := Expand(m)

	var newAssets []string
	for _, p := range actual {
		if _, ok := expected[p]; ok {
			expected[p] = true
			continue
		}
		if isIgnored(p, m.Ignore) {
			continue
		}
		newAssets = append(newAssets, p)
	}

	var missing []string
	for p, seen := range expected {
		if !seen {
			missing = append(missing, p)
		}
	}

	sort.Strings(missing)
	sort.Strings(newAssets)

	return Report{
		Missing: missing,
		New:     newAssets,
	}
}

// Validate checks the manifest fields that decoding alone cannot enforce.
// It returns a parse error describing the first violation.
func Validate(m Manifest) error {
	for i, file := range m.Files {
		if strings.TrimSpace(file) == "" {
			return NewParseError(fmt.Errorf("files[%d] is empty", i))
		}
	}
	for _, ext := range m.FileExtensions {
		if ext == "" {
			return NewParseError(fmt.Errorf("file_extensions contains an empty extension"))
		}
		if strings.HasPrefix(ext, ".") {
			return NewParseError(fmt.Errorf("file extension %q must not start with a dot", ext))
		}
	}
	for _, scale := range m.FileScales {
		if scale < 1 {
			return NewParseError(fmt.Errorf("file scale %d must be a positive integer", scale))
		}
	}
	for _, pattern := range m.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return NewParseError(fmt.Errorf("invalid ignore pattern %q", pattern))
		}
	}
	return nil
}

// candidates returns the base names a manifest entry expands to before scaling.
func candidates(file string, extensions []string) []string {
	if HasExtension(file) {
		return []string{file}
	}
	names := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		names = append(names, file+"."+ext)
	}
	return names
}

func isIgnored(p string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, p); ok {
			return true
		}
	}
	return false
}
