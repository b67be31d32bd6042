package sequence

import (
	"regexp"
	"strings"
)

// Pattern is the numbering scheme inferred from a sample filename: a literal
// prefix before the frame digits and a dot-extension after them. An empty
// Prefix means no prefix was detected; purely numeric names like "42.png"
// produce one. Ext keeps the leading dot.
type Pattern struct {
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Ext    string `json:"ext,omitempty"    yaml:"ext,omitempty"`
}

// patternRe decomposes a filename into <prefix><digits><.ext>. The prefix is
// lazy so the digit run binds to the digits immediately before the extension,
// and it may be empty.
var patternRe = regexp.MustCompile(`^(.*?)(\d+)(\.\w+)$`)

// trailingRe is the per-file fallback: a digit run immediately followed by a
// dot-extension at the end of the name.
var trailingRe = regexp.MustCompile(`(\d+)(\.\w+)$`)

// DetectPattern infers the numbering scheme from a single sample filename.
// When the sample does not end in digits plus an extension, the pattern has no
// prefix and carries the sample's own extension component, which still lets
// per-file extraction fall back to trailing-digit matching.
func DetectPattern(sample string) Pattern {
	m := patternRe.FindStringSubmatch(sample)
	if m == nil {
		return Pattern{Ext: extensionOf(sample)}
	}

	return Pattern{Prefix: m[1], Ext: m[3]}
}

// extensionOf returns the extension component of name including the dot, or
// "" when there is none. Leading dots do not start an extension, so hidden
// files like ".exr" have no extension.
func extensionOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}

	if strings.Trim(name[:i], ".") == "" {
		return ""
	}

	return name[i:]
}
