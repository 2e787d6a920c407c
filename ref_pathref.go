package barskema

import (
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way.
type PathRef struct {
	parts []string
}

// Root is the empty pointer "/".
func Root() PathRef { return PathRef{} }

// PathOf parses a pointer such as "/lessons/0".
func PathOf(pointer string) PathRef {
	var parts []string
	for _, p := range strings.Split(pointer, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return PathRef{parts: parts}
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Field appends an object key, escaping '~' and '/' per RFC 6901.
func (p PathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return PathRef{parts: append(append([]string{}, p.parts...), pointerEscaper.Replace(name))}
}

// Index appends an array index.
func (p PathRef) Index(i int) PathRef {
	return PathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

// Pointer renders the path.
func (p PathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p PathRef) String() string { return p.Pointer() }

// Join appends a child pointer (as produced by a nested decode) to p.
func (p PathRef) Join(child string) string {
	base := p.Pointer()
	if child == "" || child == "/" {
		return base
	}
	if base == "/" {
		return child
	}
	if child[0] != '/' {
		child = "/" + child
	}
	return base + child
}
