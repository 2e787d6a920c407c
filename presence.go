package barskema

import "strings"

// Presence is the bit flag collected by DecodeWithMeta.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input.
	PresenceWasNull                             // Field value was null.
	PresenceDefaultApplied                      // Absent value (or a step default) was applied.
)

// PresenceMap maps JSON Pointers to Presence flags.
type PresenceMap map[string]Presence

// Has reports whether every flag in f is set at path.
func (pm PresenceMap) Has(path string, f Presence) bool {
	return pm[path]&f == f
}

// Under returns the entries whose pointer starts with prefix, re-rooted at "/".
func (pm PresenceMap) Under(prefix string) PresenceMap {
	if prefix == "" || prefix == "/" {
		return pm
	}
	out := make(PresenceMap)
	for k, v := range pm {
		switch {
		case k == prefix:
			out["/"] = v
		case strings.HasPrefix(k, prefix+"/"):
			out[k[len(prefix):]] = v
		}
	}
	return out
}

// Decoded carries the decoded record along with presence metadata and the
// non-fatal diagnostics raised while decoding.
type Decoded[R any] struct {
	Value    R
	Presence PresenceMap
	Warnings Issues
}
