package tool

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Private functions (alphabetical)

// normalizeCommand drops every whitespace rune so that spacing changes in a
// template do not change its identity.
func normalizeCommand(cmd string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cmd)
}

// Public functions (alphabetical)

// NewRegistry builds a Registry from a codec to Tool mapping.
// The mapping is copied so later changes by the caller are not observed.
func NewRegistry(tools map[string]Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for codec, t := range tools {
		r.tools[codec] = t
	}
	return r
}

// Public methods (alphabetical)

// Codecs returns the registered codec names in sorted order.
func (r *Registry) Codecs() []string {
	codecs := make([]string, 0, len(r.tools))
	for codec := range r.tools {
		codecs = append(codecs, codec)
	}
	sort.Strings(codecs)
	return codecs
}

// Len returns the number of registered codecs.
func (r *Registry) Len() int {
	return len(r.tools)
}

// Lookup returns the Tool registered for codec.
// The returned error wraps ErrUnknownCodec and names the codec.
func (r *Registry) Lookup(codec string) (Tool, error) {
	t, ok := r.tools[codec]
	if !ok {
		return Tool{}, fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
	}
	return t, nil
}

// DirName returns the cache directory name of the tool: "{label}.{fingerprint}".
func (t Tool) DirName() string {
	return t.Label + "." + t.Fingerprint()
}

// Fingerprint returns the hex MD5 digest of the command template with all
// whitespace removed. Templates that only differ in spacing share a fingerprint.
func (t Tool) Fingerprint() string {
	sum := md5.Sum([]byte(normalizeCommand(t.Command)))
	return hex.EncodeToString(sum[:])
}
