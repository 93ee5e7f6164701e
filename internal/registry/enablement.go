package registry

import "strings"

// NormalizeName lower-cases and trims a service name so matching against
// ENABLED_SERVICES is case-insensitive.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ResolveEnabled computes the set of service names active for this run.
//
// With an empty (or whitespace-only) raw value, the set is the names of all
// descriptors enabled by default. Otherwise the value is comma-split,
// trimmed, lower-cased and empty tokens dropped. Unknown names are kept in
// the set but never match a descriptor, so they are inert rather than an
// error.
func ResolveEnabled(raw string, descriptors []Descriptor) map[string]struct{} {
	enabled := make(map[string]struct{})

	if strings.TrimSpace(raw) == "" {
		for _, d := range descriptors {
			if d.EnabledByDefault {
				enabled[NormalizeName(d.Name)] = struct{}{}
			}
		}
		return enabled
	}

	for _, token := range strings.Split(raw, ",") {
		token = NormalizeName(token)
		if token == "" {
			continue
		}
		enabled[token] = struct{}{}
	}
	return enabled
}
