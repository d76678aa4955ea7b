package message

import "sort"

// headerSep is the literal separator RFC 7826 §5.2 mandates for appended
// header values.
const headerSep = ", "

type headerEntry struct {
	name  HeaderName
	value HeaderValue
}

// HeaderMap is an ordered, case-insensitive-by-name collection of header
// fields. Iteration order is deterministic (ASCII case-folded name order) so
// that serialization is byte-exact and testable, matching §4.2's
// determinism requirement.
type HeaderMap struct {
	entries map[string]*headerEntry
}

// NewHeaderMap returns an empty header map.
func NewHeaderMap() *HeaderMap {
	return &HeaderMap{entries: make(map[string]*headerEntry)}
}

// Insert replaces any existing value for name.
func (hm *HeaderMap) Insert(name HeaderName, value HeaderValue) {
	key := name.fold()
	if e, ok := hm.entries[key]; ok {
		e.value = value
		return
	}
	hm.entries[key] = &headerEntry{name: name, value: value}
}

// Append joins value onto any existing value with ", ". If name is absent,
// Append behaves like Insert.
func (hm *HeaderMap) Append(name HeaderName, value HeaderValue) {
	key := name.fold()
	if e, ok := hm.entries[key]; ok {
		e.value = e.value + HeaderValue(headerSep) + value
		return
	}
	hm.entries[key] = &headerEntry{name: name, value: value}
}

// Remove deletes the value associated with name, if any.
func (hm *HeaderMap) Remove(name HeaderName) {
	delete(hm.entries, name.fold())
}

// Get returns the stored value for name and whether it was present.
func (hm *HeaderMap) Get(name HeaderName) (HeaderValue, bool) {
	e, ok := hm.entries[name.fold()]
	if !ok {
		return "", false
	}
	return e.value, true
}

// Has reports whether name is present.
func (hm *HeaderMap) Has(name HeaderName) bool {
	_, ok := hm.entries[name.fold()]
	return ok
}

// Len returns the number of distinct header names stored.
func (hm *HeaderMap) Len() int { return len(hm.entries) }

// Names returns the stored header names in deterministic (case-folded)
// order.
func (hm *HeaderMap) Names() []HeaderName {
	names := make([]HeaderName, 0, len(hm.entries))
	for _, e := range hm.entries {
		names = append(names, e.name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Compare(names[j]) < 0 })
	return names
}

// Entries calls fn for every header in deterministic order.
func (hm *HeaderMap) Entries(fn func(name HeaderName, value HeaderValue)) {
	for _, name := range hm.Names() {
		v, _ := hm.Get(name)
		fn(name, v)
	}
}

// Clone returns an independent copy of hm.
func (hm *HeaderMap) Clone() *HeaderMap {
	out := NewHeaderMap()
	for k, e := range hm.entries {
		out.entries[k] = &headerEntry{name: e.name, value: e.value}
	}
	return out
}

// Equal reports whether hm and other carry the same set of names and values.
func (hm *HeaderMap) Equal(other *HeaderMap) bool {
	if hm == other {
		return true
	}
	if hm == nil || other == nil {
		return false
	}
	if len(hm.entries) != len(other.entries) {
		return false
	}
	for k, e := range hm.entries {
		oe, ok := other.entries[k]
		if !ok || oe.value != e.value {
			return false
		}
	}
	return true
}
