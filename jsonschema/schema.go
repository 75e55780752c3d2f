// Package jsonschema is a minimal JSON Schema keyword container. A Schema is
// an ordered set of keywords; callers layer their own vocabularies on top by
// defining Keyword types and going through TryGetKeyword/SetKeyword.
package jsonschema

// Keyword is a single schema keyword. Keyword returns its name as written on
// the wire, which is also its identity within a Schema.
type Keyword interface {
	Keyword() string
}

// Schema holds keywords in insertion order, at most one per name.
type Schema struct {
	keywords []Keyword
	index    map[string]int
}

// New builds a schema from the given keywords.
func New(keywords ...Keyword) *Schema {
	s := &Schema{}
	for _, k := range keywords {
		s.SetKeyword(k)
	}
	return s
}

// TryGetKeyword returns the keyword stored under name.
func (s *Schema) TryGetKeyword(name string) (Keyword, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.keywords[i], true
}

// SetKeyword stores k, replacing any keyword of the same name in place.
func (s *Schema) SetKeyword(k Keyword) {
	if k == nil {
		return
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	name := k.Keyword()
	if i, ok := s.index[name]; ok {
		s.keywords[i] = k
		return
	}
	s.index[name] = len(s.keywords)
	s.keywords = append(s.keywords, k)
}

// RemoveKeyword deletes the keyword stored under name.
func (s *Schema) RemoveKeyword(name string) {
	if s == nil {
		return
	}
	i, ok := s.index[name]
	if !ok {
		return
	}
	s.keywords = append(s.keywords[:i], s.keywords[i+1:]...)
	delete(s.index, name)
	for j := i; j < len(s.keywords); j++ {
		s.index[s.keywords[j].Keyword()] = j
	}
}

// Keywords returns the keywords in insertion order.
func (s *Schema) Keywords() []Keyword {
	if s == nil {
		return nil
	}
	return append([]Keyword(nil), s.keywords...)
}

// Len reports the number of keywords.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keywords)
}

// Get returns the keyword stored under name when it has type K.
func Get[K Keyword](s *Schema, name string) (K, bool) {
	var zero K
	k, ok := s.TryGetKeyword(name)
	if !ok {
		return zero, false
	}
	kk, ok := k.(K)
	if !ok {
		return zero, false
	}
	return kk, true
}
