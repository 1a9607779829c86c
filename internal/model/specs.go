package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SpecEntry is a single attribute. Value is either a string or a number.
type SpecEntry struct {
	Key   string
	Value any
}

// Specs keeps attributes in insertion order. It encodes as a JSON object.
type Specs []SpecEntry

// Set adds key or replaces its value in place.
func (s *Specs) Set(key string, value any) {
	for i := range *s {
		if (*s)[i].Key == key {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, SpecEntry{Key: key, Value: value})
}

func (s Specs) Get(key string) (any, bool) {
	for _, e := range s {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func (s Specs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("spec %q: %w", e.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keeping the key order of the input.
func (s *Specs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("specs: expected object, got %v", tok)
	}

	out := Specs{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if n, ok := raw.(json.Number); ok {
			if i, err := n.Int64(); err == nil {
				raw = i
			} else if f, err := n.Float64(); err == nil {
				raw = f
			}
		}
		out = append(out, SpecEntry{Key: key, Value: raw})
	}
	*s = out
	return nil
}

// OrderedSet collects strings once each, in first-seen order.
type OrderedSet struct {
	seen  map[string]struct{}
	items []string
}

func NewOrderedSet() *OrderedSet {
	return &OrderedSet{seen: make(map[string]struct{})}
}

// Add reports whether v was new.
func (o *OrderedSet) Add(v string) bool {
	if _, ok := o.seen[v]; ok {
		return false
	}
	o.seen[v] = struct{}{}
	o.items = append(o.items, v)
	return true
}

func (o *OrderedSet) Len() int { return len(o.items) }

// Items returns a copy; never nil.
func (o *OrderedSet) Items() []string {
	out := make([]string, len(o.items))
	copy(out, o.items)
	return out
}
