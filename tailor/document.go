package tailor

// Document maps lower-cased section headers to body text, remembering the
// order in which headers were first set. The order drives the deterministic
// placement of sections the canonical list does not cover.
type Document struct {
	keys     []string
	sections map[string]string
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{sections: make(map[string]string)}
}

// Set stores a section body. Setting an existing key replaces its body but
// keeps the position the key was first seen at.
func (d *Document) Set(name, body string) {
	if _, exists := d.sections[name]; !exists {
		d.keys = append(d.keys, name)
	}
	d.sections[name] = body
}

// Get returns a section body and whether the section exists.
func (d *Document) Get(name string) (string, bool) {
	body, ok := d.sections[name]
	return body, ok
}

// GetOr returns a section body, or fallback when the section is absent.
func (d *Document) GetOr(name, fallback string) string {
	if body, ok := d.sections[name]; ok {
		return body
	}
	return fallback
}

// Keys returns the section names in first-seen order.
func (d *Document) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.keys)
}
