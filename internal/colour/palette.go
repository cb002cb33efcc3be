package colour

// Entry is a single named palette colour. Order within a Palette is
// significant: entry 0 is always the transparent sentinel, entries 1-15 are
// the grayscale ramp, and later entries are grouped by wave, then hue key,
// then crest level.
type Entry struct {
	Colour Colour
	Name   string
}

// Palette is the ordered sequence of entries produced by one generation run.
// It is built once and read-only thereafter.
type Palette []Entry

// Len returns the number of entries in the palette.
func (p Palette) Len() int { return len(p) }

// Names returns the entry names in palette order.
func (p Palette) Names() []string {
	names := make([]string, len(p))
	for i, e := range p {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the first entry with the given name, or false if absent.
func (p Palette) Lookup(name string) (Entry, bool) {
	for _, e := range p {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
