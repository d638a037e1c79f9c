package browse

// Item is one selectable pair. Key is already rendered for output.
type Item struct {
	Key   string
	Value string
}

// items adapts a slice of Item to fuzzy.Source, matching on keys.
type items []Item

func (s items) String(i int) string { return s[i].Key }

func (s items) Len() int { return len(s) }
