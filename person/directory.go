package person

// Directory looks up the id of an existing person by name.
// It satisfies validated.Finder[Name, int64].
type Directory interface {
	Find(name Name) (int64, bool)
}

// InMemory is a Directory backed by a map from name to id.
type InMemory map[Name]int64

// NewInMemory builds a Directory from an id to name map.
func NewInMemory(byID map[int64]Name) InMemory {
	d := make(InMemory, len(byID))
	for id, name := range byID {
		d[name] = id
	}
	return d
}

// Find returns the id stored under name.
func (d InMemory) Find(name Name) (int64, bool) {
	id, ok := d[name]
	return id, ok
}
