package entity

import "strings"

// Genre is a value type identified by its name. Name comparison is
// case-sensitive for exact lookups; prefix search folds case at the
// repository layer.
type Genre struct {
	Name string `json:"genre_name"`
}

func NewGenre(name string) Genre {
	return Genre{Name: strings.TrimSpace(name)}
}

func (g Genre) Valid() bool {
	return g.Name != ""
}

// Less orders genres by name.
func (g Genre) Less(other Genre) bool {
	return g.Name < other.Name
}
