package entity

import "strings"

// Publisher is identified by its name. Two publishers with the same name
// are the same publisher for lookup and membership purposes.
type Publisher struct {
	Name string `json:"publisher_name"`
}

func NewPublisher(name string) Publisher {
	return Publisher{Name: strings.TrimSpace(name)}
}

func (p Publisher) Valid() bool {
	return p.Name != ""
}

// Less orders publishers by name.
func (p Publisher) Less(other Publisher) bool {
	return p.Name < other.Name
}
