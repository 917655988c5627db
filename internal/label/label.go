// Package label provides the numbered, named element the dynarray binaries
// store in their arrays.
package label

import "fmt"

// Label is a number and a short name.
type Label struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// New returns the i-th generated label.
func New(i int) Label {
	return Label{Number: i, Name: Name(i)}
}

func (l Label) String() string {
	return fmt.Sprintf("[%s:%d]", l.Name, l.Number)
}

// Name returns "A".."Z" for the first 26 labels, then "A1", "B1", ...
func Name(i int) string {
	name := string(rune('A' + i%26))
	if i >= 26 {
		name += fmt.Sprint(i / 26)
	}
	return name
}
