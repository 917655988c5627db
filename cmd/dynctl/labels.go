package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/dynarray/array"
	"github.com/joshuapare/dynarray/internal/label"
)

// buildLabels appends count generated labels to a new array with the given
// initial capacity.
func buildLabels(capacity uint, count int, opts ...array.Option[label.Label]) (*array.Vec[label.Label], error) {
	a, err := array.New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	for i := range count {
		if err := a.PushBack(label.New(i)); err != nil {
			return nil, fmt.Errorf("append label %d: %w", i, err)
		}
	}
	return a, nil
}

// fromNames builds an array holding one label per name, numbered in order.
func fromNames(names []string) (*array.Vec[label.Label], error) {
	a, err := array.New[label.Label](uint(len(names)))
	if err != nil {
		return nil, err
	}
	for i, n := range names {
		if err := a.PushBack(label.Label{Number: i, Name: n}); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// formatArray renders the live elements the way the demo prints them.
func formatArray(a *array.Vec[label.Label]) string {
	var b strings.Builder
	b.WriteString("Array: [ ")
	for _, l := range a.All() {
		b.WriteString(l.String())
		b.WriteByte(' ')
	}
	b.WriteString("]")
	return b.String()
}

func labelNames(a *array.Vec[label.Label]) []string {
	out := make([]string, 0, int(a.Size()))
	for _, l := range a.All() {
		out = append(out, l.Name)
	}
	return out
}
