package main

import (
	"strings"

	"github.com/joshuapare/dynarray/internal/label"
)

// emplacedName marks labels built in place so they stand out from pushed ones.
func emplacedName(i int) string {
	return strings.ToLower(label.Name(i))
}
