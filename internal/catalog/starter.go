package catalog

import (
	"bytes"
	_ "embed"
)

//go:embed starter.yaml
var starterPack []byte

// Starter returns the built-in pack offered to new Hunters.
func Starter() (*Pack, error) {
	return Parse(bytes.NewReader(starterPack))
}
