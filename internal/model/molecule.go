package model

import "fmt"

const delimiter = "-"

// Molecule is a single library compound.
// Structure carries the raw structure notation as it came from the source,
// it is only ever treated as an opaque string.
type Molecule struct {
	ID        string  `json:"id"`
	Structure string  `json:"structure"`
	Active    float64 `json:"active"`
}

// Key characterises a distinct screening run over a deck.
type Key struct {
	Deck     string `json:"deck"`
	Model    string `json:"model"`
	Strategy string `json:"strategy"`
	Index    int    `json:"index"`
}

// ToString creates a string representation of the key.
func (k Key) ToString() string {
	return fmt.Sprintf("%s%s%s%s%s%s%d",
		k.Deck, delimiter,
		k.Model, delimiter,
		k.Strategy, delimiter,
		k.Index)
}
