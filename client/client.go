package client

import (
	"github.com/drakos74/free-screen/internal/model"
)

// Source provides the compound library to screen.
type Source interface {
	Library() ([]model.Molecule, error)
}
