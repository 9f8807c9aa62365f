package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_Library(t *testing.T) {

	type test struct {
		content   string
		molecules int
		err       bool
	}

	tests := map[string]test{
		"library": {
			content: "id,smiles,active\n" +
				"chembl-1,CC(=O)Oc1ccccc1C(=O)O,1\n" +
				"chembl-2,c1ccccc1,0\n" +
				"chembl-3,CCO,0\n",
			molecules: 3,
		},
		"invalid-activity": {
			content: "id,smiles,active\n" +
				"chembl-1,CCO,2\n",
			err: true,
		},
		"empty": {
			content: "id,smiles,active\n",
			err:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fn := filepath.Join(t.TempDir(), "library.csv")
			assert.NoError(t, os.WriteFile(fn, []byte(tt.content), 0644))

			mm, err := NewSource(fn).Library()
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.molecules, len(mm))
			assert.Equal(t, "chembl-1", mm[0].ID)
			assert.Equal(t, "CC(=O)Oc1ccccc1C(=O)O", mm[0].Structure)
			assert.Equal(t, 1.0, mm[0].Active)
			assert.Equal(t, 0.0, mm[1].Active)
		})
	}
}

func TestSource_Missing(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "missing.csv")).Library()
	assert.Error(t, err)
}
