package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddedCounts(t *testing.T) {
	c := &Component{CompositionCounts: []float64{1, 2}}

	got := c.PaddedCounts(4)
	assert.Equal(t, []float64{1, 2, 0, 0}, got)

	// Mutating the copy must not touch the component.
	got[0] = 99
	assert.Equal(t, []float64{1, 2}, c.CompositionCounts)
}

func TestMaxGeneIndex(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		d := &Dataset{}
		assert.Equal(t, -1, d.MaxGeneIndex())
	})

	t.Run("FromMoleculeTable", func(t *testing.T) {
		d := &Dataset{GeneIDs: []int{0, 3, 1}}
		assert.Equal(t, 3, d.MaxGeneIndex())
	})

	t.Run("FromComponentCounts", func(t *testing.T) {
		d := &Dataset{
			GeneIDs:    []int{0, 1},
			Components: []*Component{{CompositionCounts: []float64{0, 0, 0, 0, 5}}},
		}
		assert.Equal(t, 4, d.MaxGeneIndex())
	})
}

func TestVocabularySize(t *testing.T) {
	ds := []*Dataset{
		{GeneIDs: []int{2}},
		{GeneIDs: []int{7, 1}},
	}
	assert.Equal(t, 8, VocabularySize(ds))
	assert.Equal(t, 0, VocabularySize(nil))
}
