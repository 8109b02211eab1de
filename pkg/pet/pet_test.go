package pet

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	cat, err := New("Blue", "cat")
	a.NoError(err)
	a.Equal("cat", cat.Species())
	a.Equal("Blue the cat", cat.String())

	dog, err := New("Wyatt", "dog")
	a.NoError(err)
	a.Equal("dog", dog.Species())

	tiger, err := New("Black", "tiger")
	a.Nil(tiger)
	a.EqualError(err, "you can't have a tiger pet")
}

func TestPet_SetSpecies(t *testing.T) {
	a := assert.New(t)

	p, err := New("Blue", "cat")
	a.NoError(err)

	a.NoError(p.SetSpecies("rat"))
	a.Equal("rat", p.Species())

	err = p.SetSpecies("bear")
	a.Equal(SpeciesError("bear"), err)
	a.Equal("rat", p.Species())
}
