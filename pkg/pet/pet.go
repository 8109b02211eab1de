package pet

import (
	"fmt"
)

// allowed species, in no particular order
var allowed = []string{"cat", "dog", "fish", "rat"}

// SpeciesError is an error naming a species that cannot be kept as a pet
type SpeciesError string

func (s SpeciesError) Error() string {
	return fmt.Sprintf("you can't have a %s pet", string(s))
}

// Pet is a named pet of an allowed species
type Pet struct {
	Name string

	species string
}

// New returns a pet, or a SpeciesError if the species is not allowed
func New(name, species string) (*Pet, error) {
	p := &Pet{Name: name}
	if err := p.SetSpecies(species); err != nil {
		return nil, err
	}

	return p, nil
}

// Species returns the pet's species
func (p *Pet) Species() string {
	return p.species
}

// SetSpecies changes the pet's species, rejecting anything not allowed
func (p *Pet) SetSpecies(species string) error {
	for _, s := range allowed {
		if s == species {
			p.species = species
			return nil
		}
	}

	return SpeciesError(species)
}

func (p *Pet) String() string {
	return fmt.Sprintf("%s the %s", p.Name, p.species)
}
