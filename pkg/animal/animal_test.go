package animal

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestShark(t *testing.T) {
	jaws := Shark{Name: "Jaws"}
	assert.Equal(t, "Jaws is swimming", jaws.Swim())
	assert.Equal(t, "I'm Jaws of the sea!", jaws.Greet())
}

func TestDogAndCat(t *testing.T) {
	a := assert.New(t)

	lassie := Dog{Name: "Lassie"}
	a.Equal("Lassie is walking", lassie.Walk())
	a.Equal("woof", lassie.Speak())
	a.Equal("I'm Lassie of the land!", lassie.Greet())

	blue := Cat{Name: "Blue"}
	a.Equal("meow", blue.Speak())
}

func TestFishIsNotASpeaker(t *testing.T) {
	var nemo interface{} = Fish{Name: "Nemo"}

	_, ok := nemo.(Speaker)
	assert.False(t, ok)

	_, ok = nemo.(Swimmer)
	assert.True(t, ok)
}

func TestPenguin(t *testing.T) {
	a := assert.New(t)

	cook := Penguin{Name: "Captain Cook"}
	a.Equal("Captain Cook is walking", cook.Walk())
	a.Equal("Captain Cook is swimming", cook.Swim())

	// both a walker and a swimmer, but greets from the land
	a.Equal("I'm Captain Cook of the land!", cook.Greet())
}
