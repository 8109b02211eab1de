// Package animal models a small taxonomy with capability interfaces.
// A type implements exactly the capabilities it has; anything shaped like a
// diamond (land and sea) picks its behavior explicitly instead of relying
// on an ancestry order.
package animal

import (
	"fmt"
)

// Swimmer can move through water
type Swimmer interface {
	Swim() string
}

// Walker can move on land
type Walker interface {
	Walk() string
}

// Speaker can make a characteristic sound
type Speaker interface {
	Speak() string
}

// Greeter can introduce itself
type Greeter interface {
	Greet() string
}

func swimming(name string) string {
	return fmt.Sprintf("%s is swimming", name)
}

func walking(name string) string {
	return fmt.Sprintf("%s is walking", name)
}

func seaGreeting(name string) string {
	return fmt.Sprintf("I'm %s of the sea!", name)
}

func landGreeting(name string) string {
	return fmt.Sprintf("I'm %s of the land!", name)
}

// Shark lives in the water
type Shark struct {
	Name string
}

// Swim returns what the shark is doing
func (s Shark) Swim() string {
	return swimming(s.Name)
}

// Greet introduces the shark
func (s Shark) Greet() string {
	return seaGreeting(s.Name)
}

// Dog lives on land and speaks
type Dog struct {
	Name string
}

// Walk returns what the dog is doing
func (d Dog) Walk() string {
	return walking(d.Name)
}

// Speak returns the dog's sound
func (d Dog) Speak() string {
	return "woof"
}

// Greet introduces the dog
func (d Dog) Greet() string {
	return landGreeting(d.Name)
}

// Cat lives on land and speaks
type Cat struct {
	Name string
}

// Walk returns what the cat is doing
func (c Cat) Walk() string {
	return walking(c.Name)
}

// Speak returns the cat's sound
func (c Cat) Speak() string {
	return "meow"
}

// Greet introduces the cat
func (c Cat) Greet() string {
	return landGreeting(c.Name)
}

// Fish swims but has no sound: it is simply not a Speaker,
// so asking it to speak fails at compile time rather than at run time
type Fish struct {
	Name string
}

// Swim returns what the fish is doing
func (f Fish) Swim() string {
	return swimming(f.Name)
}

// Penguin both walks and swims
type Penguin struct {
	Name string
}

// Walk returns what the penguin is doing on land
func (p Penguin) Walk() string {
	return walking(p.Name)
}

// Swim returns what the penguin is doing in the water
func (p Penguin) Swim() string {
	return swimming(p.Name)
}

// Greet introduces the penguin.
// A penguin is of both the land and the sea; the land greeting is chosen
// here, on the type, not by any resolution order.
func (p Penguin) Greet() string {
	return landGreeting(p.Name)
}

var (
	_ Swimmer = Shark{}
	_ Greeter = Shark{}
	_ Walker  = Dog{}
	_ Speaker = Dog{}
	_ Walker  = Cat{}
	_ Speaker = Cat{}
	_ Swimmer = Fish{}
	_ Walker  = Penguin{}
	_ Swimmer = Penguin{}
	_ Greeter = Penguin{}
)
