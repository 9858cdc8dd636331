// Package sample is the Go rendition of the multi-language Person sample:
// a small data-holding type plus a few free functions, exposed as an
// importable unit. It carries no validation, storage, or error surface.
package sample

// Person holds a name and an age. The name can be replaced after
// construction; the age is fixed for the lifetime of the value.
type Person struct {
	name string
	age  int
}

// NewPerson creates a Person holding the given name and age verbatim.
func NewPerson(name string, age int) *Person {
	return &Person{
		name: name,
		age:  age,
	}
}

// GetName returns the current name.
func (p *Person) GetName() string {
	return p.name
}

// SetName replaces the stored name unconditionally. Last write wins.
func (p *Person) SetName(name string) {
	p.name = name
}

// GetAge returns the age the Person was constructed with.
func (p *Person) GetAge() int {
	return p.age
}
