// Package dip demonstrates the dependency inversion principle.
//
// Foodie depends on the FoodProvider abstraction, never on a restaurant or
// a truck. The concrete provider is injected at construction, which also
// makes Foodie trivial to test with a fake provider.
package dip

import (
	"fmt"
	"io"
)

// FoodProvider is anything that can serve food.
type FoodProvider interface {
	ProvideFood()
}

// PizzaRestaurant serves pizza.
type PizzaRestaurant struct {
	w io.Writer
}

func NewPizzaRestaurant(w io.Writer) *PizzaRestaurant {
	return &PizzaRestaurant{w: w}
}

// ProvideFood implements FoodProvider.
func (p *PizzaRestaurant) ProvideFood() {
	fmt.Fprintln(p.w, "Man, that's some tasty pizza!")
}

// IceCreamTruck serves ice cream.
type IceCreamTruck struct {
	w io.Writer
}

func NewIceCreamTruck(w io.Writer) *IceCreamTruck {
	return &IceCreamTruck{w: w}
}

// ProvideFood implements FoodProvider.
func (t *IceCreamTruck) ProvideFood() {
	fmt.Fprintln(t.w, "Some sick ice cream!")
}

// Foodie eats whatever its provider serves. The provider is fixed for the
// Foodie's lifetime.
type Foodie struct {
	provider FoodProvider
}

// NewFoodie creates a Foodie fed by p.
func NewFoodie(p FoodProvider) *Foodie {
	return &Foodie{provider: p}
}

// ConsumeFood asks the provider for food.
func (f *Foodie) ConsumeFood() {
	f.provider.ProvideFood()
}

// Demo feeds a pizza lover and then an ice cream lover.
func Demo(w io.Writer) {
	pizzaLover := NewFoodie(NewPizzaRestaurant(w))
	pizzaLover.ConsumeFood()

	iceCreamLover := NewFoodie(NewIceCreamTruck(w))
	iceCreamLover.ConsumeFood()
}
