// Package objtest provides a live-counted object for testing the
// object-owning containers.
package objtest

import "github.com/homier/containers/object"

const (
	InitialA = 4
	InitialB = 5
	InitialC = 6
)

type Obj struct {
	A, B, C int
}

// Counter tracks how many Obj values are currently initialized.
type Counter struct {
	live    int
	inits   int
	deinits int
}

func (c *Counter) Live() int    { return c.live }
func (c *Counter) Inits() int   { return c.inits }
func (c *Counter) Deinits() int { return c.deinits }

// Hooks returns hooks that keep the counter up to date.
func (c *Counter) Hooks() object.Hooks[Obj] {
	return object.Hooks[Obj]{
		Init: func(o *Obj) {
			o.A, o.B, o.C = InitialA, InitialB, InitialC
			c.live++
			c.inits++
		},
		Deinit: func(o *Obj) {
			if *o == (Obj{}) {
				panic("objtest: deinit of a zeroed object")
			}

			c.live--
			c.deinits++
		},
	}
}
