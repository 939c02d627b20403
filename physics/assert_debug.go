//go:build sx3debug

package physics

import "fmt"

func assertMass(o *Object) {
	if !(o.Props.Mass > 0) {
		panic(fmt.Sprintf("physics: non-positive mass %v", o.Props.Mass))
	}
}
