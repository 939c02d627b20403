//go:build sx3debug

package rootfind

import "fmt"

func assertBracket(fa, fb float32) {
	if fa*fb > 0 {
		panic(fmt.Sprintf("rootfind: interval does not bracket a zero (f(a)=%g, f(b)=%g)", fa, fb))
	}
}
