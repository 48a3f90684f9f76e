package core

import "reflect"

// Equal reports whether two configurations are structurally identical.
func Equal(a, b Config) bool {
	return reflect.DeepEqual(a, b)
}
