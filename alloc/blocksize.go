// File: alloc/blocksize.go
// Author: momentics <momentics@gmail.com>

package alloc

import (
	"reflect"

	"github.com/momentics/hioload-alloc/internal/layout"
)

// BlockSizeFor reports the default block size, in elements, for type T:
// roughly 64KiB worth of elements, floored at 64 for very large
// element types. Types whose size cannot be determined get a fixed
// 16384-element fallback. The value is computed once per type and
// cached for the process lifetime.
func BlockSizeFor[T any]() int {
	return layout.BlockElems(reflect.TypeOf((*T)(nil)).Elem())
}
