package pool

import "sync"

// Slice pools for efficient reuse of typed scratch slices.
// The composite decode path needs a transient word slice per call; pooling it
// keeps the hot decode loop allocation-free.
var int16SlicePool = sync.Pool{
	New: func() any { return &[]int16{} },
}

// GetInt16Slice retrieves an int16 slice of the given length from the pool.
//
// The returned slice has length equal to size; its content is unspecified and
// must be overwritten by the caller. The caller must call the returned cleanup
// function (typically with defer) to return the slice to the pool.
//
// Example:
//
//	scratch, cleanup := pool.GetInt16Slice(1024)
//	defer cleanup()
func GetInt16Slice(size int) ([]int16, func()) {
	ptr, _ := int16SlicePool.Get().(*[]int16)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int16, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { int16SlicePool.Put(ptr) }
}
