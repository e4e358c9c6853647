package pool

import (
	"sync"

	flatbuffers "github.com/google/flatbuffers/go"
)

const (
	// BuilderDefaultSize is the initial capacity of pooled flatbuffer builders.
	BuilderDefaultSize = 1024 * 4 // 4KiB
	// BuilderMaxThreshold is the largest builder the pool retains.
	BuilderMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

var builderPool = sync.Pool{
	New: func() any {
		return flatbuffers.NewBuilder(BuilderDefaultSize)
	},
}

// GetBuilder retrieves a reset flatbuffer builder from the pool.
func GetBuilder() *flatbuffers.Builder {
	b, _ := builderPool.Get().(*flatbuffers.Builder)
	return b
}

// PutBuilder returns b to the pool. Builders that grew past BuilderMaxThreshold
// are discarded. Bytes obtained from b.FinishedBytes must not be used afterwards.
func PutBuilder(b *flatbuffers.Builder) {
	if b == nil {
		return
	}

	if cap(b.Bytes) > BuilderMaxThreshold {
		return
	}

	b.Reset()
	builderPool.Put(b)
}
