package pool

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"
)

func TestBuilderPool_Reset(t *testing.T) {
	b := GetBuilder()
	require.NotNil(t, b)

	b.StartObject(1)
	b.PrependInt32Slot(0, 7, 0)
	b.Finish(b.EndObject())
	require.NotEmpty(t, b.FinishedBytes())

	PutBuilder(b)

	again := GetBuilder()
	require.Equal(t, flatbuffers.UOffsetT(0), again.Offset())
	PutBuilder(again)
}

func TestBuilderPool_DiscardsLarge(t *testing.T) {
	b := flatbuffers.NewBuilder(BuilderMaxThreshold + 1)
	require.NotPanics(t, func() { PutBuilder(b) })
	require.NotPanics(t, func() { PutBuilder(nil) })
}
