package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bcolfmt/bcol/element"
)

func buildRunOfIdenticalInts(t *testing.T, n int) []byte {
	t.Helper()

	b := NewBuilder()
	defer b.Release()

	v := element.New(element.TypeInt64, []byte{7, 0, 0, 0, 0, 0, 0, 0})
	for i := 0; i < n; i++ {
		require.NoError(t, b.Append(i, v))
	}

	return b.Done()
}

func TestIteratorNextDifferentSkipsRun(t *testing.T) {
	payload := buildRunOfIdenticalInts(t, 10)

	view, err := NewViewFromPayload(payload)
	require.NoError(t, err)

	it := view.Iterator()
	require.Equal(t, 0, it.Index())

	// Enter the deferred Copy run: this is where NextDifferent's collapse
	// becomes observable, since it acts on whatever repeat count is
	// currently pending.
	require.True(t, it.Advance())
	require.Equal(t, 1, it.Index())

	// No differing value exists after the run, so collapsing the rest of
	// it and advancing once more exhausts the stream.
	require.False(t, it.NextDifferent())
	require.True(t, it.Done())
}

func TestIteratorEqualComparesStructuralPosition(t *testing.T) {
	payload := buildRunOfIdenticalInts(t, 5)

	viewA, err := NewViewFromPayload(payload)
	require.NoError(t, err)
	viewB, err := NewViewFromPayload(payload)
	require.NoError(t, err)

	itA := viewA.Iterator()
	itB := viewB.Iterator()
	require.True(t, itA.Equal(itB))

	require.True(t, itA.Advance())
	require.False(t, itA.Equal(itB))

	require.True(t, itB.Advance())
	require.True(t, itA.Equal(itB))
}

func TestViewAllYieldsInOrder(t *testing.T) {
	payload := buildRunOfIdenticalInts(t, 4)

	view, err := NewViewFromPayload(payload)
	require.NoError(t, err)

	var indices []int
	for idx, val := range view.All() {
		indices = append(indices, idx)
		require.False(t, val.EOO())
	}

	require.Equal(t, []int{0, 1, 2, 3}, indices)
}

func TestIteratorDeltaChainMaterializesThroughSharedStore(t *testing.T) {
	b := NewBuilder()
	defer b.Release()

	base := element.New(element.TypeInt64, []byte{0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, b.Append(0, base))
	require.NoError(t, b.Append(1, element.New(element.TypeInt64, []byte{5, 0, 0, 0, 0, 0, 0, 0})))
	require.NoError(t, b.Append(2, element.New(element.TypeInt64, []byte{10, 0, 0, 0, 0, 0, 0, 0})))

	payload := b.Done()

	view, err := NewViewFromPayload(payload)
	require.NoError(t, err)

	itFull := view.Iterator()
	var values []uint64
	for !itFull.Done() {
		values = append(values, itFull.Value().Uint64LE())
		itFull.Advance()
	}
	require.Equal(t, []uint64{0, 5, 10}, values)

	// A second, independent iteration over the same view must materialize
	// identical deltaIndex-addressed values from the shared store.
	itSecond := view.Iterator()
	var again []uint64
	for !itSecond.Done() {
		again = append(again, itSecond.Value().Uint64LE())
		itSecond.Advance()
	}
	require.Equal(t, values, again)
}
