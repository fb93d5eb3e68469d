package filter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filterlabs/bloom/filter"
)

func TestNewBitStore(t *testing.T) {
	tests := []struct {
		bits  uint64
		words int
		name  string
	}{
		{1, 1, "one bit"},
		{64, 1, "exact word"},
		{65, 2, "word plus one"},
		{1440, 23, "reference size"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bs := filter.NewBitStore(test.bits)
			require.Len(t, bs, test.words)
			require.Zero(t, bs.PopCount())
		})
	}
}

func TestBitStoreSetGet(t *testing.T) {
	bs := filter.NewBitStore(256)
	positions := []uint64{0, 1, 63, 64, 65, 127, 255}

	for _, pos := range positions {
		require.False(t, bs.Get(pos))
		bs.Set(pos)
		require.True(t, bs.Get(pos))
	}
	require.Equal(t, uint64(len(positions)), bs.PopCount())

	// Setting an already-set bit changes nothing.
	bs.Set(63)
	require.Equal(t, uint64(len(positions)), bs.PopCount())

	// Neighbors of set bits stay clear.
	for _, pos := range []uint64{2, 62, 66, 126, 128, 254} {
		require.False(t, bs.Get(pos))
	}
}

func TestBitStoreUnion(t *testing.T) {
	a := filter.NewBitStore(192)
	b := filter.NewBitStore(192)

	a.Set(3)
	a.Set(70)
	b.Set(70)
	b.Set(150)

	a.Union(b)
	for _, pos := range []uint64{3, 70, 150} {
		require.True(t, a.Get(pos))
	}
	require.Equal(t, uint64(3), a.PopCount())

	// Union only mutates the receiver.
	require.False(t, b.Get(3))
	require.Equal(t, uint64(2), b.PopCount())
}

func TestBitStoreClear(t *testing.T) {
	bs := filter.NewBitStore(128)
	for pos := uint64(0); pos < 128; pos += 5 {
		bs.Set(pos)
	}
	require.NotZero(t, bs.PopCount())

	bs.Clear()
	require.Zero(t, bs.PopCount())
	for pos := uint64(0); pos < 128; pos++ {
		require.False(t, bs.Get(pos))
	}
}
