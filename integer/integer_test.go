package integer

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestBlock(t *testing.T) {
	type TC struct {
		name string
		i    int64
		blk  Block
		Mark error
	}

	tcs := []TC{
		{
			name: "0",
			i:    0,
			blk:  Block{Value: 0},
			Mark: oops.New("unexpected"),
		},
		{
			name: "+1",
			i:    1,
			blk:  Block{Value: 1},
			Mark: oops.New("unexpected"),
		},
		{
			name: "-1",
			i:    -1,
			blk:  Block{Value: 1, Negative: true},
			Mark: oops.New("unexpected"),
		},
		{
			name: "max",
			i:    math.MaxInt64,
			blk:  Block{Value: math.MaxInt64},
			Mark: oops.New("unexpected"),
		},
		{
			name: "min",
			i:    math.MinInt64,
			blk:  Block{Value: 1 << 63, Negative: true},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("split", func(t *testing.T) {
				require.Equal(t, tc.blk, FromInt64(tc.i), tc.Mark)
			})

			t.Run("join", func(t *testing.T) {
				require.Equal(t, tc.i, tc.blk.Int64(), tc.Mark)

				i, err := tc.blk.Int64Checked()
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.i, i, tc.Mark)
			})
		})
	}

	t.Run("overflow", func(t *testing.T) {
		_, err := Block{Value: 1 << 63}.Int64Checked()
		require.ErrorIs(t, err, ErrOverflow)
		require.True(t, Error.Has(err))

		_, err = Block{Value: 1<<63 + 1, Negative: true}.Int64Checked()
		require.ErrorIs(t, err, ErrOverflow)
	})
}

func TestPow(t *testing.T) {
	type TC struct {
		base     int64
		exp      uint64
		result   int64
		overflow bool
		Mark     error
	}

	tcs := []TC{
		{base: 10, exp: 0, result: 1, Mark: oops.New("unexpected")},
		{base: 0, exp: 0, result: 1, Mark: oops.New("unexpected")},
		{base: 0, exp: 5, result: 0, Mark: oops.New("unexpected")},
		{base: 10, exp: 1, result: 10, Mark: oops.New("unexpected")},
		{base: 10, exp: 2, result: 100, Mark: oops.New("unexpected")},
		{base: 10, exp: 7, result: 10_000_000, Mark: oops.New("unexpected")},
		{base: 10, exp: 18, result: 1_000_000_000_000_000_000, Mark: oops.New("unexpected")},
		{base: 2, exp: 62, result: 1 << 62, Mark: oops.New("unexpected")},
		{base: -2, exp: 63, result: math.MinInt64, Mark: oops.New("unexpected")},
		{base: -3, exp: 3, result: -27, Mark: oops.New("unexpected")},
		{base: 10, exp: 19, overflow: true, Mark: oops.New("unexpected")},
		{base: 2, exp: 63, overflow: true, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d^%d", i, tc.base, tc.exp), func(t *testing.T) {
			r, err := PowChecked(tc.base, tc.exp)
			if tc.overflow {
				require.ErrorIs(t, err, ErrOverflow, tc.Mark)
				return
			}

			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.result, r, tc.Mark)
			require.Equal(t, tc.result, Pow(tc.base, tc.exp), tc.Mark)
		})
	}
}

func TestChecked(t *testing.T) {
	_, err := MulChecked(math.MinInt64, -1)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = MulChecked(-1, math.MinInt64)
	require.ErrorIs(t, err, ErrOverflow)

	r, err := MulChecked(-7, 6)
	require.NoError(t, err)
	require.Equal(t, int64(-42), r)

	_, err = AddChecked(math.MaxInt64, 1)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = AddChecked(math.MinInt64, -1)
	require.ErrorIs(t, err, ErrOverflow)

	r, err = AddChecked(math.MaxInt64, math.MinInt64)
	require.NoError(t, err)
	require.Equal(t, int64(-1), r)
}

func TestCrop(t *testing.T) {
	require.Equal(t, uint64(456), Crop(123456, 3))
	require.Equal(t, uint64(123456), Crop(123456, 6))
	require.Equal(t, uint64(123456), Crop(123456, 9))
	require.Equal(t, uint64(0), Crop(123456, 0))
	require.Equal(t, uint64(6), Crop(123456, 1))
	require.Equal(t, uint64(math.MaxUint64), Crop(math.MaxUint64, 20))
	require.Equal(t, uint64(math.MaxUint64)%10_000_000_000_000_000_000, Crop(math.MaxUint64, 19))
}

func BenchmarkPow(b *testing.B) {
	for n := 0; n < b.N; n++ {
		_ = Pow(10, uint64(n%19))
	}
}
