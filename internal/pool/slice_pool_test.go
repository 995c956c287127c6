package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlice_ReturnsCorrectSize(t *testing.T) {
	p := NewSlice[int]()

	slice, cleanup := p.Get(100)
	defer cleanup()

	require.Equal(t, 100, len(slice))
	require.GreaterOrEqual(t, cap(slice), 100)
}

func TestSlice_ReusesPooledSliceWhenCapacitySufficient(t *testing.T) {
	p := NewSlice[int]()

	slice1, cleanup1 := p.Get(50)
	ptr1 := &slice1[0]
	cleanup1()

	slice2, cleanup2 := p.Get(50)
	defer cleanup2()
	ptr2 := &slice2[0]

	require.Equal(t, ptr1, ptr2, "should reuse same underlying array")
}

func TestSlice_AllocatesNewSliceWhenCapacityInsufficient(t *testing.T) {
	p := NewSlice[int]()

	_, cleanup1 := p.Get(10)
	cleanup1()

	slice2, cleanup2 := p.Get(1000)
	defer cleanup2()

	require.Equal(t, 1000, len(slice2))
	require.GreaterOrEqual(t, cap(slice2), 1000)
}

func TestSlice_CleanupReturnsSliceToPool(t *testing.T) {
	p := NewSlice[int]()

	slice, cleanup := p.Get(100)
	require.NotNil(t, slice)

	cleanup()
}

func TestSlice_WorksWithPointerElements(t *testing.T) {
	type object struct{ id int }
	p := NewSlice[*object]()

	slice, cleanup := p.Get(4)
	defer cleanup()

	require.Len(t, slice, 4)
	for i := range slice {
		require.Nil(t, slice[i], "pooled pointer slots should start nil")
		slice[i] = &object{id: i}
	}
	require.Equal(t, 2, slice[2].id)
}

func TestSlice_Concurrency(t *testing.T) {
	p := NewSlice[int64]()

	const goroutines = 100
	done := make(chan bool, goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			slice, cleanup := p.Get(50)
			defer cleanup()

			for j := range slice {
				slice[j] = int64(j)
			}

			done <- true
		}()
	}

	for i := 0; i < goroutines; i++ {
		<-done
	}
}
