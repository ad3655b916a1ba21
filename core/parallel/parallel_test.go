package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForCoversRangeExactlyOnce(t *testing.T) {
	for _, items := range []int{0, 1, 7, 100, 1000} {
		visits := make([]int32, items)
		For(items, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&visits[i], 1)
			}
		})
		for i, v := range visits {
			if v != 1 {
				t.Errorf("items=%d: index %d visited %d times", items, i, v)
			}
		}
	}
}

func TestForWithThresholdSequentialPath(t *testing.T) {
	var calls int
	ForWithThreshold(10, 10, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("sequential chunk = [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("sequential path ran fn %d times, want 1", calls)
	}
}

func TestForWithThresholdParallelPath(t *testing.T) {
	const items = 5000
	var sum int64
	ForWithThreshold(items, 100, func(start, end int) {
		var local int64
		for i := start; i < end; i++ {
			local += int64(i)
		}
		atomic.AddInt64(&sum, local)
	})
	want := int64(items) * (items - 1) / 2
	if sum != want {
		t.Errorf("sum = %d, want %d", sum, want)
	}
}
