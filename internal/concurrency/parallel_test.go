package concurrency

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestProcessParallelOrder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	results, errs := ProcessParallel(context.Background(), items, 3, func(ctx context.Context, i int, v int) (int, error) {
		return v * 2, nil
	})

	want := []int{2, 4, 6, 8, 10}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("results[%d] = %d; expected %d", i, results[i], want[i])
		}
		if errs[i] != nil {
			t.Errorf("errs[%d] = %v; expected nil", i, errs[i])
		}
	}
}

func TestProcessParallelErrorsAligned(t *testing.T) {
	items := []string{"a", "b", "c"}
	boom := errors.New("boom")

	results, errs := ProcessParallel(context.Background(), items, 2, func(ctx context.Context, i int, v string) (string, error) {
		if v == "b" {
			return "", boom
		}
		return v + "!", nil
	})

	if errs[0] != nil || errs[2] != nil {
		t.Errorf("Unexpected errors: %v", errs)
	}
	if !errors.Is(errs[1], boom) {
		t.Errorf("errs[1] = %v; expected boom", errs[1])
	}
	if results[0] != "a!" || results[2] != "c!" {
		t.Errorf("Unexpected results: %v", results)
	}
}

func TestProcessParallelWorkerBound(t *testing.T) {
	var active, peak int64
	items := make([]int, 20)

	ProcessParallel(context.Background(), items, 4, func(ctx context.Context, i int, v int) (struct{}, error) {
		n := atomic.AddInt64(&active, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
				break
			}
		}
		atomic.AddInt64(&active, -1)
		return struct{}{}, nil
	})

	if peak > 4 {
		t.Errorf("Worker bound exceeded: peak %d > 4", peak)
	}
}

func TestProcessParallelEmpty(t *testing.T) {
	results, errs := ProcessParallel(context.Background(), nil, 4, func(ctx context.Context, i int, v int) (int, error) {
		t.Fatal("fn must not be called for empty input")
		return 0, nil
	})
	if len(results) != 0 || len(errs) != 0 {
		t.Errorf("Expected empty slices, got %v %v", results, errs)
	}
}
