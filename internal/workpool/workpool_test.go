package workpool

import (
	"sort"
	"testing"
)

func TestChunksCoversRange(t *testing.T) {
	starts := Chunks(10, 3)
	if len(starts) == 0 {
		t.Fatal("Chunks returned no chunks for n=10")
	}
	if starts[0] != 0 {
		t.Fatalf("first chunk start = %d, want 0", starts[0])
	}
	// ceil(10/3) = 4, so the chunks are [0,4), [4,8), [8,10).
	want := []int{0, 4, 8}
	if len(starts) != len(want) {
		t.Fatalf("Chunks(10, 3) = %v, want %v", starts, want)
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Fatalf("Chunks(10, 3) = %v, want %v", starts, want)
		}
	}
}

func TestChunksEmpty(t *testing.T) {
	if got := Chunks(0, 4); got != nil {
		t.Fatalf("Chunks(0, 4) = %v, want nil", got)
	}
}

func TestRunPartitionsAllItems(t *testing.T) {
	const n = 37
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	out := Run(n, 5, func(start, end int) []int {
		local := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			local = append(local, items[i]*2)
		}
		return local
	})

	if len(out) != n {
		t.Fatalf("Run produced %d results, want %d", len(out), n)
	}

	sort.Ints(out)
	for i, v := range out {
		if v != i*2 {
			t.Fatalf("sorted results = %v, want every even number 0..%d", out, 2*(n-1))
		}
	}
}

func TestRunSingleThread(t *testing.T) {
	out := Run(5, 1, func(start, end int) []int {
		return []int{end - start}
	})
	if len(out) != 1 || out[0] != 5 {
		t.Fatalf("Run(5, 1, ...) = %v, want [5]", out)
	}
}

func TestEvenSplitDistributesRemainder(t *testing.T) {
	counts := EvenSplit(10, 3)
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 10 {
		t.Fatalf("EvenSplit counts sum to %d, want 10", total)
	}
	// 10 / 3 = 3 remainder 1: the first worker gets the extra item.
	if counts[0] != 4 || counts[1] != 3 || counts[2] != 3 {
		t.Fatalf("EvenSplit(10, 3) = %v, want [4 3 3]", counts)
	}
}

func TestEvenSplitExact(t *testing.T) {
	counts := EvenSplit(9, 3)
	for i, c := range counts {
		if c != 3 {
			t.Fatalf("counts[%d] = %d, want 3", i, c)
		}
	}
}
