// core/scan/partition.go
package scan

// Partition is a half-open [Lo, Hi) range of candidate start positions
// assigned to one worker.
type Partition struct {
	Lo, Hi int
}

// Plan splits [0, n) into k contiguous, non-overlapping partitions.
// The first k-1 partitions each get n/k positions; the last absorbs
// the remainder so the union is exactly [0, n) regardless of
// divisibility. k < 1 is treated as 1.
func Plan(n, k int) []Partition {
	if k < 1 {
		k = 1
	}
	if n < 0 {
		n = 0
	}
	parts := make([]Partition, k)
	base := n / k
	lo := 0
	for i := 0; i < k-1; i++ {
		parts[i] = Partition{Lo: lo, Hi: lo + base}
		lo += base
	}
	parts[k-1] = Partition{Lo: lo, Hi: n}
	return parts
}
