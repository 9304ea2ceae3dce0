package aco

import "fmt"

// ValidateTour checks that tour is a permutation of {0..n-1} that starts at 0.
// It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour Tour, n int) error {
	if n <= 0 || len(tour) != n {
		return fmt.Errorf("aco: tour has %d entries, want %d", len(tour), n)
	}
	if tour[0] != 0 {
		return fmt.Errorf("aco: tour starts at %d, want 0", tour[0])
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i, v = range tour {
		if v < 0 || v >= n {
			return fmt.Errorf("aco: tour[%d]=%d out of range [0,%d)", i, v, n)
		}
		if seen[v] {
			return fmt.Errorf("aco: tour[%d]=%d visited twice", i, v)
		}
		seen[v] = true
	}

	return nil
}

// TourLength sums the Euclidean distances between consecutive points of tour.
// The path is open: no closing edge back to the start is added.
//
// Complexity: O(len(tour)).
func TourLength(points []Point, tour Tour) (float64, error) {
	if err := ValidateTour(tour, len(points)); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		sum += Distance(points[tour[i]], points[tour[i+1]])
	}

	return sum, nil
}

// CycleLength is TourLength plus the closing edge from the last point back to
// the first. Reporting helpers use it to compare against closed-tour solvers.
//
// Complexity: O(len(tour)).
func CycleLength(points []Point, tour Tour) (float64, error) {
	open, err := TourLength(points, tour)
	if err != nil {
		return 0, err
	}

	return open + Distance(points[tour[len(tour)-1]], points[tour[0]]), nil
}
