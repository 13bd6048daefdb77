package rangemap

import (
	"fmt"
	"testing"
)

func TestSeedSetMerge(t *testing.T) {
	var s SeedSet

	expect := func(title, expected string) {
		if got := fmt.Sprint(s.Merge()); got != expected {
			t.Fatal(title, got)
		}
	}

	s = append(s, Interval{0, 0})
	expect("case 1", "[]")
	s = append(s, SeedValues(1)...)
	expect("case 2", "[[1,2)]")
	s = append(s, SeedValues(0)...)
	expect("case 3", "[[0,2)]")
	s = append(s, SeedValues(2)...)
	expect("case 4", "[[0,3)]")
	s = append(s, SeedValues(1)...)
	expect("case 5", "[[0,3)]")
	s = append(s, Interval{4, 7})
	expect("case 6", "[[0,3) [4,7)]")
	s = append(s, Interval{3, 4})
	expect("case 7", "[[0,7)]")
	s = append(s, Interval{-5, -2}, Interval{10, 20})
	expect("case 8", "[[-5,-2) [0,7) [10,20)]")
	s = nil
	expect("case 9", "[]")
}
