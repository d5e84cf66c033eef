package catalog

// Range is a closed-open interval [Lo, Hi) of reserved workflow numbers.
type Range struct {
	Lo int `json:"lo" yaml:"lo"`
	Hi int `json:"hi" yaml:"hi"`
}

func (r Range) Contains(n int) bool {
	return n >= r.Lo && n < r.Hi
}

// Numbering holds the parameters used to pre-generate upgrade workflow numbers.
type Numbering struct {
	Start    map[int]int
	Skip     int
	Reserved []Range
}

// Allocate returns count numbers: the first is start, each next one is the previous
// plus skip. A candidate inside a reserved range is moved to that range's upper bound.
// Only the first matching range is applied and the moved value is not re-checked, so
// published numbers stay where they are even if the ranges overlap.
func Allocate(start, skip int, reserved []Range, count int) []int {
	if count <= 0 {
		return []int{}
	}
	out := make([]int, 0, count)
	out = append(out, start)
	for i := 1; i < count; i++ {
		n := out[i-1] + skip
		for _, r := range reserved {
			if r.Contains(n) {
				n = r.Hi
				break
			}
		}
		out = append(out, n)
	}
	return out
}

// Numbers allocates one number per key of the given year.
func (n Numbering) Numbers(year int, keys []string) []int {
	start, ok := n.Start[year]
	if !ok {
		return []int{}
	}
	return Allocate(start, n.Skip, n.Reserved, len(keys))
}
