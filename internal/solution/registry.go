package solution

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"aoc/internal/day"
)

// Solution pairs the two part solvers of a day.
type Solution struct {
	Day     day.Day
	PartOne Solver
	PartTwo Solver
}

// Part returns the solver for part 1 or 2.
func (s Solution) Part(n int) Solver {
	switch n {
	case 1:
		return s.PartOne
	case 2:
		return s.PartTwo
	default:
		return nil
	}
}

// Registry maps days to their solutions.
type Registry struct {
	mu        sync.RWMutex
	solutions map[day.Day]Solution
}

func NewRegistry() *Registry {
	return &Registry{solutions: make(map[day.Day]Solution)}
}

// Register adds the solvers of d. A day can only be registered once.
func (r *Registry) Register(d day.Day, partOne, partTwo Solver) error {
	if !d.Valid() {
		return fmt.Errorf("cannot register invalid day %d", uint8(d))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.solutions[d]; exists {
		return fmt.Errorf("day %s is already registered", d)
	}
	r.solutions[d] = Solution{Day: d, PartOne: partOne, PartTwo: partTwo}
	return nil
}

func (r *Registry) Lookup(d day.Day) (Solution, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solutions[d]
	return s, ok
}

// Days lists the registered days in ascending order.
func (r *Registry) Days() []day.Day {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := make([]day.Day, 0, len(r.solutions))
	for d := range r.solutions {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

var defaultRegistry = NewRegistry()

// Register adds a solution to the process-wide registry.
func Register(d day.Day, partOne, partTwo Solver) error {
	return defaultRegistry.Register(d, partOne, partTwo)
}

// Lookup finds a solution in the process-wide registry.
func Lookup(d day.Day) (Solution, bool) {
	return defaultRegistry.Lookup(d)
}

func registeredDays() string {
	days := defaultRegistry.Days()
	if len(days) == 0 {
		return "none"
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}
