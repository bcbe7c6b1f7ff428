package day

import (
	"fmt"
	"strconv"
	"strings"
)

// First and Last bound the valid range of puzzle days.
const (
	First = 1
	Last  = 25
)

// Day is a puzzle day in the range [First, Last]. The zero value is not a
// valid day; construct one with New or Parse.
type Day uint8

// New returns the day for n, or an error when n is out of range.
func New(n int) (Day, error) {
	if n < First || n > Last {
		return 0, fmt.Errorf("day %d is out of range [%d, %d]", n, First, Last)
	}
	return Day(n), nil
}

// MustNew is New for constant inputs. It panics on an invalid day.
func MustNew(n int) Day {
	d, err := New(n)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse accepts both "5" and "05".
func Parse(s string) (Day, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: expecting a day number between %d and %d", s, First, Last)
	}
	return New(n)
}

func (d Day) Int() int {
	return int(d)
}

func (d Day) Valid() bool {
	return d >= First && d <= Last
}

// String renders the day zero padded to two digits.
func (d Day) String() string {
	return fmt.Sprintf("%02d", uint8(d))
}

func (d Day) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("day %d is out of range [%d, %d]", uint8(d), First, Last)
	}
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// All returns every day in ascending order.
func All() []Day {
	days := make([]Day, 0, Last)
	for n := First; n <= Last; n++ {
		days = append(days, Day(n))
	}
	return days
}
