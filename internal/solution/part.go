package solution

import (
	"fmt"
	"io"
	"strings"

	"aoc/internal/ui"
)

// Solver computes the answer of one puzzle part. ok is false while the part
// is unsolved.
type Solver func(input string) (answer any, ok bool)

func unsolved(string) (any, bool) {
	return nil, false
}

type partResult struct {
	answer any
	ok     bool
}

// RunPart solves one part, printing an intermediate line as soon as the
// answer is known and rewriting it with the timing once done. It returns
// the answer as text and whether the part is solved.
func RunPart(w io.Writer, part int, solve Solver, input string, timed bool) (string, bool) {
	label := fmt.Sprintf("Part %d", part)
	if solve == nil {
		solve = unsolved
	}

	res, duration, samples := RunTimed(w, func() partResult {
		answer, ok := solve(input)
		return partResult{answer: answer, ok: ok}
	}, timed, func(r partResult) {
		printIntermediate(w, label, r)
	})

	printFinal(w, label, res, FormatTiming(duration, samples))

	if !res.ok {
		return "", false
	}
	return fmt.Sprint(res.answer), true
}

func printIntermediate(w io.Writer, label string, r partResult) {
	switch {
	case !r.ok:
		fmt.Fprintf(w, "%s: ✖", label)
	case isMultiline(r.answer):
		fmt.Fprintf(w, "%s: ▼", label)
	default:
		fmt.Fprintf(w, "%s: %s", label, ui.Result(fmt.Sprint(r.answer)))
	}
}

func printFinal(w io.Writer, label string, r partResult, timing string) {
	fmt.Fprint(w, "\r")
	switch {
	case !r.ok:
		// Padding clears a leftover " > benching" note.
		fmt.Fprintf(w, "%s: ✖             \n", label)
	case isMultiline(r.answer):
		fmt.Fprintf(w, "%s: ▼%s\n", label, timing)
		fmt.Fprintln(w, r.answer)
	default:
		fmt.Fprintf(w, "%s: %s%s\n", label, ui.Result(fmt.Sprint(r.answer)), timing)
	}
}

func isMultiline(answer any) bool {
	return strings.Contains(fmt.Sprint(answer), "\n")
}
