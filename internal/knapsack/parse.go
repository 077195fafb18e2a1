package knapsack

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Parse reads the classic knapsack text format: a first line `n k` followed
// by n lines `v w`, one per item. Every field must be an integer; a
// fractional value or weight is a format error, not something to round.
func Parse(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	header, err := scanFields(scanner)
	if err != nil {
		return nil, fmt.Errorf("cannot read knapsack header: %w", err)
	}
	n, k := header[0], header[1]

	v := make([]int, 0, max(n, 0))
	w := make([]int, 0, max(n, 0))
	for range n {
		item, err := scanFields(scanner)
		if err != nil {
			return nil, fmt.Errorf("cannot read item %v: %w", len(v), err)
		}
		v = append(v, item[0])
		w = append(w, item[1])
	}
	if len(v) != n {
		return nil, fmt.Errorf("expected %v items but found %v", n, len(v))
	}
	return NewInstance(k, v, w)
}

func scanFields(scanner *bufio.Scanner) ([2]int, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return [2]int{}, fmt.Errorf("expected 2 fields, found %v in %q", len(fields), line)
		}
		var values [2]int
		for i, field := range fields {
			value, err := strconv.Atoi(field)
			if err != nil {
				return [2]int{}, fmt.Errorf("non-integer field %q in %q", field, line)
			}
			values[i] = value
		}
		return values, nil
	}
	if err := scanner.Err(); err != nil {
		return [2]int{}, err
	}
	return [2]int{}, io.ErrUnexpectedEOF
}

// Answer renders the two-line answer format: the objective value and an
// optimality flag on the first line, the decision vector on the second.
func (sol *Solution) Answer() string {
	flag := 0
	if sol.Optimal {
		flag = 1
	}
	decisions := lo.Map(sol.X, func(xi int, _ int) string { return strconv.Itoa(xi) })
	return fmt.Sprintf("%v %v\n%v\n", sol.Value, flag, strings.Join(decisions, " "))
}
