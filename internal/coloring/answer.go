package coloring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Answer renders the two-line answer format: objective and optimality flag
// on the first line, the full color assignment on the second.
func Answer(colors Coloring, objective int, optimal bool) string {
	flag := 0
	if optimal {
		flag = 1
	}
	assignment := lo.Map(colors, func(color int, _ int) string { return strconv.Itoa(color) })
	return fmt.Sprintf("%v %v\n%v\n", objective, flag, strings.Join(assignment, " "))
}
