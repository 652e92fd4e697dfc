package sqlxrepos

import (
	"strings"

	"github.com/trezcool/horario/core"
)

// orderBy renders an ORDER BY clause. Fields must have been checked against allowed first;
// they are checked again since they end up in the query text.
func orderBy(ordering []core.DBOrdering, allowed ...string) (string, error) {
	if len(ordering) == 0 {
		return " ORDER BY id ASC", nil
	}
	if err := core.CheckOrderings(ordering, allowed...); err != nil {
		return "", err
	}
	clauses := make([]string, 0, len(ordering))
	for _, ord := range ordering {
		clauses = append(clauses, ord.String())
	}
	return " ORDER BY " + strings.Join(clauses, ", "), nil
}
