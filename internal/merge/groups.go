package merge

import (
	"sort"
	"strings"

	"github.com/docufill/docpipe/internal/entity"
)

func groupFor(name string) entity.FieldGroup {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "name") || strings.Contains(n, "gender") ||
		strings.Contains(n, "sex") || strings.Contains(n, "nationality") ||
		strings.Contains(n, "citizen"):
		return entity.GroupIdentity
	case strings.Contains(n, "email") || strings.Contains(n, "phone") ||
		strings.Contains(n, "mobile") || strings.Contains(n, "address") ||
		strings.Contains(n, "tel"):
		return entity.GroupContact
	case strings.Contains(n, "date") || strings.Contains(n, "dob") ||
		strings.Contains(n, "born") || strings.Contains(n, "expir") ||
		strings.Contains(n, "period"):
		return entity.GroupDates
	case strings.Contains(n, "number") || strings.Contains(n, " no") ||
		strings.HasSuffix(n, "no") || strings.Contains(n, "iban") ||
		strings.Contains(n, "balance") || strings.Contains(n, "amount"):
		return entity.GroupNumbers
	}
	return entity.GroupOther
}

// SortedGroupNames returns field names within each group in stable order.
func SortedGroupNames(groups map[entity.FieldGroup][]string) map[entity.FieldGroup][]string {
	for g := range groups {
		sort.Strings(groups[g])
	}
	return groups
}
