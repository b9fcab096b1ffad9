package bulk

import (
	"fmt"
	"strings"
)

// Summary cuenta resultados por acción y errores.
type Summary struct {
	Created        int
	PriceUpdated   int
	DetailsUpdated int
	NoChangeNeeded int
	Errors         int
}

// Summarize cuenta los resultados. Total y determinista.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		if o.Failed() {
			s.Errors++
			continue
		}
		switch o.Action {
		case ActionCreated:
			s.Created++
		case ActionPriceUpdated:
			s.PriceUpdated++
		case ActionDetailsUpdated:
			s.DetailsUpdated++
		case ActionNoChange:
			s.NoChangeNeeded++
		}
	}
	return s
}

// Message enumera solo los conteos distintos de cero.
func (s Summary) Message() string {
	var parts []string
	add := func(n int, singular, plural string) {
		switch {
		case n == 1:
			parts = append(parts, "1 "+singular)
		case n > 1:
			parts = append(parts, fmt.Sprintf("%d %s", n, plural))
		}
	}
	add(s.Created, "new product created", "new products created")
	add(s.PriceUpdated, "price updated", "prices updated")
	add(s.DetailsUpdated, "product details updated", "product details updated")
	add(s.NoChangeNeeded, "product unchanged", "products unchanged")
	add(s.Errors, "error", "errors")
	if len(parts) == 0 {
		return "Bulk upload completed: no rows processed"
	}
	return "Bulk upload completed: " + strings.Join(parts, ", ")
}
