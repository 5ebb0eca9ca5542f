package conditions

import (
	"github.com/sethgrid/whiskers/internal/feeding"
)

type Condition string

const (
	CondFloating Condition = "floating"
	CondStarving Condition = "starving"
	CondHungry   Condition = "hungry"
	CondStuffed  Condition = "stuffed"
	CondChubby   Condition = "chubby"
	CondContent  Condition = "content"
)

type DerivedStatus struct {
	Conditions map[Condition]bool
	Primary    Condition
	AllOrdered []Condition
}

// DeriveStatus reads the feeding state in priority order.
func DeriveStatus(s feeding.State, warnBelow int) DerivedStatus {
	conds := make(map[Condition]bool)
	var allOrdered []Condition

	add := func(c Condition) {
		if !conds[c] {
			conds[c] = true
			allOrdered = append(allOrdered, c)
		}
	}

	// Priority 1: floating
	if s.Floating {
		add(CondFloating)
	}

	// Priority 2: starving / hungry
	if s.Hunger == 0 {
		add(CondStarving)
	} else if s.Hunger < warnBelow {
		add(CondHungry)
	}

	// Priority 3: stuffed
	if s.Hunger == feeding.MaxHunger && s.Feeds > 0 {
		add(CondStuffed)
	}

	// Priority 4: chubby, halfway to floating
	if !s.Floating && s.Scale() >= (1+feeding.FloatScale)/2 {
		add(CondChubby)
	}

	// Priority 5: content (default)
	if len(allOrdered) == 0 {
		add(CondContent)
	}

	primary := CondContent
	if len(allOrdered) > 0 {
		primary = allOrdered[0]
	}

	return DerivedStatus{
		Conditions: conds,
		Primary:    primary,
		AllOrdered: allOrdered,
	}
}

// FormatConditions formats a slice of conditions into a comma-separated string.
// Returns "content" if the slice is empty.
// Special handling: if "floating" is present, all other conditions are
// ignored except "starving", which is appended as "and starving".
func FormatConditions(conds []Condition) string {
	if len(conds) == 0 {
		return "content"
	}

	hasFloating := false
	hasStarving := false
	for _, c := range conds {
		if c == CondFloating {
			hasFloating = true
		}
		if c == CondStarving {
			hasStarving = true
		}
	}

	if hasFloating {
		if hasStarving {
			return "floating and starving"
		}
		return "floating"
	}

	result := string(conds[0])
	for i := 1; i < len(conds); i++ {
		result += ", " + string(conds[i])
	}
	return result
}
