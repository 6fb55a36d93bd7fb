package catalog

import (
	"math/rand"
	"strings"
)

// PickPizzaOfTheDay chooses the promoted item among pizzas with a box price.
// A non-empty override wins when it names an eligible item (trimmed,
// case-insensitive); otherwise the pick is uniform over the eligible set.
// Returns nil when no item qualifies.
//
// The choice is made once per catalog load and shared by every order placed
// in that session.
func PickPizzaOfTheDay(menu []MenuItem, override string, rng *rand.Rand) *MenuItem {
	var pizzas []MenuItem
	for _, m := range menu {
		if strings.EqualFold(m.Category, "pizza") && m.BoxPrice.IsPositive() {
			pizzas = append(pizzas, m)
		}
	}
	if len(pizzas) == 0 {
		return nil
	}
	if name := strings.TrimSpace(override); name != "" {
		for i := range pizzas {
			if strings.EqualFold(strings.TrimSpace(pizzas[i].Name), name) {
				return &pizzas[i]
			}
		}
	}
	return &pizzas[rng.Intn(len(pizzas))]
}
