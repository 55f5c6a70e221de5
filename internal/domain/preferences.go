package domain

import (
	"fmt"
	"slices"
)

// TierLists agrupa las tres listas de categorias. Los nombres JSON son las
// claves que la extension usa en su almacenamiento.
type TierLists struct {
	Favored   []Category `json:"primaryList"`
	Secondary []Category `json:"secondaryList"`
	Avoided   []Category `json:"avoidList"`
}

// Validate rejects unknown categories, repeats inside a list and categories
// present in more than one tier.
func (l TierLists) Validate() error {
	seen := make(map[Category]Tier)
	check := func(tier Tier, list []Category) error {
		for _, c := range list {
			if !c.IsValid() {
				return fmt.Errorf("%w: %q in %s list", ErrUnknownCategory, c, tier)
			}
			prev, ok := seen[c]
			if !ok {
				seen[c] = tier
				continue
			}
			if prev == tier {
				return fmt.Errorf("%w: %s in %s list", ErrDuplicateCategory, c, tier)
			}
			return fmt.Errorf("%w: %s in %s and %s lists", ErrTierConflict, c, prev, tier)
		}
		return nil
	}
	if err := check(TierFavored, l.Favored); err != nil {
		return err
	}
	if err := check(TierSecondary, l.Secondary); err != nil {
		return err
	}
	return check(TierAvoided, l.Avoided)
}

// TierOf devuelve la lista que contiene la categoria.
func (l TierLists) TierOf(c Category) (Tier, bool) {
	switch {
	case slices.Contains(l.Favored, c):
		return TierFavored, true
	case slices.Contains(l.Secondary, c):
		return TierSecondary, true
	case slices.Contains(l.Avoided, c):
		return TierAvoided, true
	}
	return "", false
}

// Equal compara las tres listas respetando el orden.
func (l TierLists) Equal(o TierLists) bool {
	return slices.Equal(l.Favored, o.Favored) &&
		slices.Equal(l.Secondary, o.Secondary) &&
		slices.Equal(l.Avoided, o.Avoided)
}

// Clone copies the lists; nil lists become empty ones.
func (l TierLists) Clone() TierLists {
	return TierLists{
		Favored:   append([]Category{}, l.Favored...),
		Secondary: append([]Category{}, l.Secondary...),
		Avoided:   append([]Category{}, l.Avoided...),
	}
}

// PreferenceSnapshot es el estado completo de preferencias de un usuario.
// Toda categoria listada tiene un flag en Flags.
type PreferenceSnapshot struct {
	TierLists
	Flags map[Category]bool `json:"categoryMap"`
}

// Clone devuelve una copia profunda sin aliasing con el original.
func (s PreferenceSnapshot) Clone() PreferenceSnapshot {
	flags := make(map[Category]bool, len(s.Flags))
	for c, on := range s.Flags {
		flags[c] = on
	}
	return PreferenceSnapshot{TierLists: s.TierLists.Clone(), Flags: flags}
}

// DefaultPreferenceSnapshot es el estado inicial de la extension.
func DefaultPreferenceSnapshot() PreferenceSnapshot {
	return PreferenceSnapshot{
		TierLists: TierLists{
			Favored:   []Category{CategoryAcademic, CategoryEntertainment},
			Secondary: []Category{CategoryNews, CategoryTech, CategoryBusiness},
			Avoided:   []Category{CategoryPolitics},
		},
		Flags: map[Category]bool{
			CategoryAcademic:      true,
			CategoryEntertainment: true,
			CategoryNews:          false,
			CategoryTech:          false,
			CategoryBusiness:      false,
			CategoryPolitics:      false,
		},
	}
}

// FlagChange describe un flag que cambio de valor. Added indica que la
// categoria no tenia entrada previa; en ese caso Previous es false.
type FlagChange struct {
	Category Category `json:"category"`
	Previous bool     `json:"previous"`
	Current  bool     `json:"current"`
	Added    bool     `json:"added,omitempty"`
}

// ChangeSet es lo que hay que persistir y notificar tras una edicion.
// Lists es nil cuando las listas no cambiaron.
type ChangeSet struct {
	Flags []FlagChange `json:"flags"`
	Lists *TierLists   `json:"lists,omitempty"`
}

func (c ChangeSet) IsEmpty() bool {
	return len(c.Flags) == 0 && c.Lists == nil
}
