package service

import (
	"fmt"

	"mood-filter/internal/catalog"
	"mood-filter/internal/domain"
)

// ReconcileResult es el nuevo estado y lo que hay que persistir/notificar.
type ReconcileResult struct {
	Snapshot domain.PreferenceSnapshot `json:"snapshot"`
	Changes  domain.ChangeSet          `json:"changes"`
}

// PreferenceReconciler mantiene coherentes las listas de categorias y sus
// flags on/off. Es puro: nunca modifica sus entradas ni guarda referencias.
type PreferenceReconciler struct {
	catalog *catalog.Catalog
}

// NewPreferenceReconciler restringe las categorias al catalogo dado; nil
// acepta cualquier categoria valida.
func NewPreferenceReconciler(c *catalog.Catalog) PreferenceReconciler {
	return PreferenceReconciler{catalog: c}
}

// Reconcile applies proposed tier lists on top of prev.
//
// A category entering the favored list (new or from another tier) is switched
// on. A category entering secondary or avoid is switched off when it is new or
// comes from favored; otherwise its flag is kept. Flags of categories missing
// from every list are left untouched.
func (r PreferenceReconciler) Reconcile(prev domain.PreferenceSnapshot, proposed domain.TierLists) (ReconcileResult, error) {
	if err := r.validate(proposed); err != nil {
		return ReconcileResult{}, err
	}

	wasFavored := make(map[domain.Category]struct{}, len(prev.Favored))
	for _, c := range prev.Favored {
		wasFavored[c] = struct{}{}
	}

	next := domain.PreferenceSnapshot{
		TierLists: proposed.Clone(),
		Flags:     make(map[domain.Category]bool, len(prev.Flags)),
	}
	for c, on := range prev.Flags {
		next.Flags[c] = on
	}

	changes := domain.ChangeSet{Flags: []domain.FlagChange{}}
	set := func(c domain.Category, on bool) {
		before, existed := prev.Flags[c]
		next.Flags[c] = on
		if existed && before == on {
			return
		}
		changes.Flags = append(changes.Flags, domain.FlagChange{
			Category: c,
			Previous: before,
			Current:  on,
			Added:    !existed,
		})
	}

	for _, c := range proposed.Favored {
		_, existed := prev.Flags[c]
		if _, fav := wasFavored[c]; !existed || !fav {
			set(c, true)
		}
	}
	demote := func(list []domain.Category) {
		for _, c := range list {
			_, existed := prev.Flags[c]
			if _, fav := wasFavored[c]; !existed || fav {
				set(c, false)
			}
		}
	}
	demote(proposed.Secondary)
	demote(proposed.Avoided)

	if !prev.TierLists.Equal(proposed) {
		lists := proposed.Clone()
		changes.Lists = &lists
	}

	return ReconcileResult{Snapshot: next, Changes: changes}, nil
}

// Toggle invierte el flag de una categoria; sin entrada previa queda encendida.
func (r PreferenceReconciler) Toggle(prev domain.PreferenceSnapshot, c domain.Category) (ReconcileResult, error) {
	if err := r.checkCategory(c); err != nil {
		return ReconcileResult{}, err
	}
	next := prev.Clone()
	before, existed := prev.Flags[c]
	next.Flags[c] = !before

	return ReconcileResult{
		Snapshot: next,
		Changes: domain.ChangeSet{Flags: []domain.FlagChange{{
			Category: c,
			Previous: before,
			Current:  !before,
			Added:    !existed,
		}}},
	}, nil
}

func (r PreferenceReconciler) validate(lists domain.TierLists) error {
	if err := lists.Validate(); err != nil {
		return err
	}
	for _, list := range [][]domain.Category{lists.Favored, lists.Secondary, lists.Avoided} {
		for _, c := range list {
			if err := r.checkCategory(c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r PreferenceReconciler) checkCategory(c domain.Category) error {
	if !c.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}
	if r.catalog != nil && !r.catalog.Contains(c) {
		return fmt.Errorf("%w: %s is not in the catalog", domain.ErrUnknownCategory, c)
	}
	return nil
}
