package views

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/services"
)

// EquipmentPage edits the equipment the user owns.
type EquipmentPage struct {
	page
	equipment *services.EquipmentService

	catalog  []string
	selected models.Selection
	saved    bool
}

func NewEquipmentPage(equipment *services.EquipmentService) *EquipmentPage {
	p := &EquipmentPage{equipment: equipment}
	p.mount()
	return p
}

func (p *EquipmentPage) Load(ctx context.Context) error {
	catalog, mine, err := p.equipment.Load(ctx)
	if err == nil {
		p.apply(func() { p.catalog, p.selected = catalog, mine })
	}
	return p.settle(err)
}

func (p *EquipmentPage) Catalog() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.catalog)
}

func (p *EquipmentPage) Selected() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selected.Items()
}

func (p *EquipmentPage) IsSelected(item string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selected.Contains(item)
}

// Toggle flips item in the selection. Items outside the catalog are
// rejected.
func (p *EquipmentPage) Toggle(item string) error {
	var err error
	p.apply(func() {
		if !slices.Contains(p.catalog, item) {
			err = fmt.Errorf("%w: %q", models.ErrUnknownEquipment, item)
			return
		}
		p.selected.Toggle(item)
		p.saved = false
	})
	return err
}

// Saved reports whether the selection on screen is the one last stored.
func (p *EquipmentPage) Saved() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saved
}

func (p *EquipmentPage) Save(ctx context.Context) error {
	if err := p.begin(); err != nil {
		return err
	}
	defer p.end()

	p.mu.Lock()
	catalog, sel := slices.Clone(p.catalog), models.NewSelection(p.selected.Items()...)
	p.mu.Unlock()

	items, err := p.equipment.Save(ctx, catalog, sel)
	if err == nil {
		p.apply(func() { p.selected, p.saved = models.NewSelection(items...), true })
	}
	return p.settle(err)
}
