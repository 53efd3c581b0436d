package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/brewkeeper/internal/client/client"
	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
)

type EquipmentService struct {
	client   client.Client
	sessions SessionSource
}

func NewEquipmentService(c client.Client, sessions SessionSource) *EquipmentService {
	return &EquipmentService{client: c, sessions: sessions}
}

func (s *EquipmentService) Catalog(ctx context.Context) ([]string, error) {
	return s.client.EquipmentCatalog(ctx)
}

func (s *EquipmentService) Mine(ctx context.Context) ([]string, error) {
	return s.client.UserEquipment(ctx, s.sessions.Current().Username)
}

// Load fetches the catalog and the user's selection concurrently.
func (s *EquipmentService) Load(ctx context.Context) (catalog []string, mine models.Selection, err error) {
	var items []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = s.Catalog(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.Mine(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, models.Selection{}, err
	}
	return catalog, models.NewSelection(items...), nil
}

// Save persists sel after checking it against catalog.
func (s *EquipmentService) Save(ctx context.Context, catalog []string, sel models.Selection) ([]string, error) {
	if err := sel.SubsetOf(catalog); err != nil {
		return nil, err
	}
	return s.client.SaveUserEquipment(ctx, s.sessions.Current().Username, sel.Items())
}
