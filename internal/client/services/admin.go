package services

import (
	"context"

	"github.com/dmitrijs2005/brewkeeper/internal/client/client"
	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
)

// AdminVerifier probes the server for admin rights.
type AdminVerifier interface {
	SessionSource
	VerifyAdmin(ctx context.Context) (bool, error)
}

// AdminService manages master recipes. Every call re-probes the role first;
// the cached admin flag is never trusted.
type AdminService struct {
	client client.Client
	auth   AdminVerifier
}

func NewAdminService(c client.Client, auth AdminVerifier) *AdminService {
	return &AdminService{client: c, auth: auth}
}

func (s *AdminService) require(ctx context.Context, op string) (string, error) {
	ok, err := s.auth.VerifyAdmin(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &client.APIError{Op: op, Status: 403, Message: client.MsgAdminRequired, Err: client.ErrForbidden}
	}
	return s.auth.Current().Username, nil
}

func (s *AdminService) List(ctx context.Context) ([]models.Recipe, error) {
	user, err := s.require(ctx, "list master recipes")
	if err != nil {
		return nil, err
	}
	return s.client.ListMasterRecipes(ctx, user)
}

func (s *AdminService) Get(ctx context.Context, id string) (models.Recipe, error) {
	user, err := s.require(ctx, "get master recipe")
	if err != nil {
		return models.Recipe{}, err
	}
	return s.client.GetRecipe(ctx, user, id)
}

func (s *AdminService) Create(ctx context.Context, form models.RecipeForm) (string, error) {
	if err := form.Validate(); err != nil {
		return "", err
	}
	user, err := s.require(ctx, "create master recipe")
	if err != nil {
		return "", err
	}
	return s.client.CreateMasterRecipe(ctx, user, form)
}

func (s *AdminService) Update(ctx context.Context, id string, form models.RecipeForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	user, err := s.require(ctx, "update master recipe")
	if err != nil {
		return err
	}
	return s.client.UpdateMasterRecipe(ctx, user, id, form)
}

func (s *AdminService) Delete(ctx context.Context, id string) error {
	user, err := s.require(ctx, "delete master recipe")
	if err != nil {
		return err
	}
	return s.client.DeleteMasterRecipe(ctx, user, id)
}
