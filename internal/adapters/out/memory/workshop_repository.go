package memory

import (
	"context"

	"atelier/internal/core/domain/model/atelier"
)

// WorkshopRepository exposes the profile and client lookups of the working copy.
type WorkshopRepository struct {
	uow *UnitOfWork
}

func (r *WorkshopRepository) Profile(_ context.Context) (atelier.Profile, error) {
	a, err := r.uow.aggregate()
	if err != nil {
		return atelier.Profile{}, err
	}
	return a.Profile(), nil
}

func (r *WorkshopRepository) UpdateProfile(_ context.Context, profile atelier.Profile) error {
	a, err := r.uow.aggregate()
	if err != nil {
		return err
	}
	a.SetProfile(profile)
	r.uow.markChanged()
	return nil
}

func (r *WorkshopRepository) ClientName(_ context.Context, clientID string) (string, error) {
	a, err := r.uow.aggregate()
	if err != nil {
		return "", err
	}
	return a.ClientName(clientID), nil
}
