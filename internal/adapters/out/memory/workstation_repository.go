package memory

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/pkg/errs"
)

// WorkstationRepository reads and writes workstations of the unit of work's working copy.
type WorkstationRepository struct {
	uow *UnitOfWork
}

func (r *WorkstationRepository) Add(_ context.Context, ws *workstation.Workstation) error {
	a, err := r.uow.aggregate()
	if err != nil {
		return err
	}
	if err = a.AddWorkstation(ws.Clone()); err != nil {
		return err
	}
	r.uow.markChanged()
	return nil
}

func (r *WorkstationRepository) Update(_ context.Context, ws *workstation.Workstation) error {
	a, err := r.uow.aggregate()
	if err != nil {
		return err
	}
	if err = a.UpdateWorkstation(ws.Clone()); err != nil {
		return err
	}
	r.uow.markChanged()
	return nil
}

func (r *WorkstationRepository) Get(_ context.Context, id kernel.UUID) (*workstation.Workstation, error) {
	a, err := r.uow.aggregate()
	if err != nil {
		return nil, err
	}
	ws, err := a.Workstation(id)
	if err != nil {
		return nil, err
	}
	return ws.Clone(), nil
}

func (r *WorkstationRepository) GetByAccessCode(_ context.Context, input string) (*workstation.Workstation, error) {
	a, err := r.uow.aggregate()
	if err != nil {
		return nil, err
	}
	ws, ok := a.WorkstationByAccessCode(input)
	if !ok {
		return nil, errs.NewObjectNotFoundError("accessCode", "***")
	}
	return ws.Clone(), nil
}

func (r *WorkstationRepository) GetAll(_ context.Context) ([]*workstation.Workstation, error) {
	a, err := r.uow.aggregate()
	if err != nil {
		return nil, err
	}
	all := a.Workstations()
	for i, ws := range all {
		all[i] = ws.Clone()
	}
	return all, nil
}
