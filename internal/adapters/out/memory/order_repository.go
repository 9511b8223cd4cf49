package memory

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderRepository reads and writes orders of the unit of work's working copy.
type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	a, err := r.uow.aggregate()
	if err != nil {
		return err
	}
	if err = a.AddOrder(aggregate.Clone()); err != nil {
		return err
	}
	r.uow.markChanged()
	return nil
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	a, err := r.uow.aggregate()
	if err != nil {
		return err
	}
	if err = a.UpdateOrder(aggregate.Clone()); err != nil {
		return err
	}
	r.uow.markChanged()
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	a, err := r.uow.aggregate()
	if err != nil {
		return nil, err
	}
	o, err := a.Order(id)
	if err != nil {
		return nil, err
	}
	return o.Clone(), nil
}

func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	a, err := r.uow.aggregate()
	if err != nil {
		return nil, err
	}
	orders := a.Orders()
	for i, o := range orders {
		orders[i] = o.Clone()
	}
	return orders, nil
}
