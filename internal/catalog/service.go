package catalog

import (
	"context"
	"fmt"

	pkgerrors "github.com/pearstand/pear-backend/pkg/errors"
)

// Service exposes the catalog option lists consumed by the order form.
type Service interface {
	VarietyOptions(ctx context.Context) ([]VarietyOption, error)
	ProductOptions(ctx context.Context) ([]ProductGroup, error)
}

type service struct {
	repo Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) VarietyOptions(ctx context.Context) ([]VarietyOption, error) {
	varieties, err := s.repo.ListVarieties(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list varieties")
	}
	options := make([]VarietyOption, 0, len(varieties))
	for _, variety := range varieties {
		options = append(options, VarietyOption{ID: variety.ID, Name: variety.Name})
	}
	return options, nil
}

// ProductOptions groups active products under their variety, both levels in
// ascending id order.
func (s *service) ProductOptions(ctx context.Context) ([]ProductGroup, error) {
	products, err := s.repo.ListActiveProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	groups := make([]ProductGroup, 0)
	index := map[int64]int{}
	for _, product := range products {
		pos, ok := index[product.VarietyID]
		if !ok {
			name := ""
			if product.Variety != nil {
				name = product.Variety.Name
			}
			groups = append(groups, ProductGroup{VarietyID: product.VarietyID, VarietyName: name})
			pos = len(groups) - 1
			index[product.VarietyID] = pos
		}
		groups[pos].Products = append(groups[pos].Products, ProductOption{
			ID:    product.ID,
			SKU:   product.SKU,
			Name:  product.Name,
			Price: product.Price,
		})
	}
	return groups, nil
}
