package prepboard

import (
	"sort"

	"github.com/pearstand/pear-backend/pkg/db/models"
)

// RowProduct is a single product column on the prep board.
type RowProduct struct {
	ID   int64  `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// RowHeader is a variety together with the subset of its products that appear
// in at least one order item of the displayed window.
type RowHeader struct {
	VarietyID   int64        `json:"id"`
	VarietyName string       `json:"name"`
	Products    []RowProduct `json:"products"`
}

// Subtotals holds per-product quantity counts across every order in the
// window. Total is always Pending + Ready for each product.
type Subtotals struct {
	Pending map[int64]int `json:"pending"`
	Ready   map[int64]int `json:"ready"`
	Total   map[int64]int `json:"total"`
}

// OrderedProductIDs collects the distinct product ids referenced by any item
// across the given orders.
func OrderedProductIDs(orders []models.Order) []int64 {
	seen := map[int64]struct{}{}
	ids := make([]int64, 0)
	for _, order := range orders {
		for _, item := range order.Items {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// BuildRowHeaders reduces the catalog to the varieties and active products
// actually ordered in the window. Varieties with no matching product are
// omitted; varieties and products come out in ascending id order. Pure:
// the input slices are never mutated.
func BuildRowHeaders(varieties []models.Variety, orders []models.Order) []RowHeader {
	ordered := map[int64]struct{}{}
	for _, id := range OrderedProductIDs(orders) {
		ordered[id] = struct{}{}
	}

	headers := make([]RowHeader, 0)
	for _, variety := range varieties {
		products := make([]RowProduct, 0)
		for _, product := range variety.Products {
			if !product.IsActive {
				continue
			}
			if _, ok := ordered[product.ID]; !ok {
				continue
			}
			products = append(products, RowProduct{ID: product.ID, SKU: product.SKU, Name: product.Name})
		}
		if len(products) == 0 {
			continue
		}
		sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
		headers = append(headers, RowHeader{
			VarietyID:   variety.ID,
			VarietyName: variety.Name,
			Products:    products,
		})
	}
	sort.Slice(headers, func(i, j int) bool { return headers[i].VarietyID < headers[j].VarietyID })
	return headers
}

// ComputeSubtotals sums item quantities per product column. Prepared items
// count toward Ready, the rest toward Pending. Canceled orders are included
// in the sums: a cancellation changes the order's status, not what the prep
// crew already has on the board.
func ComputeSubtotals(headers []RowHeader, orders []models.Order) Subtotals {
	sub := Subtotals{
		Pending: map[int64]int{},
		Ready:   map[int64]int{},
		Total:   map[int64]int{},
	}
	columns := map[int64]struct{}{}
	for _, header := range headers {
		for _, product := range header.Products {
			columns[product.ID] = struct{}{}
			sub.Pending[product.ID] = 0
			sub.Ready[product.ID] = 0
			sub.Total[product.ID] = 0
		}
	}

	for _, order := range orders {
		for _, item := range order.Items {
			if _, ok := columns[item.ProductID]; !ok {
				continue
			}
			if item.IsPrepared {
				sub.Ready[item.ProductID] += item.Quantity
			} else {
				sub.Pending[item.ProductID] += item.Quantity
			}
			sub.Total[item.ProductID] += item.Quantity
		}
	}
	return sub
}
