package report

import (
	"fmt"
	"sort"

	"github.com/vladislavdragonenkov/orderaudit/internal/domain"
)

// Problem перечисляет причины, по которым заказ признан проблемным.
type Problem struct {
	ID      string   `json:"id"`
	Reasons []string `json:"reasons"`
}

// Summary — итоговая сводка по выгрузке. Инвариант:
// InvalidOrders == len(Problems).
type Summary struct {
	TotalOrders    int       `json:"total_orders"`
	TotalLineItems int       `json:"total_line_items"`
	InvalidOrders  int       `json:"invalid_orders"`
	Problems       []Problem `json:"problems"`
}

// BuildSummary строит сводку за один проход. Заказ проблемный, если у него
// пустой список позиций, нет корректного e-mail или есть позиция с
// неположительным количеством либо отрицательной ценой. Причины
// дедуплицируются и сортируются, результат детерминирован.
func BuildSummary(ds *domain.Dataset) Summary {
	problems := make([]Problem, 0)

	for i := range ds.Orders {
		o := &ds.Orders[i]
		reasons := make(map[string]struct{})

		if len(o.Lines) == 0 {
			reasons["empty lines"] = struct{}{}
		}
		if !o.HasValidEmail() {
			reasons["invalid or missing email"] = struct{}{}
		}
		for _, line := range o.Lines {
			if line.Qty <= 0 {
				reasons[fmt.Sprintf("non-positive qty in %s", line.SKU)] = struct{}{}
			}
			if line.Price < 0 {
				reasons[fmt.Sprintf("negative price in %s", line.SKU)] = struct{}{}
			}
		}

		if len(reasons) == 0 {
			continue
		}
		sorted := make([]string, 0, len(reasons))
		for r := range reasons {
			sorted = append(sorted, r)
		}
		sort.Strings(sorted)
		problems = append(problems, Problem{ID: o.ID, Reasons: sorted})
	}

	return Summary{
		TotalOrders:    len(ds.Orders),
		TotalLineItems: ds.TotalLineItems(),
		InvalidOrders:  len(problems),
		Problems:       problems,
	}
}

// Insights — агрегированные метрики по выгрузке, которые не входят в сводку.
type Insights struct {
	TotalRevenue    float64            `json:"total_revenue"`
	TotalDiscounts  float64            `json:"total_discounts"`
	TopSKUs         []SKUQuantity      `json:"top_skus"`
	GMVByOrder      map[string]float64 `json:"gmv_by_order"`
	RepeatSKURate   float64            `json:"repeat_sku_rate"`
	TopCategory     string             `json:"top_category"`
	UnitsByCategory map[string]float64 `json:"units_by_category"`
}

// BuildInsights собирает все метрики одним вызовом.
func BuildInsights(ds *domain.Dataset, topN int, policy RankPolicy) Insights {
	topCategory, _ := TopCategory(ds)
	return Insights{
		TotalRevenue:    Revenue(ds),
		TotalDiscounts:  TotalDiscounts(ds),
		TopSKUs:         TopSKUs(ds, topN, policy),
		GMVByOrder:      GMVByOrder(ds),
		RepeatSKURate:   RepeatSKURate(ds),
		TopCategory:     topCategory,
		UnitsByCategory: UnitsByCategory(ds),
	}
}
