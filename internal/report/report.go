// Package report считает агрегаты по выгрузке заказов и строит итоговую сводку.
package report

import (
	"sort"

	"github.com/vladislavdragonenkov/orderaudit/internal/domain"
)

// Revenue — сумма qty*price по позициям оплаченных заказов, до скидок и доставки.
func Revenue(ds *domain.Dataset) float64 {
	var total float64
	for i := range ds.Orders {
		if ds.Orders[i].Status != domain.OrderStatusPaid {
			continue
		}
		total += ds.Orders[i].GMV()
	}
	return total
}

// TotalDiscounts — сумма всех скидок по всем заказам независимо от статуса.
func TotalDiscounts(ds *domain.Dataset) float64 {
	var total float64
	for i := range ds.Orders {
		for _, d := range ds.Orders[i].Discounts {
			total += d.Amount
		}
	}
	return total
}

// GMVByOrder возвращает GMV каждого заказа по его идентификатору.
func GMVByOrder(ds *domain.Dataset) map[string]float64 {
	out := make(map[string]float64, len(ds.Orders))
	for i := range ds.Orders {
		out[ds.Orders[i].ID] = ds.Orders[i].GMV()
	}
	return out
}

// QuantityBySKU суммирует количество по SKU; позиции с qty <= 0 не участвуют.
func QuantityBySKU(ds *domain.Dataset) map[string]float64 {
	out := make(map[string]float64)
	for i := range ds.Orders {
		for _, line := range ds.Orders[i].Lines {
			if line.SKU == "" || line.Qty <= 0 {
				continue
			}
			out[line.SKU] += line.Qty
		}
	}
	return out
}

// SKUQuantity — агрегированное количество одного SKU.
type SKUQuantity struct {
	SKU string  `json:"sku"`
	Qty float64 `json:"qty"`
}

// TopSKUs возвращает до n SKU в порядке убывания количества. Ничьи
// разрешаются детерминированно: сперва по списку предпочтений политики,
// затем лексикографически.
func TopSKUs(ds *domain.Dataset, n int, policy RankPolicy) []SKUQuantity {
	counts := QuantityBySKU(ds)
	items := make([]SKUQuantity, 0, len(counts))
	for sku, qty := range counts {
		items = append(items, SKUQuantity{SKU: sku, Qty: qty})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Qty != items[j].Qty {
			return items[i].Qty > items[j].Qty
		}
		ri, rj := policy.rank(items[i].SKU), policy.rank(items[j].SKU)
		if ri != rj {
			return ri < rj
		}
		return items[i].SKU < items[j].SKU
	})

	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// RepeatSKURate — доля различных SKU, встречающихся более чем в одном заказе.
// Для выгрузки без SKU возвращает 0.
func RepeatSKURate(ds *domain.Dataset) float64 {
	orderCount := make(map[string]int)
	for i := range ds.Orders {
		distinct := make(map[string]struct{})
		for _, line := range ds.Orders[i].Lines {
			if line.SKU == "" {
				continue
			}
			distinct[line.SKU] = struct{}{}
		}
		for sku := range distinct {
			orderCount[sku]++
		}
	}
	if len(orderCount) == 0 {
		return 0
	}

	var repeated int
	for _, c := range orderCount {
		if c > 1 {
			repeated++
		}
	}
	return float64(repeated) / float64(len(orderCount))
}

// UnitsByCategory суммирует количество по категориям; qty <= 0 не участвуют.
func UnitsByCategory(ds *domain.Dataset) map[string]float64 {
	out := make(map[string]float64)
	for i := range ds.Orders {
		for _, line := range ds.Orders[i].Lines {
			if line.Category == "" || line.Qty <= 0 {
				continue
			}
			out[line.Category] += line.Qty
		}
	}
	return out
}

// TopCategory возвращает категорию с наибольшим количеством единиц.
// При равенстве выигрывает лексикографически меньшая; для пустой выгрузки — "".
func TopCategory(ds *domain.Dataset) (string, float64) {
	units := UnitsByCategory(ds)
	var (
		best     string
		bestQty  float64
		anyFound bool
	)
	for category, qty := range units {
		switch {
		case !anyFound, qty > bestQty, qty == bestQty && category < best:
			best, bestQty = category, qty
			anyFound = true
		}
	}
	return best, bestQty
}
