package audit

import (
	"fmt"
	"math"
	"strings"

	"github.com/vladislavdragonenkov/orderaudit/internal/domain"
)

// uniqueIDs требует уникальности идентификаторов заказов по всей выгрузке.
func uniqueIDs(orders []domain.Order) []Finding {
	var out []Finding
	seen := make(map[string]struct{}, len(orders))
	for i := range orders {
		id := orders[i].ID
		if _, dup := seen[id]; dup {
			out = append(out, Finding{
				OrderID: id,
				Rule:    RuleUniqueID,
				Message: fmt.Sprintf("duplicate order id %q", id),
			})
			continue
		}
		seen[id] = struct{}{}
	}
	return out
}

// emptyLines требует непустого списка позиций для PAID и PENDING.
func emptyLines(orders []domain.Order) []Finding {
	var out []Finding
	for i := range orders {
		o := &orders[i]
		if o.Status != domain.OrderStatusPaid && o.Status != domain.OrderStatusPending {
			continue
		}
		if len(o.Lines) == 0 {
			out = append(out, Finding{
				OrderID: o.ID,
				Rule:    RuleLines,
				Message: fmt.Sprintf("%s order has no lines", o.Status),
			})
		}
	}
	return out
}

// lineItems проверяет каждую позицию: sku непустой, qty > 0, price >= 0.
func lineItems(orders []domain.Order) []Finding {
	var out []Finding
	for i := range orders {
		o := &orders[i]
		for _, line := range o.Lines {
			if strings.TrimSpace(line.SKU) == "" {
				out = append(out, Finding{
					OrderID: o.ID,
					Rule:    RuleLineItem,
					Message: "missing or empty sku",
				})
			}
			if line.Qty <= 0 {
				out = append(out, Finding{
					OrderID: o.ID,
					Rule:    RuleLineItem,
					Message: fmt.Sprintf("invalid qty %v for sku %s", line.Qty, line.SKU),
				})
			}
			if line.Price < 0 {
				out = append(out, Finding{
					OrderID: o.ID,
					Rule:    RuleLineItem,
					Message: fmt.Sprintf("invalid price %v for sku %s", line.Price, line.SKU),
				})
			}
		}
	}
	return out
}

// emails помечает заказы без адреса или с адресом не по шаблону local@domain.tld.
func emails(orders []domain.Order) []Finding {
	var out []Finding
	for i := range orders {
		o := &orders[i]
		if o.HasValidEmail() {
			continue
		}
		out = append(out, Finding{
			OrderID: o.ID,
			Rule:    RuleEmail,
			Message: "invalid or missing email",
		})
	}
	return out
}

// refunds сверяет возврат отменённого заказа с суммой его позиций.
// Заказы без позиций не проверяются: возвращать нечего.
func refunds(orders []domain.Order) []Finding {
	var out []Finding
	for i := range orders {
		o := &orders[i]
		if o.Status != domain.OrderStatusCancelled || len(o.Lines) == 0 {
			continue
		}
		want := o.GMV()
		if o.Refund == nil {
			out = append(out, Finding{
				OrderID: o.ID,
				Rule:    RuleRefund,
				Message: fmt.Sprintf("refund missing, expected %v", want),
			})
			continue
		}
		if math.Abs(o.Refund.Amount-want) > refundTolerance {
			out = append(out, Finding{
				OrderID: o.ID,
				Rule:    RuleRefund,
				Message: fmt.Sprintf("refund %v does not match line total %v", o.Refund.Amount, want),
			})
		}
	}
	return out
}

// captured требует захваченного платежа для каждого оплаченного заказа.
func captured(orders []domain.Order) []Finding {
	var out []Finding
	for i := range orders {
		o := &orders[i]
		if o.Status != domain.OrderStatusPaid {
			continue
		}
		if o.Payment == nil || !o.Payment.Captured {
			out = append(out, Finding{
				OrderID: o.ID,
				Rule:    RuleCaptured,
				Message: "paid order without captured payment",
			})
		}
	}
	return out
}

// shippingFees запрещает отрицательную стоимость доставки.
func shippingFees(orders []domain.Order) []Finding {
	var out []Finding
	for i := range orders {
		o := &orders[i]
		if o.Shipping != nil && o.Shipping.Fee < 0 {
			out = append(out, Finding{
				OrderID: o.ID,
				Rule:    RuleShipping,
				Message: fmt.Sprintf("negative shipping fee %v", o.Shipping.Fee),
			})
		}
	}
	return out
}
