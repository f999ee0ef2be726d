// Package audit проверяет выгрузку заказов по набору бизнес-правил и
// собирает замечания к качеству данных.
package audit

import (
	"fmt"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/vladislavdragonenkov/orderaudit/internal/domain"
)

// refundTolerance — абсолютный допуск при сверке возврата с суммой позиций.
const refundTolerance = 1e-9

// Auditor прогоняет все правила по выгрузке. Структурный слой построен на
// go-playground/validator, бизнес-правила реализованы напрямую.
type Auditor struct {
	validate *validatorv10.Validate
}

// NewAuditor возвращает аудитора с зарегистрированной проверкой isolike
// и именами полей из json-тегов.
func NewAuditor() *Auditor {
	v := validatorv10.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Временная метка выгрузки должна быть хотя бы ISO-подобной.
	_ = v.RegisterValidation("isolike", func(fl validatorv10.FieldLevel) bool {
		return strings.Contains(fl.Field().String(), "T")
	})
	return &Auditor{validate: v}
}

// Run применяет все правила и возвращает накопленные замечания.
// Порядок детерминирован: правила идут в фиксированной последовательности,
// внутри правила — в порядке заказов выгрузки.
func (a *Auditor) Run(ds *domain.Dataset) []Finding {
	var out []Finding
	out = append(out, a.structural(ds)...)
	out = append(out, uniqueIDs(ds.Orders)...)
	out = append(out, emptyLines(ds.Orders)...)
	out = append(out, lineItems(ds.Orders)...)
	out = append(out, emails(ds.Orders)...)
	out = append(out, refunds(ds.Orders)...)
	out = append(out, captured(ds.Orders)...)
	out = append(out, shippingFees(ds.Orders)...)
	return out
}

// structural проверяет присутствие обязательных полей и допустимость
// значений перечислений. Ошибки валидатора переводятся в замечания.
func (a *Auditor) structural(ds *domain.Dataset) []Finding {
	var out []Finding

	if ds.Store == nil {
		out = append(out, Finding{Rule: RuleStructure, Message: "top-level store missing"})
	} else if err := a.validate.Struct(ds.Store); err != nil {
		for _, fe := range err.(validatorv10.ValidationErrors) {
			out = append(out, Finding{Rule: RuleStructure, Message: storeMessage(fe)})
		}
	}

	if len(ds.Orders) == 0 {
		out = append(out, Finding{Rule: RuleStructure, Message: "orders must be a non-empty list"})
	}

	for i := range ds.Orders {
		order := &ds.Orders[i]
		// Тег required пропускает идентификатор из одних пробелов.
		if order.ID != "" && strings.TrimSpace(order.ID) == "" {
			out = append(out, Finding{Rule: RuleStructure, Message: "order id must be non-empty"})
		}
		err := a.validate.Struct(order)
		if err == nil {
			continue
		}
		for _, fe := range err.(validatorv10.ValidationErrors) {
			out = append(out, Finding{
				OrderID: order.ID,
				Rule:    RuleStructure,
				Message: orderMessage(fe),
			})
		}
	}

	return out
}

func storeMessage(fe validatorv10.FieldError) string {
	switch fe.Field() {
	case "name":
		return "store name missing"
	case "currency":
		return fmt.Sprintf("unsupported currency %q", fe.Value())
	case "dateGenerated":
		return "dateGenerated not ISO-like"
	}
	return fmt.Sprintf("store field %s failed rule %s", fe.Field(), fe.Tag())
}

func orderMessage(fe validatorv10.FieldError) string {
	switch fe.Field() {
	case "id":
		return "order id must be non-empty"
	case "status":
		return fmt.Sprintf("invalid status %q", fe.Value())
	}
	return fmt.Sprintf("order missing field: %s", fe.Field())
}
