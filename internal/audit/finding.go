package audit

// Правила аудита; имя правила попадает в каждое замечание.
const (
	RuleStructure = "structure"
	RuleUniqueID  = "unique_id"
	RuleLines     = "lines"
	RuleLineItem  = "line_item"
	RuleEmail     = "email"
	RuleRefund    = "refund"
	RuleCaptured  = "captured"
	RuleShipping  = "shipping"
)

// Finding описывает одно замечание к качеству данных. Замечание — это не
// ошибка исполнения: аудит всегда доходит до конца выгрузки.
type Finding struct {
	OrderID string `json:"order_id,omitempty"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ByRule отбирает замечания по имени правила.
func ByRule(findings []Finding, rule string) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.Rule == rule {
			out = append(out, f)
		}
	}
	return out
}

// OrderIDs возвращает идентификаторы заказов из замечаний, сохраняя порядок.
func OrderIDs(findings []Finding) []string {
	var out []string
	for _, f := range findings {
		if f.OrderID != "" {
			out = append(out, f.OrderID)
		}
	}
	return out
}
