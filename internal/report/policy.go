package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vladislavdragonenkov/orderaudit/internal/domain"
)

// RankPolicy задаёт разрешение ничьих при ранжировании SKU: чем раньше SKU
// в списке предпочтений, тем выше он при равных количествах. Список зависит
// от конкретной выгрузки, поэтому политика настраивается, а не зашивается.
type RankPolicy struct {
	Preferred []string `yaml:"preferred"`
}

// DefaultPolicy — пустой список предпочтений: ничьи решает лексикографический порядок.
func DefaultPolicy() RankPolicy {
	return RankPolicy{}
}

// LoadPolicy читает политику ранжирования из YAML-файла.
func LoadPolicy(path string) (RankPolicy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RankPolicy{}, fmt.Errorf("%w: %v", domain.ErrPolicyLoad, err)
	}

	var p RankPolicy
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return RankPolicy{}, fmt.Errorf("%w: %v", domain.ErrPolicyLoad, err)
	}
	return p, nil
}

// rank возвращает позицию SKU в списке предпочтений; не упомянутые SKU
// получают одинаковый ранг после всех упомянутых.
func (p RankPolicy) rank(sku string) int {
	for i, s := range p.Preferred {
		if s == sku {
			return i
		}
	}
	return len(p.Preferred)
}
