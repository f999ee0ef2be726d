// Package app связывает загрузку выгрузки, аудит и отчёты в один прогон.
package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderaudit/internal/audit"
	"github.com/vladislavdragonenkov/orderaudit/internal/dataset"
	"github.com/vladislavdragonenkov/orderaudit/internal/report"
)

// Mode выбирает, что именно пишется в вывод.
type Mode string

const (
	// ModeReport — сводка по выгрузке (режим по умолчанию).
	ModeReport Mode = "report"
	// ModeAudit — полный список замечаний аудита.
	ModeAudit Mode = "audit"
	// ModeInsights — агрегированные метрики.
	ModeInsights Mode = "insights"
)

// ErrFindings возвращается в строгом режиме аудита, когда замечания найдены.
var ErrFindings = errors.New("audit findings present")

// Config описывает параметры одного запуска.
type Config struct {
	InputPath  string
	PolicyPath string
	Mode       Mode
	TopN       int
	Pretty     bool
	Strict     bool
}

// DefaultConfig возвращает параметры режима по умолчанию.
func DefaultConfig() Config {
	return Config{
		Mode: ModeReport,
		TopN: 2,
	}
}

// Run выполняет один синхронный прогон: загрузка, вычисление, вывод JSON в out.
// Фатальны только ошибки загрузки входных данных и политики; всё остальное
// оформляется как данные результата.
func Run(cfg Config, out io.Writer) error {
	logger := log.WithFields(log.Fields{
		"component": "app",
		"run_id":    uuid.NewString(),
	})

	ds, err := dataset.Load(cfg.InputPath)
	if err != nil {
		return err
	}
	storeName := ""
	if ds.Store != nil {
		storeName = ds.Store.Name
	}
	logger.WithFields(log.Fields{
		"store":  storeName,
		"orders": len(ds.Orders),
		"lines":  ds.TotalLineItems(),
	}).Info("выгрузка загружена")

	policy := report.DefaultPolicy()
	if cfg.PolicyPath != "" {
		policy, err = report.LoadPolicy(cfg.PolicyPath)
		if err != nil {
			return err
		}
		logger.WithField("preferred", policy.Preferred).Info("политика ранжирования загружена")
	}

	enc := json.NewEncoder(out)
	if cfg.Pretty {
		enc.SetIndent("", "  ")
	}

	switch cfg.Mode {
	case ModeAudit:
		findings := audit.NewAuditor().Run(ds)
		if findings == nil {
			findings = []audit.Finding{}
		}
		logger.WithField("findings", len(findings)).Info("аудит завершён")
		if err := enc.Encode(findings); err != nil {
			return fmt.Errorf("encode findings: %w", err)
		}
		if cfg.Strict && len(findings) > 0 {
			return fmt.Errorf("%w: %d finding(s)", ErrFindings, len(findings))
		}
	case ModeInsights:
		insights := report.BuildInsights(ds, cfg.TopN, policy)
		if err := enc.Encode(insights); err != nil {
			return fmt.Errorf("encode insights: %w", err)
		}
	default:
		summary := report.BuildSummary(ds)
		logger.WithFields(log.Fields{
			"invalid_orders": summary.InvalidOrders,
		}).Info("сводка построена")
		if err := enc.Encode(summary); err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
	}

	return nil
}
