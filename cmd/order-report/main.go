package main

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderaudit/internal/app"
)

// setupLogger настраивает формат и уровень логирования. Логи идут в stderr,
// чтобы не смешиваться с JSON-результатом в stdout.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
	log.SetOutput(os.Stderr)
}

func main() {
	setupLogger()

	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, app.ErrFindings) {
			// Замечания — это данные, а не сбой; строгий режим лишь меняет код выхода.
			os.Exit(1)
		}
		log.WithError(err).Fatal("order-report завершился с ошибкой")
	}
}
