package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vladislavdragonenkov/orderaudit/internal/app"
	"github.com/vladislavdragonenkov/orderaudit/internal/version"
)

// newRootCmd собирает CLI. Запуск без подкоманды эквивалентен report.
func newRootCmd() *cobra.Command {
	cfg := app.DefaultConfig()

	run := func(mode app.Mode) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg.InputPath = args[0]
			cfg.Mode = mode
			return app.Run(cfg, cmd.OutOrStdout())
		}
	}

	root := &cobra.Command{
		Use:           "order-report <orders.json>",
		Short:         "Проверка выгрузки заказов и отчёты по ней",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run(app.ModeReport),
	}
	root.PersistentFlags().BoolVar(&cfg.Pretty, "pretty", false, "выводить JSON с отступами")

	reportCmd := &cobra.Command{
		Use:   "report <orders.json>",
		Short: "Итоговая сводка: счётчики и проблемные заказы",
		Args:  cobra.ExactArgs(1),
		RunE:  run(app.ModeReport),
	}

	auditCmd := &cobra.Command{
		Use:   "audit <orders.json>",
		Short: "Полный список замечаний к качеству данных",
		Args:  cobra.ExactArgs(1),
		RunE:  run(app.ModeAudit),
	}
	auditCmd.Flags().BoolVar(&cfg.Strict, "strict", false, "завершаться кодом 1 при наличии замечаний")

	insightsCmd := &cobra.Command{
		Use:   "insights <orders.json>",
		Short: "Агрегированные метрики: выручка, скидки, топ SKU",
		Args:  cobra.ExactArgs(1),
		RunE:  run(app.ModeInsights),
	}
	insightsCmd.Flags().IntVar(&cfg.TopN, "top", cfg.TopN, "сколько SKU выводить в топе")
	insightsCmd.Flags().StringVar(&cfg.PolicyPath, "policy", "", "YAML-файл политики ранжирования SKU")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Версия сборки",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}

	root.AddCommand(reportCmd, auditCmd, insightsCmd, versionCmd)
	return root
}
