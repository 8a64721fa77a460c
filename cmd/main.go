package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	// Nossos pacotes de infraestrutura e utilitários
	"invbill/config"
	"invbill/internal/pkg/logger"

	// Camadas do sistema para Injeção de Dependências
	"invbill/internal/console"
	"invbill/internal/repository/catalogrepo"
	"invbill/internal/repository/salesrepo"
	"invbill/internal/service/billingservice"
	"invbill/internal/service/catalogservice"
	"invbill/internal/service/reportservice"
)

func main() {
	app := &cli.App{
		Name:  "invbill",
		Usage: "console-based inventory management and billing system",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "catalog-file", Usage: "override the catalog CSV file"},
			&cli.StringFlag{Name: "sales-file", Usage: "override the sales history CSV file"},
			&cli.StringFlag{Name: "bill-dir", Usage: "override the directory for generated bills"},
			&cli.StringFlag{Name: "log-level", Usage: "override the log level (debug, info, warn, error)"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	// O godotenv.Load() procura por um arquivo chamado .env na raiz. Se o
	// arquivo não existe, seguimos: as variáveis podem vir do ambiente.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Flags da linha de comando vencem as variáveis de ambiente.
	if v := c.String("catalog-file"); v != "" {
		cfg.CatalogFile = v
	}
	if v := c.String("sales-file"); v != "" {
		cfg.SalesFile = v
	}
	if v := c.String("bill-dir"); v != "" {
		cfg.BillDir = v
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}

	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Info("Configurações carregadas.", map[string]interface{}{
		"catalog_file": cfg.CatalogFile,
		"sales_file":   cfg.SalesFile,
	})

	// INJEÇÃO DE DEPENDÊNCIAS — ordem: Repository -> Service -> Menu.

	catalogRepo := catalogrepo.NewCatalogRepository(cfg.CatalogFile, appLog)
	catalogSvc, err := catalogservice.NewService(catalogRepo, appLog)
	if err != nil {
		appLog.Error("Falha ao carregar o catálogo.", err)
		return err
	}

	salesRepo := salesrepo.NewSalesRepository(cfg.SalesFile, appLog)
	billingSvc, err := billingservice.NewService(catalogSvc, salesRepo, cfg.BillDir, appLog)
	if err != nil {
		appLog.Error("Falha ao carregar o histórico de vendas.", err)
		return err
	}

	reportSvc := reportservice.NewService(billingSvc, catalogSvc, appLog)

	menu := console.NewMenu(catalogSvc, billingSvc, reportSvc, cfg.LowStockThreshold, cfg.ExportFile, appLog)
	menu.Run()

	appLog.Info("Sessão encerrada.", nil)
	return nil
}
