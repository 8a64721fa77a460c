package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config armazena todas as configurações do sistema de inventário e cobrança.
// Os valores vêm de variáveis de ambiente com o prefixo INVBILL_ (um arquivo
// .env é carregado antes pelo main); tudo tem padrão utilizável, então o
// programa sobe sem nenhuma variável definida.
type Config struct {
	// Arquivos de dados (tabulares, regravados por inteiro a cada mutação)
	CatalogFile string `envconfig:"CATALOG_FILE" default:"inventory.csv"`
	SalesFile   string `envconfig:"SALES_FILE" default:"sales.csv"`

	// Saídas geradas
	BillDir    string `envconfig:"BILL_DIR" default:"bills"`
	ExportFile string `envconfig:"EXPORT_FILE" default:"stock_report.xlsx"`

	// Comportamento
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	LowStockThreshold int    `envconfig:"LOW_STOCK_THRESHOLD" default:"5"`
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("invbill", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
