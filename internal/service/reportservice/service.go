package reportservice

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"invbill/internal/domain"
	apperror "invbill/internal/errors"
	"invbill/internal/pkg/logger"
)

// SaleHistory define o contrato que os relatórios esperam do fluxo de
// cobrança: acesso de leitura ao histórico de vendas carregado em memória.
type SaleHistory interface {
	Sales() []domain.Sale
}

// Catalog define o contrato que os relatórios esperam do Serviço de Catálogo.
type Catalog interface {
	ListProducts() []domain.Product
	LowStockProducts(threshold int) []domain.Product
}

// Service deriva visões de relatório filtrando as coleções já carregadas.
// Nenhum método de relatório muta estado.
type Service struct {
	history SaleHistory
	catalog Catalog
	logger  logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Relatórios.
func NewService(history SaleHistory, catalog Catalog, log logger.Logger) *Service {
	return &Service{history: history, catalog: catalog, logger: log}
}

// DailySales devolve as vendas cuja data de calendário é igual à data dada,
// preservando a ordem de inserção do histórico. Sem correspondência devolve
// lista vazia, nunca erro.
func (s *Service) DailySales(date time.Time) []domain.Sale {
	year, month, day := date.Date()

	results := []domain.Sale{}
	for _, sale := range s.history.Sales() {
		sy, sm, sd := sale.Timestamp.Date()
		if sy == year && sm == month && sd == day {
			results = append(results, sale)
		}
	}
	return results
}

// DailySummary resume um dia de vendas: número de transações e soma dos
// valores finais.
func (s *Service) DailySummary(date time.Time) (int, decimal.Decimal) {
	total := decimal.Zero
	sales := s.DailySales(date)
	for _, sale := range sales {
		total = total.Add(sale.FinalAmount)
	}
	return len(sales), total
}

// LowStock devolve os produtos com estoque no limite ou abaixo dele, na
// ordem de iteração do catálogo.
func (s *Service) LowStock(threshold int) []domain.Product {
	return s.catalog.LowStockProducts(threshold)
}

// ExportStockXLSX grava o catálogo completo em uma planilha .xlsx, uma linha
// por produto, para conferência de estoque fora do sistema.
func (s *Service) ExportStockXLSX(path string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return apperror.NewInternalError("falha ao criar a planilha de produtos", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range []string{"ID", "Name", "Price", "Stock"} {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range s.catalog.ListProducts() {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Price.StringFixed(2))
		row.AddCell().SetValue(p.Stock)
	}

	if err := file.Save(path); err != nil {
		return apperror.NewPersistenceError("falha ao gravar a planilha de produtos", err)
	}

	s.logger.Info("Planilha de estoque exportada.", map[string]interface{}{"file": path})
	return nil
}
