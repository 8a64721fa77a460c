package salesrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"invbill/internal/domain"
	apperror "invbill/internal/errors"
	"invbill/internal/pkg/logger"
	"invbill/internal/pkg/storage"
)

// Cabeçalho do arquivo de histórico de vendas. Apenas os agregados são
// persistidos; as linhas de item de cada venda existem só no arquivo de
// fatura gerado no checkout.
var salesHeader = []string{"datetime", "total_amount", "discount", "final_amount"}

// SalesRepository implementa a interface domain.SalesRepository sobre um
// arquivo CSV regravado por inteiro a cada venda.
type SalesRepository struct {
	Path   string
	Logger logger.Logger
}

// NewSalesRepository cria e retorna uma nova instância do Repositório de Vendas.
func NewSalesRepository(path string, log logger.Logger) *SalesRepository {
	return &SalesRepository{Path: path, Logger: log}
}

// LoadAll carrega o histórico de vendas. Linhas malformadas (data inválida,
// valores não numéricos) são puladas com aviso, na mesma política do catálogo.
// As vendas recarregadas não têm linhas de item.
func (r *SalesRepository) LoadAll() ([]domain.Sale, error) {
	rows, err := storage.ReadRows(r.Path)
	if err != nil {
		return nil, apperror.NewPersistenceError("falha ao carregar o histórico de vendas", err)
	}

	var sales []domain.Sale
	for i, row := range rows {
		sale, ok := parseRow(row)
		if !ok {
			r.Logger.Warn("Linha de venda malformada ignorada.", map[string]interface{}{
				"file": r.Path,
				"line": i + 2,
			})
			continue
		}
		sales = append(sales, sale)
	}

	r.Logger.Debug("Histórico de vendas carregado.", map[string]interface{}{
		"file":  r.Path,
		"sales": len(sales),
	})
	return sales, nil
}

// SaveAll reescreve o arquivo de vendas a partir do histórico em memória.
func (r *SalesRepository) SaveAll(sales []domain.Sale) error {
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []string{
			s.Timestamp.Format(time.RFC3339),
			s.TotalAmount.StringFixed(2),
			s.Discount.StringFixed(2),
			s.FinalAmount.StringFixed(2),
		})
	}

	if err := storage.WriteRows(r.Path, salesHeader, rows); err != nil {
		return apperror.NewPersistenceError("falha ao gravar o histórico de vendas", err)
	}
	return nil
}

func parseRow(row []string) (domain.Sale, bool) {
	if len(row) < 4 {
		return domain.Sale{}, false
	}

	timestamp, err := time.Parse(time.RFC3339, row[0])
	if err != nil {
		return domain.Sale{}, false
	}

	total, err := decimal.NewFromString(row[1])
	if err != nil {
		return domain.Sale{}, false
	}
	discount, err := decimal.NewFromString(row[2])
	if err != nil {
		return domain.Sale{}, false
	}
	final, err := decimal.NewFromString(row[3])
	if err != nil {
		return domain.Sale{}, false
	}

	return domain.Sale{
		Items:       nil, // detalhe de itens não sobrevive à recarga
		TotalAmount: total,
		Discount:    discount,
		FinalAmount: final,
		Timestamp:   timestamp,
	}, true
}
