package catalogrepo

import (
	"strconv"

	"github.com/shopspring/decimal"

	"invbill/internal/domain"
	apperror "invbill/internal/errors"
	"invbill/internal/pkg/logger"
	"invbill/internal/pkg/storage"
)

// Cabeçalho do arquivo de catálogo. A ordem das colunas é contrato externo.
var catalogHeader = []string{"product_id", "name", "price", "stock_quantity"}

// CatalogRepository implementa a interface domain.CatalogRepository sobre um
// arquivo CSV regravado por inteiro a cada mutação.
type CatalogRepository struct {
	Path   string
	Logger logger.Logger
}

// NewCatalogRepository cria e retorna uma nova instância do Repositório de Catálogo.
func NewCatalogRepository(path string, log logger.Logger) *CatalogRepository {
	return &CatalogRepository{Path: path, Logger: log}
}

// LoadAll carrega todos os produtos do arquivo. Linhas malformadas (coluna
// faltando, preço ou estoque não numérico, valores negativos) são puladas
// com um aviso — nunca abortam a carga inteira. Arquivo ausente devolve
// catálogo vazio.
func (r *CatalogRepository) LoadAll() ([]domain.Product, error) {
	rows, err := storage.ReadRows(r.Path)
	if err != nil {
		return nil, apperror.NewPersistenceError("falha ao carregar o catálogo", err)
	}

	var products []domain.Product
	for i, row := range rows {
		product, ok := r.parseRow(row)
		if !ok {
			r.Logger.Warn("Linha de catálogo malformada ignorada.", map[string]interface{}{
				"file": r.Path,
				"line": i + 2, // +1 pelo cabeçalho, +1 pela base zero
			})
			continue
		}
		products = append(products, product)
	}

	r.Logger.Debug("Catálogo carregado.", map[string]interface{}{
		"file":     r.Path,
		"products": len(products),
	})
	return products, nil
}

// SaveAll reescreve o arquivo de catálogo a partir do estado em memória.
func (r *CatalogRepository) SaveAll(products []domain.Product) error {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Price.StringFixed(2),
			strconv.Itoa(p.Stock),
		})
	}

	if err := storage.WriteRows(r.Path, catalogHeader, rows); err != nil {
		return apperror.NewPersistenceError("falha ao gravar o catálogo", err)
	}
	return nil
}

// parseRow converte uma linha CSV em Produto; ok=false para linhas inválidas.
func (r *CatalogRepository) parseRow(row []string) (domain.Product, bool) {
	if len(row) < 4 {
		return domain.Product{}, false
	}

	id := row[0]
	if id == "" {
		return domain.Product{}, false
	}

	price, err := decimal.NewFromString(row[2])
	if err != nil || price.IsNegative() {
		return domain.Product{}, false
	}

	stock, err := strconv.Atoi(row[3])
	if err != nil || stock < 0 {
		return domain.Product{}, false
	}

	return domain.Product{
		ID:    id,
		Name:  row[1],
		Price: price,
		Stock: stock,
	}, true
}
