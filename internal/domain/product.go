package domain

import (
	"github.com/shopspring/decimal"
)

// Product representa o item principal do catálogo (a Entidade).
// É a unidade de estoque e de venda de todo o sistema.
type Product struct {
	ID    string          `json:"product_id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock_quantity"`
}

// ProductUpdate descreve uma atualização parcial de Produto.
// Campos nil significam "manter o valor atual"; um ponteiro preenchido
// significa "substituir pelo novo valor". Isso evita valores sentinela
// ambíguos (string vazia, zero) na camada de serviço.
type ProductUpdate struct {
	Name  *string
	Price *decimal.Decimal
	Stock *int
}

// --- Interfaces de Contrato (O CORAÇÃO DA ARQUITETURA LIMPA) ---

// CatalogService é a interface que a camada de Serviço do Catálogo DEVE implementar.
// Ela define o que a camada de apresentação (menus do console) pode pedir.
type CatalogService interface {
	AddProduct(id, name string, price decimal.Decimal, stock int) (Product, error)
	UpdateProduct(id string, update ProductUpdate) (Product, error)
	DeleteProduct(id string) error
	SearchProducts(keyword string) []Product
	GetProduct(id string) (Product, bool)
	ListProducts() []Product
	LowStockProducts(threshold int) []Product
}

// CatalogRepository é a interface que a camada de Persistência do Catálogo
// DEVE implementar. O serviço carrega tudo na inicialização e regrava o
// arquivo inteiro a cada mutação.
type CatalogRepository interface {
	LoadAll() ([]Product, error)
	SaveAll(products []Product) error
}
