package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem é uma linha do carrinho: um produto e a quantidade escolhida.
// É estado transitório da sessão — nunca é persistido diretamente.
// UnitPrice é uma fotografia do preço no momento em que a linha entrou no
// carrinho, de propósito: uma alteração de preço no catálogo não muda uma
// linha já adicionada.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	// Total = UnitPrice * Quantity, recalculado sempre que a quantidade muda.
	Total decimal.Decimal `json:"total"`
}

// Sale representa uma transação concluída. Imutável depois de criada:
// guarda a fotografia das linhas do carrinho no momento do checkout.
type Sale struct {
	ID          string          `json:"id"`
	Items       []CartItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Discount    decimal.Decimal `json:"discount"`
	FinalAmount decimal.Decimal `json:"final_amount"`
	Timestamp   time.Time       `json:"datetime"`
}

// Tipos de desconto aceitos pelo fluxo de cobrança.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Formatos de fatura aceitos por GenerateBill.
const (
	BillFormatText    = "txt"
	BillFormatTabular = "csv"
)

// BillingService é a interface que o fluxo de Carrinho/Checkout DEVE implementar.
type BillingService interface {
	AddToCart(productID string, quantity int) (CartItem, error)
	RemoveFromCart(productID string, quantity *int) error
	CartItems() []CartItem
	CartTotal() decimal.Decimal
	ApplyDiscount(kind string, value decimal.Decimal) (decimal.Decimal, error)
	Checkout(discount decimal.Decimal) (Sale, error)
	GenerateBill(sale Sale, format string) (string, error)
	Sales() []Sale
}

// SalesRepository persiste o histórico de vendas. Assim como o catálogo,
// o arquivo é regravado por inteiro a cada venda. Apenas os agregados
// (totais, desconto, data) sobrevivem a uma recarga — as linhas de item
// de vendas antigas não são recuperáveis a partir do arquivo.
type SalesRepository interface {
	LoadAll() ([]Sale, error)
	SaveAll(sales []Sale) error
}
