package billingservice

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"invbill/internal/domain"
	apperror "invbill/internal/errors"
	"invbill/internal/pkg/logger"
)

// Catalog define o contrato que o fluxo de cobrança espera do Serviço de
// Catálogo: resolver produtos ao montar o carrinho e abater estoque no
// checkout. O carrinho em si nunca toca o estoque diretamente.
type Catalog interface {
	GetProduct(id string) (domain.Product, bool)
	DeductStock(items []domain.CartItem) error
}

// SalesRepository define o contrato que este Serviço espera da camada de
// Persistência do histórico de vendas.
type SalesRepository interface {
	LoadAll() ([]domain.Sale, error)
	SaveAll(sales []domain.Sale) error
}

// Service é a estrutura que implementa a interface domain.BillingService.
// Ela é dona do carrinho da sessão e do histórico de vendas em memória.
type Service struct {
	catalog Catalog
	repo    SalesRepository
	logger  logger.Logger
	billDir string

	cart  []domain.CartItem
	sales []domain.Sale
}

// NewService cria o Serviço de Cobrança e carrega o histórico de vendas.
// billDir é o diretório onde as faturas de checkout são gravadas.
func NewService(catalog Catalog, repo SalesRepository, billDir string, log logger.Logger) (*Service, error) {
	s := &Service{
		catalog: catalog,
		repo:    repo,
		logger:  log,
		billDir: billDir,
	}

	sales, err := repo.LoadAll()
	if err != nil {
		return nil, err
	}
	s.sales = sales

	return s, nil
}

// AddToCart valida e adiciona quantity unidades de um produto ao carrinho.
// Se já existe uma linha para o produto, a quantidade é somada à linha
// existente em vez de criar uma duplicata. A verificação de estoque é
// cumulativa: linha existente + nova quantidade nunca pode passar do estoque.
func (s *Service) AddToCart(productID string, quantity int) (domain.CartItem, error) {
	if quantity <= 0 {
		return domain.CartItem{}, apperror.NewValidationError(apperror.CodeInvalidQuantity,
			"a quantidade deve ser um inteiro positivo.")
	}

	product, exists := s.catalog.GetProduct(productID)
	if !exists {
		return domain.CartItem{}, apperror.NewNotFoundError(
			fmt.Sprintf("produto com ID %s não existe no catálogo.", productID))
	}

	existing := 0
	if idx := s.findLine(productID); idx >= 0 {
		existing = s.cart[idx].Quantity
	}
	if existing+quantity > product.Stock {
		remaining := product.Stock - existing
		if remaining < 0 {
			remaining = 0
		}
		return domain.CartItem{}, apperror.NewConflictError(apperror.CodeInsufficientStock,
			fmt.Sprintf("estoque insuficiente — restam apenas %d unidades disponíveis.", remaining))
	}

	if idx := s.findLine(productID); idx >= 0 {
		s.cart[idx].Quantity += quantity
		s.cart[idx].Total = s.cart[idx].UnitPrice.Mul(decimal.NewFromInt(int64(s.cart[idx].Quantity)))
		return s.cart[idx], nil
	}

	item := domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  quantity,
		Total:     product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
	s.cart = append(s.cart, item)
	return item, nil
}

// RemoveFromCart remove uma linha do carrinho ou reduz sua quantidade.
// quantity nil (ou maior/igual à quantidade da linha) remove a linha inteira.
// Uma quantidade informada precisa ser positiva: um valor negativo nunca pode
// aumentar a linha por baixo da checagem de estoque do AddToCart.
func (s *Service) RemoveFromCart(productID string, quantity *int) error {
	if quantity != nil && *quantity <= 0 {
		return apperror.NewValidationError(apperror.CodeInvalidQuantity,
			"a quantidade a remover deve ser um inteiro positivo.")
	}

	idx := s.findLine(productID)
	if idx < 0 {
		return apperror.NewItemNotFoundError(
			fmt.Sprintf("não há linha para o produto %s no carrinho.", productID))
	}

	if quantity == nil || *quantity >= s.cart[idx].Quantity {
		s.cart = append(s.cart[:idx], s.cart[idx+1:]...)
		return nil
	}

	s.cart[idx].Quantity -= *quantity
	s.cart[idx].Total = s.cart[idx].UnitPrice.Mul(decimal.NewFromInt(int64(s.cart[idx].Quantity)))
	return nil
}

// CartItems devolve uma cópia das linhas atuais do carrinho.
func (s *Service) CartItems() []domain.CartItem {
	items := make([]domain.CartItem, len(s.cart))
	copy(items, s.cart)
	return items
}

// CartTotal soma os totais de todas as linhas; carrinho vazio soma zero.
func (s *Service) CartTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.cart {
		total = total.Add(item.Total)
	}
	return total
}

// ApplyDiscount calcula o desconto sobre o subtotal atual do carrinho.
// O desconto NÃO fica guardado no carrinho: ele é recalculado a cada chamada
// e informado de novo no checkout. Qualquer violação devolve desconto zero.
func (s *Service) ApplyDiscount(kind string, value decimal.Decimal) (decimal.Decimal, error) {
	if len(s.cart) == 0 {
		return decimal.Zero, apperror.NewValidationError(apperror.CodeEmptyCart,
			"o carrinho está vazio.")
	}

	subtotal := s.CartTotal()

	switch kind {
	case domain.DiscountPercentage:
		if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(100)) {
			return decimal.Zero, apperror.NewValidationError(apperror.CodeInvalidDiscount,
				"o desconto percentual deve estar entre 0 e 100.")
		}
		return subtotal.Mul(value).Div(decimal.NewFromInt(100)), nil
	case domain.DiscountFixed:
		if value.IsNegative() || value.GreaterThan(subtotal) {
			return decimal.Zero, apperror.NewValidationError(apperror.CodeInvalidDiscount,
				fmt.Sprintf("o desconto fixo deve estar entre 0 e %s.", subtotal.StringFixed(2)))
		}
		return value, nil
	default:
		return decimal.Zero, apperror.NewValidationError(apperror.CodeInvalidDiscount,
			"tipo de desconto inválido — use 'percentage' ou 'fixed'.")
	}
}

// Checkout converte o carrinho em uma Venda imutável, persiste o histórico,
// abate o estoque do catálogo e esvazia o carrinho.
//
// As falhas de gravação (histórico ou catálogo) NÃO desfazem a venda: são
// registradas no log e a operação segue ("aplicado, durabilidade incerta").
func (s *Service) Checkout(discount decimal.Decimal) (domain.Sale, error) {
	if len(s.cart) == 0 {
		return domain.Sale{}, apperror.NewValidationError(apperror.CodeEmptyCart,
			"o carrinho está vazio.")
	}

	subtotal := s.CartTotal()
	if discount.IsNegative() || discount.GreaterThan(subtotal) {
		return domain.Sale{}, apperror.NewValidationError(apperror.CodeInvalidDiscount,
			"o valor do desconto é inválido para este subtotal.")
	}

	// Guarda defensiva: toda linha ainda precisa apontar para um produto
	// existente antes que qualquer estado seja mutado.
	for _, item := range s.cart {
		if _, exists := s.catalog.GetProduct(item.ProductID); !exists {
			return domain.Sale{}, apperror.NewNotFoundError(
				fmt.Sprintf("produto com ID %s foi removido do catálogo.", item.ProductID))
		}
	}

	items := make([]domain.CartItem, len(s.cart))
	copy(items, s.cart)

	sale := domain.Sale{
		ID:          uuid.New().String(),
		Items:       items,
		TotalAmount: subtotal,
		Discount:    discount,
		FinalAmount: subtotal.Sub(discount),
		Timestamp:   time.Now(),
	}
	s.sales = append(s.sales, sale)

	if err := s.repo.SaveAll(s.sales); err != nil {
		s.logger.Error("Falha ao persistir o histórico de vendas após o checkout.", err)
	}

	if err := s.catalog.DeductStock(items); err != nil {
		s.logger.Error("Falha ao abater/persistir o estoque após o checkout.", err)
	}

	// O carrinho é esvaziado incondicionalmente, mesmo com falha de gravação.
	s.cart = nil

	s.logger.Info("Checkout concluído.", map[string]interface{}{
		"sale_id":      sale.ID,
		"final_amount": sale.FinalAmount.StringFixed(2),
		"lines":        len(items),
	})
	return sale, nil
}

// Sales devolve o histórico de vendas em ordem de inserção (append).
func (s *Service) Sales() []domain.Sale {
	sales := make([]domain.Sale, len(s.sales))
	copy(sales, s.sales)
	return sales
}

// findLine localiza a linha do carrinho de um produto; -1 se não existe.
func (s *Service) findLine(productID string) int {
	for i, item := range s.cart {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
