package catalogservice

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"invbill/internal/domain"
	apperror "invbill/internal/errors"
	"invbill/internal/pkg/logger"
)

// CatalogRepository define o contrato (interface) que este Serviço espera
// da camada de Persistência (arquivo CSV do catálogo).
type CatalogRepository interface {
	LoadAll() ([]domain.Product, error)
	SaveAll(products []domain.Product) error
}

// Service é a estrutura que implementa a interface domain.CatalogService.
// Todo o catálogo vive em memória; o arquivo é regravado a cada mutação.
// A falha de gravação é devolvida ao chamador, mas a mutação em memória
// NÃO é revertida ("aplicado, durabilidade incerta").
type Service struct {
	repo   CatalogRepository
	logger logger.Logger

	products map[string]domain.Product
	// order mantém a ordem de inserção, já que mapas do Go não têm ordem
	// estável e os menus/relatórios listam o catálogo de forma determinística.
	order []string
}

// NewService cria o Serviço de Catálogo e carrega o estado do repositório.
func NewService(repo CatalogRepository, log logger.Logger) (*Service, error) {
	s := &Service{
		repo:     repo,
		logger:   log,
		products: make(map[string]domain.Product),
	}

	loaded, err := repo.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, p := range loaded {
		if _, exists := s.products[p.ID]; exists {
			// IDs precisam ser únicos; a primeira ocorrência vence.
			log.Warn("Produto duplicado no arquivo ignorado.", map[string]interface{}{"product_id": p.ID})
			continue
		}
		s.products[p.ID] = p
		s.order = append(s.order, p.ID)
	}

	return s, nil
}

// AddProduct valida e insere um novo produto, persistindo o catálogo.
// Um ID em branco recebe um UUID gerado.
func (s *Service) AddProduct(id, name string, price decimal.Decimal, stock int) (domain.Product, error) {
	if id == "" {
		id = uuid.New().String()
	}

	if _, exists := s.products[id]; exists {
		return domain.Product{}, apperror.NewConflictError(apperror.CodeDuplicateID,
			fmt.Sprintf("já existe um produto com o ID %s.", id))
	}
	if !price.IsPositive() {
		return domain.Product{}, apperror.NewValidationError(apperror.CodeInvalidPrice,
			"o preço deve ser maior que zero.")
	}
	if stock < 0 {
		return domain.Product{}, apperror.NewValidationError(apperror.CodeInvalidStock,
			"a quantidade em estoque não pode ser negativa.")
	}

	product := domain.Product{ID: id, Name: name, Price: price, Stock: stock}
	s.products[id] = product
	s.order = append(s.order, id)

	s.logger.Info("Produto adicionado.", map[string]interface{}{"product_id": id, "name": name})
	return product, s.save()
}

// UpdateProduct aplica uma atualização parcial: apenas os campos preenchidos
// em update são validados e substituídos; os demais mantêm o valor atual.
func (s *Service) UpdateProduct(id string, update domain.ProductUpdate) (domain.Product, error) {
	product, exists := s.products[id]
	if !exists {
		return domain.Product{}, apperror.NewNotFoundError(
			fmt.Sprintf("produto com ID %s não existe no catálogo.", id))
	}

	if update.Price != nil && !update.Price.IsPositive() {
		return domain.Product{}, apperror.NewValidationError(apperror.CodeInvalidPrice,
			"o preço deve ser maior que zero.")
	}
	if update.Stock != nil && *update.Stock < 0 {
		return domain.Product{}, apperror.NewValidationError(apperror.CodeInvalidStock,
			"a quantidade em estoque não pode ser negativa.")
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Stock != nil {
		product.Stock = *update.Stock
	}
	s.products[id] = product

	s.logger.Info("Produto atualizado.", map[string]interface{}{"product_id": id})
	return product, s.save()
}

// DeleteProduct remove um produto do catálogo e persiste.
func (s *Service) DeleteProduct(id string) error {
	if _, exists := s.products[id]; !exists {
		return apperror.NewNotFoundError(
			fmt.Sprintf("produto com ID %s não existe no catálogo.", id))
	}

	delete(s.products, id)
	for i, existingID := range s.order {
		if existingID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.logger.Info("Produto removido.", map[string]interface{}{"product_id": id})
	return s.save()
}

// SearchProducts devolve os produtos cujo ID é igual à palavra-chave
// (sem diferenciar maiúsculas) OU cujo nome a contém como substring.
// Nenhuma correspondência devolve lista vazia, não erro.
func (s *Service) SearchProducts(keyword string) []domain.Product {
	needle := strings.ToLower(keyword)

	results := []domain.Product{}
	for _, id := range s.order {
		p := s.products[id]
		if strings.ToLower(p.ID) == needle || strings.Contains(strings.ToLower(p.Name), needle) {
			results = append(results, p)
		}
	}
	return results
}

// GetProduct devolve o produto e um booleano de presença (nunca erro).
func (s *Service) GetProduct(id string) (domain.Product, bool) {
	product, exists := s.products[id]
	return product, exists
}

// ListProducts devolve todos os produtos na ordem de inserção do catálogo.
func (s *Service) ListProducts() []domain.Product {
	results := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		results = append(results, s.products[id])
	}
	return results
}

// LowStockProducts devolve os produtos com estoque menor ou igual ao limite,
// na ordem do catálogo.
func (s *Service) LowStockProducts(threshold int) []domain.Product {
	results := []domain.Product{}
	for _, id := range s.order {
		if p := s.products[id]; p.Stock <= threshold {
			results = append(results, p)
		}
	}
	return results
}

// DeductStock abate do estoque as quantidades de um checkout concluído.
// Antes de mutar qualquer produto, verifica que todas as linhas ainda
// apontam para produtos existentes — um produto removido no meio da sessão
// falha com NotFound sem abater nada.
func (s *Service) DeductStock(items []domain.CartItem) error {
	for _, item := range items {
		if _, exists := s.products[item.ProductID]; !exists {
			return apperror.NewNotFoundError(
				fmt.Sprintf("produto com ID %s não existe mais no catálogo.", item.ProductID))
		}
	}

	for _, item := range items {
		product := s.products[item.ProductID]
		product.Stock -= item.Quantity
		s.products[item.ProductID] = product
	}

	s.logger.Debug("Estoque abatido após checkout.", map[string]interface{}{"lines": len(items)})
	return s.save()
}

// save regrava o catálogo inteiro; falha vira PERSISTENCE_FAILURE para o
// chamador decidir se avisa o operador.
func (s *Service) save() error {
	if err := s.repo.SaveAll(s.ListProducts()); err != nil {
		s.logger.Error("Falha ao persistir o catálogo.", err)
		return err
	}
	return nil
}
