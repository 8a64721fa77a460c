package errors

import (
	"fmt"
)

// AppError é a interface central para todos os erros customizados do sistema.
// Ela permite que o código externo (menus do console) acesse a Categoria e o
// Código estável do erro, sem depender do texto da mensagem.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION", "NOT_FOUND", "INTERNAL")
	Code() string     // Código estável e legível por máquina (e.g., "DUPLICATE_ID")
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// Códigos estáveis de erro. Os menus e os testes dependem destes valores,
// nunca do texto das mensagens.
const (
	CodeDuplicateID        = "DUPLICATE_ID"
	CodeInvalidPrice       = "INVALID_PRICE"
	CodeInvalidStock       = "INVALID_STOCK"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidQuantity    = "INVALID_QUANTITY"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodeItemNotFound       = "ITEM_NOT_FOUND"
	CodeInvalidDiscount    = "INVALID_DISCOUNT"
	CodeEmptyCart          = "EMPTY_CART"
	CodeInvalidFormat      = "INVALID_FORMAT"
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
	CodeInternal           = "INTERNAL_ERROR"
)

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	ErrCode string
	Msg     string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) Code() string     { return e.ErrCode }
func (e *ValidationError) Unwrap() error    { return nil } // Não encapsula erro subjacente

// NewValidationError cria um novo erro de validação com o código informado.
func NewValidationError(code, msg string) AppError {
	return &ValidationError{ErrCode: code, Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	ErrCode string
	Msg     string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) Code() string     { return e.ErrCode }
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{ErrCode: CodeNotFound, Msg: msg}
}

// NewItemNotFoundError cria o erro para linhas ausentes do carrinho.
func NewItemNotFoundError(msg string) AppError {
	return &NotFoundError{ErrCode: CodeItemNotFound, Msg: msg}
}

// ConflictError representa um conflito na regra de negócio
// (e.g., ID duplicado, estoque insuficiente para o carrinho).
type ConflictError struct {
	ErrCode string
	Msg     string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) Code() string     { return e.ErrCode }
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito com o código informado.
func NewConflictError(code, msg string) AppError {
	return &ConflictError{ErrCode: code, Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas de infraestrutura
// (e.g., erro de escrita no arquivo CSV do catálogo).
type InternalError struct {
	ErrCode string
	Msg     string
	Err     error // Erro original subjacente (e.g., erro do sistema de arquivos)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) Code() string     { return e.ErrCode }
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro interno (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{ErrCode: CodeInternal, Msg: msg, Err: err}
}

// NewPersistenceError é um atalho para falhas de leitura/escrita dos arquivos
// de dados. A mutação em memória que a precedeu NÃO é revertida: o chamador
// decide se avisa o operador ("aplicado, durabilidade incerta").
func NewPersistenceError(msg string, err error) AppError {
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}
	return &InternalError{ErrCode: CodePersistenceFailure, Msg: msg, Err: err}
}

// --- Helpers para a Camada de Apresentação ---

// CodeOf devolve o código estável de um erro, ou UNKNOWN_ERROR para erros
// não tipados que escaparam das camadas internas.
func CodeOf(err error) string {
	if appErr, ok := err.(AppError); ok {
		return appErr.Code()
	}
	return "UNKNOWN_ERROR"
}

// Describe recebe um erro e o traduz para (categoria, mensagem) para exibição
// no console. Erros não tipados são tratados como internos genéricos.
func Describe(err error) (string, string) {
	if appErr, ok := err.(AppError); ok {
		return appErr.Category(), appErr.Error()
	}
	return "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
