package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"invbill/internal/domain"
	apperror "invbill/internal/errors"
	"invbill/internal/pkg/logger"
)

// Reports define o contrato que os menus esperam do Serviço de Relatórios.
type Reports interface {
	DailySales(date time.Time) []domain.Sale
	DailySummary(date time.Time) (int, decimal.Decimal)
	LowStock(threshold int) []domain.Product
	ExportStockXLSX(path string) error
}

// Menu é a camada de apresentação do console: lê escolhas do operador e
// delega para os serviços. Não guarda nenhum estado de negócio próprio.
type Menu struct {
	catalog domain.CatalogService
	billing domain.BillingService
	reports Reports
	logger  logger.Logger

	reader *bufio.Reader
	out    io.Writer
	// eof indica que o stdin acabou; todos os laços de menu encerram.
	eof bool

	lowStockDefault int
	exportPath      string
}

// NewMenu cria a camada de menus ligada a stdin/stdout.
func NewMenu(catalog domain.CatalogService, billing domain.BillingService, reports Reports,
	lowStockDefault int, exportPath string, log logger.Logger) *Menu {
	return &Menu{
		catalog:         catalog,
		billing:         billing,
		reports:         reports,
		logger:          log,
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
		lowStockDefault: lowStockDefault,
		exportPath:      exportPath,
	}
}

// Run executa o laço do menu principal até o operador escolher sair.
func (m *Menu) Run() {
	for !m.eof {
		m.banner("INVENTORY MANAGEMENT & BILLING SYSTEM")
		m.printf("1. Product Management\n2. Billing\n3. Reports\n4. Exit\n")
		m.rule("=")

		switch m.readLine("Enter your choice: ") {
		case "1":
			m.productMenu()
		case "2":
			m.billingMenu()
		case "3":
			m.reportsMenu()
		case "4":
			m.printf("Thank you for using the system!\n")
			return
		default:
			m.printf("Invalid choice! Please try again.\n")
		}
	}
}

// --- Helpers de leitura e impressão ---

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) rule(char string) {
	m.printf("%s\n", strings.Repeat(char, 60))
}

func (m *Menu) banner(title string) {
	m.printf("\n")
	m.rule("=")
	m.printf("%s\n", title)
	m.rule("=")
}

// readLine imprime o prompt e devolve a linha digitada, sem espaços nas pontas.
func (m *Menu) readLine(prompt string) string {
	m.printf("%s", prompt)
	line, err := m.reader.ReadString('\n')
	if err != nil {
		// EOF no stdin encerra como se o operador tivesse saído.
		m.eof = true
	}
	return strings.TrimSpace(line)
}

// printServiceError exibe um erro de serviço na forma categoria + mensagem.
func (m *Menu) printServiceError(err error) {
	category, message := apperror.Describe(err)
	m.printf("[%s] %s\n", category, message)

	// Falhas de durabilidade merecem registro além da tela.
	if apperror.CodeOf(err) == apperror.CodePersistenceFailure {
		m.logger.Error("Falha de persistência reportada ao operador.", err)
	}
}

func formatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// printProductTable imprime produtos no layout alinhado dos menus.
func (m *Menu) printProductTable(products []domain.Product) {
	m.printf("%-12s %-20s %-10s %-10s\n", "ID", "Name", "Price", "Stock")
	m.rule("-")
	for _, p := range products {
		m.printf("%-12s %-20s %-10s %-10d\n", p.ID, p.Name, formatMoney(p.Price), p.Stock)
	}
}
