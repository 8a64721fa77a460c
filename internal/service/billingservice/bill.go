package billingservice

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"invbill/internal/domain"
	apperror "invbill/internal/errors"
)

// GenerateBill grava a fatura de uma venda já concluída em disco e devolve o
// caminho do arquivo. Renderização pura: não muda nenhum estado da venda.
// Formatos aceitos: "txt" (itemizado em texto) e "csv" (itemizado tabular).
func (s *Service) GenerateBill(sale domain.Sale, format string) (string, error) {
	if format != domain.BillFormatText && format != domain.BillFormatTabular {
		return "", apperror.NewValidationError(apperror.CodeInvalidFormat,
			"formato de fatura inválido — use 'txt' ou 'csv'.")
	}

	if err := os.MkdirAll(s.billDir, 0o755); err != nil {
		return "", apperror.NewPersistenceError("falha ao criar o diretório de faturas", err)
	}

	filename := filepath.Join(s.billDir,
		fmt.Sprintf("bill_%s.%s", sale.Timestamp.Format("20060102_150405"), format))

	var err error
	if format == domain.BillFormatText {
		err = writeTextBill(filename, sale)
	} else {
		err = writeTabularBill(filename, sale)
	}
	if err != nil {
		return "", apperror.NewPersistenceError("falha ao gerar a fatura", err)
	}

	s.logger.Info("Fatura gravada.", map[string]interface{}{"file": filename})
	return filename, nil
}

// formatMoney centraliza a formatação monetária das faturas.
func formatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func writeTextBill(filename string, sale domain.Sale) error {
	rule := strings.Repeat("=", 50)
	thin := strings.Repeat("-", 50)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nBILL\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Date: %s\n", sale.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "%s\nItems:\n", thin)
	for _, item := range sale.Items {
		fmt.Fprintf(&b, "  %s - %d x %s = %s\n",
			item.Name, item.Quantity, formatMoney(item.UnitPrice), formatMoney(item.Total))
	}
	fmt.Fprintf(&b, "%s\n", thin)
	fmt.Fprintf(&b, "Subtotal: %s\n", formatMoney(sale.TotalAmount))
	if sale.Discount.IsPositive() {
		fmt.Fprintf(&b, "Discount: -%s\n", formatMoney(sale.Discount))
	}
	fmt.Fprintf(&b, "Total: %s\n%s\n", formatMoney(sale.FinalAmount), rule)

	return os.WriteFile(filename, []byte(b.String()), 0o644)
}

func writeTabularBill(filename string, sale domain.Sale) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	rows := [][]string{
		{"BILL"},
		{"Date", sale.Timestamp.Format("2006-01-02 15:04:05")},
		{},
		{"Product", "Quantity", "Unit Price", "Total"},
	}
	for _, item := range sale.Items {
		rows = append(rows, []string{
			item.Name,
			fmt.Sprintf("%d", item.Quantity),
			formatMoney(item.UnitPrice),
			formatMoney(item.Total),
		})
	}
	rows = append(rows, []string{})
	rows = append(rows, []string{"Subtotal", "", "", formatMoney(sale.TotalAmount)})
	if sale.Discount.IsPositive() {
		rows = append(rows, []string{"Discount", "", "", "-" + formatMoney(sale.Discount)})
	}
	rows = append(rows, []string{"Total", "", "", formatMoney(sale.FinalAmount)})

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
