package billingservice_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"invbill/internal/domain"
	apperror "invbill/internal/errors"
)

func sampleSale() domain.Sale {
	return domain.Sale{
		ID: "sale-1",
		Items: []domain.CartItem{
			{
				ProductID: "P1",
				Name:      "Widget",
				UnitPrice: decimal.RequireFromString("9.99"),
				Quantity:  3,
				Total:     decimal.RequireFromString("29.97"),
			},
		},
		TotalAmount: decimal.RequireFromString("29.97"),
		Discount:    decimal.RequireFromString("5.00"),
		FinalAmount: decimal.RequireFromString("24.97"),
		Timestamp:   time.Date(2026, 8, 29, 14, 30, 0, 0, time.Local),
	}
}

// TestGenerateBill_Text verifica o layout itemizado em texto e o nome do
// arquivo derivado do timestamp da venda.
func TestGenerateBill_Text(t *testing.T) {
	svc, _, _ := newService(t)

	filename, err := svc.GenerateBill(sampleSale(), domain.BillFormatText)
	assert.NoError(t, err)
	assert.Equal(t, "bill_20260829_143000.txt", filepath.Base(filename))

	content, err := os.ReadFile(filename)
	assert.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "BILL")
	assert.Contains(t, text, "Date: 2026-08-29 14:30:00")
	assert.Contains(t, text, "Widget - 3 x $9.99 = $29.97")
	assert.Contains(t, text, "Subtotal: $29.97")
	assert.Contains(t, text, "Discount: -$5.00")
	assert.Contains(t, text, "Total: $24.97")
}

// TestGenerateBill_TextOmitsZeroDiscount verifica que desconto zero não
// aparece na fatura.
func TestGenerateBill_TextOmitsZeroDiscount(t *testing.T) {
	svc, _, _ := newService(t)

	sale := sampleSale()
	sale.Discount = decimal.Zero
	sale.FinalAmount = sale.TotalAmount

	filename, err := svc.GenerateBill(sale, domain.BillFormatText)
	assert.NoError(t, err)

	content, _ := os.ReadFile(filename)
	assert.NotContains(t, string(content), "Discount")
}

// TestGenerateBill_Tabular verifica o layout tabular.
func TestGenerateBill_Tabular(t *testing.T) {
	svc, _, _ := newService(t)

	filename, err := svc.GenerateBill(sampleSale(), domain.BillFormatTabular)
	assert.NoError(t, err)
	assert.Equal(t, "bill_20260829_143000.csv", filepath.Base(filename))

	content, err := os.ReadFile(filename)
	assert.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "Product,Quantity,Unit Price,Total")
	assert.Contains(t, text, "Widget,3,$9.99,$29.97")
	assert.Contains(t, text, "Subtotal,,,$29.97")
	assert.Contains(t, text, "Discount,,,-$5.00")
	assert.Contains(t, text, "Total,,,$24.97")
}

// TestGenerateBill_InvalidFormat verifica a rejeição de formatos desconhecidos.
func TestGenerateBill_InvalidFormat(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.GenerateBill(sampleSale(), "pdf")
	assert.Equal(t, apperror.CodeInvalidFormat, apperror.CodeOf(err))
}
