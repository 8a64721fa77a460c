package console

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// billingMenu é o submenu do carrinho e do checkout.
func (m *Menu) billingMenu() {
	for !m.eof {
		m.banner("BILLING")
		m.printf("1. Add to Cart\n2. Remove from Cart\n3. View Cart\n4. Apply Discount\n5. Checkout\n6. Back to Main Menu\n")
		m.rule("=")

		switch m.readLine("Enter your choice: ") {
		case "1":
			m.addToCart()
		case "2":
			m.removeFromCart()
		case "3":
			m.viewCart()
		case "4":
			m.applyDiscount()
		case "5":
			m.checkout()
		case "6":
			return
		default:
			m.printf("Invalid choice! Please try again.\n")
		}
	}
}

func (m *Menu) addToCart() {
	m.viewAllProducts()

	id := m.readLine("Enter Product ID: ")
	quantity, err := strconv.Atoi(m.readLine("Enter Quantity: "))
	if err != nil {
		m.printf("Quantity must be an integer!\n")
		return
	}

	if _, err := m.billing.AddToCart(id, quantity); err != nil {
		m.printServiceError(err)
		return
	}
	m.printf("Added to cart.\n")
}

func (m *Menu) removeFromCart() {
	if len(m.billing.CartItems()) == 0 {
		m.printf("Cart is empty!\n")
		return
	}
	m.viewCart()

	id := m.readLine("Enter Product ID: ")

	// Em branco remove a linha inteira; um número reduz a quantidade.
	var quantity *int
	if quantityStr := m.readLine("Enter Quantity to remove (leave blank to remove all): "); quantityStr != "" {
		value, err := strconv.Atoi(quantityStr)
		if err != nil {
			m.printf("Quantity must be an integer!\n")
			return
		}
		quantity = &value
	}

	if err := m.billing.RemoveFromCart(id, quantity); err != nil {
		m.printServiceError(err)
		return
	}
	m.printf("Cart updated.\n")
}

func (m *Menu) viewCart() {
	items := m.billing.CartItems()
	if len(items) == 0 {
		m.printf("Cart is empty!\n")
		return
	}

	m.banner("SHOPPING CART")
	for i, item := range items {
		m.printf("%d. %s - %d x %s = %s\n",
			i+1, item.Name, item.Quantity, formatMoney(item.UnitPrice), formatMoney(item.Total))
	}
	m.rule("-")
	m.printf("Total: %s\n", formatMoney(m.billing.CartTotal()))
	m.rule("=")
}

func (m *Menu) applyDiscount() {
	kind := m.readLine("Enter discount type (percentage/fixed): ")
	value, err := decimal.NewFromString(m.readLine("Enter discount value: "))
	if err != nil {
		m.printf("Discount value must be a number!\n")
		return
	}

	discount, err := m.billing.ApplyDiscount(kind, value)
	if err != nil {
		m.printServiceError(err)
		return
	}
	m.printf("Discount applied: %s\n", formatMoney(discount))
}

func (m *Menu) checkout() {
	// O desconto não fica guardado no carrinho: ele é informado de novo aqui.
	discount := decimal.Zero
	if discountStr := m.readLine("Enter discount amount (leave blank for none): "); discountStr != "" {
		value, err := decimal.NewFromString(discountStr)
		if err != nil {
			m.printf("Discount value must be a number!\n")
			return
		}
		discount = value
	}

	sale, err := m.billing.Checkout(discount)
	if err != nil {
		m.printServiceError(err)
		return
	}
	m.printf("Checkout completed successfully — final amount %s.\n", formatMoney(sale.FinalAmount))

	if m.readLine("Do you want to save the bill? (y/n): ") != "y" {
		return
	}
	format := m.readLine("Enter format (txt/csv): ")
	filename, err := m.billing.GenerateBill(sale, format)
	if err != nil {
		m.printServiceError(err)
		return
	}
	m.printf("Bill saved as %s\n", filename)
}
