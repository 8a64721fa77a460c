package console

import (
	"strconv"

	"github.com/shopspring/decimal"

	"invbill/internal/domain"
)

// productMenu é o submenu de gestão de produtos.
func (m *Menu) productMenu() {
	for !m.eof {
		m.banner("PRODUCT MANAGEMENT")
		m.printf("1. Add Product\n2. Update Product\n3. Delete Product\n4. Search Product\n5. View All Products\n6. Back to Main Menu\n")
		m.rule("=")

		switch m.readLine("Enter your choice: ") {
		case "1":
			m.addProduct()
		case "2":
			m.updateProduct()
		case "3":
			m.deleteProduct()
		case "4":
			m.searchProducts()
		case "5":
			m.viewAllProducts()
		case "6":
			return
		default:
			m.printf("Invalid choice! Please try again.\n")
		}
	}
}

func (m *Menu) addProduct() {
	id := m.readLine("Enter Product ID (leave blank to auto-generate): ")
	name := m.readLine("Enter Product Name: ")

	price, err := decimal.NewFromString(m.readLine("Enter Price: "))
	if err != nil {
		m.printf("Invalid input! Price must be a number.\n")
		return
	}
	stock, err := strconv.Atoi(m.readLine("Enter Stock Quantity: "))
	if err != nil {
		m.printf("Invalid input! Stock quantity must be an integer.\n")
		return
	}

	product, err := m.catalog.AddProduct(id, name, price, stock)
	if err != nil {
		m.printServiceError(err)
		return
	}
	m.printf("Product %s added successfully!\n", product.ID)
}

func (m *Menu) updateProduct() {
	id := m.readLine("Enter Product ID to update: ")
	current, found := m.catalog.GetProduct(id)
	if !found {
		m.printf("Product not found!\n")
		return
	}
	m.printf("Current: Name=%s, Price=%s, Stock=%d\n", current.Name, formatMoney(current.Price), current.Stock)

	// Campos deixados em branco mantêm o valor atual (atualização parcial).
	var update domain.ProductUpdate
	if name := m.readLine("Enter new Name (leave blank to keep current): "); name != "" {
		update.Name = &name
	}
	if priceStr := m.readLine("Enter new Price (leave blank to keep current): "); priceStr != "" {
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			m.printf("Invalid input! Price must be a number.\n")
			return
		}
		update.Price = &price
	}
	if stockStr := m.readLine("Enter new Stock Quantity (leave blank to keep current): "); stockStr != "" {
		stock, err := strconv.Atoi(stockStr)
		if err != nil {
			m.printf("Invalid input! Stock quantity must be an integer.\n")
			return
		}
		update.Stock = &stock
	}

	if _, err := m.catalog.UpdateProduct(id, update); err != nil {
		m.printServiceError(err)
		return
	}
	m.printf("Product updated successfully!\n")
}

func (m *Menu) deleteProduct() {
	id := m.readLine("Enter Product ID to delete: ")
	if err := m.catalog.DeleteProduct(id); err != nil {
		m.printServiceError(err)
		return
	}
	m.printf("Product deleted successfully!\n")
}

func (m *Menu) searchProducts() {
	keyword := m.readLine("Enter Product ID or Name to search: ")
	results := m.catalog.SearchProducts(keyword)
	if len(results) == 0 {
		m.printf("No products found!\n")
		return
	}

	m.printf("\nSearch Results:\n")
	m.printProductTable(results)
}

func (m *Menu) viewAllProducts() {
	products := m.catalog.ListProducts()
	if len(products) == 0 {
		m.printf("No products available right now — add one using option 1.\n")
		return
	}

	m.banner("ALL PRODUCTS")
	m.printProductTable(products)
	m.rule("=")
}
