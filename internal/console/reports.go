package console

import (
	"strconv"
	"time"
)

// reportsMenu é o submenu de relatórios.
func (m *Menu) reportsMenu() {
	for !m.eof {
		m.banner("REPORTS")
		m.printf("1. Daily Sales Report\n2. Low Stock Report\n3. Export Stock Spreadsheet\n4. Back to Main Menu\n")
		m.rule("=")

		switch m.readLine("Enter your choice: ") {
		case "1":
			m.dailySalesReport()
		case "2":
			m.lowStockReport()
		case "3":
			m.exportStock()
		case "4":
			return
		default:
			m.printf("Invalid choice! Please try again.\n")
		}
	}
}

func (m *Menu) dailySalesReport() {
	date := time.Now()
	if dateStr := m.readLine("Enter date (YYYY-MM-DD) or leave blank for today: "); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			m.printf("Invalid date format! Please use YYYY-MM-DD.\n")
			return
		}
		date = parsed
	}

	count, total := m.reports.DailySummary(date)
	m.printf("\nSales Report for %s:\n", date.Format("2006-01-02"))
	m.printf("Number of transactions: %d\n", count)
	m.printf("Total sales: %s\n", formatMoney(total))

	sales := m.reports.DailySales(date)
	if len(sales) == 0 {
		return
	}
	m.printf("\nTransactions:\n")
	for i, sale := range sales {
		m.printf("%d. %s - %s\n", i+1, sale.Timestamp.Format("15:04:05"), formatMoney(sale.FinalAmount))
	}
}

func (m *Menu) lowStockReport() {
	threshold := m.lowStockDefault
	if thresholdStr := m.readLine("Enter low stock threshold (blank for default): "); thresholdStr != "" {
		value, err := strconv.Atoi(thresholdStr)
		if err != nil {
			m.printf("Threshold must be an integer!\n")
			return
		}
		threshold = value
	}

	lowStock := m.reports.LowStock(threshold)
	if len(lowStock) == 0 {
		m.printf("No low stock products!\n")
		return
	}

	m.printf("\nLow Stock Products (threshold: %d):\n", threshold)
	m.printf("%-12s %-20s %-10s\n", "ID", "Name", "Stock")
	m.rule("-")
	for _, p := range lowStock {
		m.printf("%-12s %-20s %-10d\n", p.ID, p.Name, p.Stock)
	}
}

func (m *Menu) exportStock() {
	path := m.exportPath
	if custom := m.readLine("Enter spreadsheet path (blank for default): "); custom != "" {
		path = custom
	}

	if err := m.reports.ExportStockXLSX(path); err != nil {
		m.printServiceError(err)
		return
	}
	m.printf("Stock spreadsheet saved as %s\n", path)
}
