package dashboard

import (
	"sort"
	"strings"

	"github.com/bizdesk/backend/internal/domain/resource"
	"github.com/shopspring/decimal"
)

// Fallback labels for rows whose parent could not be joined
const (
	UnknownSupplier = "Unknown Supplier"
	UnknownCustomer = "Unknown Customer"
	UnknownProduct  = "Unknown Product"
	UnknownCategory = "Unknown Category"
	UnknownRole     = "Unknown Role"
	UnknownEmployee = "Unknown Employee"
	UnknownStatus   = "Unknown"
)

// ProcurementDashboard summarizes purchasing
type ProcurementDashboard struct {
	TotalOrders   int                 `json:"total_orders"`
	PendingOrders int                 `json:"pending_orders"`
	TotalSpend    decimal.Decimal     `json:"total_spend"`
	AverageOrder  decimal.Decimal     `json:"average_order"`
	ByStatus      []Count             `json:"by_status"`
	BySupplier    []SupplierSpend     `json:"by_supplier"`
	Orders        []PurchaseOrderLine `json:"orders"`
}

// SupplierSpend is the purchase total of one supplier
type SupplierSpend struct {
	SupplierName string          `json:"supplier_name"`
	Orders       int             `json:"orders"`
	Spend        decimal.Decimal `json:"spend"`
	Share        decimal.Decimal `json:"share"`
}

// PurchaseOrderLine is a purchase order joined with its supplier and items
type PurchaseOrderLine struct {
	PurchaseOrderID any             `json:"purchase_order_id"`
	SupplierName    string          `json:"supplier_name"`
	OrderDate       any             `json:"order_date"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ItemCount       int             `json:"item_count"`
	ItemUnits       decimal.Decimal `json:"item_units"`
}

func buildProcurement(d fetched) ProcurementDashboard {
	orders := d.of(resource.PurchaseOrder)
	suppliers := indexBy(d.of(resource.Supplier), "supplier_id")

	itemCount := make(map[string]int)
	itemUnits := make(map[string]decimal.Decimal)
	for _, it := range d.of(resource.PurchaseOrderItem) {
		k := keyOf(it["purchase_order_id"])
		itemCount[k]++
		itemUnits[k] = itemUnits[k].Add(number(it, "quantity"))
	}

	out := ProcurementDashboard{
		TotalOrders: len(orders),
		TotalSpend:  sum(orders, "total_amount"),
		ByStatus:    countBy(orders, orDefault(column("status"), UnknownStatus)),
		Orders:      make([]PurchaseOrderLine, 0, len(orders)),
	}
	out.AverageOrder = average(out.TotalSpend, len(orders))

	spend := make(map[string]*SupplierSpend)
	for _, o := range orders {
		name := lookup(suppliers, o, "supplier_id", column("supplier_name"), UnknownSupplier)
		amount := number(o, "total_amount")
		if strings.EqualFold(text(o, "status"), "Pending") {
			out.PendingOrders++
		}
		k := keyOf(o["purchase_order_id"])
		out.Orders = append(out.Orders, PurchaseOrderLine{
			PurchaseOrderID: o["purchase_order_id"],
			SupplierName:    name,
			OrderDate:       o["order_date"],
			Status:          text(o, "status"),
			TotalAmount:     amount,
			ItemCount:       itemCount[k],
			ItemUnits:       itemUnits[k],
		})

		s, ok := spend[name]
		if !ok {
			s = &SupplierSpend{SupplierName: name}
			spend[name] = s
		}
		s.Orders++
		s.Spend = s.Spend.Add(amount)
	}

	out.BySupplier = make([]SupplierSpend, 0, len(spend))
	for _, s := range spend {
		s.Share = percent(s.Spend, out.TotalSpend)
		out.BySupplier = append(out.BySupplier, *s)
	}
	sort.Slice(out.BySupplier, func(i, j int) bool {
		a, b := out.BySupplier[i], out.BySupplier[j]
		if !a.Spend.Equal(b.Spend) {
			return a.Spend.GreaterThan(b.Spend)
		}
		return a.SupplierName < b.SupplierName
	})
	return out
}

// SalesDashboard summarizes orders, invoicing and payments
type SalesDashboard struct {
	TotalOrders      int             `json:"total_orders"`
	GrossRevenue     decimal.Decimal `json:"gross_revenue"`
	NetRevenue       decimal.Decimal `json:"net_revenue"`
	AverageOrder     decimal.Decimal `json:"average_order"`
	TotalInvoiced    decimal.Decimal `json:"total_invoiced"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	Outstanding      decimal.Decimal `json:"outstanding"`
	PaidPercentage   decimal.Decimal `json:"paid_percentage"`
	ByStatus         []Count         `json:"by_status"`
	ByPaymentMethod  []Count         `json:"by_payment_method"`
	Orders           []OrderLine     `json:"orders"`
	UnpaidInvoiceIDs []any           `json:"unpaid_invoice_ids"`
}

// OrderLine is an order joined with its customer
type OrderLine struct {
	OrderID      any             `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	OrderDate    any             `json:"order_date"`
	OrderStatus  string          `json:"order_status"`
	NetAmount    decimal.Decimal `json:"net_amount"`
}

// netAmount is total - discount + tax
func netAmount(o Row) decimal.Decimal {
	return number(o, "total_amount").Sub(number(o, "discount")).Add(number(o, "tax"))
}

func buildSales(d fetched) SalesDashboard {
	orders := d.of(resource.Order)
	invoices := d.of(resource.Invoice)
	payments := d.of(resource.Payment)
	customers := indexBy(d.of(resource.Customer), "customer_id")

	out := SalesDashboard{
		TotalOrders:      len(orders),
		GrossRevenue:     sum(orders, "total_amount"),
		NetRevenue:       decimal.Zero,
		TotalInvoiced:    sum(invoices, "amount"),
		TotalPaid:        sum(payments, "amount"),
		ByStatus:         countBy(orders, orDefault(column("order_status"), UnknownStatus)),
		ByPaymentMethod:  countBy(payments, orDefault(column("payment_method"), UnknownStatus)),
		Orders:           make([]OrderLine, 0, len(orders)),
		UnpaidInvoiceIDs: []any{},
	}
	for _, o := range orders {
		net := netAmount(o)
		out.NetRevenue = out.NetRevenue.Add(net)
		out.Orders = append(out.Orders, OrderLine{
			OrderID:      o["order_id"],
			CustomerName: lookup(customers, o, "customer_id", fullName, UnknownCustomer),
			OrderDate:    o["order_date"],
			OrderStatus:  text(o, "order_status"),
			NetAmount:    net,
		})
	}
	out.AverageOrder = average(out.NetRevenue, len(orders))
	out.Outstanding = out.TotalInvoiced.Sub(out.TotalPaid)
	if out.Outstanding.IsNegative() {
		out.Outstanding = decimal.Zero
	}
	out.PaidPercentage = percent(out.TotalPaid, out.TotalInvoiced)

	paidByInvoice := make(map[string]decimal.Decimal)
	for _, p := range payments {
		k := keyOf(p["invoice_id"])
		paidByInvoice[k] = paidByInvoice[k].Add(number(p, "amount"))
	}
	for _, inv := range invoices {
		if paidByInvoice[keyOf(inv["invoice_id"])].LessThan(number(inv, "amount")) {
			out.UnpaidInvoiceIDs = append(out.UnpaidInvoiceIDs, inv["invoice_id"])
		}
	}
	return out
}

// InventoryDashboard summarizes stock levels
type InventoryDashboard struct {
	TrackedProducts    int             `json:"tracked_products"`
	TotalUnits         decimal.Decimal `json:"total_units"`
	StockValue         decimal.Decimal `json:"stock_value"`
	LowStockCount      int             `json:"low_stock_count"`
	LowStockPercentage decimal.Decimal `json:"low_stock_percentage"`
	ByCategory         []Count         `json:"by_category"`
	Items              []StockLine     `json:"items"`
}

// StockLine is an inventory row joined with its product and category
type StockLine struct {
	InventoryID  any             `json:"inventory_id"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	Value        decimal.Decimal `json:"value"`
	LowStock     bool            `json:"low_stock"`
}

func buildInventory(d fetched) InventoryDashboard {
	stock := d.of(resource.Inventory)
	products := indexBy(d.of(resource.Product), "product_id")
	categories := indexBy(d.of(resource.Category), "category_id")

	out := InventoryDashboard{
		TrackedProducts: len(stock),
		TotalUnits:      sum(stock, "quantity"),
		StockValue:      decimal.Zero,
		Items:           make([]StockLine, 0, len(stock)),
	}
	categoryOf := func(inv Row) string {
		product, ok := products[keyOf(inv["product_id"])]
		if !ok {
			return UnknownCategory
		}
		return lookup(categories, product, "category_id", column("category_name"), UnknownCategory)
	}
	for _, inv := range stock {
		qty := number(inv, "quantity")
		reorder := number(inv, "reorder_level")
		price := decimal.Zero
		if p, ok := products[keyOf(inv["product_id"])]; ok {
			price = number(p, "price")
		}
		line := StockLine{
			InventoryID:  inv["inventory_id"],
			ProductName:  lookup(products, inv, "product_id", column("product_name"), UnknownProduct),
			CategoryName: categoryOf(inv),
			Quantity:     qty,
			ReorderLevel: reorder,
			Value:        qty.Mul(price),
			LowStock:     qty.LessThanOrEqual(reorder),
		}
		if line.LowStock {
			out.LowStockCount++
		}
		out.StockValue = out.StockValue.Add(line.Value)
		out.Items = append(out.Items, line)
	}
	out.LowStockPercentage = percentOf(out.LowStockCount, len(stock))
	out.ByCategory = countBy(stock, categoryOf)
	return out
}

// PersonnelDashboard summarizes staff, attendance and reviews
type PersonnelDashboard struct {
	TotalEmployees int             `json:"total_employees"`
	TotalPayroll   decimal.Decimal `json:"total_payroll"`
	AttendanceRate decimal.Decimal `json:"attendance_rate"`
	AverageRating  decimal.Decimal `json:"average_rating"`
	ByRole         []Count         `json:"by_role"`
	ByAttendance   []Count         `json:"by_attendance"`
	TopPerformers  []Performer     `json:"top_performers"`
}

// Performer is an employee's average review rating
type Performer struct {
	EmployeeName  string          `json:"employee_name"`
	Reviews       int             `json:"reviews"`
	AverageRating decimal.Decimal `json:"average_rating"`
}

// topPerformers bounds the performer list
const topPerformers = 5

func buildPersonnel(d fetched) PersonnelDashboard {
	employees := d.of(resource.Employee)
	attendance := d.of(resource.Attendance)
	reviews := d.of(resource.Performance)
	roles := indexBy(d.of(resource.Role), "role_id")
	byID := indexBy(employees, "employee_id")

	present := 0
	for _, a := range attendance {
		if strings.EqualFold(text(a, "status"), "Present") {
			present++
		}
	}

	out := PersonnelDashboard{
		TotalEmployees: len(employees),
		TotalPayroll:   sum(employees, "salary"),
		AttendanceRate: percentOf(present, len(attendance)),
		AverageRating:  average(sum(reviews, "rating"), len(reviews)),
		ByRole: countBy(employees, func(e Row) string {
			return lookup(roles, e, "role_id", column("role_name"), UnknownRole)
		}),
		ByAttendance: countBy(attendance, orDefault(column("status"), UnknownStatus)),
	}

	type tally struct {
		n     int
		total decimal.Decimal
	}
	tallies := make(map[string]*tally)
	for _, r := range reviews {
		name := lookup(byID, r, "employee_id", fullName, UnknownEmployee)
		t, ok := tallies[name]
		if !ok {
			t = &tally{}
			tallies[name] = t
		}
		t.n++
		t.total = t.total.Add(number(r, "rating"))
	}
	out.TopPerformers = make([]Performer, 0, len(tallies))
	for name, t := range tallies {
		out.TopPerformers = append(out.TopPerformers, Performer{
			EmployeeName:  name,
			Reviews:       t.n,
			AverageRating: average(t.total, t.n),
		})
	}
	sort.Slice(out.TopPerformers, func(i, j int) bool {
		a, b := out.TopPerformers[i], out.TopPerformers[j]
		if !a.AverageRating.Equal(b.AverageRating) {
			return a.AverageRating.GreaterThan(b.AverageRating)
		}
		return a.EmployeeName < b.EmployeeName
	})
	if len(out.TopPerformers) > topPerformers {
		out.TopPerformers = out.TopPerformers[:topPerformers]
	}
	return out
}

// FeedbackDashboard summarizes customer ratings
type FeedbackDashboard struct {
	TotalFeedback      int             `json:"total_feedback"`
	AverageRating      decimal.Decimal `json:"average_rating"`
	PositivePercentage decimal.Decimal `json:"positive_percentage"`
	ByRating           []Count         `json:"by_rating"`
	ByProduct          []Count         `json:"by_product"`
	Entries            []FeedbackLine  `json:"entries"`
}

// FeedbackLine is a feedback row joined with its customer and product
type FeedbackLine struct {
	FeedbackID   any    `json:"feedback_id"`
	CustomerName string `json:"customer_name"`
	ProductName  string `json:"product_name"`
	Rating       int64  `json:"rating"`
	Comments     string `json:"comments"`
	FeedbackDate any    `json:"feedback_date"`
}

// positiveRating is the lowest rating counted as positive
const positiveRating = 4

func buildFeedback(d fetched) FeedbackDashboard {
	entries := d.of(resource.Feedback)
	customers := indexBy(d.of(resource.Customer), "customer_id")
	products := indexBy(d.of(resource.Product), "product_id")

	productName := func(f Row) string {
		return lookup(products, f, "product_id", column("product_name"), UnknownProduct)
	}

	positive := 0
	out := FeedbackDashboard{
		TotalFeedback: len(entries),
		AverageRating: average(sum(entries, "rating"), len(entries)),
		ByRating:      countBy(entries, column("rating")),
		ByProduct:     countBy(entries, productName),
		Entries:       make([]FeedbackLine, 0, len(entries)),
	}
	for _, f := range entries {
		rating := number(f, "rating").IntPart()
		if rating >= positiveRating {
			positive++
		}
		out.Entries = append(out.Entries, FeedbackLine{
			FeedbackID:   f["feedback_id"],
			CustomerName: lookup(customers, f, "customer_id", fullName, UnknownCustomer),
			ProductName:  productName(f),
			Rating:       rating,
			Comments:     text(f, "comments"),
			FeedbackDate: f["feedback_date"],
		})
	}
	out.PositivePercentage = percentOf(positive, len(entries))
	return out
}
