package resource

// Route groups
const (
	GroupPersonnel   = "personnel"
	GroupPOI         = "poi"
	GroupProcurement = "procurement"
	GroupPOA         = "poa"
	GroupOAP         = "oap"
	GroupCustom      = "custom"
)

func key(name string) []Field { return []Field{{Name: name}} }

// Personnel
var (
	Role = &Resource{
		Group: GroupPersonnel, Path: "role", Label: "Role",
		Table: "roles", View: "v_roles",
		Keys: key("role_id"),
		Fields: []Field{
			{Name: "role_name"},
			{Name: "description"},
		},
	}
	Employee = &Resource{
		Group: GroupPersonnel, Path: "employee", Label: "Employee",
		Table: "employees", View: "v_employee_details",
		Keys: key("employee_id"),
		Fields: []Field{
			{Name: "first_name"},
			{Name: "last_name"},
			{Name: "email"},
			{Name: "phone"},
			{Name: "hire_date"},
			{Name: "role_id"},
			{Name: "salary", Default: int64(0)},
		},
	}
	User = &Resource{
		Group: GroupPersonnel, Path: "user", Label: "User",
		Table: "users", View: "v_users",
		Keys: key("user_id"),
		Fields: []Field{
			{Name: "employee_id"},
			{Name: "username"},
			{Name: "password", Column: "password_hash", Transform: HashPassword, KeepOnUpdate: true},
			{Name: "status", Default: "Active"},
		},
	}
	Attendance = &Resource{
		Group: GroupPersonnel, Path: "attendance", Label: "Attendance",
		Table: "attendance", View: "v_attendance",
		Keys: key("attendance_id"),
		Fields: []Field{
			{Name: "employee_id"},
			{Name: "attendance_date"},
			{Name: "check_in"},
			{Name: "check_out"},
			{Name: "status", Default: "Present"},
		},
	}
	Performance = &Resource{
		Group: GroupPersonnel, Path: "performance", Label: "Performance",
		Table: "performance", View: "v_performance",
		Keys: key("performance_id"),
		Fields: []Field{
			{Name: "employee_id"},
			{Name: "review_date"},
			{Name: "rating", Default: int64(0)},
			{Name: "comments"},
		},
	}
	Schedule = &Resource{
		Group: GroupPersonnel, Path: "schedule", Label: "Schedule",
		Table: "schedules", View: "v_schedules",
		Keys: key("schedule_id"),
		Fields: []Field{
			{Name: "employee_id"},
			{Name: "shift_date"},
			{Name: "shift_start"},
			{Name: "shift_end"},
		},
	}
)

// Products, inventory and suppliers
var (
	Category = &Resource{
		Group: GroupPOI, Path: "category", Label: "Category",
		Table: "categories", View: "v_categories",
		Keys: key("category_id"),
		Fields: []Field{
			{Name: "category_name"},
			{Name: "description"},
		},
	}
	Product = &Resource{
		Group: GroupPOI, Path: "product", Label: "Product",
		Table: "products", View: "v_products",
		Keys: key("product_id"),
		Fields: []Field{
			{Name: "product_name"},
			{Name: "category_id"},
			{Name: "sku"},
			{Name: "price", Default: int64(0)},
			{Name: "description"},
		},
	}
	Supplier = &Resource{
		Group: GroupPOI, Path: "supplier", Label: "Supplier",
		Table: "suppliers", View: "v_suppliers",
		Keys: key("supplier_id"),
		Fields: []Field{
			{Name: "supplier_name"},
			{Name: "contact_name"},
			{Name: "phone"},
			{Name: "email"},
			{Name: "address"},
		},
	}
	ProductSupplier = &Resource{
		Group: GroupPOI, Path: "product-supplier", Label: "Product supplier",
		Table: "product_suppliers", View: "v_product_suppliers",
		Keys: []Field{{Name: "product_id"}, {Name: "supplier_id"}},
		Fields: []Field{
			{Name: "supply_price", Default: int64(0)},
			{Name: "lead_time_days", Default: int64(0)},
		},
	}
	Inventory = &Resource{
		Group: GroupPOI, Path: "inventory", Label: "Inventory",
		Table: "inventory", View: "v_inventory",
		Keys: key("inventory_id"),
		Fields: []Field{
			{Name: "product_id"},
			{Name: "quantity", Default: int64(0)},
			{Name: "reorder_level", Default: int64(0)},
			{Name: "location"},
		},
	}
)

// Procurement
var (
	PurchaseOrder = &Resource{
		Group: GroupProcurement, Path: "purchase-order", Label: "Purchase order",
		Table: "purchase_orders", View: "v_purchase_orders",
		Keys: key("purchase_order_id"),
		Fields: []Field{
			{Name: "supplier_id"},
			{Name: "order_date"},
			{Name: "status", Default: "Pending"},
			{Name: "total_amount", Default: int64(0)},
		},
	}
	PurchaseOrderItem = &Resource{
		Group: GroupProcurement, Path: "purchase-order-item", Label: "Purchase order item",
		Table: "purchase_order_items", View: "v_purchase_order_items",
		Keys: key("purchase_order_item_id"),
		Fields: []Field{
			{Name: "purchase_order_id"},
			{Name: "product_id"},
			{Name: "quantity", Default: int64(0)},
			{Name: "unit_price", Default: int64(0)},
		},
	}
)

// Customers and feedback
var (
	Customer = &Resource{
		Group: GroupPOA, Path: "customer", Label: "Customer",
		Table: "customers", View: "v_customers",
		Keys: key("customer_id"),
		Fields: []Field{
			{Name: "first_name"},
			{Name: "last_name"},
			{Name: "email"},
			{Name: "phone"},
			{Name: "address"},
		},
	}
	Feedback = &Resource{
		Group: GroupPOA, Path: "feedback", Label: "Feedback",
		Table: "feedback", View: "v_feedback",
		Keys: key("feedback_id"),
		Fields: []Field{
			{Name: "customer_id"},
			{Name: "product_id"},
			{Name: "rating", Default: int64(0)},
			{Name: "comments"},
			{Name: "feedback_date"},
		},
	}
)

// Orders, invoices and payments
var (
	Order = &Resource{
		Group: GroupOAP, Path: "orders", Label: "Order",
		Table: "orders", View: "v_orders",
		Keys: key("order_id"),
		Fields: []Field{
			{Name: "customer_id"},
			{Name: "order_date"},
			{Name: "order_status", Default: "New"},
			{Name: "total_amount", Default: int64(0)},
			{Name: "discount", Default: int64(0)},
			{Name: "tax", Default: int64(0)},
		},
	}
	// OrderItem additions reserve stock; see persistence.OrderItemStore.
	OrderItem = &Resource{
		Group: GroupOAP, Path: "order-items", Label: "Order item",
		Table: "order_items", View: "v_order_items",
		Keys: key("order_item_id"),
		Fields: []Field{
			{Name: "order_id"},
			{Name: "product_id"},
			{Name: "quantity"},
			{Name: "unit_price", Default: int64(0)},
		},
	}
	Invoice = &Resource{
		Group: GroupOAP, Path: "invoices", Label: "Invoice",
		Table: "invoices", View: "v_invoices",
		Keys: key("invoice_id"),
		Fields: []Field{
			{Name: "order_id"},
			{Name: "invoice_date"},
			{Name: "due_date"},
			{Name: "amount", Default: int64(0)},
			{Name: "status", Default: "Unpaid"},
		},
	}
	Payment = &Resource{
		Group: GroupOAP, Path: "payments", Label: "Payment",
		Table: "payments", View: "v_payments",
		Keys: key("payment_id"),
		Fields: []Field{
			{Name: "invoice_id"},
			{Name: "payment_date"},
			{Name: "amount", Default: int64(0)},
			{Name: "payment_method", Default: "Cash"},
		},
	}
)

// Cross-entity summary views
var (
	EmployeeRoster  = &Resource{Group: GroupCustom, Path: "employee-roster", Label: "Employee roster", View: "v_employee_roster"}
	OrderSummary    = &Resource{Group: GroupCustom, Path: "order-summary", Label: "Order summary", View: "v_order_summary"}
	InventoryStatus = &Resource{Group: GroupCustom, Path: "inventory-status", Label: "Inventory status", View: "v_inventory_status"}
	FeedbackSummary = &Resource{Group: GroupCustom, Path: "feedback-summary", Label: "Feedback summary", View: "v_feedback_summary"}
)

// Catalog returns every routed resource in registration order
func Catalog() []*Resource {
	return []*Resource{
		Role, Employee, User, Attendance, Performance, Schedule,
		Category, Product, Supplier, ProductSupplier, Inventory,
		PurchaseOrder, PurchaseOrderItem,
		Customer, Feedback,
		Order, OrderItem, Invoice, Payment,
		EmployeeRoster, OrderSummary, InventoryStatus, FeedbackSummary,
	}
}

// Groups returns the route groups in registration order
func Groups() []string {
	return []string{GroupPersonnel, GroupPOI, GroupProcurement, GroupPOA, GroupOAP, GroupCustom}
}
