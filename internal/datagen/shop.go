package datagen

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/urugen/internal/store"
)

// Seed pools for shop entities. Like the registry pools, counts beyond a pool
// fall back to derived names.
var (
	brandPool = []string{
		"TechPro", "EcoVida", "StyleMax", "PowerTools", "NaturaCare",
		"UrbanWear", "HomePlus", "FitLife", "SmartGear", "PureEssence",
	}

	categoryPool = []string{
		"Eletrônicos", "Vestuário", "Casa", "Esportes", "Beleza",
		"Alimentos", "Livros", "Brinquedos", "Ferramentas", "Auto",
	}

	customerGroupPool = []struct {
		name     string
		discount float64
	}{
		{"VIP", 15.0},
		{"Premium", 10.0},
		{"Regular", 0.0},
		{"Atacado", 20.0},
		{"Funcionários", 25.0},
	}

	locationPool = []struct {
		name string
		typ  string
	}{
		{"Depósito Central", "warehouse"},
		{"Loja Matriz", "store"},
		{"Loja Centro", "store"},
		{"Em Trânsito", "transit"},
		{"Virtual", "virtual"},
	}

	productTypes        = []string{"physical", "physical", "physical", "digital", "service"}
	transactionTypes    = []string{"sale", "sale", "purchase", "return"}
	transactionStatuses = []string{"completed", "completed", "pending"}
	transactionChannels = []string{"web", "store", "mobile"}
	orderChannels       = []string{"web", "store"}
	orderStatuses       = []string{"open", "completed", "processing"}
	paymentStatusesOrd  = []string{"paid", "paid", "pending"}
	fulfillmentStatuses = []string{"fulfilled", "unfulfilled"}
	checkoutStatuses    = []string{"open", "completed", "abandoned"}
	posStatuses         = []string{"closed", "closed", "open"}
	inquiryTypes        = []string{"general", "support", "complaint"}
	inquiryStatuses     = []string{"new", "open", "resolved"}
	inquiryPriorities   = []string{"normal", "high"}
	inquirySources      = []string{"web_form", "email"}
	senderTypes         = []string{"customer", "staff"}
	paymentProviders    = []string{"stripe", "pagarme", "pix"}
	paymentMethods      = []string{"credit_card", "pix", "boleto"}
	captureStatuses     = []string{"captured", "captured", "pending"}
	shipmentStatuses    = []string{"shipped", "delivered", "pending"}
	carriers            = []string{"Correios", "Jadlog", "Total Express"}
	refundStatuses      = []string{"approved", "processed"}
	refundReasons       = []string{"Defeito", "Arrependimento"}
	trackingStatuses    = []string{"object_posted", "in_transit", "delivered"}

	ratingPool = []int{3, 4, 4, 5, 5}
)

// Fixed caps and rates taken over from the stock generation profile.
const (
	addressCustomerCap     = 50
	membershipSampleSize   = 30
	productCategoryRate    = 0.7
	movementLevelCap       = 100
	refundSampleRate       = 0.1
	nullCategoryProb       = 0.1
	nullBrandProb          = 0.2
	nullCustomerProbTx     = 0.2
	nullCustomerProbOrder  = 0.1
	nullCustomerProbClaims = 0.3
)

// shopPipeline is the fixed topological order for one shop database. The
// shop_config singleton is written by the orchestrator before this pipeline.
func (g *Generator) shopPipeline() []pipelineStep {
	return []pipelineStep{
		{"brands", g.genBrands},
		{"categories", g.genCategories},
		{"customer_groups", g.genCustomerGroups},
		{"customers", g.genCustomers},
		{"products", g.genProducts},
		{"locations", g.genLocations},
		{"customer_addresses", g.genCustomerAddresses},
		{"customer_group_memberships", g.genCustomerGroupMemberships},
		{"product_categories", g.genProductCategories},
		{"inventory_levels", g.genInventoryLevels},
		{"transactions", g.genTransactions},
		{"orders", g.genOrders},
		{"order_items", g.genOrderItems},
		{"checkouts", g.genCheckouts},
		{"pos_sessions", g.genPosSessions},
		{"inquiries", g.genInquiries},
		{"transaction_items", g.genTransactionItems},
		{"payments", g.genPayments},
		{"shipments", g.genShipments},
		{"inquiry_messages", g.genInquiryMessages},
		{"reviews", g.genReviews},
		{"inventory_movements", g.genInventoryMovements},
		{"refunds", g.genRefunds},
		{"shipment_items", g.genShipmentItems},
		{"shipment_events", g.genShipmentEvents},
	}
}

func (g *Generator) genBrands(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Brands; i++ {
		name := fmt.Sprintf("Marca %d", i+1)
		if i < len(brandPool) {
			name = brandPool[i]
		}
		brandID := g.vals.UUID()
		_, err := x.Exec(`INSERT INTO brands (id, name, slug, status, is_featured,
				sort_order, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			brandID, name, fmt.Sprintf("%s-%d", Slugify(name), i), "active",
			g.vals.IntBetween(0, 1), i,
			"created", g.vals.PastTimestamp(365), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert brand: %w", err)
		}
		g.state.Brands = append(g.state.Brands, brandID)
	}
	return len(g.state.Brands), nil
}

func (g *Generator) genCategories(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Categories; i++ {
		name := fmt.Sprintf("Categoria %d", i+1)
		if i < len(categoryPool) {
			name = categoryPool[i]
		}
		categoryID := g.vals.UUID()
		// parent_id stays null: the schema supports a category tree but the
		// generated catalog is flat.
		_, err := x.Exec(`INSERT INTO categories (id, parent_id, name, slug, is_visible,
				sort_order, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			categoryID, nil, name, fmt.Sprintf("%s-%d", Slugify(name), i), 1, i,
			"created", g.vals.PastTimestamp(365), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert category: %w", err)
		}
		g.state.Categories = append(g.state.Categories, categoryID)
	}
	return len(g.state.Categories), nil
}

func (g *Generator) genCustomerGroups(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.CustomerGroups; i++ {
		name := fmt.Sprintf("Grupo %d", i+1)
		discount := 0.0
		if i < len(customerGroupPool) {
			name = customerGroupPool[i].name
			discount = customerGroupPool[i].discount
		}
		groupID := g.vals.UUID()
		_, err := x.Exec(`INSERT INTO customer_groups (id, name, code,
				default_discount_percentage, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			groupID, name, Slugify(name), discount,
			"created", g.vals.PastTimestamp(365), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert customer group: %w", err)
		}
		g.state.CustomerGroups = append(g.state.CustomerGroups, groupID)
	}
	return len(g.state.CustomerGroups), nil
}

func (g *Generator) genCustomers(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Customers; i++ {
		customerID := g.vals.UUID()
		_, err := x.Exec(`INSERT INTO customers (id, type, email, phone, first_name,
				last_name, tax_id, status, currency, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			customerID, "individual", g.vals.UniqueEmail(), g.vals.Faker().Phone(),
			g.vals.Faker().FirstName(), g.vals.Faker().LastName(),
			g.vals.Faker().Numerify("###.###.###-##"),
			"active", "BRL",
			"created", g.vals.PastTimestamp(365), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert customer: %w", err)
		}
		g.state.Customers = append(g.state.Customers, customerID)
	}
	return len(g.state.Customers), nil
}

func (g *Generator) genProducts(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Products; i++ {
		productID := g.vals.UUID()
		_, err := x.Exec(`INSERT INTO products (id, sku, type, status, name, slug, price,
				currency, category_id, brand_id, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			productID, fmt.Sprintf("SKU-%06d", i), g.vals.Pick(productTypes), "active",
			fmt.Sprintf("Produto %d", i+1), fmt.Sprintf("produto-%d", i),
			g.vals.Price(10, 2000), "BRL",
			g.vals.PickOptional(g.state.Categories, nullCategoryProb),
			g.vals.PickOptional(g.state.Brands, nullBrandProb),
			"created", g.vals.PastTimestamp(365), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert product: %w", err)
		}
		g.state.Products = append(g.state.Products, productID)
	}
	return len(g.state.Products), nil
}

func (g *Generator) genLocations(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Locations; i++ {
		name := fmt.Sprintf("Loja %d", i+1)
		typ := "store"
		if i < len(locationPool) {
			name = locationPool[i].name
			typ = locationPool[i].typ
		}
		sellable := 0
		if typ == "warehouse" || typ == "store" {
			sellable = 1
		}
		locationID := g.vals.UUID()
		_, err := x.Exec(`INSERT INTO locations (id, name, type, is_sellable,
				_status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			locationID, name, typ, sellable,
			"created", g.vals.PastTimestamp(365), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert location: %w", err)
		}
		g.state.Locations = append(g.state.Locations, locationID)
	}
	return len(g.state.Locations), nil
}

func (g *Generator) genCustomerAddresses(x store.Execer) (int, error) {
	customers := g.state.Customers
	if len(customers) > addressCustomerCap {
		customers = customers[:addressCustomerCap]
	}
	for _, customerID := range customers {
		_, err := x.Exec(`INSERT INTO customer_addresses (id, customer_id, type, is_default,
				address1, city, province_code, country_code, postal_code,
				_status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			g.vals.UUID(), customerID, "shipping", 1,
			g.vals.Faker().Street(), g.vals.Faker().City(), g.vals.Faker().StateAbr(),
			"BR", g.vals.Faker().Zip(),
			"created", g.vals.PastTimestamp(300), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert customer address: %w", err)
		}
	}
	return len(customers), nil
}

func (g *Generator) genCustomerGroupMemberships(x store.Execer) (int, error) {
	count := 0
	for _, customerID := range g.vals.Sample(g.state.Customers, membershipSampleSize) {
		outcome, err := store.Insert(x, `INSERT INTO customer_group_memberships
				(customer_id, customer_group_id, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)`,
			customerID, g.vals.Pick(g.state.CustomerGroups),
			"created", g.vals.PastTimestamp(300), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert group membership: %w", err)
		}
		if outcome == store.Inserted {
			count++
		}
	}
	return count, nil
}

func (g *Generator) genProductCategories(x store.Execer) (int, error) {
	count := 0
	sampleSize := int(float64(len(g.state.Products)) * productCategoryRate)
	for _, productID := range g.vals.Sample(g.state.Products, sampleSize) {
		outcome, err := store.Insert(x, `INSERT INTO product_categories
				(product_id, category_id, position, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			productID, g.vals.Pick(g.state.Categories), 0,
			"created", g.vals.PastTimestamp(300), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert product category: %w", err)
		}
		if outcome == store.Inserted {
			count++
		}
	}
	return count, nil
}

func (g *Generator) genInventoryLevels(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.InventoryLevels; i++ {
		levelID := g.vals.UUID()
		_, err := x.Exec(`INSERT INTO inventory_levels (id, product_id, location_id,
				quantity_on_hand, quantity_reserved, stock_status,
				_status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			levelID, g.vals.Pick(g.state.Products), g.vals.Pick(g.state.Locations),
			g.vals.IntBetween(0, 200), g.vals.IntBetween(0, 20), "sellable",
			"created", g.vals.PastTimestamp(365), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert inventory level: %w", err)
		}
		g.state.InventoryLevels = append(g.state.InventoryLevels, levelID)
	}
	return len(g.state.InventoryLevels), nil
}

func (g *Generator) genTransactions(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Transactions; i++ {
		transactionID := g.vals.UUID()
		total := g.vals.Price(50, 2000)
		_, err := x.Exec(`INSERT INTO transactions (id, type, status, channel, customer_id,
				currency, total_items, total_net, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			transactionID, g.vals.Pick(transactionTypes), g.vals.Pick(transactionStatuses),
			g.vals.Pick(transactionChannels),
			g.vals.PickOptional(g.state.Customers, nullCustomerProbTx),
			"BRL", total, total,
			"created", g.vals.PastTimestamp(365), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert transaction: %w", err)
		}
		g.state.Transactions = append(g.state.Transactions, transactionID)
	}
	return len(g.state.Transactions), nil
}

func (g *Generator) genOrders(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Orders; i++ {
		orderID := g.vals.UUID()
		subtotal := g.vals.Price(50, 2000)
		// The customer snapshot is denormalized on purpose: it preserves the
		// buyer details at order time even if the customer record changes.
		snapshot := g.vals.JSON(map[string]string{
			"name":  g.vals.Faker().Name(),
			"email": g.vals.Faker().Email(),
		})
		_, err := x.Exec(`INSERT INTO orders (id, order_number, channel, customer_id, status,
				payment_status, fulfillment_status, currency, subtotal_price, total_price,
				customer_snapshot, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			orderID, 1000+i, g.vals.Pick(orderChannels),
			g.vals.PickOptional(g.state.Customers, nullCustomerProbOrder),
			g.vals.Pick(orderStatuses), g.vals.Pick(paymentStatusesOrd),
			g.vals.Pick(fulfillmentStatuses), "BRL", subtotal, subtotal, snapshot,
			"created", g.vals.PastTimestamp(365), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert order: %w", err)
		}
		g.state.Orders = append(g.state.Orders, orderID)
	}
	return len(g.state.Orders), nil
}

func (g *Generator) genOrderItems(x store.Execer) (int, error) {
	for _, orderID := range g.state.Orders {
		for range g.vals.IntBetween(1, 3) {
			itemID := g.vals.UUID()
			quantity := g.vals.IntBetween(1, 5)
			unitPrice := g.vals.Price(10, 500)
			_, err := x.Exec(`INSERT INTO order_items (id, order_id, product_id,
					sku_snapshot, name_snapshot, quantity, unit_price, total_price,
					_status, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				itemID, orderID, g.vals.PickOptional(g.state.Products, 0.05),
				fmt.Sprintf("SKU-%d", g.vals.IntBetween(1000, 9999)),
				titleWord(g.vals.Faker().Word()), quantity, unitPrice,
				float64(int(float64(quantity)*unitPrice*100))/100,
				"created", g.vals.PastTimestamp(300), g.vals.PastTimestamp(30))
			if err != nil {
				return 0, fmt.Errorf("insert order item: %w", err)
			}
			g.state.OrderItems = append(g.state.OrderItems, itemID)
		}
	}
	return len(g.state.OrderItems), nil
}

func (g *Generator) genCheckouts(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Checkouts; i++ {
		checkoutID := g.vals.UUID()
		subtotal := g.vals.Price(50, 1000)
		items := g.vals.JSON([]map[string]any{
			{"product_id": g.vals.Pick(g.state.Products), "qty": 1},
		})
		_, err := x.Exec(`INSERT INTO checkouts (id, token, email, items, currency,
				subtotal_price, total_price, status, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			checkoutID, g.vals.UUID(), g.vals.Faker().Email(), items, "BRL",
			subtotal, subtotal, g.vals.Pick(checkoutStatuses),
			"created", g.vals.PastTimestamp(60), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert checkout: %w", err)
		}
		g.state.Checkouts = append(g.state.Checkouts, checkoutID)
	}
	return len(g.state.Checkouts), nil
}

func (g *Generator) genPosSessions(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.PosSessions; i++ {
		sessionID := g.vals.UUID()
		_, err := x.Exec(`INSERT INTO pos_sessions (id, location_id, operator_id, terminal_id,
				session_number, status, opening_cash_amount, total_sales,
				_status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sessionID, g.vals.PickOptional(g.state.Locations, 0.1),
			g.vals.Pick(g.state.Users),
			fmt.Sprintf("TERM-%02d", g.vals.IntBetween(1, 5)),
			i+1, g.vals.Pick(posStatuses),
			g.vals.Price(100, 500), g.vals.Price(500, 3000),
			"created", g.vals.PastTimestamp(60), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert pos session: %w", err)
		}
		g.state.PosSessions = append(g.state.PosSessions, sessionID)
	}
	return len(g.state.PosSessions), nil
}

func (g *Generator) genInquiries(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Inquiries; i++ {
		inquiryID := g.vals.UUID()
		requester := g.vals.JSON(map[string]string{
			"name":  g.vals.Faker().Name(),
			"email": g.vals.Faker().Email(),
		})
		_, err := x.Exec(`INSERT INTO inquiries (id, protocol_number, type, status, priority,
				source, customer_id, requester_data, subject, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			inquiryID, fmt.Sprintf("INQ-%d%06d", g.vals.Now().Year(), i),
			g.vals.Pick(inquiryTypes), g.vals.Pick(inquiryStatuses),
			g.vals.Pick(inquiryPriorities), g.vals.Pick(inquirySources),
			g.vals.PickOptional(g.state.Customers, nullCustomerProbClaims),
			requester, g.vals.Faker().Sentence(5),
			"created", g.vals.PastTimestamp(90), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert inquiry: %w", err)
		}
		g.state.Inquiries = append(g.state.Inquiries, inquiryID)
	}
	return len(g.state.Inquiries), nil
}

func (g *Generator) genTransactionItems(x store.Execer) (int, error) {
	count := 0
	for _, transactionID := range g.state.Transactions {
		for range g.vals.IntBetween(1, 3) {
			_, err := x.Exec(`INSERT INTO transaction_items (id, transaction_id, product_id,
					sku_snapshot, name_snapshot, quantity, unit_price,
					_status, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				g.vals.UUID(), transactionID, g.vals.PickOptional(g.state.Products, 0.05),
				fmt.Sprintf("SKU-%d", g.vals.IntBetween(1000, 9999)),
				titleWord(g.vals.Faker().Word()),
				g.vals.IntBetween(1, 5), g.vals.Price(10, 500),
				"created", g.vals.PastTimestamp(300), g.vals.PastTimestamp(30))
			if err != nil {
				return 0, fmt.Errorf("insert transaction item: %w", err)
			}
			count++
		}
	}
	return count, nil
}

func (g *Generator) genPayments(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Payments; i++ {
		paymentID := g.vals.UUID()
		_, err := x.Exec(`INSERT INTO payments (id, transaction_id, amount, currency,
				provider, method, status, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			paymentID, g.vals.Pick(g.state.Transactions), g.vals.Price(20, 1000), "BRL",
			g.vals.Pick(paymentProviders), g.vals.Pick(paymentMethods),
			g.vals.Pick(captureStatuses),
			"created", g.vals.PastTimestamp(300), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert payment: %w", err)
		}
		g.state.Payments = append(g.state.Payments, paymentID)
	}
	return len(g.state.Payments), nil
}

func (g *Generator) genShipments(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Shipments; i++ {
		shipmentID := g.vals.UUID()
		_, err := x.Exec(`INSERT INTO shipments (id, order_id, location_id, status,
				carrier_company, tracking_number, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			shipmentID, g.vals.Pick(g.state.Orders),
			g.vals.PickOptional(g.state.Locations, 0.2),
			g.vals.Pick(shipmentStatuses), g.vals.Pick(carriers),
			fmt.Sprintf("BR%09dBR", g.vals.IntBetween(100000000, 999999999)),
			"created", g.vals.PastTimestamp(90), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert shipment: %w", err)
		}
		g.state.Shipments = append(g.state.Shipments, shipmentID)
	}
	return len(g.state.Shipments), nil
}

func (g *Generator) genInquiryMessages(x store.Execer) (int, error) {
	count := 0
	for _, inquiryID := range g.state.Inquiries {
		for range g.vals.IntBetween(1, 4) {
			_, err := x.Exec(`INSERT INTO inquiry_messages (id, inquiry_id, sender_type,
					body, _status, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				g.vals.UUID(), inquiryID, g.vals.Pick(senderTypes),
				g.vals.Faker().Paragraph(1, 2, 8, " "),
				"created", g.vals.PastTimestamp(60), g.vals.PastTimestamp(30))
			if err != nil {
				return 0, fmt.Errorf("insert inquiry message: %w", err)
			}
			count++
		}
	}
	return count, nil
}

func (g *Generator) genReviews(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Reviews; i++ {
		_, err := x.Exec(`INSERT INTO reviews (id, order_id, customer_id, product_id, rating,
				title, body, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			g.vals.UUID(), g.vals.Pick(g.state.Orders),
			g.vals.PickOptional(g.state.Customers, 0.2),
			g.vals.PickOptional(g.state.Products, 0.1),
			ratingPool[g.vals.IntBetween(0, len(ratingPool)-1)],
			g.vals.Faker().Sentence(4), g.vals.Faker().Paragraph(1, 2, 8, " "),
			"created", g.vals.PastTimestamp(180), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert review: %w", err)
		}
	}
	return g.cfg.Counts.Reviews, nil
}

// genInventoryMovements emits inbound movements only: outbound movements are
// subject to the stock-level trigger, which this generator does not simulate.
func (g *Generator) genInventoryMovements(x store.Execer) (int, error) {
	count := 0
	for _, levelID := range g.vals.Sample(g.state.InventoryLevels, movementLevelCap) {
		_, err := x.Exec(`INSERT INTO inventory_movements (id, transaction_id,
				inventory_level_id, type, quantity, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			g.vals.UUID(), g.vals.PickOptional(g.state.Transactions, 0.3),
			levelID, "in", g.vals.IntBetween(1, 20),
			"created", g.vals.PastTimestamp(180), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert inventory movement: %w", err)
		}
		count++
	}
	return count, nil
}

func (g *Generator) genRefunds(x store.Execer) (int, error) {
	count := 0
	sampleSize := int(float64(len(g.state.Payments)) * refundSampleRate)
	for _, paymentID := range g.vals.Sample(g.state.Payments, sampleSize) {
		_, err := x.Exec(`INSERT INTO refunds (id, payment_id, amount, status, reason,
				_status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			g.vals.UUID(), paymentID, g.vals.Price(10, 200),
			g.vals.Pick(refundStatuses), g.vals.Pick(refundReasons),
			"created", g.vals.PastTimestamp(90), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert refund: %w", err)
		}
		count++
	}
	return count, nil
}

func (g *Generator) genShipmentItems(x store.Execer) (int, error) {
	count := 0
	for _, shipmentID := range g.state.Shipments {
		for range g.vals.IntBetween(1, 3) {
			_, err := x.Exec(`INSERT INTO shipment_items (id, shipment_id, order_item_id,
					quantity, _status, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				g.vals.UUID(), shipmentID, g.vals.Pick(g.state.OrderItems),
				g.vals.IntBetween(1, 3),
				"created", g.vals.PastTimestamp(90), g.vals.PastTimestamp(30))
			if err != nil {
				return 0, fmt.Errorf("insert shipment item: %w", err)
			}
			count++
		}
	}
	return count, nil
}

// genShipmentEvents writes a short tracking trail per shipment. Events are
// stored most-recent-first: each successive event happened 0..120 hours
// before the previous one, so happened_at never increases with event index.
func (g *Generator) genShipmentEvents(x store.Execer) (int, error) {
	count := 0
	for _, shipmentID := range g.state.Shipments {
		happened := g.vals.PastTime(90)
		k := g.vals.IntBetween(1, 3)
		for _, status := range trackingStatuses[:k] {
			_, err := x.Exec(`INSERT INTO shipment_events (id, shipment_id, status,
					description, location, happened_at, _status, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				g.vals.UUID(), shipmentID, status, "Evento: "+status,
				fmt.Sprintf("%s, %s", g.vals.Faker().City(), g.vals.Faker().StateAbr()),
				happened.Format(timestampLayout),
				"created", g.vals.PastTimestamp(90), g.vals.PastTimestamp(30))
			if err != nil {
				return 0, fmt.Errorf("insert shipment event: %w", err)
			}
			happened = happened.Add(-time.Duration(g.vals.IntBetween(0, 120)) * time.Hour)
			count++
		}
	}
	return count, nil
}

// titleWord uppercases the first letter of a fake word for name snapshots.
func titleWord(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
