package datagen

// IDState records the identifiers created so far, so downstream generators can
// form valid foreign keys. The orchestrator owns the single instance; nothing
// else holds a reference to it.
//
// Registry-scoped sets survive the whole run. Shop-scoped sets are reset
// before each shop so no identifier leaks between shop databases.
type IDState struct {
	// Registry scope.
	Shops []string
	Users []string
	Roles []string

	// Shop scope, reset per shop.
	Brands          []string
	Categories      []string
	Products        []string
	Locations       []string
	Customers       []string
	CustomerGroups  []string
	Transactions    []string
	Orders          []string
	OrderItems      []string
	Payments        []string
	Checkouts       []string
	Inquiries       []string
	InventoryLevels []string
	Shipments       []string
	PosSessions     []string
}

// NewIDState returns an empty identifier state.
func NewIDState() *IDState {
	return &IDState{}
}

// ResetShop empties every shop-scoped identifier set. Registry sets are kept:
// shop generators still reference users (POS operators) from the registry.
func (s *IDState) ResetShop() {
	s.Brands = nil
	s.Categories = nil
	s.Products = nil
	s.Locations = nil
	s.Customers = nil
	s.CustomerGroups = nil
	s.Transactions = nil
	s.Orders = nil
	s.OrderItems = nil
	s.Payments = nil
	s.Checkouts = nil
	s.Inquiries = nil
	s.InventoryLevels = nil
	s.Shipments = nil
	s.PosSessions = nil
}
