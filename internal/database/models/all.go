package models

// All returns every model managed by AutoMigrate
func All() []interface{} {
	return []interface{}{
		&Location{},
		&Component{},
		&Project{},
		&ProjectItem{},
		&Supplier{},
		&SupplierOffer{},
		&InventoryTransaction{},
	}
}
