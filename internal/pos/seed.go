package pos

// DefaultProducts & DefaultUsers dipakai untuk seed mirror pada first run.
func DefaultProducts() []Product {
	return []Product{
		{ID: "1", Name: "Premium Coffee Bean", Category: "Coffee", Price: 150000, Stock: 45, ImageURL: "https://picsum.photos/seed/coffee/200"},
		{ID: "2", Name: "Fresh Milk 1L", Category: "Dairy", Price: 25000, Stock: 120, ImageURL: "https://picsum.photos/seed/milk/200"},
		{ID: "3", Name: "Organic Matcha Powder", Category: "Tea", Price: 210000, Stock: 15, ImageURL: "https://picsum.photos/seed/matcha/200"},
		{ID: "4", Name: "Dark Chocolate Bar", Category: "Snacks", Price: 45000, Stock: 60, ImageURL: "https://picsum.photos/seed/choc/200"},
		{ID: "5", Name: "Eco-friendly Cup", Category: "Misc", Price: 5000, Stock: 500, ImageURL: "https://picsum.photos/seed/cup/200"},
		{ID: "6", Name: "Baguette", Category: "Bakery", Price: 18000, Stock: 30, ImageURL: "https://picsum.photos/seed/bread/200"},
		{ID: "7", Name: "Croissant", Category: "Bakery", Price: 12000, Stock: 40, ImageURL: "https://picsum.photos/seed/croissant/200"},
		{ID: "8", Name: "Espresso Machine Cleaner", Category: "Misc", Price: 85000, Stock: 20, ImageURL: "https://picsum.photos/seed/cleaner/200"},
		{ID: "9", Name: "Iced Tea Syrup", Category: "Beverage", Price: 32000, Stock: 85, ImageURL: "https://picsum.photos/seed/syrup/200"},
		{ID: "10", Name: "Paper Napkins (Pack)", Category: "Misc", Price: 15000, Stock: 150, ImageURL: "https://picsum.photos/seed/napkin/200"},
		{ID: "11", Name: "Caramel Sauce", Category: "Beverage", Price: 42000, Stock: 12, ImageURL: "https://picsum.photos/seed/caramel/200"},
		{ID: "12", Name: "Almond Milk", Category: "Dairy", Price: 38000, Stock: 24, ImageURL: "https://picsum.photos/seed/almond/200"},
	}
}

func DefaultUsers() []User {
	return []User{
		{ID: "admin-1", Name: "System Admin", PIN: "1234", Role: RoleAdmin},
		{ID: "cashier-1", Name: "Ani Kasir", PIN: "0000", Role: RoleKasir},
		{ID: "sales-1", Name: "Budi Sales", PIN: "1111", Role: RoleSales},
		{ID: "gudang-1", Name: "Gudang Master", PIN: "2222", Role: RoleGudang},
	}
}
