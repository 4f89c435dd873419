package store

// SeedCatalog returns the reference products loaded after every reset.
func SeedCatalog() []Product {
	return []Product{
		{Name: "sponge", Category: "bathroom", Price: 0.56},
		{Name: "pot", Category: "kitchen", Price: 20.99},
		{Name: "pillow", Category: "bedroom", Price: 5.49},
		{Name: "toothbrush", Category: "bathroom", Price: 2.49},
		{Name: "pan", Category: "kitchen", Price: 15.75},
		{Name: "blanket", Category: "bedroom", Price: 22.00},
		{Name: "soap", Category: "bathroom", Price: 1.25},
		{Name: "knife", Category: "kitchen", Price: 12.89},
		{Name: "lamp", Category: "bedroom", Price: 30.50},
		{Name: "shampoo", Category: "bathroom", Price: 3.99},
		{Name: "spatula", Category: "kitchen", Price: 5.49},
		{Name: "sheet", Category: "bedroom", Price: 14.99},
		{Name: "toilet paper", Category: "bathroom", Price: 0.89},
		{Name: "cutting board", Category: "kitchen", Price: 8.50},
		{Name: "curtains", Category: "bedroom", Price: 45.00},
		{Name: "bath towel", Category: "bathroom", Price: 6.75},
	}
}
