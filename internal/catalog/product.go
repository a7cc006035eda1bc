package catalog

// Product represents a purchasable catalog entry.
// Records are seeded once at startup and are immutable afterwards; there is
// no update or delete endpoint.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// SampleProducts is the fixed set inserted when the catalog is empty.
var SampleProducts = []Product{
	{
		Name:        "Boat Rockerz Headphones",
		Price:       1999,
		Description: "Wireless headphones with 40mm drivers and 20hrs battery",
		Image:       "http://localhost:3000/images/headphone.webp",
	},
	{
		Name:        "OnePlus Nord 5G",
		Price:       29999,
		Description: "5G smartphone with 64MP camera and 90Hz display",
		Image:       "https://via.placeholder.com/300x300/059669/ffffff?text=Smartphone",
	},
	{
		Name:        "HP Pavilion Laptop",
		Price:       64999,
		Description: "Intel i5, 16GB RAM, 512GB SSD for work and gaming",
		Image:       "https://via.placeholder.com/300x300/d97706/ffffff?text=Laptop",
	},
	{
		Name:        "Noise ColorFit Pro",
		Price:       3499,
		Description: "Smartwatch with 1.3\" display and heart rate monitoring",
		Image:       "https://via.placeholder.com/300x300/7c3aed/ffffff?text=Smartwatch",
	},
	{
		Name:        "Samsung Galaxy Tab",
		Price:       24999,
		Description: "10.4\" tablet with S-Pen for creativity and productivity",
		Image:       "https://via.placeholder.com/300x300/dc2626/ffffff?text=Tablet",
	},
	{
		Name:        "Sony PlayStation 5",
		Price:       49999,
		Description: "Next-gen gaming console with 4K 120fps support",
		Image:       "https://via.placeholder.com/300x300/475569/ffffff?text=Gaming",
	},
	{
		Name:        "Canon EOS 200D",
		Price:       45999,
		Description: "DSLR camera with 24MP sensor for photography enthusiasts",
		Image:       "https://via.placeholder.com/300x300/1e40af/ffffff?text=Camera",
	},
	{
		Name:        "JBL Flip 5 Speaker",
		Price:       9999,
		Description: "Portable Bluetooth speaker with 12hrs battery life",
		Image:       "https://via.placeholder.com/300x300/ea580c/ffffff?text=Speaker",
	},
}
