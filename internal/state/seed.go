// internal/state/seed.go
package state

import (
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/user"
)

// seed loads the demo dataset: three themed stores sharing one catalog,
// order and user model.
func (c *Container) seed() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stores = []catalog.Store{
		{
			ID:                "store1",
			Name:              "Quill & Coil",
			Type:              catalog.StoreTypeQuilling,
			ThemeColor:        "quilling",
			HeroImage:         "https://images.unsplash.com/photo-1576527582522-835260e0a516?q=80&w=2940&auto=format&fit=crop",
			Tagline:           "Handcrafted Elegance in Paper.",
			Address:           "123 Paper Lane, Craft City, CA 90210",
			Email:             "hello@quillandcoil.com",
			Phone:             "+1 (555) 123-4567",
			PaymentGatewayKey: "rzp_test_1234567890",
		},
		{
			ID:                "store2",
			Name:              "Gifty",
			Type:              catalog.StoreTypeGifts,
			ThemeColor:        "gifts",
			HeroImage:         "https://images.unsplash.com/photo-1513201099705-a9746e1e201f?q=80&w=2894&auto=format&fit=crop",
			Tagline:           "Gifts for Every Occasion.",
			Address:           "456 Surprise Blvd, Gift Town, NY 10001",
			Email:             "support@gifty.com",
			Phone:             "+1 (555) 987-6543",
			PaymentGatewayKey: "rzp_test_1234567890",
		},
		{
			ID:                "store3",
			Name:              "Canvas & Hue",
			Type:              catalog.StoreTypeArt,
			ThemeColor:        "art",
			HeroImage:         "https://images.unsplash.com/photo-1460661419201-fd4cecdf8a8b?q=80&w=2800&auto=format&fit=crop",
			Tagline:           "Original Art & Masterpieces.",
			Address:           "789 Easel Street, Artville, TX 75001",
			Email:             "contact@canvasandhue.com",
			Phone:             "+1 (555) 456-7890",
			PaymentGatewayKey: "rzp_test_1234567890",
		},
	}

	c.categories = []catalog.Category{
		{ID: "c1", StoreID: "store1", Name: "Earrings", Image: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?q=80&w=2000&auto=format&fit=crop"},
		{ID: "c2", StoreID: "store1", Name: "Necklaces", Image: "https://images.unsplash.com/photo-1599643478518-17488fbbcd75?q=80&w=2000&auto=format&fit=crop"},
		{ID: "c3", StoreID: "store1", Name: "Home Decor", Image: "https://images.unsplash.com/photo-1513519245088-0e12902e5a38?q=80&w=2000&auto=format&fit=crop"},
		{ID: "c4", StoreID: "store2", Name: "Hampers", Image: "https://images.unsplash.com/photo-1549465220-1a8b9238cd48?q=80&w=2000&auto=format&fit=crop"},
		{ID: "c5", StoreID: "store2", Name: "Personalized", Image: "https://images.unsplash.com/photo-1515934751635-c81c6bc9a2d8?q=80&w=2000&auto=format&fit=crop"},
		{ID: "c6", StoreID: "store2", Name: "Corporate", Image: "https://images.unsplash.com/photo-1521791136064-7986c2920216?q=80&w=2000&auto=format&fit=crop"},
		{ID: "c7", StoreID: "store3", Name: "Paintings", Image: "https://images.unsplash.com/photo-1579783902614-a3fb39279c0f?q=80&w=2000&auto=format&fit=crop"},
		{ID: "c8", StoreID: "store3", Name: "Sketches", Image: "https://images.unsplash.com/photo-1628147496739-c70e334a123e?q=80&w=2000&auto=format&fit=crop"},
		{ID: "c9", StoreID: "store3", Name: "Prints", Image: "https://images.unsplash.com/photo-1561214115-f2f134cc4912?q=80&w=2000&auto=format&fit=crop"},
	}

	c.products = []catalog.Product{
		{ID: "p1", StoreID: "store1", Name: "Sunrise Mandala Earrings", Brand: "PaperGems", Category: "Earrings", Price: 25, Stock: 15, Rating: 4.8, Image: "https://images.unsplash.com/photo-1617038260897-41a1f14a8ca0?q=80&w=2000&auto=format&fit=crop", Description: "Intricate sunrise mandala design handcrafted with acid-free paper strips."},
		{ID: "p2", StoreID: "store1", Name: "Blue Teardrop Danglers", Brand: "QuillCraft", Category: "Earrings", Price: 18, Stock: 30, Rating: 4.6, Image: "https://images.unsplash.com/photo-1630019852942-e5e1237d6d49?q=80&w=2000&auto=format&fit=crop", Description: "Elegant blue hues in a classic teardrop shape, waterproof coated."},
		{ID: "p3", StoreID: "store1", Name: "Floral Stud Set", Brand: "PaperGems", Category: "Earrings", Price: 12, Stock: 50, Rating: 4.9, Image: "https://images.unsplash.com/photo-1606760227091-3dd870d97f1d?q=80&w=2000&auto=format&fit=crop", Description: "Set of 3 bright floral studs perfect for daily wear."},
		{ID: "p4", StoreID: "store1", Name: "Peacock Feather Pendant", Brand: "QuillArt", Category: "Necklaces", Price: 35, Stock: 10, Rating: 5.0, Image: "https://images.unsplash.com/photo-1601121141461-9d6647bca1ed?q=80&w=2000&auto=format&fit=crop", Description: "Stunning peacock feather design with gold accents."},
		{ID: "p5", StoreID: "store2", Name: "Luxury Spa Box", Brand: "SelfCare Co.", Category: "Hampers", Price: 85, Stock: 20, Rating: 4.8, Image: "https://images.unsplash.com/photo-1608248597279-f99d160bfbc8?q=80&w=2670&auto=format&fit=crop", Description: "Complete spa experience with candles, bath bombs, and lotions."},
		{ID: "p6", StoreID: "store2", Name: "Custom Star Map", Brand: "NightSky", Category: "Personalized", Price: 45, Stock: 100, Rating: 4.7, Image: "https://images.unsplash.com/photo-1518640467707-6811f4a6ab73?q=80&w=2000&auto=format&fit=crop", Description: "A print of the night sky on a specific date and location."},
		{ID: "p7", StoreID: "store2", Name: "Gourmet Chocolate Set", Brand: "CocoaLuxe", Category: "Hampers", Price: 30, Stock: 40, Rating: 4.9, Image: "https://images.unsplash.com/photo-1549007994-cb92caebd54b?q=80&w=2670&auto=format&fit=crop", Description: "Artisan chocolates with exotic fillings."},
		{ID: "p8", StoreID: "store2", Name: "Leather Journal", Brand: "Scribe", Category: "Corporate", Price: 28, Stock: 35, Rating: 4.6, Image: "https://images.unsplash.com/photo-1544816155-12df9643f363?q=80&w=2670&auto=format&fit=crop", Description: "Hand-bound leather journal with premium paper."},
		{ID: "p9", StoreID: "store3", Name: "Abstract Ocean Acrylic", Brand: "ArtistAnna", Category: "Paintings", Price: 150, Stock: 1, Rating: 5.0, Image: "https://images.unsplash.com/photo-1579783902614-a3fb39279c0f?q=80&w=2000&auto=format&fit=crop", Description: "Original acrylic pouring art on canvas, 24x36 inches."},
		{ID: "p10", StoreID: "store3", Name: "Charcoal Portrait Sketch", Brand: "SketchStudio", Category: "Sketches", Price: 80, Stock: 5, Rating: 4.8, Image: "https://images.unsplash.com/photo-1628147496739-c70e334a123e?q=80&w=2670&auto=format&fit=crop", Description: "Expressive charcoal sketch on archival paper."},
		{ID: "p11", StoreID: "store3", Name: "Watercolor Landscape", Brand: "NatureArt", Category: "Paintings", Price: 120, Stock: 1, Rating: 4.9, Image: "https://images.unsplash.com/photo-1578321272176-b7bbc0679853?q=80&w=2000&auto=format&fit=crop", Description: "Serene mountain landscape in watercolor."},
		{ID: "p12", StoreID: "store3", Name: "Digital Art Print", Brand: "NeoVibe", Category: "Prints", Price: 25, Stock: 50, Rating: 4.5, Image: "https://images.unsplash.com/photo-1561214115-f2f134cc4912?q=80&w=2000&auto=format&fit=crop", Description: "High-quality print of modern digital surrealism."},
	}

	c.orders = []order.Order{
		{ID: "o1", CustomerName: "Alice Green", Total: 43, Status: order.StatusDelivered, Date: "2023-10-15", StoreID: "store1", Items: []order.Item{}, ShippingAddress: "123 Fake St, City", PaymentMethod: order.PaymentMethodGateway},
		{ID: "o2", CustomerName: "Mark Twain", Total: 85, Status: order.StatusProcessing, Date: "2023-10-20", StoreID: "store2", Items: []order.Item{}, ShippingAddress: "456 River Rd, Town", PaymentMethod: order.PaymentMethodCOD},
		{ID: "o3", CustomerName: "Sarah Connor", Total: 150, Status: order.StatusPending, Date: "2023-10-21", StoreID: "store3", Items: []order.Item{}, ShippingAddress: "789 Sky Net, Future", PaymentMethod: order.PaymentMethodGateway},
		{ID: "o4", CustomerName: "John Wick", Total: 25, Status: order.StatusDelivered, Date: "2023-10-22", StoreID: "store1", Items: []order.Item{}, ShippingAddress: "Continental Hotel, NYC", PaymentMethod: order.PaymentMethodCOD},
	}

	c.users = []user.User{
		{ID: "u1", Name: "John Doe", Email: "john@example.com", Role: user.RoleCustomer, JoinedDate: "2023-10-01", Phone: "1234567890", Address: "123 Main St, New York, NY", Password: "password123"},
		{ID: "u2", Name: "Jane Smith", Email: "jane@example.com", Role: user.RoleCustomer, JoinedDate: "2023-10-15", Phone: "9876543210", Address: "456 Elm St, Los Angeles, CA", Password: "password123"},
		{ID: "u3", Name: "Admin", Email: "admin@gmail.com", Role: user.RoleAdmin, JoinedDate: "2023-01-01", Password: "Dark360@"},
	}
}
