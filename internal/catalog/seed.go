package catalog

import "github.com/pricebite/pricebite-backend/internal/models"

// Seed returns the seeded product data set. Order matters: it defines the
// catalog iteration order used by the legacy name lookup.
func Seed() []models.Product {
	return []models.Product{
		// Dairy
		{
			ID: "milk_amul_1l", Name: "Milk", Brand: "Amul",
			Category: "Grocery", Subcategory: "Dairy",
			PackageSize: "1 Liter", UnitPrice: 52, Unit: "per liter",
			NutritionalInfo: &models.NutritionalInfo{Calories: 42, Protein: 3.4, Fat: 3.9, Carbs: 5},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 52, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 55, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 54, Available: true, DeliveryTime: "18 mins"},
			},
		},
		{
			ID: "milk_motherdairy_1l", Name: "Milk", Brand: "Mother Dairy",
			Category: "Grocery", Subcategory: "Dairy",
			PackageSize: "1 Liter", UnitPrice: 50, Unit: "per liter",
			NutritionalInfo: &models.NutritionalInfo{Calories: 45, Protein: 3.2, Fat: 4.0, Carbs: 4.8},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 50, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 52, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 51, Available: false, DeliveryTime: "N/A"},
			},
		},
		{
			ID: "eggs_amul_12pcs", Name: "Eggs", Brand: "Amul",
			Category: "Grocery", Subcategory: "Dairy",
			PackageSize: "12 Pieces", UnitPrice: 89, Unit: "per dozen",
			NutritionalInfo: &models.NutritionalInfo{Calories: 155, Protein: 13, Fat: 11, Carbs: 1.1},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 89, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 92, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 87, Available: true, DeliveryTime: "18 mins"},
			},
		},
		{
			ID: "butter_amul_500g", Name: "Butter", Brand: "Amul",
			Category: "Grocery", Subcategory: "Dairy",
			PackageSize: "500g", UnitPrice: 245, Unit: "per 500g",
			NutritionalInfo: &models.NutritionalInfo{Calories: 717, Protein: 0.9, Fat: 81, Carbs: 0.1},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 245, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 248, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 242, Available: true, DeliveryTime: "18 mins"},
			},
		},

		// Vegetables
		{
			ID: "tomatoes_fresh_1kg", Name: "Tomatoes", Brand: "Fresh",
			Category: "Grocery", Subcategory: "Vegetables",
			PackageSize: "1 kg", UnitPrice: 28, Unit: "per kg",
			NutritionalInfo: &models.NutritionalInfo{Calories: 18, Protein: 0.9, Fat: 0.2, Carbs: 3.9},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 28, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 30, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 27, Available: true, DeliveryTime: "18 mins"},
			},
		},
		{
			ID: "onions_fresh_1kg", Name: "Onions", Brand: "Fresh",
			Category: "Grocery", Subcategory: "Vegetables",
			PackageSize: "1 kg", UnitPrice: 35, Unit: "per kg",
			NutritionalInfo: &models.NutritionalInfo{Calories: 40, Protein: 1.1, Fat: 0.1, Carbs: 9.3},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 35, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 38, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 34, Available: true, DeliveryTime: "18 mins"},
			},
		},
		{
			ID: "potatoes_fresh_1kg", Name: "Potatoes", Brand: "Fresh",
			Category: "Grocery", Subcategory: "Vegetables",
			PackageSize: "1 kg", UnitPrice: 22, Unit: "per kg",
			NutritionalInfo: &models.NutritionalInfo{Calories: 77, Protein: 2, Fat: 0.1, Carbs: 17},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 22, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 24, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 21, Available: true, DeliveryTime: "18 mins"},
			},
		},

		// Electronics
		{
			ID: "iphone_15_128gb", Name: "iPhone 15", Brand: "Apple",
			Category: "Electronics", Subcategory: "Mobile Phones",
			PackageSize: "128GB", UnitPrice: 79999, Unit: "per device",
			Platforms: []models.PlatformOffer{
				{Platform: "Amazon", Price: 79999, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Flipkart", Price: 78999, Available: true, DeliveryTime: "3-4 days"},
				{Platform: "Reliance Digital", Price: 77999, Available: true, DeliveryTime: "Same day"},
			},
		},
		{
			ID: "samsung_galaxy_s24", Name: "Samsung Galaxy S24", Brand: "Samsung",
			Category: "Electronics", Subcategory: "Mobile Phones",
			PackageSize: "256GB", UnitPrice: 64999, Unit: "per device",
			Platforms: []models.PlatformOffer{
				{Platform: "Amazon", Price: 64999, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Flipkart", Price: 63999, Available: true, DeliveryTime: "3-4 days"},
				{Platform: "Croma", Price: 65999, Available: true, DeliveryTime: "Same day"},
			},
		},
		{
			ID: "laptop_hp_pavilion", Name: "HP Pavilion 15", Brand: "HP",
			Category: "Electronics", Subcategory: "Laptops",
			PackageSize: "15.6\" FHD", UnitPrice: 54999, Unit: "per device",
			Platforms: []models.PlatformOffer{
				{Platform: "Amazon", Price: 54999, Available: true, DeliveryTime: "3-5 days"},
				{Platform: "Flipkart", Price: 52999, Available: true, DeliveryTime: "4-6 days"},
				{Platform: "Reliance Digital", Price: 55999, Available: true, DeliveryTime: "2-3 days"},
			},
		},

		// Fashion
		{
			ID: "tshirt_nike_black", Name: "Nike T-Shirt", Brand: "Nike",
			Category: "Fashion", Subcategory: "Men's Clothing",
			PackageSize: "M", UnitPrice: 1299, Unit: "per piece",
			Platforms: []models.PlatformOffer{
				{Platform: "Myntra", Price: 1299, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Amazon", Price: 1199, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Flipkart", Price: 999, Available: true, DeliveryTime: "3-4 days"},
			},
		},
		{
			ID: "jeans_levi_501", Name: "Levi's 501 Jeans", Brand: "Levi's",
			Category: "Fashion", Subcategory: "Men's Clothing",
			PackageSize: "32W", UnitPrice: 3499, Unit: "per piece",
			Platforms: []models.PlatformOffer{
				{Platform: "Myntra", Price: 3499, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Amazon", Price: 3299, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Ajio", Price: 2999, Available: true, DeliveryTime: "3-5 days"},
			},
		},
		{
			ID: "dress_zara_summer", Name: "Zara Summer Dress", Brand: "Zara",
			Category: "Fashion", Subcategory: "Women's Clothing",
			PackageSize: "M", UnitPrice: 2499, Unit: "per piece",
			Platforms: []models.PlatformOffer{
				{Platform: "Zara", Price: 2499, Available: true, DeliveryTime: "3-5 days"},
				{Platform: "Myntra", Price: 2399, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Amazon", Price: 2299, Available: true, DeliveryTime: "2-3 days"},
			},
		},

		// Home & Kitchen
		{
			ID: "air_fryer_philips", Name: "Philips Air Fryer", Brand: "Philips",
			Category: "Home & Kitchen", Subcategory: "Kitchen Appliances",
			PackageSize: "4.5L", UnitPrice: 8999, Unit: "per device",
			Platforms: []models.PlatformOffer{
				{Platform: "Amazon", Price: 8999, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Flipkart", Price: 8499, Available: true, DeliveryTime: "3-4 days"},
				{Platform: "Croma", Price: 9299, Available: true, DeliveryTime: "Same day"},
			},
		},
		{
			ID: "washing_machine_lg", Name: "LG Washing Machine", Brand: "LG",
			Category: "Home & Kitchen", Subcategory: "Home Appliances",
			PackageSize: "7kg Front Load", UnitPrice: 24999, Unit: "per device",
			Platforms: []models.PlatformOffer{
				{Platform: "Amazon", Price: 24999, Available: true, DeliveryTime: "3-5 days"},
				{Platform: "Flipkart", Price: 23999, Available: true, DeliveryTime: "4-6 days"},
				{Platform: "Reliance Digital", Price: 25999, Available: true, DeliveryTime: "2-3 days"},
			},
		},
		{
			ID: "sofa_urban_ladder", Name: "Urban Ladder 3 Seater Sofa", Brand: "Urban Ladder",
			Category: "Home & Kitchen", Subcategory: "Furniture",
			PackageSize: "3 Seater", UnitPrice: 18999, Unit: "per piece",
			Platforms: []models.PlatformOffer{
				{Platform: "Amazon", Price: 18999, Available: true, DeliveryTime: "5-7 days"},
				{Platform: "Pepperfry", Price: 17999, Available: true, DeliveryTime: "7-10 days"},
				{Platform: "Urban Ladder", Price: 19999, Available: true, DeliveryTime: "3-5 days"},
			},
		},

		// Beauty & Personal Care
		{
			ID: "lipstick_maybelline", Name: "Maybelline Lipstick", Brand: "Maybelline",
			Category: "Beauty & Personal Care", Subcategory: "Makeup",
			PackageSize: "4.2g", UnitPrice: 499, Unit: "per piece",
			Platforms: []models.PlatformOffer{
				{Platform: "Nykaa", Price: 499, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Amazon", Price: 449, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Flipkart", Price: 399, Available: true, DeliveryTime: "3-4 days"},
			},
		},
		{
			ID: "face_wash_himalaya", Name: "Himalaya Face Wash", Brand: "Himalaya",
			Category: "Beauty & Personal Care", Subcategory: "Skincare",
			PackageSize: "100ml", UnitPrice: 199, Unit: "per piece",
			Platforms: []models.PlatformOffer{
				{Platform: "Amazon", Price: 199, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Nykaa", Price: 189, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Flipkart", Price: 179, Available: true, DeliveryTime: "3-4 days"},
			},
		},

		// Sports & Fitness
		{
			ID: "yoga_mat_decathlon", Name: "Decathlon Yoga Mat", Brand: "Decathlon",
			Category: "Sports & Fitness", Subcategory: "Fitness Equipment",
			PackageSize: "6mm", UnitPrice: 799, Unit: "per piece",
			Platforms: []models.PlatformOffer{
				{Platform: "Decathlon", Price: 799, Available: true, DeliveryTime: "3-5 days"},
				{Platform: "Amazon", Price: 699, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Flipkart", Price: 749, Available: true, DeliveryTime: "3-4 days"},
			},
		},
		{
			ID: "dumbbell_amazon", Name: "Amazon Basics Dumbbells", Brand: "Amazon Basics",
			Category: "Sports & Fitness", Subcategory: "Fitness Equipment",
			PackageSize: "10kg Pair", UnitPrice: 1299, Unit: "per pair",
			Platforms: []models.PlatformOffer{
				{Platform: "Amazon", Price: 1299, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Flipkart", Price: 1199, Available: true, DeliveryTime: "3-4 days"},
				{Platform: "Decathlon", Price: 1399, Available: true, DeliveryTime: "3-5 days"},
			},
		},

		// Books & Stationery
		{
			ID: "book_psychology", Name: "Thinking, Fast and Slow", Brand: "Penguin Books",
			Category: "Books & Stationery", Subcategory: "Books",
			PackageSize: "Paperback", UnitPrice: 499, Unit: "per piece",
			Platforms: []models.PlatformOffer{
				{Platform: "Amazon", Price: 499, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Flipkart", Price: 449, Available: true, DeliveryTime: "3-4 days"},
				{Platform: "Crossword", Price: 399, Available: true, DeliveryTime: "4-6 days"},
			},
		},
		{
			ID: "notebook_classmate", Name: "Classmate Notebook", Brand: "Classmate",
			Category: "Books & Stationery", Subcategory: "Stationery",
			PackageSize: "200 Pages", UnitPrice: 120, Unit: "per piece",
			Platforms: []models.PlatformOffer{
				{Platform: "Amazon", Price: 120, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Flipkart", Price: 100, Available: true, DeliveryTime: "3-4 days"},
				{Platform: "Archies", Price: 110, Available: true, DeliveryTime: "4-6 days"},
			},
		},

		// Toys & Games
		{
			ID: "lego_set_star_wars", Name: "LEGO Star Wars Set", Brand: "LEGO",
			Category: "Toys & Games", Subcategory: "Toys",
			PackageSize: "750+ pieces", UnitPrice: 12999, Unit: "per set",
			Platforms: []models.PlatformOffer{
				{Platform: "Amazon", Price: 12999, Available: true, DeliveryTime: "3-5 days"},
				{Platform: "Flipkart", Price: 11999, Available: true, DeliveryTime: "4-6 days"},
				{Platform: "Hamleys", Price: 13999, Available: true, DeliveryTime: "3-5 days"},
			},
		},
		{
			ID: "board_game_chess", Name: "Chess Board Game", Brand: "Funskool",
			Category: "Toys & Games", Subcategory: "Board Games",
			PackageSize: "Wooden", UnitPrice: 599, Unit: "per piece",
			Platforms: []models.PlatformOffer{
				{Platform: "Amazon", Price: 599, Available: true, DeliveryTime: "2-3 days"},
				{Platform: "Flipkart", Price: 549, Available: true, DeliveryTime: "3-4 days"},
				{Platform: "Hamleys", Price: 649, Available: true, DeliveryTime: "3-5 days"},
			},
		},

		// Grains (no subcategory on purpose)
		{
			ID: "rice_basmati_1kg", Name: "Basmati Rice", Brand: "India Gate",
			Category:    "Grains",
			PackageSize: "1 kg", UnitPrice: 156, Unit: "per kg",
			NutritionalInfo: &models.NutritionalInfo{Calories: 347, Protein: 8, Fat: 0.6, Carbs: 77},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 156, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 159, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 154, Available: true, DeliveryTime: "18 mins"},
			},
		},
		{
			ID: "oil_sunflower_1l", Name: "Sunflower Oil", Brand: "Fortune",
			Category:    "Grains",
			PackageSize: "1 Liter", UnitPrice: 189, Unit: "per liter",
			NutritionalInfo: &models.NutritionalInfo{Calories: 884, Protein: 0, Fat: 100, Carbs: 0},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 189, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 192, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 186, Available: true, DeliveryTime: "18 mins"},
			},
		},
		{
			ID: "sugar_refined_1kg", Name: "Sugar", Brand: "Madhur",
			Category:    "Grains",
			PackageSize: "1 kg", UnitPrice: 42, Unit: "per kg",
			NutritionalInfo: &models.NutritionalInfo{Calories: 387, Protein: 0, Fat: 0, Carbs: 100},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 42, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 45, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 41, Available: true, DeliveryTime: "18 mins"},
			},
		},

		// Beverages
		{
			ID: "tea_brookebond_250g", Name: "Tea", Brand: "Brooke Bond",
			Category:    "Beverages",
			PackageSize: "250g", UnitPrice: 128, Unit: "per 250g",
			NutritionalInfo: &models.NutritionalInfo{Calories: 1, Protein: 0, Fat: 0, Carbs: 0},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 128, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 132, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 125, Available: true, DeliveryTime: "18 mins"},
			},
		},
		{
			ID: "coffee_nescafe_100g", Name: "Coffee", Brand: "Nescafé",
			Category:    "Beverages",
			PackageSize: "100g", UnitPrice: 245, Unit: "per 100g",
			NutritionalInfo: &models.NutritionalInfo{Calories: 0, Protein: 0, Fat: 0, Carbs: 0},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 245, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 248, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 242, Available: true, DeliveryTime: "18 mins"},
			},
		},

		// Packaged Foods
		{
			ID: "bread_britannia_400g", Name: "Bread", Brand: "Britannia",
			Category:    "Packaged Foods",
			PackageSize: "400g", UnitPrice: 35, Unit: "per 400g",
			NutritionalInfo: &models.NutritionalInfo{Calories: 265, Protein: 9, Fat: 3.2, Carbs: 49},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 35, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 38, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 36, Available: true, DeliveryTime: "18 mins"},
			},
		},

		// Fruits
		{
			ID: "apples_fresh_1kg", Name: "Apples", Brand: "Fresh",
			Category:    "Fruits",
			PackageSize: "1 kg", UnitPrice: 120, Unit: "per kg",
			NutritionalInfo: &models.NutritionalInfo{Calories: 52, Protein: 0.3, Fat: 0.2, Carbs: 14},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 120, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 125, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 118, Available: true, DeliveryTime: "18 mins"},
			},
		},
		{
			ID: "bananas_fresh_1dozen", Name: "Bananas", Brand: "Fresh",
			Category:    "Fruits",
			PackageSize: "12 Pieces", UnitPrice: 40, Unit: "per dozen",
			NutritionalInfo: &models.NutritionalInfo{Calories: 89, Protein: 1.1, Fat: 0.3, Carbs: 23},
			Platforms: []models.PlatformOffer{
				{Platform: "Zepto", Price: 40, Available: true, DeliveryTime: "15 mins"},
				{Platform: "Blinkit", Price: 42, Available: true, DeliveryTime: "20 mins"},
				{Platform: "Instamart", Price: 38, Available: true, DeliveryTime: "18 mins"},
			},
		},
	}
}
