package memory

import (
	domcategory "example.com/naturemart/app/internal/domain/category"
	domproduct "example.com/naturemart/app/internal/domain/product"
	domstorefront "example.com/naturemart/app/internal/domain/storefront"
)

func rating(v int) *int { return &v }

func reviews(v int) *int { return &v }

// SeedCategories is the static category list the storefront starts with.
func SeedCategories() []*domcategory.Category {
	return []*domcategory.Category{
		{ID: "cat1", Name: domcategory.NameTea, ImageURL: "https://picsum.photos/seed/tea/300/200", Description: "Finest Ceylon teas, from robust black teas to delicate green teas."},
		{ID: "cat2", Name: domcategory.NameSpices, ImageURL: "https://picsum.photos/seed/spices/300/200", Description: "Aromatic spices like cinnamon, pepper, and cardamom."},
		{ID: "cat3", Name: domcategory.NameAyurveda, ImageURL: "https://picsum.photos/seed/ayurveda/300/200", Description: "Traditional Ayurvedic remedies and herbal wellness products."},
		{ID: "cat4", Name: domcategory.NameNaturalCare, ImageURL: "https://picsum.photos/seed/naturalcare/300/200", Description: "Handmade soaps, lotions, and beauty kits with natural ingredients."},
		{ID: "cat5", Name: domcategory.NameGiftPacks, ImageURL: "https://picsum.photos/seed/giftpacks/300/200", Description: "Curated gift packs for a touch of Ceylon wellness."},
	}
}

// SeedProducts is the static catalog. Order matters: listings keep it.
func SeedProducts() []*domproduct.Product {
	return []*domproduct.Product{
		{ID: "prod1", Name: "Ceylon Black Tea (Premium)", Description: "Rich and robust, full-bodied black tea.", PriceUSD: 12.99, Category: domcategory.NameTea, ImageURL: "https://picsum.photos/seed/blacktea/400/300", Rating: rating(5), Reviews: reviews(120), Featured: true},
		{ID: "prod2", Name: "Organic Green Tea", Description: "Light and refreshing organic green tea leaves.", PriceUSD: 15.50, Category: domcategory.NameTea, ImageURL: "https://picsum.photos/seed/greentea/400/300", Rating: rating(4), Reviews: reviews(85)},
		{ID: "prod3", Name: "Herbal Infusion Pack", Description: "A selection of soothing herbal teas.", PriceUSD: 18.00, Category: domcategory.NameTea, ImageURL: "https://picsum.photos/seed/herbaltea/400/300", Rating: rating(4), Reviews: reviews(50), Featured: true},
		{ID: "prod4", Name: "True Cinnamon Sticks", Description: "Authentic Ceylon cinnamon sticks (Alba grade).", PriceUSD: 9.75, Category: domcategory.NameSpices, ImageURL: "https://picsum.photos/seed/cinnamon/400/300", Rating: rating(5), Reviews: reviews(250), Featured: true},
		{ID: "prod5", Name: "Black Pepper Corns", Description: "Whole black peppercorns, strong aroma.", PriceUSD: 7.50, Category: domcategory.NameSpices, ImageURL: "https://picsum.photos/seed/pepper/400/300", Rating: rating(4), Reviews: reviews(60)},
		{ID: "prod6", Name: "Cardamom Pods (Green)", Description: "Fragrant green cardamom pods.", PriceUSD: 11.20, Category: domcategory.NameSpices, ImageURL: "https://picsum.photos/seed/cardamom/400/300", Rating: rating(5), Reviews: reviews(90)},
		{ID: "prod7", Name: "Ayurvedic Herbal Oil", Description: "Traditional herbal oil for massage and relief.", PriceUSD: 22.00, Category: domcategory.NameAyurveda, ImageURL: "https://picsum.photos/seed/herbaloil/400/300", Rating: rating(4), Reviews: reviews(70)},
		{ID: "prod8", Name: "Pain Relief Balm", Description: "Natural balm for aches and pains.", PriceUSD: 10.50, Category: domcategory.NameAyurveda, ImageURL: "https://picsum.photos/seed/balm/400/300", Rating: rating(5), Reviews: reviews(110), Featured: true},
		{ID: "prod9", Name: "Handmade Sandalwood Soap", Description: "Luxurious handmade soap with sandalwood.", PriceUSD: 8.00, Category: domcategory.NameNaturalCare, ImageURL: "https://picsum.photos/seed/sandalwoodsoap/400/300", Rating: rating(4), Reviews: reviews(45)},
		{ID: "prod10", Name: "Aloe Vera Body Lotion", Description: "Soothing and moisturizing body lotion.", PriceUSD: 14.00, Category: domcategory.NameNaturalCare, ImageURL: "https://picsum.photos/seed/aloelotion/400/300", Rating: rating(5), Reviews: reviews(75)},
		{ID: "prod11", Name: "Tea Lover's Gift Set", Description: "A curated selection of our finest teas.", PriceUSD: 35.00, Category: domcategory.NameGiftPacks, ImageURL: "https://picsum.photos/seed/teagift/400/300", Rating: rating(5), Reviews: reviews(95), Featured: true},
		{ID: "prod12", Name: "Spice Discovery Box", Description: "Explore the world of Ceylon spices.", PriceUSD: 28.00, Category: domcategory.NameGiftPacks, ImageURL: "https://picsum.photos/seed/spicegift/400/300", Rating: rating(4), Reviews: reviews(65)},
	}
}

// SeedContent is the static home page content.
func SeedContent() *domstorefront.Content {
	return &domstorefront.Content{
		Contact: domstorefront.Contact{
			Email:    "ceylonnaturemart@gamil.com",
			Phone:    "+94 788336914",
			Address:  "346/1 Rathnapura Batugedara",
			WhatsApp: "+94 788336914",
		},
		SocialLinks: map[string]string{
			"facebook":  "https://facebook.com/ceylonnaturemart",
			"instagram": "https://instagram.com/ceylonnaturemart",
			"twitter":   "https://twitter.com/ceylonnaturemart",
		},
		ShippingPolicy:  "We ship worldwide using SL Post EMS, Aramex, or DHL. Delivery typically takes 7-15 working days. Enjoy flat $5 shipping for all orders over $50!",
		ShippingNote:    "Shipping costs are calculated at checkout based on destination and weight. For orders over $50, a $5 flat rate applies.",
		NewsletterPromo: "Get 10% Off Your First Order",
		HeroSlides: []domstorefront.HeroSlide{
			{ID: "hero1", ImageURL: "https://picsum.photos/seed/ceylonhero1/1200/800", Title: "Discover Authentic Ceylon Flavors", Subtitle: "Handpicked teas, spices, and more."},
			{ID: "hero2", ImageURL: "https://picsum.photos/seed/ceylonhero2/1200/800", Title: "Nature's Best, Delivered to You", Subtitle: "Pure ingredients for a healthier lifestyle."},
			{ID: "hero3", ImageURL: "https://picsum.photos/seed/ceylonhero3/1200/800", Title: "Wellness Rooted in Tradition", Subtitle: "Explore ancient Ayurvedic remedies."},
		},
		Reviews: []domstorefront.Review{
			{ID: "rev1", Author: "Alice M.", Text: "Absolutely love the quality of the spices! My cooking has improved so much.", Rating: 5},
			{ID: "rev2", Author: "John B. (Canada)", Text: "The herbal tea is so calming. Fast shipping too!", Rating: 4},
			{ID: "rev3", Author: "Priya K. (UK)", Text: "Reminds me of home. The natural care products are fantastic.", Rating: 5},
			{ID: "rev4", Author: "David S.", Text: "Great gift packs. My friends loved them!", Rating: 5},
		},
	}
}
