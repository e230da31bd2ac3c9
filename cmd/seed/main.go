package main

import (
	"go-pos-ws/internal/model"
	"go-pos-ws/pkg/database"
	"go-pos-ws/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Loads the demo catalog so a fresh install has something to sell.

type seedProduct struct {
	name        string
	price       string
	category    string
	stock       int
	barcode     string
	description string
}

var seedCategories = map[string]string{
	"Beverages": "Hot and cold drinks",
	"Snacks":    "Light snacks and treats",
	"Bakery":    "Fresh baked goods",
	"Food":      "Main meals and dishes",
	"Dairy":     "Dairy products",
}

var seedProducts = []seedProduct{
	{"Premium Coffee Beans", "24.99", "Beverages", 50, "1234567890123", "High-quality arabica coffee beans"},
	{"Organic Green Tea", "18.50", "Beverages", 30, "1234567890124", "Organic green tea leaves"},
	{"Artisan Chocolate Bar", "12.99", "Snacks", 25, "1234567890125", "Handcrafted dark chocolate"},
	{"Fresh Croissant", "4.50", "Bakery", 20, "1234567890126", "Buttery, flaky croissant"},
	{"Gourmet Sandwich", "14.99", "Food", 15, "1234567890127", "Fresh ingredients sandwich"},
	{"Fresh Orange Juice", "6.99", "Beverages", 40, "1234567890128", "Freshly squeezed orange juice"},
	{"Blueberry Muffin", "3.99", "Bakery", 35, "1234567890129", "Fresh blueberry muffin"},
	{"Greek Yogurt", "5.49", "Dairy", 28, "1234567890130", "Creamy greek yogurt"},
}

func main() {
	envErr := godotenv.Load()
	if err := logger.Init("info", ""); err != nil {
		panic(err)
	}
	log := logger.L()
	if envErr != nil {
		log.Warn(".env file not found")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	if err := db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Customer{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.User{},
	); err != nil {
		log.Fatal("auto-migration failed", zap.Error(err))
	}

	var productCount int64
	db.Model(&model.Product{}).Count(&productCount)
	if productCount > 0 {
		log.Info("catalog already seeded, nothing to do")
		return
	}

	categories := make(map[string]*model.Category, len(seedCategories))
	for name, description := range seedCategories {
		category := &model.Category{Name: name, Description: description}
		if err := db.Create(category).Error; err != nil {
			log.Fatal("seed category failed", zap.String("name", name), zap.Error(err))
		}
		categories[name] = category
	}

	for _, p := range seedProducts {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			log.Fatal("bad seed price", zap.String("product", p.name), zap.Error(err))
		}
		categoryID := categories[p.category].ID
		product := &model.Product{
			Name:        p.name,
			Price:       price,
			CategoryID:  &categoryID,
			Stock:       p.stock,
			Barcode:     p.barcode,
			Description: p.description,
		}
		if err := db.Create(product).Error; err != nil {
			log.Fatal("seed product failed", zap.String("name", p.name), zap.Error(err))
		}
	}

	walkIn := &model.Customer{Name: "Walk-in Customer"}
	if err := db.Create(walkIn).Error; err != nil {
		log.Fatal("seed customer failed", zap.Error(err))
	}

	log.Info("seed complete",
		zap.Int("categories", len(seedCategories)),
		zap.Int("products", len(seedProducts)),
	)
}
