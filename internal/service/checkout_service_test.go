package service

import (
	"errors"
	"testing"
	"time"

	"go-pos-ws/internal/model"

	"github.com/google/uuid"
)

func TestCheckoutCommitsCartAndDecrementsStock(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	productA := createProduct(t, db, "Premium Coffee Beans", "10.00", 50)
	productB := createProduct(t, db, "Fresh Croissant", "5.00", 20)

	committed, err := svc.Checkout(&model.CheckoutRequest{
		Items: []model.CheckoutItem{
			{ProductID: productA.ID, Quantity: 2, Subtotal: dec(t, "20.00")},
			{ProductID: productB.ID, Quantity: 1, Subtotal: dec(t, "5.00")},
		},
		Subtotal:      dec(t, "25.00"),
		Tax:           dec(t, "2.125"),
		Total:         dec(t, "27.125"),
		PaymentMethod: model.PaymentCash,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if !committed.Total.Equal(dec(t, "27.125")) {
		t.Errorf("total = %s, want 27.125", committed.Total)
	}
	if !committed.Subtotal.Equal(dec(t, "25.00")) {
		t.Errorf("subtotal = %s, want 25.00", committed.Subtotal)
	}
	if committed.PaymentMethod != model.PaymentCash {
		t.Errorf("payment method = %s, want cash", committed.PaymentMethod)
	}
	if committed.CreatedAt.IsZero() {
		t.Error("timestamp not assigned")
	}
	if len(committed.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(committed.Items))
	}

	if got := reloadProduct(t, db, productA).Stock; got != 48 {
		t.Errorf("stock(A) = %d, want 48", got)
	}
	if got := reloadProduct(t, db, productB).Stock; got != 19 {
		t.Errorf("stock(B) = %d, want 19", got)
	}
}

func TestCheckoutSnapshotsNameAndPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	product := createProduct(t, db, "Organic Green Tea", "18.50", 30)

	committed, err := svc.Checkout(&model.CheckoutRequest{
		Items:         []model.CheckoutItem{{ProductID: product.ID, Quantity: 1, Subtotal: dec(t, "18.50")}},
		Subtotal:      dec(t, "18.50"),
		Tax:           dec(t, "0"),
		Total:         dec(t, "18.50"),
		PaymentMethod: model.PaymentCard,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// Rename and reprice the product after the sale
	product.Name = "Herbal Tea"
	product.Price = dec(t, "99.99")
	if err := db.Save(product).Error; err != nil {
		t.Fatalf("update product: %v", err)
	}

	fetched, err := svc.GetTransactionByID(committed.ID)
	if err != nil {
		t.Fatalf("re-fetch transaction: %v", err)
	}
	item := fetched.Items[0]
	if item.ProductName != "Organic Green Tea" {
		t.Errorf("item name = %q, want snapshot from commit time", item.ProductName)
	}
	if !item.ProductPrice.Equal(dec(t, "18.50")) {
		t.Errorf("item price = %s, want 18.50", item.ProductPrice)
	}
}

func TestCheckoutMissingProductRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	product := createProduct(t, db, "Gourmet Sandwich", "14.99", 15)

	// The first line is valid and will have decremented stock inside the
	// unit of work before the second line fails.
	_, err := svc.Checkout(&model.CheckoutRequest{
		Items: []model.CheckoutItem{
			{ProductID: product.ID, Quantity: 3, Subtotal: dec(t, "44.97")},
			{ProductID: uuid.New(), Quantity: 1, Subtotal: dec(t, "5.00")},
		},
		Subtotal:      dec(t, "49.97"),
		Tax:           dec(t, "0"),
		Total:         dec(t, "49.97"),
		PaymentMethod: model.PaymentCash,
	})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}

	if got := reloadProduct(t, db, product).Stock; got != 15 {
		t.Errorf("stock = %d, want 15 (unchanged)", got)
	}
	if got := countRows(t, db, &model.Transaction{}); got != 0 {
		t.Errorf("transactions = %d, want 0", got)
	}
	if got := countRows(t, db, &model.TransactionItem{}); got != 0 {
		t.Errorf("transaction items = %d, want 0", got)
	}
}

func TestCheckoutInsufficientStockRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	productA := createProduct(t, db, "Blueberry Muffin", "3.99", 35)
	productB := createProduct(t, db, "Artisan Chocolate Bar", "12.99", 1)

	_, err := svc.Checkout(&model.CheckoutRequest{
		Items: []model.CheckoutItem{
			{ProductID: productA.ID, Quantity: 2, Subtotal: dec(t, "7.98")},
			{ProductID: productB.ID, Quantity: 3, Subtotal: dec(t, "38.97")},
		},
		Subtotal:      dec(t, "46.95"),
		Tax:           dec(t, "0"),
		Total:         dec(t, "46.95"),
		PaymentMethod: model.PaymentCash,
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("err = %v, want ErrInsufficientStock", err)
	}

	if got := reloadProduct(t, db, productA).Stock; got != 35 {
		t.Errorf("stock(A) = %d, want 35 (unchanged)", got)
	}
	if got := reloadProduct(t, db, productB).Stock; got != 1 {
		t.Errorf("stock(B) = %d, want 1 (unchanged)", got)
	}
	if got := countRows(t, db, &model.Transaction{}); got != 0 {
		t.Errorf("transactions = %d, want 0", got)
	}
}

func TestCheckoutAccumulatesRepeatedProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	product := createProduct(t, db, "Fresh Orange Juice", "6.99", 40)

	_, err := svc.Checkout(&model.CheckoutRequest{
		Items: []model.CheckoutItem{
			{ProductID: product.ID, Quantity: 2, Subtotal: dec(t, "13.98")},
			{ProductID: product.ID, Quantity: 3, Subtotal: dec(t, "20.97")},
		},
		Subtotal:      dec(t, "34.95"),
		Tax:           dec(t, "0"),
		Total:         dec(t, "34.95"),
		PaymentMethod: model.PaymentDigital,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if got := reloadProduct(t, db, product).Stock; got != 35 {
		t.Errorf("stock = %d, want 35 (40 - 2 - 3)", got)
	}
}

func TestCheckoutRefusesOverselling(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	product := createProduct(t, db, "Last Croissant", "4.50", 1)

	buyOne := func() (*model.Transaction, error) {
		return svc.Checkout(&model.CheckoutRequest{
			Items:         []model.CheckoutItem{{ProductID: product.ID, Quantity: 1, Subtotal: dec(t, "4.50")}},
			Subtotal:      dec(t, "4.50"),
			Tax:           dec(t, "0"),
			Total:         dec(t, "4.50"),
			PaymentMethod: model.PaymentCash,
		})
	}

	if _, err := buyOne(); err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}
	if _, err := buyOne(); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("second checkout err = %v, want ErrInsufficientStock", err)
	}

	// Final stock must be 0, never -1
	if got := reloadProduct(t, db, product).Stock; got != 0 {
		t.Errorf("stock = %d, want 0", got)
	}
	if got := countRows(t, db, &model.Transaction{}); got != 1 {
		t.Errorf("transactions = %d, want 1", got)
	}
}

func TestCheckoutDropsUnknownCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	product := createProduct(t, db, "Greek Yogurt", "5.49", 28)
	unknown := uuid.New()

	committed, err := svc.Checkout(&model.CheckoutRequest{
		Items:         []model.CheckoutItem{{ProductID: product.ID, Quantity: 1, Subtotal: dec(t, "5.49")}},
		Subtotal:      dec(t, "5.49"),
		Tax:           dec(t, "0"),
		Total:         dec(t, "5.49"),
		PaymentMethod: model.PaymentCash,
		CustomerID:    &unknown,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if committed.CustomerID != nil {
		t.Errorf("customer id = %v, want nil (dangling reference dropped)", committed.CustomerID)
	}
}

func TestCheckoutKeepsKnownCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	product := createProduct(t, db, "Greek Yogurt", "5.49", 28)
	customer := &model.Customer{Name: "Ada"}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}

	committed, err := svc.Checkout(&model.CheckoutRequest{
		Items:         []model.CheckoutItem{{ProductID: product.ID, Quantity: 1, Subtotal: dec(t, "5.49")}},
		Subtotal:      dec(t, "5.49"),
		Tax:           dec(t, "0"),
		Total:         dec(t, "5.49"),
		PaymentMethod: model.PaymentCash,
		CustomerID:    &customer.ID,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if committed.CustomerID == nil || *committed.CustomerID != customer.ID {
		t.Errorf("customer id = %v, want %s", committed.CustomerID, customer.ID)
	}
}

func TestCheckoutStoresCallerTotalsVerbatim(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	product := createProduct(t, db, "Premium Coffee Beans", "24.99", 50)

	// subtotal + tax != total: the commit layer must store it as-is, not
	// silently correct it.
	committed, err := svc.Checkout(&model.CheckoutRequest{
		Items:         []model.CheckoutItem{{ProductID: product.ID, Quantity: 1, Subtotal: dec(t, "24.99")}},
		Subtotal:      dec(t, "24.99"),
		Tax:           dec(t, "1.00"),
		Total:         dec(t, "999.00"),
		PaymentMethod: model.PaymentCard,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if !committed.Total.Equal(dec(t, "999.00")) {
		t.Errorf("total = %s, want 999.00 stored verbatim", committed.Total)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	_, err := svc.Checkout(&model.CheckoutRequest{
		Items:         nil,
		PaymentMethod: model.PaymentCash,
	})
	if err == nil {
		t.Fatal("expected validation error for empty cart")
	}
	if got := countRows(t, db, &model.Transaction{}); got != 0 {
		t.Errorf("transactions = %d, want 0", got)
	}
}

func TestCheckoutRejectsInvalidPaymentMethod(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	product := createProduct(t, db, "Premium Coffee Beans", "24.99", 50)

	_, err := svc.Checkout(&model.CheckoutRequest{
		Items:         []model.CheckoutItem{{ProductID: product.ID, Quantity: 1, Subtotal: dec(t, "24.99")}},
		Subtotal:      dec(t, "24.99"),
		Tax:           dec(t, "0"),
		Total:         dec(t, "24.99"),
		PaymentMethod: model.PaymentMethod("bitcoin"),
	})
	if err == nil {
		t.Fatal("expected validation error for unknown payment method")
	}
	if got := reloadProduct(t, db, product).Stock; got != 50 {
		t.Errorf("stock = %d, want 50 (unchanged)", got)
	}
}

func TestCheckoutRejectsNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	product := createProduct(t, db, "Premium Coffee Beans", "24.99", 50)

	for _, quantity := range []int{0, -2} {
		_, err := svc.Checkout(&model.CheckoutRequest{
			Items:         []model.CheckoutItem{{ProductID: product.ID, Quantity: quantity, Subtotal: dec(t, "0")}},
			Subtotal:      dec(t, "0"),
			Tax:           dec(t, "0"),
			Total:         dec(t, "0"),
			PaymentMethod: model.PaymentCash,
		})
		if err == nil {
			t.Errorf("quantity %d: expected validation error", quantity)
		}
	}
}

func TestGetTransactionByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	_, err := svc.GetTransactionByID(uuid.New())
	if !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("err = %v, want ErrTransactionNotFound", err)
	}
}

func TestGetRecentTransactionsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(t, db)

	product := createProduct(t, db, "Fresh Croissant", "4.50", 20)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		time.Sleep(5 * time.Millisecond) // distinct timestamps for ordering
		committed, err := svc.Checkout(&model.CheckoutRequest{
			Items:         []model.CheckoutItem{{ProductID: product.ID, Quantity: 1, Subtotal: dec(t, "4.50")}},
			Subtotal:      dec(t, "4.50"),
			Tax:           dec(t, "0"),
			Total:         dec(t, "4.50"),
			PaymentMethod: model.PaymentCash,
		})
		if err != nil {
			t.Fatalf("checkout %d failed: %v", i, err)
		}
		ids = append(ids, committed.ID)
	}

	recent, err := svc.GetRecentTransactions(2)
	if err != nil {
		t.Fatalf("recent transactions: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d transactions, want 2", len(recent))
	}
	if recent[0].ID != ids[2] {
		t.Errorf("newest transaction not first")
	}
}
