package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/config"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/models"
	accountsrepo "github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/accounts"
	cartlinesrepo "github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/cartlines"
	ordersrepo "github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/orders"
	productsrepo "github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/products"
	"github.com/google/uuid"
)

// --- helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:           "k",
		AccessTokenValidity: time.Hour,
		DefaultStock:        10,
	}
}

// --- fake repositories ---

type fakeAccountsRepo struct {
	createErr error
	getErr    error

	stored map[string]*models.Account // by identifier
}

func (f *fakeAccountsRepo) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.stored == nil {
		f.stored = map[string]*models.Account{}
	}
	if _, ok := f.stored[a.Identifier]; ok {
		return nil, common.ErrorAlreadyExists
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = time.Now()
	f.stored[a.Identifier] = a
	return a, nil
}

func (f *fakeAccountsRepo) GetByIdentifier(ctx context.Context, identifier string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	a, ok := f.stored[identifier]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return a, nil
}

type decrement struct {
	ProductID string
	Qty       int
}

type fakeProductsRepo struct {
	products map[string]*models.Product

	listErr  error
	getErr   error
	maxErr   error
	decErr   error
	resetErr error

	decrements []decrement
	resets     []int
}

func (f *fakeProductsRepo) List(ctx context.Context) ([]*models.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductsRepo) get(id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

func (f *fakeProductsRepo) Get(ctx context.Context, id string) (*models.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.get(id)
}

func (f *fakeProductsRepo) GetForUpdate(ctx context.Context, id string) (*models.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.get(id)
}

func (f *fakeProductsRepo) MaxPrice(ctx context.Context) (float64, error) {
	if f.maxErr != nil {
		return 0, f.maxErr
	}
	var max float64
	for _, p := range f.products {
		if p.Price > max {
			max = p.Price
		}
	}
	return max, nil
}

func (f *fakeProductsRepo) DecrementStock(ctx context.Context, id string, qty int) error {
	if f.decErr != nil {
		return f.decErr
	}
	p, ok := f.products[id]
	if !ok {
		return common.ErrorNotFound
	}
	p.Stock -= qty
	f.decrements = append(f.decrements, decrement{ProductID: id, Qty: qty})
	return nil
}

func (f *fakeProductsRepo) ResetStock(ctx context.Context, value int) error {
	if f.resetErr != nil {
		return f.resetErr
	}
	for _, p := range f.products {
		p.Stock = value
	}
	f.resets = append(f.resets, value)
	return nil
}

type cartKey struct {
	Account   string
	ProductID string
}

type fakeCartRepo struct {
	lines map[cartKey]*models.CartLine
	views []*models.CartLineView

	findErr   error
	createErr error
	updateErr error
	listErr   error
	deleteErr error

	updates          []decrement // reusing ProductID=line id, Qty=new quantity
	deletes          []string
	deletesByProduct []cartKey
}

func (f *fakeCartRepo) FindByProduct(ctx context.Context, account, productID string) (*models.CartLine, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	line, ok := f.lines[cartKey{account, productID}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return line, nil
}

func (f *fakeCartRepo) Create(ctx context.Context, line *models.CartLine) (*models.CartLine, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.lines == nil {
		f.lines = map[cartKey]*models.CartLine{}
	}
	if line.ID == "" {
		line.ID = uuid.NewString()
	}
	line.AddedAt = time.Now()
	f.lines[cartKey{line.Account, line.ProductID}] = line
	return line, nil
}

func (f *fakeCartRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for _, line := range f.lines {
		if line.ID == id {
			line.Quantity = quantity
		}
	}
	f.updates = append(f.updates, decrement{ProductID: id, Qty: quantity})
	return nil
}

func (f *fakeCartRepo) ListViews(ctx context.Context, account string) ([]*models.CartLineView, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.views, nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, account, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for k, line := range f.lines {
		if line.ID == id && line.Account == account {
			delete(f.lines, k)
		}
	}
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeCartRepo) DeleteByProduct(ctx context.Context, account, productID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.lines, cartKey{account, productID})
	f.deletesByProduct = append(f.deletesByProduct, cartKey{account, productID})
	return nil
}

type fakeOrdersRepo struct {
	created []*models.Order
	views   []*models.OrderView

	createErr error
	listErr   error
	deleteErr error

	deleted []string
}

func (f *fakeOrdersRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	f.created = append(f.created, order)
	return order, nil
}

func (f *fakeOrdersRepo) ListViews(ctx context.Context, account string) ([]*models.OrderView, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.views, nil
}

func (f *fakeOrdersRepo) Delete(ctx context.Context, account, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// --- fake repository manager ---

type fakeRepoManager struct {
	a *fakeAccountsRepo
	p *fakeProductsRepo
	c *fakeCartRepo
	o *fakeOrdersRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		a: &fakeAccountsRepo{},
		p: &fakeProductsRepo{products: map[string]*models.Product{}},
		c: &fakeCartRepo{lines: map[cartKey]*models.CartLine{}},
		o: &fakeOrdersRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Accounts(db dbx.DBTX) accountsrepo.Repository   { return m.a }
func (m *fakeRepoManager) Products(db dbx.DBTX) productsrepo.Repository   { return m.p }
func (m *fakeRepoManager) CartLines(db dbx.DBTX) cartlinesrepo.Repository { return m.c }
func (m *fakeRepoManager) Orders(db dbx.DBTX) ordersrepo.Repository       { return m.o }
