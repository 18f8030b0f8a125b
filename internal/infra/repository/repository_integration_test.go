//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/infra/repository"
	"storefront-api/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RepositoryIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	cleanup   func()
}

func (s *RepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("storefront_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, nat.Port("5432/tcp"))
	s.Require().NoError(err)

	dbCfg := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     "test",
		Password: "test",
		DBName:   "storefront_test",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	s.Require().NoError(db.Migrate(dbCfg))

	pool, cleanup, err := db.Connect(dbCfg)
	s.Require().NoError(err)
	s.pool = pool
	s.cleanup = cleanup
}

func (s *RepositoryIntegrationTestSuite) TearDownSuite() {
	if s.cleanup != nil {
		s.cleanup()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}

func (s *RepositoryIntegrationTestSuite) mustCustomer(platformID int64, first, last, email string) *order.Customer {
	customer, err := order.NewCustomer(platformID, first, last, email)
	s.Require().NoError(err)
	return customer
}

func (s *RepositoryIntegrationTestSuite) mustPurchase(reference string, customerID *uuid.UUID) *order.Purchase {
	purchase, err := order.NewPurchase(customerID, decimal.RequireFromString("59.98"), "USD", reference, time.Now().UTC())
	s.Require().NoError(err)
	return purchase
}

func (s *RepositoryIntegrationTestSuite) TestCustomerUpsert() {
	ctx := context.Background()
	repo := repository.NewCustomerRepository(s.pool)
	platformID := time.Now().UnixNano()

	firstID, err := repo.Upsert(ctx, s.mustCustomer(platformID, "Hanako", "Yamada", "hanako@example.com"))
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, firstID)

	// Redelivery with a changed name refreshes the row, not duplicates it
	secondID, err := repo.Upsert(ctx, s.mustCustomer(platformID, "Hanako", "Suzuki", "hanako@example.com"))
	s.Require().NoError(err)
	s.Equal(firstID, secondID)

	var name string
	err = s.pool.QueryRow(ctx, "SELECT name FROM customers WHERE id = $1", firstID).Scan(&name)
	s.Require().NoError(err)
	s.Equal("Hanako Suzuki", name)
}

func (s *RepositoryIntegrationTestSuite) TestPurchaseCreateIdempotent() {
	ctx := context.Background()
	repo := repository.NewPurchaseRepository(s.pool)
	reference := uuid.NewString()

	firstID, created, err := repo.CreateIdempotent(ctx, s.mustPurchase(reference, nil))
	s.Require().NoError(err)
	s.True(created)

	secondID, created, err := repo.CreateIdempotent(ctx, s.mustPurchase(reference, nil))
	s.Require().NoError(err)
	s.False(created)
	s.Equal(firstID, secondID)

	foundID, err := repo.FindByPaymentReference(ctx, reference)
	s.Require().NoError(err)
	s.Equal(firstID, foundID)
}

func (s *RepositoryIntegrationTestSuite) TestFindByPaymentReferenceNotFound() {
	repo := repository.NewPurchaseRepository(s.pool)

	_, err := repo.FindByPaymentReference(context.Background(), "no-such-reference")
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *RepositoryIntegrationTestSuite) TestGiftCardCreateForPurchase() {
	ctx := context.Background()
	purchaseRepo := repository.NewPurchaseRepository(s.pool)
	giftCardRepo := repository.NewGiftCardRepository(s.pool)

	purchaseID, _, err := purchaseRepo.CreateIdempotent(ctx, s.mustPurchase(uuid.NewString(), nil))
	s.Require().NoError(err)

	cards := order.IssueGiftCards(
		[]order.LineItem{{Title: "Gift Card", Quantity: 2, UnitPrice: decimal.RequireFromString("29.99")}},
		"buyer@example.com",
		uuid.NewString,
	)
	s.Require().Len(cards, 2)

	s.Require().NoError(giftCardRepo.CreateForPurchase(ctx, purchaseID, cards))

	count, err := giftCardRepo.CountForPurchase(ctx, purchaseID)
	s.Require().NoError(err)
	s.Equal(2, count)

	// Empty deliverable list is a no-op
	s.Require().NoError(giftCardRepo.CreateForPurchase(ctx, purchaseID, nil))
}

func (s *RepositoryIntegrationTestSuite) TestCheckoutAttemptRecord() {
	ctx := context.Background()
	repo := repository.NewCheckoutAttemptRepository(s.pool)
	sessionID := uuid.New()

	err := repo.Record(ctx, sessionID, "gid://shopify/Cart/abc123", []byte(`[{"variantId":"v1","quantity":1}]`))
	s.Require().NoError(err)

	var status string
	err = s.pool.QueryRow(ctx, "SELECT status FROM checkout_attempts WHERE session_id = $1", sessionID).Scan(&status)
	s.Require().NoError(err)
	s.Equal("pending", status)
}

func (s *RepositoryIntegrationTestSuite) TestIdempotencyLifecycle() {
	ctx := context.Background()
	repo := repository.NewIdempotencyRepository(s.pool)
	key := uuid.New()
	sessionID := uuid.New()
	expiresAt := time.Now().Add(15 * time.Minute)

	inserted, err := repo.TryInsert(ctx, key, sessionID, "POST /checkout", "hash-1", expiresAt)
	s.Require().NoError(err)
	s.True(inserted, "first claim should win")

	inserted, err = repo.TryInsert(ctx, key, sessionID, "POST /checkout", "hash-1", expiresAt)
	s.Require().NoError(err)
	s.False(inserted, "second claim must observe the existing row")

	record, err := repo.Get(ctx, key, sessionID)
	s.Require().NoError(err)
	s.Equal("processing", record.Status)
	s.Equal("hash-1", record.RequestHash)
	s.Nil(record.ResultCartID)

	s.Require().NoError(repo.Complete(ctx, key, sessionID, "gid://shopify/Cart/abc123", "https://shop.example/checkouts/abc123"))

	record, err = repo.Get(ctx, key, sessionID)
	s.Require().NoError(err)
	s.Equal("completed", record.Status)
	s.Require().NotNil(record.ResultCartID)
	s.Equal("gid://shopify/Cart/abc123", *record.ResultCartID)
	s.Require().NotNil(record.ResultWebURL)

	// Another session may reuse the same key value independently
	otherSession := uuid.New()
	inserted, err = repo.TryInsert(ctx, key, otherSession, "POST /checkout", "hash-2", expiresAt)
	s.Require().NoError(err)
	s.True(inserted)
}

func (s *RepositoryIntegrationTestSuite) TestIdempotencyExpiredKeyIsReclaimed() {
	ctx := context.Background()
	repo := repository.NewIdempotencyRepository(s.pool)
	key := uuid.New()
	sessionID := uuid.New()

	inserted, err := repo.TryInsert(ctx, key, sessionID, "POST /checkout", "hash-1", time.Now().Add(-time.Minute))
	s.Require().NoError(err)
	s.True(inserted)

	// The expired row no longer blocks a fresh claim
	inserted, err = repo.TryInsert(ctx, key, sessionID, "POST /checkout", "hash-2", time.Now().Add(15*time.Minute))
	s.Require().NoError(err)
	s.True(inserted)

	record, err := repo.Get(ctx, key, sessionID)
	s.Require().NoError(err)
	s.Equal("hash-2", record.RequestHash)
}

func (s *RepositoryIntegrationTestSuite) TestIdempotencyGetMissingKey() {
	repo := repository.NewIdempotencyRepository(s.pool)

	_, err := repo.Get(context.Background(), uuid.New(), uuid.New())
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))
}
