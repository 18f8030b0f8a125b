package commands

import (
	"context"
	"log/slog"
	"strconv"

	"storefront-api/internal/domain/order"
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidNotification = errs.New("invalid order notification")

type ProcessNotificationResult struct {
	Processed       bool
	PurchaseCreated bool
}

type NotificationCommands interface {
	ProcessOrderNotification(ctx context.Context, req reqdto.OrderNotificationRequest) (*ProcessNotificationResult, error)
}

type notificationUseCaseImpl struct {
	customerRepo CustomerRepository
	purchaseRepo PurchaseRepository
	giftCardRepo GiftCardRepository
	clock        clock.Clock
	generateCode func() string
}

func NewNotificationUseCase(
	customerRepo CustomerRepository,
	purchaseRepo PurchaseRepository,
	giftCardRepo GiftCardRepository,
	clock clock.Clock,
) NotificationCommands {
	return &notificationUseCaseImpl{
		customerRepo: customerRepo,
		purchaseRepo: purchaseRepo,
		giftCardRepo: giftCardRepo,
		clock:        clock,
		generateCode: func() string { return uuid.NewString() },
	}
}

// ProcessOrderNotification handles one platform order webhook. Anything
// other than a paid order is acknowledged without side effects so the
// platform stops redelivering. Steps are not transactional: a failure
// partway through leaves earlier writes in place and relies on the
// platform's redelivery plus per-step idempotency to converge.
func (n *notificationUseCaseImpl) ProcessOrderNotification(
	ctx context.Context,
	req reqdto.OrderNotificationRequest,
) (*ProcessNotificationResult, error) {
	status := order.PaymentStatus(req.FinancialStatus)
	if !status.IsPaid() {
		slog.Info("ignoring order notification",
			"order_id", req.ID, "financial_status", req.FinancialStatus)
		return &ProcessNotificationResult{Processed: false}, nil
	}

	customerID, err := n.upsertCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	purchase, err := n.buildPurchase(customerID, req)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidNotification)
	}

	purchaseID, created, err := n.purchaseRepo.CreateIdempotent(ctx, purchase)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !created {
		// Redelivery of an order we already recorded; deliverables were
		// issued the first time around.
		slog.Info("order notification replayed", "order_id", req.ID, "purchase_id", purchaseID)
		return &ProcessNotificationResult{Processed: true, PurchaseCreated: false}, nil
	}

	if err := n.issueDeliverables(ctx, purchaseID, req); err != nil {
		return nil, err
	}

	return &ProcessNotificationResult{Processed: true, PurchaseCreated: true}, nil
}

// upsertCustomer returns nil when the payload carries no usable
// customer; a guest order still produces a purchase row.
func (n *notificationUseCaseImpl) upsertCustomer(ctx context.Context, req reqdto.OrderNotificationRequest) (*uuid.UUID, error) {
	payload := req.Customer
	if payload == nil {
		return nil, nil
	}

	email := payload.Email
	if email == "" {
		email = req.Email
	}

	customer, err := order.NewCustomer(payload.ID, payload.FirstName, payload.LastName, email)
	if err != nil {
		slog.Warn("skipping customer without email", "order_id", req.ID)
		return nil, nil
	}

	id, err := n.customerRepo.Upsert(ctx, customer)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &id, nil
}

func (n *notificationUseCaseImpl) buildPurchase(customerID *uuid.UUID, req reqdto.OrderNotificationRequest) (*order.Purchase, error) {
	amount, err := decimal.NewFromString(req.TotalPrice)
	if err != nil {
		return nil, errs.Wrap(err, "invalid total price")
	}

	paidAt := n.clock.Now()
	if req.ProcessedAt != nil {
		paidAt = *req.ProcessedAt
	}

	return order.NewPurchase(customerID, amount, req.Currency, strconv.FormatInt(req.ID, 10), paidAt)
}

func (n *notificationUseCaseImpl) issueDeliverables(ctx context.Context, purchaseID uuid.UUID, req reqdto.OrderNotificationRequest) error {
	lineItems := make([]order.LineItem, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		unitPrice, err := decimal.NewFromString(li.Price)
		if err != nil {
			return errs.Mark(errs.Wrap(err, "invalid line item price"), ErrInvalidNotification)
		}
		lineItems = append(lineItems, order.LineItem{
			Title:     li.Title,
			Quantity:  li.Quantity,
			UnitPrice: unitPrice,
		})
	}

	cards := order.IssueGiftCards(lineItems, req.Email, n.generateCode)
	if err := n.giftCardRepo.CreateForPurchase(ctx, purchaseID, cards); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return nil
}
