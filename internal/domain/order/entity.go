// Package order models what the storefront keeps after the remote
// platform confirms payment: the customer, the purchase, and any
// gift-card deliverables issued for it.
package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyPaymentReference = errors.New("payment reference cannot be empty")
	ErrEmptyEmail            = errors.New("customer email cannot be empty")
	ErrNegativeAmount        = errors.New("purchase amount cannot be negative")
)

const PaymentProviderShopify = "shopify"

// PaymentStatus mirrors the platform's financial_status values we care
// about; anything other than "paid" is acknowledged and ignored.
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusVoided   PaymentStatus = "voided"
)

func (s PaymentStatus) IsPaid() bool {
	return s == PaymentStatusPaid
}

type Customer struct {
	platformID int64
	name       string
	email      string
}

func NewCustomer(platformID int64, firstName, lastName, email string) (*Customer, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmptyEmail
	}

	name := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))

	return &Customer{
		platformID: platformID,
		name:       name,
		email:      email,
	}, nil
}

func (c *Customer) PlatformID() int64 { return c.platformID }
func (c *Customer) Name() string      { return c.name }
func (c *Customer) Email() string     { return c.email }

type Purchase struct {
	customerID       *uuid.UUID
	amount           decimal.Decimal
	currency         string
	paymentStatus    PaymentStatus
	paymentProvider  string
	paymentReference string
	paidAt           time.Time
}

// NewPurchase builds a paid purchase keyed by the platform's payment
// reference. The reference is the idempotency anchor for redeliveries.
func NewPurchase(
	customerID *uuid.UUID,
	amount decimal.Decimal,
	currencyCode string,
	paymentReference string,
	paidAt time.Time,
) (*Purchase, error) {
	if strings.TrimSpace(paymentReference) == "" {
		return nil, ErrEmptyPaymentReference
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	return &Purchase{
		customerID:       customerID,
		amount:           amount,
		currency:         currencyCode,
		paymentStatus:    PaymentStatusPaid,
		paymentProvider:  PaymentProviderShopify,
		paymentReference: paymentReference,
		paidAt:           paidAt,
	}, nil
}

func (p *Purchase) CustomerID() *uuid.UUID     { return p.customerID }
func (p *Purchase) Amount() decimal.Decimal    { return p.amount }
func (p *Purchase) Currency() string           { return p.currency }
func (p *Purchase) PaymentStatus() PaymentStatus { return p.paymentStatus }
func (p *Purchase) PaymentProvider() string    { return p.paymentProvider }
func (p *Purchase) PaymentReference() string   { return p.paymentReference }
func (p *Purchase) PaidAt() time.Time          { return p.paidAt }

// LineItem is the slice of a platform order line the deliverable flow
// needs: what was bought, how many, and at what unit price.
type LineItem struct {
	Title     string
	Quantity  int
	UnitPrice decimal.Decimal
}

type GiftCard struct {
	code           string
	title          string
	amount         decimal.Decimal
	recipientEmail string
}

func (g GiftCard) Code() string            { return g.code }
func (g GiftCard) Title() string           { return g.title }
func (g GiftCard) Amount() decimal.Decimal { return g.amount }
func (g GiftCard) RecipientEmail() string  { return g.recipientEmail }

// IssueGiftCards creates one deliverable per purchased unit. Codes come
// from the supplied generator so tests stay deterministic.
func IssueGiftCards(lineItems []LineItem, recipientEmail string, generateCode func() string) []GiftCard {
	var cards []GiftCard
	for _, li := range lineItems {
		qty := li.Quantity
		if qty < 1 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			cards = append(cards, GiftCard{
				code:           generateCode(),
				title:          li.Title,
				amount:         li.UnitPrice,
				recipientEmail: recipientEmail,
			})
		}
	}
	return cards
}
