package cart

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrCurrencyMismatch   = errors.New("currency mismatch")
	ErrInvalidCurrency    = errors.New("invalid currency code")
	ErrEmptyAttributeKey  = errors.New("attribute key cannot be empty")
	ErrDuplicateAttribute = errors.New("duplicate attribute key")
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{Amount: amount, Currency: unit}, nil
}

func ParseMoney(amount string, currencyCode string) (Money, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, err
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return Money{}, ErrInvalidCurrency
	}

	return NewMoney(dec, unit)
}

func (m Money) Mul(quantity int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(quantity))),
		Currency: m.Currency,
	}
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// currency.Unit has no native JSON representation, so Money round-trips
// through its ISO code.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.Amount.String(),
		Currency: m.Currency.String(),
	})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseMoney(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// Attribute is a platform custom attribute attached to a line item,
// e.g. a gift-card amount or personal message.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func NewAttributes(pairs map[string]string) ([]Attribute, error) {
	attrs := make([]Attribute, 0, len(pairs))
	for k, v := range pairs {
		if k == "" {
			return nil, ErrEmptyAttributeKey
		}
		attrs = append(attrs, Attribute{Key: k, Value: v})
	}
	return attrs, nil
}
