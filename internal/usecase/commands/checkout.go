package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
	"time"

	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/infra/commerce"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	checkoutEndpoint = "POST /checkout"

	// Attributes stamped on every remote cart so platform-side reporting
	// can attribute the order to this storefront.
	checkoutSourceAttribute = "storefront-web"
	checkoutNote            = "Order from storefront website"

	// How long a replayed Idempotency-Key keeps returning the first
	// checkout session.
	idempotencyWindow = 15 * time.Minute

	thankYouPath = "/thank-you"
)

type CheckoutResult struct {
	CartID     string
	WebURL     string
	IsReplayed bool
}

type CheckoutCommands interface {
	CreateCheckout(ctx context.Context, sessionID uuid.UUID, req reqdto.CheckoutRequest, idempotencyKey uuid.UUID) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	gateway         CommerceGateway
	idempotencyRepo IdempotencyRepository
	attemptRepo     CheckoutAttemptRepository
	siteURL         string
	clock           clock.Clock
}

func NewCheckoutUseCase(
	gateway CommerceGateway,
	idempotencyRepo IdempotencyRepository,
	attemptRepo CheckoutAttemptRepository,
	cfg config.Config,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		gateway:         gateway,
		idempotencyRepo: idempotencyRepo,
		attemptRepo:     attemptRepo,
		siteURL:         cfg.Site.URL,
		clock:           clock,
	}
}

// CreateCheckout opens a checkout session on the remote platform for
// the submitted line items. A uuid.Nil idempotencyKey means the client
// sent no Idempotency-Key header and each submission creates a fresh
// session.
func (c *checkoutUseCaseImpl) CreateCheckout(
	ctx context.Context,
	sessionID uuid.UUID,
	req reqdto.CheckoutRequest,
	idempotencyKey uuid.UUID,
) (*CheckoutResult, error) {
	if !req.Validate() {
		return nil, errs.ErrInvalidCheckoutRequest
	}

	if idempotencyKey != uuid.Nil {
		replayed, err := c.handleIdempotency(ctx, idempotencyKey, sessionID, req)
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return replayed, nil
		}
	}

	result, err := c.createRemoteCart(ctx, sessionID, req)
	if err != nil {
		return nil, err
	}

	if idempotencyKey != uuid.Nil {
		if err := c.idempotencyRepo.Complete(ctx, idempotencyKey, sessionID, result.CartID, result.WebURL); err != nil {
			// The checkout session already exists; a replay miss is
			// cheaper than failing the customer here.
			slog.Warn("failed to complete idempotency key", "error", err, "session_id", sessionID)
		}
	}

	return result, nil
}

// handleIdempotency returns a non-nil result when the key has already
// produced a checkout session, nil when this call owns a fresh key.
func (c *checkoutUseCaseImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, sessionID uuid.UUID,
	req reqdto.CheckoutRequest,
) (*CheckoutResult, error) {
	requestHash := calculateRequestHash(req)
	expiresAt := c.clock.Now().Add(idempotencyWindow)

	inserted, err := c.idempotencyRepo.TryInsert(ctx, idempotencyKey, sessionID, checkoutEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := c.idempotencyRepo.Get(ctx, idempotencyKey, sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultCartID == nil || existing.ResultWebURL == nil {
			return nil, errs.New("completed idempotency key missing checkout result")
		}
		return &CheckoutResult{
			CartID:     *existing.ResultCartID,
			WebURL:     *existing.ResultWebURL,
			IsReplayed: true,
		}, nil

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, errs.ErrInvalidCheckoutRequest
		}
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (c *checkoutUseCaseImpl) createRemoteCart(
	ctx context.Context,
	sessionID uuid.UUID,
	req reqdto.CheckoutRequest,
) (*CheckoutResult, error) {
	input := buildCartCreateInput(req)

	// Transport failures and an open breaker both surface the same way;
	// the customer retries, we never do.
	created, userErrors, err := c.gateway.CartCreate(ctx, input)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUpstream)
	}
	if len(userErrors) > 0 {
		return nil, errs.Mark(errs.Newf("platform rejected checkout: %s", joinUserErrors(userErrors)), errs.ErrCheckoutRejected)
	}
	if created.CheckoutURL == "" {
		return nil, errs.Mark(errs.New("no checkout URL returned"), errs.ErrUpstream)
	}

	webURL, err := appendReturnTo(created.CheckoutURL, c.siteURL+thankYouPath)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUpstream)
	}

	c.recordAttempt(ctx, sessionID, created.ID, req)

	return &CheckoutResult{CartID: created.ID, WebURL: webURL}, nil
}

// recordAttempt keeps a pending copy of the checkout for reconciliation
// against the order webhook. The customer is already on their way to the
// payment page, so a write failure is logged and swallowed.
func (c *checkoutUseCaseImpl) recordAttempt(ctx context.Context, sessionID uuid.UUID, cartID string, req reqdto.CheckoutRequest) {
	payload, err := json.Marshal(req.LineItems)
	if err != nil {
		slog.Warn("failed to encode checkout attempt", "error", err, "cart_id", cartID)
		return
	}
	if err := c.attemptRepo.Record(ctx, sessionID, cartID, payload); err != nil {
		slog.Warn("failed to record checkout attempt", "error", err, "cart_id", cartID)
	}
}

func buildCartCreateInput(req reqdto.CheckoutRequest) commerce.CartCreateInput {
	lines := make([]commerce.CartLineInput, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		line := commerce.CartLineInput{
			MerchandiseID: li.VariantID,
			Quantity:      li.Quantity,
		}
		for _, attr := range li.CustomAttributes {
			line.Attributes = append(line.Attributes, commerce.AttributeInput{Key: attr.Key, Value: attr.Value})
		}
		lines = append(lines, line)
	}

	note := checkoutNote
	if req.Note != nil && strings.TrimSpace(*req.Note) != "" {
		note = strings.TrimSpace(*req.Note)
	}

	return commerce.CartCreateInput{
		Lines:      lines,
		Attributes: []commerce.AttributeInput{{Key: "source", Value: checkoutSourceAttribute}},
		Note:       note,
	}
}

// appendReturnTo adds the post-payment redirect back to the storefront,
// preserving any query parameters the platform put on the URL.
func appendReturnTo(checkoutURL, returnTo string) (string, error) {
	parsed, err := url.Parse(checkoutURL)
	if err != nil {
		return "", errs.Wrap(err, "invalid checkout URL")
	}

	query := parsed.Query()
	query.Set("return_to", returnTo)
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

func joinUserErrors(userErrors []commerce.UserError) string {
	msgs := make([]string, 0, len(userErrors))
	for _, ue := range userErrors {
		msgs = append(msgs, ue.Message)
	}
	return strings.Join(msgs, ", ")
}

func calculateRequestHash(req reqdto.CheckoutRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
