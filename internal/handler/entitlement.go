package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"notted/ent"
	"notted/ent/entitlement"

	entresolver "notted/internal/entitlement"
)

// GetEntitlement reports the locally cached premium state.
func (h *Handler) GetEntitlement(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"is_premium":     h.store.IsPremium(),
		"purchase_email": h.store.PurchaseEmail(),
	})
}

type RestoreRequest struct {
	Email string `json:"email"`
}

// RestorePurchase runs the client-side restore flow: validate the email
// locally, look it up at the restore endpoint, and unlock premium when a
// purchase exists. A lookup failure never revokes an existing premium
// state.
func (h *Handler) RestorePurchase(c echo.Context) error {
	var req RestoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	result, err := h.resolver.Restore(c.Request().Context(), req.Email)
	if errors.Is(err, entresolver.ErrInvalidEmail) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "please enter a valid email"})
	}
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "failed to restore, please try again"})
	}

	if !result.IsPremium {
		return c.JSON(http.StatusOK, map[string]any{
			"is_premium": false,
			"message":    "no purchase found for this email",
		})
	}

	h.store.SetPremium(true, result.Email)
	zap.L().Info("Premium restored", zap.String("email", result.Email))

	return c.JSON(http.StatusOK, map[string]any{
		"is_premium":   true,
		"purchased_at": result.PurchasedAt,
	})
}

type DeepLinkRequest struct {
	URL string `json:"url"`
}

// HandleDeepLink unlocks premium when the URL carries the
// purchase-success marker. Trust-on-redirect: no payload beyond the
// marker is consumed and no server check is made, which is a known
// limitation of the purchase flow. Re-triggering is idempotent.
func (h *Handler) HandleDeepLink(c echo.Context) error {
	var req DeepLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if entresolver.IsUnlockLink(req.URL) {
		h.store.SetPremium(true, "")
		zap.L().Info("Premium unlocked via deep link")
	}

	return c.JSON(http.StatusOK, map[string]any{"is_premium": h.store.IsPremium()})
}

// RestoreLookup is the server side of restore-by-email: premium means at
// least one entitlement row exists for the lowercased address.
func (h *Handler) RestoreLookup(c echo.Context) error {
	email, err := entresolver.ValidateEmail(c.QueryParam("email"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid email format"})
	}

	ctx := context.Background()
	row, err := h.client.Entitlement.Query().
		Where(entitlement.EmailEQ(email)).
		Order(ent.Asc(entitlement.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return c.JSON(http.StatusOK, map[string]any{"isPremium": false})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"isPremium":   true,
		"purchasedAt": row.CreatedAt.Format(time.RFC3339),
	})
}

// webhookOrder covers the field variants the payment provider uses
// across event shapes.
type webhookOrder struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	ProductID   string `json:"product_id"`
	CustomerID  string `json:"customer_id"`
	Amount      int64  `json:"amount"`
	TotalAmount int64  `json:"total_amount"`
	Currency    string `json:"currency"`
	Product     struct {
		ID string `json:"id"`
	} `json:"product"`
	Customer struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"customer"`
	User struct {
		Email string `json:"email"`
	} `json:"user"`
}

type webhookEvent struct {
	Type string       `json:"type"`
	Data webhookOrder `json:"data"`
}

// PurchaseWebhook records a paid order as an entitlement row keyed by the
// provider order id, so webhook retries stay idempotent. The provider's
// signature headers are not verified, matching the deployed function
// this replaces.
func (h *Handler) PurchaseWebhook(c echo.Context) error {
	var event webhookEvent
	if err := json.NewDecoder(c.Request().Body).Decode(&event); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	zap.L().Info("Received webhook event", zap.String("type", event.Type))

	if event.Type != "order.paid" && event.Type != "checkout.updated" {
		return c.JSON(http.StatusOK, map[string]any{"received": true})
	}

	order := event.Data
	email := order.Customer.Email
	if email == "" {
		email = order.User.Email
	}
	if email == "" {
		email = order.Email
	}
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || order.ID == "" {
		zap.L().Info("Webhook order missing email or order id, skipping")
		return c.JSON(http.StatusOK, map[string]any{"received": true, "skipped": true})
	}

	productID := order.Product.ID
	if productID == "" {
		productID = order.ProductID
	}
	customerID := order.Customer.ID
	if customerID == "" {
		customerID = order.CustomerID
	}
	amount := order.Amount
	if amount == 0 {
		amount = order.TotalAmount
	}
	currency := order.Currency
	if currency == "" {
		currency = "USD"
	}

	ctx := context.Background()
	existing, err := h.client.Entitlement.Query().
		Where(entitlement.OrderIDEQ(order.ID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetEmail(email).
			SetProductID(productID).
			SetCustomerID(customerID).
			SetAmount(amount).
			SetCurrency(currency).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = h.client.Entitlement.Create().
			SetEmail(email).
			SetOrderID(order.ID).
			SetProductID(productID).
			SetCustomerID(customerID).
			SetAmount(amount).
			SetCurrency(currency).
			Save(ctx)
	}
	if err != nil {
		zap.L().Error("Failed to store entitlement", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	zap.L().Info("Entitlement stored", zap.String("order_id", order.ID))
	return c.JSON(http.StatusOK, map[string]any{"received": true})
}
