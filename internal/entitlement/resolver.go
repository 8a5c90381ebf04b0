// Package entitlement answers "is this installation premium" and
// reconciles the local flag against the purchase backend.
//
// Premium is unlocked two ways, mirroring the purchase flow:
//
//   - a purchase-success redirect (deep link) flips the flag locally with
//     no server check. Anyone constructing the right URL unlocks premium;
//     this is a known limitation of the trust-on-redirect design and is
//     deliberately not "fixed" here.
//   - restore-by-email performs a server lookup and records the email on
//     success.
//
// Concurrent restore submissions race last-response-wins; no request
// generation check is enforced.
package entitlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// UnlockMarker is the substring a deep link must contain to unlock
// premium. No other part of the URL is consumed.
const UnlockMarker = "purchase-success"

var (
	// ErrInvalidEmail is returned before any network call when the email
	// fails local validation.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrLookupFailed covers network, non-2xx and parse failures during
	// restore. It is recoverable: the caller surfaces it and the user may
	// retry; the local premium flag is never touched.
	ErrLookupFailed = errors.New("restore lookup failed")
)

// emailPattern is intentionally loose: anything shaped local@domain.tld.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result is the outcome of a successful restore lookup.
type Result struct {
	IsPremium   bool   `json:"isPremium"`
	PurchasedAt string `json:"purchasedAt,omitempty"`
	// Email is the normalized address the lookup ran against.
	Email string `json:"-"`
}

// Resolver performs restore-by-email lookups against the restore
// endpoint.
type Resolver struct {
	endpoint string
	client   *http.Client
}

// NewResolver builds a resolver for the given restore endpoint. A nil
// client gets a default with a 15s timeout.
func NewResolver(endpoint string, client *http.Client) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Resolver{endpoint: endpoint, client: client}
}

// ValidateEmail normalizes an email for restore, failing fast on
// malformed input so no network round-trip is wasted.
func ValidateEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// IsUnlockLink reports whether a deep link URL carries the
// purchase-success marker.
func IsUnlockLink(link string) bool {
	return strings.Contains(link, UnlockMarker)
}

// Restore looks the email up at the restore endpoint. A response with
// isPremium=false is not an error; it means no purchase was found for
// that email. Only transport, status and decode problems return
// ErrLookupFailed.
func (r *Resolver) Restore(ctx context.Context, email string) (Result, error) {
	email, err := ValidateEmail(email)
	if err != nil {
		return Result{}, err
	}

	lookupURL := r.endpoint + "?email=" + url.QueryEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		zap.L().Warn("Restore lookup failed", zap.Error(err))
		return Result{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		zap.L().Warn("Restore lookup returned non-2xx", zap.Int("status", resp.StatusCode))
		return Result{}, fmt.Errorf("%w: status %d", ErrLookupFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	result.Email = email
	return result, nil
}
