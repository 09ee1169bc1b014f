package settlement

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/SscSPs/expense_settlement_app/internal/apperrors"
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
)

// DefaultShareTokenExpiry is the share window applied on creation and on extend.
const DefaultShareTokenExpiry = 7 * 24 * time.Hour

// shareTokenBytes yields a 40 character hex token.
const shareTokenBytes = 20

// ShareTokenManager mints, extends and checks the capability token that
// grants read-only access to one calculation.
type ShareTokenManager struct {
	expiry   time.Duration
	now      func() time.Time
	generate func() (string, error)
}

// NewShareTokenManager returns a manager using the given window and clock.
// A non-positive expiry falls back to DefaultShareTokenExpiry and a nil clock
// to time.Now.
func NewShareTokenManager(expiry time.Duration, now func() time.Time) *ShareTokenManager {
	if expiry <= 0 {
		expiry = DefaultShareTokenExpiry
	}
	if now == nil {
		now = time.Now
	}
	return &ShareTokenManager{expiry: expiry, now: now, generate: generateShareToken}
}

// Expiry returns the configured window.
func (m *ShareTokenManager) Expiry() time.Duration {
	return m.expiry
}

// Issue mints a token on calc, which moves it from absent to active.
func (m *ShareTokenManager) Issue(calc *domain.Calculation) error {
	token, err := m.generate()
	if err != nil {
		return err
	}
	expiresAt := m.now().UTC().Add(m.expiry)
	calc.ShareToken = token
	calc.ShareTokenExpiry = &expiresAt
	return nil
}

// Extend resets the expiry to now plus the window. The token value is kept;
// one is minted only when none exists yet.
func (m *ShareTokenManager) Extend(calc *domain.Calculation) error {
	if calc.ShareToken == "" {
		return m.Issue(calc)
	}
	expiresAt := m.now().UTC().Add(m.expiry)
	calc.ShareTokenExpiry = &expiresAt
	return nil
}

// Status reports the token state at the current wall-clock time. A token
// whose expiry equals now is already expired.
func (m *ShareTokenManager) Status(calc *domain.Calculation) domain.ShareStatus {
	if calc.ShareToken == "" || calc.ShareTokenExpiry == nil {
		return domain.ShareAbsent
	}
	if !m.now().Before(*calc.ShareTokenExpiry) {
		return domain.ShareExpired
	}
	return domain.ShareActive
}

// Verify checks token against calc. A mismatch is ErrInvalidShareToken; a
// match past its expiry is ErrShareExpired.
func (m *ShareTokenManager) Verify(calc *domain.Calculation, token string) error {
	if token == "" || calc.ShareToken == "" {
		return apperrors.ErrInvalidShareToken
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(calc.ShareToken)) != 1 {
		return apperrors.ErrInvalidShareToken
	}
	if calc.ShareTokenExpiry == nil {
		return fmt.Errorf("%w: no expiry recorded", apperrors.ErrShareExpired)
	}
	if m.Status(calc) == domain.ShareExpired {
		return fmt.Errorf("%w: expired at %s", apperrors.ErrShareExpired, calc.ShareTokenExpiry.Format(time.RFC3339))
	}
	return nil
}

func generateShareToken() (string, error) {
	b := make([]byte, shareTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
