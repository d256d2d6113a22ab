package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langman/internal/dependencies/mocks"
	"langman/internal/model"
)

func newService(clk *mocks.MockClock) *Service {
	return New([]byte("test-secret"), clk, DefaultConfig())
}

func TestIssueAndValidate(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	svc := newService(clk)

	tok, err := svc.Issue("u1", "Alice", "")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	identity, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, model.UserID("u1"), identity.UserID)
	assert.Equal(t, "Alice", identity.Name)
	assert.Empty(t, identity.GameID)
}

func TestGameScopedCredential(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	svc := newService(clk)

	tok, err := svc.Issue("u1", "Alice", "game-42")
	require.NoError(t, err)

	identity, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, model.GameID("game-42"), identity.GameID)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	svc := newService(clk)

	tok, err := svc.Issue("u1", "Alice", "")
	require.NoError(t, err)

	clk.Advance(25 * time.Hour)

	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	svc := newService(clk)
	other := New([]byte("other-secret"), clk, DefaultConfig())

	tok, err := other.Issue("u1", "Alice", "")
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	svc := newService(clk)

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
