package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/payment-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid customer", func(t *testing.T) {
		customer, err := NewCustomer("Jane Doe", "jane@example.com", "120.5", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", customer.Name)
		assert.Equal(t, "jane@example.com", customer.Email)
		assert.Equal(t, int64(12050), customer.Balance())
		assert.Equal(t, "120.50", customer.GetBalance())
		assert.True(t, customer.Active)
		assert.Equal(t, fixedTime, customer.CreatedAt)
	})

	t.Run("Balance defaults to zero", func(t *testing.T) {
		customer, err := NewCustomer("Jane", "jane@example.com", "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "0.00", customer.GetBalance())
	})

	t.Run("Name is escaped", func(t *testing.T) {
		customer, err := NewCustomer("<b>Jane</b>", "jane@example.com", "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "&lt;b&gt;Jane&lt;/b&gt;", customer.Name)
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		testCases := []struct {
			name, customerName, email, balance string
		}{
			{"missing name", "", "jane@example.com", "1"},
			{"blank name", "   ", "jane@example.com", "1"},
			{"missing email", "Jane", "", "1"},
			{"invalid email", "Jane", "not-an-email", "1"},
			{"negative balance", "Jane", "jane@example.com", "-5"},
			{"too many decimals", "Jane", "jane@example.com", "1.005"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				customer, err := NewCustomer(tc.customerName, tc.email, tc.balance, mockTime)
				assert.Nil(t, customer)
				assert.ErrorIs(t, err, errs.ErrInvalidInput)
			})
		}
	})
}

func TestCustomerMutations(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	later := created.Add(time.Hour)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(later).Maybe()

	customer := RestoreCustomer(7, "Jane", "jane@example.com", 500, true, "token", created, created)

	require.NoError(t, customer.Rename("Janet", mockTime))
	require.NoError(t, customer.ChangeEmail("janet@example.com", mockTime))
	require.NoError(t, customer.SetBalance("9.99", mockTime))
	customer.Deactivate(mockTime)

	assert.Equal(t, "Janet", customer.Name)
	assert.Equal(t, "janet@example.com", customer.Email)
	assert.Equal(t, int64(999), customer.Balance())
	assert.False(t, customer.Active)
	assert.Equal(t, later, customer.UpdatedAt)

	customer.Reactivate(mockTime)
	assert.True(t, customer.Active)

	assert.ErrorIs(t, customer.Rename("", mockTime), errs.ErrInvalidInput)
	assert.ErrorIs(t, customer.ChangeEmail("nope", mockTime), errs.ErrInvalidInput)
	assert.ErrorIs(t, customer.SetBalance("abc", mockTime), errs.ErrInvalidAmount)

	claims := customer.TokenClaims()
	assert.Equal(t, "janet@example.com", claims.Email)
	assert.Equal(t, "Janet", claims.Name)
}
