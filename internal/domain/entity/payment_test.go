package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/payment-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	fixedTime := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	payer := uint64(3)

	t.Run("Valid payment", func(t *testing.T) {
		payment, err := NewPayment("rent", "750.00", 9, &payer, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "rent", payment.Description)
		assert.Equal(t, int64(75000), payment.Amount())
		assert.Equal(t, "750.00", payment.GetAmount())
		assert.Equal(t, uint64(9), payment.ToCustomer)
		assert.Equal(t, &payer, payment.FromCustomer)
		assert.Equal(t, fixedTime, payment.CreatedAt)
	})

	t.Run("Anonymous payer", func(t *testing.T) {
		payment, err := NewPayment("gift", "1", 9, nil, mockTime)

		require.NoError(t, err)
		assert.Nil(t, payment.FromCustomer)
	})

	t.Run("Missing fields", func(t *testing.T) {
		_, err := NewPayment("", "1", 9, nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)

		_, err = NewPayment("rent", "", 9, nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)

		_, err = NewPayment("rent", "1", 0, nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Negative amount", func(t *testing.T) {
		_, err := NewPayment("rent", "-1", 9, nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestPaymentSetters(t *testing.T) {
	payment := RestorePayment(1, "rent", 100, time.Now(), nil, 2)

	require.NoError(t, payment.SetDescription("utilities"))
	require.NoError(t, payment.SetAmount("12.3"))
	require.NoError(t, payment.SetRecipient(5))

	assert.Equal(t, "utilities", payment.Description)
	assert.Equal(t, int64(1230), payment.Amount())
	assert.Equal(t, uint64(5), payment.ToCustomer)

	assert.Error(t, payment.SetDescription(" "))
	assert.Error(t, payment.SetAmount("x"))
	assert.Error(t, payment.SetRecipient(0))
}
