package payment_test

import (
	"context"
	"testing"
	"time"

	"github.com/storecraft/storefront/internal/adapters/payment"
	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestPaypalProcessor_Method(t *testing.T) {
	t.Parallel()

	processor := payment.NewPaypalProcessor(nil, time.Second, logger.NewTestLogger())
	require.Equal(t, model.PaymentMethodPaypal, processor.Method())
}

func TestPaypalProcessor_Pay(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "valid email", email: "payer@example.com", wantErr: nil},
		{name: "missing at sign", email: "payer.example.com", wantErr: model.ErrPaymentDeclined},
		{name: "empty email", email: "", wantErr: model.ErrPaymentDeclined},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			processor := payment.NewPaypalProcessor(nil, time.Second, logger.NewTestLogger())
			order := model.NewOrder()
			order.AddItem("Book", 3, 1500)

			err := processor.Pay(context.Background(), order, tc.email)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.False(t, order.IsPaid())
		})
	}
}

func TestPaypalProcessor_PayAlreadyPaidOrder(t *testing.T) {
	t.Parallel()

	processor := payment.NewPaypalProcessor(nil, time.Second, logger.NewTestLogger())
	order := model.NewOrder()
	order.AddItem("Book", 1, 1500)
	require.NoError(t, order.MarkPaid())

	err := processor.Pay(context.Background(), order, "payer@example.com")
	require.ErrorIs(t, err, model.ErrOrderAlreadyPaid)
}
