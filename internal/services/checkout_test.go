package service_test

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/cache"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/events"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/payment"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/session"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	svc      service.CheckoutService
	cart     service.CartService
	store    *session.Store
	gateway  *mocks.Gateway
	orders   *mocks.CheckoutOrderRepository
	notifier *mocks.NotificationService
	verifier *mocks.Verifier
	recorder *testutils.EventRecorder
}

func setupCheckout(t *testing.T, withVerifier bool) *checkoutFixture {
	t.Helper()

	return setupCheckoutWithCache(t, withVerifier, testutils.NewMemoryCache())
}

func setupCheckoutWithCache(t *testing.T, withVerifier bool, c cache.Cache) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		store:    session.NewStore(c, time.Hour),
		gateway:  mocks.NewGateway(t),
		orders:   mocks.NewCheckoutOrderRepository(t),
		notifier: mocks.NewNotificationService(t),
		recorder: &testutils.EventRecorder{},
	}
	f.cart = service.NewCartService(f.store, f.recorder)

	deps := service.CheckoutDeps{
		Store:         f.store,
		Cart:          f.cart,
		Gateway:       f.gateway,
		Orders:        f.orders,
		Notifications: f.notifier,
		Publisher:     f.recorder,
	}

	if withVerifier {
		f.verifier = mocks.NewVerifier(t)
		deps.Verifier = f.verifier
	}

	f.gateway.On("Name").Return(payment.GatewayRedsys).Maybe()

	f.svc = service.NewCheckoutService(deps, service.CheckoutConfig{
		Currency:        "978",
		Description:     "Online order",
		OrdersInbox:     "orders@example.com",
		ReceiptThrottle: 120 * time.Second,
	})

	return f
}

var buyer = models.Buyer{
	Name:       "Ana García",
	Email:      "ana@example.com",
	Address:    "Calle Mayor 1",
	City:       "Madrid",
	PostalCode: "28013",
}

// failingFieldCache rejects writes to one checkout field.
type failingFieldCache struct {
	*testutils.MemoryCache
	field string
}

func (c *failingFieldCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if strings.HasSuffix(key, ":"+c.field) {
		return errors.New("redis: connection pool timeout")
	}

	return c.MemoryCache.Set(ctx, key, value, ttl)
}

var formHandoff = &models.Handoff{
	Method: http.MethodPost,
	URL:    "https://sis-t.redsys.es:25443/sis/realizarPago",
	Fields: map[string]string{payment.FieldSignature: "sig"},
}

// startCheckout fills the cart and hands off successfully, returning the order id.
func (f *checkoutFixture) startCheckout(t *testing.T) string {
	t.Helper()

	ctx := context.Background()
	_, err := f.cart.AddItem(ctx, sid, whey())
	require.NoError(t, err)

	f.orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.CheckoutOrder")).Return(nil).Once()
	f.gateway.On("Prepare", mock.Anything, mock.AnythingOfType("*payment.Order")).Return(formHandoff, nil).Once()

	resp, err := f.svc.StartCheckout(ctx, sid, &models.CheckoutRequest{Buyer: buyer})
	require.NoError(t, err)

	return resp.OrderID
}

func TestNewOrderID(t *testing.T) {
	now := time.UnixMilli(1_734_567_890_123)

	id := service.NewOrderID(now, 42)

	assert.Equal(t, "678901230042", id)
	assert.Regexp(t, regexp.MustCompile(`^\d{12}$`), service.NewOrderID(time.Now(), 9999))
}

func TestStartCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - Empty cart never reaches the gateway", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, false)

		// Act
		resp, err := f.svc.StartCheckout(ctx, sid, &models.CheckoutRequest{Buyer: buyer})

		// Assert
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, "Your cart is empty", appErr.Message)

		state, err := f.svc.State(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, models.CheckoutIdle, state)
	})

	t.Run("Failure - Zero priced cart", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, false)
		_, err := f.cart.AddItem(ctx, sid, &models.AddItemRequest{ID: "9", Name: "Sample"})
		require.NoError(t, err)

		// Act
		_, err = f.svc.StartCheckout(ctx, sid, &models.CheckoutRequest{Buyer: buyer})

		// Assert
		assert.EqualError(t, err, "Your cart is empty")
	})

	t.Run("Success - Handoff and stash", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, false)
		req := whey()
		req.Quantity = 2
		_, err := f.cart.AddItem(ctx, sid, req)
		require.NoError(t, err)

		f.orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *models.CheckoutOrder) bool {
			return o.Amount == 5980 && o.Status == models.OrderStatusPending && o.BuyerEmail == buyer.Email && len(o.Lines) == 1
		})).Return(nil).Once()
		f.gateway.On("Prepare", mock.Anything, mock.MatchedBy(func(o *payment.Order) bool {
			return o.Amount == 5980 && o.Description == "Online order" && len(o.ID) == 12
		})).Return(formHandoff, nil).Once()

		// Act
		resp, err := f.svc.StartCheckout(ctx, sid, &models.CheckoutRequest{Buyer: buyer})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(5980), resp.Amount)
		assert.Equal(t, models.CheckoutRedirecting, resp.State)
		assert.Equal(t, formHandoff, resp.Handoff)

		var stashed models.Buyer
		found, err := f.store.GetCheckout(ctx, sid, session.FieldBuyer, &stashed)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, buyer, stashed)

		var names []string
		_, err = f.store.GetCheckout(ctx, sid, session.FieldProductNames, &names)
		require.NoError(t, err)
		assert.Equal(t, []string{"Whey x2"}, names)

		state, err := f.svc.State(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, models.CheckoutRedirecting, state)
		assert.Contains(t, f.recorder.Topics(), events.TopicCheckoutOpened)
	})

	t.Run("Success - Mixed number and comma prices reach the gateway in cents", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, false)
		_, err := f.cart.AddItem(ctx, sid, &models.AddItemRequest{ID: "A", Name: "Barrita", Price: models.PriceFromFloat(10)})
		require.NoError(t, err)
		_, err = f.cart.AddItem(ctx, sid, &models.AddItemRequest{ID: "B", Name: "Isotónico", Price: models.PriceFromString("15,50"), Quantity: 2})
		require.NoError(t, err)

		f.orders.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Once()
		f.gateway.On("Prepare", mock.Anything, mock.MatchedBy(func(o *payment.Order) bool {
			return o.Amount == 4100
		})).Return(formHandoff, nil).Once()

		// Act
		resp, err := f.svc.StartCheckout(ctx, sid, &models.CheckoutRequest{Buyer: buyer})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(4100), resp.Amount)
		assert.Equal(t, "41.00", resp.Total.StringFixed(2))
	})

	t.Run("Failure - Stash write error resets the state", func(t *testing.T) {
		// Arrange
		f := setupCheckoutWithCache(t, false, &failingFieldCache{MemoryCache: testutils.NewMemoryCache(), field: session.FieldBuyer})
		_, err := f.cart.AddItem(ctx, sid, whey())
		require.NoError(t, err)

		// Act
		resp, err := f.svc.StartCheckout(ctx, sid, &models.CheckoutRequest{Buyer: buyer})

		// Assert
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStorageError, appErr.Code)

		state, err := f.svc.State(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, models.CheckoutIdle, state)
		f.gateway.AssertNotCalled(t, "Prepare", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Gateway error is generic and not retried", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, false)
		_, err := f.cart.AddItem(ctx, sid, whey())
		require.NoError(t, err)

		f.orders.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Once()
		f.gateway.On("Prepare", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()
		f.orders.On("UpdateOrderStatus", mock.Anything, mock.Anything, models.OrderStatusFailed).Return(nil).Once()

		// Act
		resp, err := f.svc.StartCheckout(ctx, sid, &models.CheckoutRequest{Buyer: buyer})

		// Assert
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
		assert.Equal(t, "The payment could not be processed", appErr.Message)
		f.gateway.AssertNumberOfCalls(t, "Prepare", 1)
	})
}

func TestHandleReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Receipt sent once, cart cleared", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, false)
		orderID := f.startCheckout(t)

		f.notifier.On("SendEmail", mock.Anything, mock.MatchedBy(func(e *models.TemplateEmail) bool {
			return e.Reference == orderID &&
				e.Recipient == buyer.Email &&
				e.Data["total"] == "29.90" &&
				len(e.BCC) == 1 && e.BCC[0] == "orders@example.com"
		})).Return(&models.Notification{Status: models.StatusSent}, nil).Once()
		f.orders.On("UpdateOrderStatus", mock.Anything, orderID, models.OrderStatusPaid).Return(nil).Twice()

		// Act
		res, err := f.svc.HandleReturn(ctx, sid, &models.ReturnParams{Outcome: models.ReturnSuccess})
		require.NoError(t, err)
		again, err := f.svc.HandleReturn(ctx, sid, &models.ReturnParams{Outcome: models.ReturnSuccess})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.ReturnSuccess, res.Outcome)
		assert.Equal(t, orderID, res.OrderID)
		assert.True(t, res.ReceiptSent)
		assert.True(t, again.ReceiptSent)

		cart, err := f.cart.GetCart(ctx, sid)
		require.NoError(t, err)
		assert.Empty(t, cart.Lines)

		state, err := f.svc.State(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, models.CheckoutReturnSuccess, state)
		assert.Contains(t, f.recorder.Topics(), events.TopicOrderPaid)
		assert.Contains(t, f.recorder.Topics(), events.TopicReceiptSent)
	})

	t.Run("Success - Failed receipt can be retried", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, false)
		orderID := f.startCheckout(t)

		f.notifier.On("SendEmail", mock.Anything, mock.Anything).Return(nil, appErrors.ThirdPartyError("Failed to send email")).Once()
		f.orders.On("UpdateOrderStatus", mock.Anything, orderID, models.OrderStatusPaid).Return(nil).Once()

		// Act
		res, err := f.svc.HandleReturn(ctx, sid, &models.ReturnParams{Outcome: models.ReturnSuccess, OrderID: orderID})

		// Assert
		require.NoError(t, err)
		assert.False(t, res.ReceiptSent)
		assert.Equal(t, "Failed to send email", res.ReceiptError)

		claimed, err := f.store.ClaimReceipt(ctx, orderID)
		require.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("Failure - Gateway message is plain text", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, false)
		orderID := f.startCheckout(t)

		f.orders.On("UpdateOrderStatus", mock.Anything, orderID, models.OrderStatusFailed).Return(nil).Once()

		// Act
		res, err := f.svc.HandleReturn(ctx, sid, &models.ReturnParams{
			Outcome: models.ReturnFailure,
			OrderID: orderID,
			Message: `<b>Tarjeta</b> denegada <script>alert(1)</script>& más`,
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.ReturnFailure, res.Outcome)
		assert.Equal(t, "Tarjeta denegada & más", res.Message)
		assert.False(t, res.ReceiptSent)

		cart, err := f.cart.GetCart(ctx, sid)
		require.NoError(t, err)
		assert.Len(t, cart.Lines, 1)
	})

	t.Run("Failure - Unsigned return cannot touch another session's order", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, true)
		victimOrder := f.startCheckout(t)

		// Act
		res, err := f.svc.HandleReturn(ctx, "other-session", &models.ReturnParams{Outcome: models.ReturnSuccess, OrderID: victimOrder})

		// Assert
		require.NoError(t, err)
		assert.Empty(t, res.OrderID)
		assert.True(t, res.Pending)
		assert.False(t, res.ReceiptSent)
		f.orders.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
		f.verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
		assert.NotContains(t, f.recorder.Topics(), events.TopicOrderPaid)

		cart, err := f.cart.GetCart(ctx, sid)
		require.NoError(t, err)
		assert.Len(t, cart.Lines, 1)
	})

	t.Run("Success - Unsigned return leaves the session's order pending", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, true)
		orderID := f.startCheckout(t)

		f.notifier.On("SendEmail", mock.Anything, mock.MatchedBy(func(e *models.TemplateEmail) bool {
			return e.Reference == orderID
		})).Return(&models.Notification{Status: models.StatusSent}, nil).Once()

		// Act
		res, err := f.svc.HandleReturn(ctx, sid, &models.ReturnParams{Outcome: models.ReturnSuccess, OrderID: "000000000001"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.ReturnSuccess, res.Outcome)
		assert.Equal(t, orderID, res.OrderID)
		assert.True(t, res.Pending)
		f.orders.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
		assert.NotContains(t, f.recorder.Topics(), events.TopicOrderPaid)
	})

	t.Run("Failure - Unsigned failure return leaves the order to the notification", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, true)
		orderID := f.startCheckout(t)

		// Act
		res, err := f.svc.HandleReturn(ctx, sid, &models.ReturnParams{Outcome: models.ReturnFailure})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.ReturnFailure, res.Outcome)
		assert.Equal(t, orderID, res.OrderID)
		f.orders.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Query order id is ignored without a signature", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, false)
		orderID := f.startCheckout(t)

		f.orders.On("UpdateOrderStatus", mock.Anything, orderID, models.OrderStatusFailed).Return(nil).Once()

		// Act
		res, err := f.svc.HandleReturn(ctx, sid, &models.ReturnParams{Outcome: models.ReturnFailure, OrderID: "000000000001"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, orderID, res.OrderID)
	})

	t.Run("Success - Signed return marks the order paid", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, true)
		orderID := f.startCheckout(t)

		f.verifier.On("Verify", "HMAC_SHA256_V1", "params", "sig").
			Return(&payment.Verification{OrderID: orderID, Authorized: true, Code: "0000"}, nil).Once()
		f.notifier.On("SendEmail", mock.Anything, mock.Anything).Return(&models.Notification{Status: models.StatusSent}, nil).Once()
		f.orders.On("UpdateOrderStatus", mock.Anything, orderID, models.OrderStatusPaid).Return(nil).Once()

		// Act
		res, err := f.svc.HandleReturn(ctx, sid, &models.ReturnParams{
			Outcome:            models.ReturnSuccess,
			SignatureVersion:   "HMAC_SHA256_V1",
			MerchantParameters: "params",
			Signature:          "sig",
		})

		// Assert
		require.NoError(t, err)
		assert.False(t, res.Pending)
		assert.Contains(t, f.recorder.Topics(), events.TopicOrderPaid)
	})

	t.Run("Failure - Signed response says declined", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, true)

		f.verifier.On("Verify", "HMAC_SHA256_V1", "params", "sig").
			Return(&payment.Verification{OrderID: "123456780042", Authorized: false, Code: "0190"}, nil).Once()
		f.orders.On("UpdateOrderStatus", mock.Anything, "123456780042", models.OrderStatusFailed).Return(nil).Once()

		// Act
		res, err := f.svc.HandleReturn(ctx, sid, &models.ReturnParams{
			Outcome:            models.ReturnSuccess,
			SignatureVersion:   "HMAC_SHA256_V1",
			MerchantParameters: "params",
			Signature:          "sig",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.ReturnFailure, res.Outcome)
		assert.Equal(t, "123456780042", res.OrderID)
	})
}

func TestResendReceipt(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Second call within window is throttled", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, false)
		orderID := f.startCheckout(t)

		f.notifier.On("SendEmail", mock.Anything, mock.Anything).Return(&models.Notification{}, nil).Once()

		// Act
		first, err := f.svc.ResendReceipt(ctx, sid)
		require.NoError(t, err)
		second, err := f.svc.ResendReceipt(ctx, sid)

		// Assert
		assert.True(t, first.Sent)
		assert.Equal(t, orderID, first.OrderID)
		assert.Nil(t, second)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, appErr.StatusCode)
		f.notifier.AssertNumberOfCalls(t, "SendEmail", 1)
	})

	t.Run("Success - Partial record rebuilds total and names from the cart", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t, false)
		_, err := f.cart.AddItem(ctx, sid, whey())
		require.NoError(t, err)
		require.NoError(t, f.store.SetCheckout(ctx, sid, session.FieldBuyer, buyer))
		require.NoError(t, f.store.SetCheckout(ctx, sid, session.FieldOrderID, "123456780042"))
		require.NoError(t, f.store.SetCheckout(ctx, sid, session.FieldTotal, "not-a-number"))

		f.notifier.On("SendEmail", mock.Anything, mock.MatchedBy(func(e *models.TemplateEmail) bool {
			names, _ := e.Data["products"].([]string)
			return e.Data["total"] == "29.90" && len(names) == 1 && names[0] == "Whey"
		})).Return(&models.Notification{}, nil).Once()

		// Act
		res, err := f.svc.ResendReceipt(ctx, sid)

		// Assert
		require.NoError(t, err)
		assert.True(t, res.Sent)
	})

	t.Run("Failure - No order in session", func(t *testing.T) {
		f := setupCheckout(t, false)

		_, err := f.svc.ResendReceipt(ctx, sid)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestClearSession(t *testing.T) {
	ctx := context.Background()
	f := setupCheckout(t, false)
	f.startCheckout(t)

	require.NoError(t, f.svc.ClearSession(ctx, sid))

	var orderID string
	found, err := f.store.GetCheckout(ctx, sid, session.FieldOrderID, &orderID)
	require.NoError(t, err)
	assert.False(t, found)

	state, err := f.svc.State(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, models.CheckoutIdle, state)
}

func TestSignPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - Signing disabled", func(t *testing.T) {
		f := setupCheckout(t, false)

		_, err := f.svc.SignPayment(ctx, &models.PaymentRequest{Amount: 100})

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Success - Generates an order id", func(t *testing.T) {
		// Arrange
		signer := mocks.NewSigner(t)
		svc := service.NewCheckoutService(service.CheckoutDeps{Signer: signer}, service.CheckoutConfig{Description: "Online order"})

		signer.On("Sign", mock.Anything, mock.MatchedBy(func(r *models.PaymentRequest) bool {
			return len(r.OrderID) == 12 && r.Description == "Online order"
		})).Return(&models.SignedPayload{URL: "https://gateway.test", Signature: "s"}, nil).Once()

		// Act
		payload, err := svc.SignPayment(ctx, &models.PaymentRequest{Amount: 100})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "s", payload.Signature)
	})
}
