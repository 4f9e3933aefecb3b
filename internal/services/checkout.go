package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/events"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/payment"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/session"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

const maxReturnMessage = 200

type CheckoutService interface {
	StartCheckout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
	HandleReturn(ctx context.Context, sessionID string, params *models.ReturnParams) (*models.PaymentResult, error)
	// HandleNotification records a server-to-server gateway notification.
	HandleNotification(ctx context.Context, params *models.ReturnParams) (*models.PaymentResult, error)
	ResendReceipt(ctx context.Context, sessionID string) (*models.ReceiptResponse, error)
	ClearSession(ctx context.Context, sessionID string) error
	State(ctx context.Context, sessionID string) (models.CheckoutState, error)
	SignPayment(ctx context.Context, req *models.PaymentRequest) (*models.SignedPayload, error)
}

type CheckoutConfig struct {
	Currency          string
	Description       string
	ReceiptTemplateID string
	OrdersInbox       string
	ReceiptThrottle   time.Duration
}

// StripeConfirmer resolves the hosted checkout session named in a return URL.
type StripeConfirmer interface {
	Confirm(ctx context.Context, sessionID string) (*payment.Verification, error)
}

type CheckoutDeps struct {
	Store         *session.Store
	Cart          CartService
	Gateway       payment.Gateway
	Signer        payment.Signer
	Verifier      payment.Verifier
	Confirmer     StripeConfirmer
	Orders        repository.CheckoutOrderRepository
	Notifications NotificationService
	Publisher     events.Publisher
}

type checkoutService struct {
	CheckoutDeps
	cfg       CheckoutConfig
	sanitizer *bluemonday.Policy
	now       func() time.Time
	digits    func() int
}

func NewCheckoutService(deps CheckoutDeps, cfg CheckoutConfig) CheckoutService {
	if deps.Publisher == nil {
		deps.Publisher = events.Nop{}
	}

	return &checkoutService{
		CheckoutDeps: deps,
		cfg:          cfg,
		sanitizer:    bluemonday.StrictPolicy(),
		now:          time.Now,
		digits:       func() int { return rand.IntN(10000) },
	}
}

// NewOrderID is the last 8 digits of the unix millisecond clock followed by 4 random digits.
func NewOrderID(now time.Time, random int) string {
	return fmt.Sprintf("%08d%04d", now.UnixMilli()%100_000_000, random%10_000)
}

// StartCheckout implements CheckoutService.
func (s *checkoutService) StartCheckout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	cart, err := s.Cart.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.setState(ctx, sessionID, models.CheckoutBuildingOrder)

	if len(cart.Lines) == 0 || !cart.TotalPrice.IsPositive() {
		s.setState(ctx, sessionID, models.CheckoutIdle)
		return nil, errors.ValidationError("Your cart is empty")
	}

	amount := models.ToMinorUnits(cart.TotalPrice)
	orderID := NewOrderID(s.now(), s.digits())

	description := req.Description
	if description == "" {
		description = s.cfg.Description
	}

	logger = logger.With(slog.String("order_id", orderID), slog.Int64("amount", amount))

	stash := map[string]any{
		session.FieldBuyer:        req.Buyer,
		session.FieldOrderID:      orderID,
		session.FieldTotal:        cart.TotalPrice.StringFixed(2),
		session.FieldProductNames: lineNames(cart.Lines),
	}

	for field, value := range stash {
		if err := s.Store.SetCheckout(ctx, sessionID, field, value); err != nil {
			s.setState(ctx, sessionID, models.CheckoutIdle)
			return nil, errors.StorageError("Failed to save checkout details").WithError(err)
		}
	}

	order := &models.CheckoutOrder{
		ID:         orderID,
		SessionID:  sessionID,
		Amount:     amount,
		Currency:   s.cfg.Currency,
		Status:     models.OrderStatusPending,
		BuyerEmail: req.Buyer.Email,
		Lines:      cart.Lines,
	}

	if err := s.Orders.CreateOrder(ctx, order); err != nil {
		logger.Warn("Failed to record pending order", slog.String("error", err.Error()))
	}

	s.setState(ctx, sessionID, models.CheckoutAwaitingGatewaySignature)

	handoff, err := s.Gateway.Prepare(ctx, &payment.Order{
		ID:          orderID,
		Amount:      amount,
		Description: description,
		BuyerEmail:  req.Buyer.Email,
	})
	if err != nil {
		logger.Error("Gateway signing failed", slog.String("gateway", s.Gateway.Name()), slog.String("error", err.Error()))
		s.setState(ctx, sessionID, models.CheckoutIdle)
		s.updateOrder(ctx, orderID, models.OrderStatusFailed)

		return nil, errors.ThirdPartyError("The payment could not be processed").WithError(err)
	}

	s.setState(ctx, sessionID, models.CheckoutRedirecting)

	s.Publisher.Publish(ctx, events.CheckoutOpened{
		SessionID: sessionID,
		OrderID:   orderID,
		Amount:    amount,
		Gateway:   s.Gateway.Name(),
	})

	logger.Info("Checkout handed off to gateway", slog.String("gateway", s.Gateway.Name()))

	return &models.CheckoutResponse{
		OrderID: orderID,
		Amount:  amount,
		Total:   cart.TotalPrice,
		State:   models.CheckoutRedirecting,
		Handoff: handoff,
	}, nil
}

// HandleReturn implements CheckoutService. Only signed gateway data may name
// an order; otherwise the order stashed in this session is the one affected.
func (s *checkoutService) HandleReturn(ctx context.Context, sessionID string, params *models.ReturnParams) (*models.PaymentResult, error) {
	logger := middleware.LoggerFromContext(ctx)

	outcome, orderID, verified := s.resolveOutcome(ctx, params)

	if !verified {
		orderID = ""
		var stashed string
		if _, err := s.Store.GetCheckout(ctx, sessionID, session.FieldOrderID, &stashed); err == nil {
			orderID = stashed
		}
	}

	result := &models.PaymentResult{Outcome: outcome, OrderID: orderID}
	logger = logger.With(slog.String("order_id", orderID), slog.String("outcome", string(outcome)), slog.Bool("verified", verified))

	if params.OrderID != "" && params.OrderID != orderID {
		logger.Warn("Return URL named another order, ignored", slog.String("claimed_order_id", params.OrderID))
	}

	if outcome == models.ReturnFailure {
		s.setState(ctx, sessionID, models.CheckoutReturnFailure)
		if verified || !s.verifiesReturns() {
			s.updateOrder(ctx, orderID, models.OrderStatusFailed)
		}
		result.Message = s.plainText(params.Message)

		logger.Info("Payment not completed")

		return result, nil
	}

	s.setState(ctx, sessionID, models.CheckoutReturnSuccess)

	if orderID != "" {
		sent, err := s.sendReceiptOnce(ctx, sessionID, orderID)
		result.ReceiptSent = sent

		if err != nil {
			result.ReceiptError = err.Error()
		}
	}

	if err := s.Cart.Clear(ctx, sessionID); err != nil {
		logger.Warn("Failed to clear cart after payment", slog.String("error", err.Error()))
	}

	// with a gateway that signs its results, finality belongs to the notification
	if !verified && s.verifiesReturns() {
		result.Pending = true
		logger.Info("Unsigned return, order left pending for the gateway notification")

		return result, nil
	}

	if orderID == "" {
		logger.Info("Successful return without an order")
		return result, nil
	}

	s.updateOrder(ctx, orderID, models.OrderStatusPaid)

	s.Publisher.Publish(ctx, events.OrderPaid{SessionID: sessionID, OrderID: orderID, Amount: s.stashedAmount(ctx, sessionID)})

	logger.Info("Payment completed", slog.Bool("receipt_sent", result.ReceiptSent))

	return result, nil
}

// HandleNotification implements CheckoutService. Only signed notifications are accepted.
func (s *checkoutService) HandleNotification(ctx context.Context, params *models.ReturnParams) (*models.PaymentResult, error) {
	if s.Verifier == nil {
		return nil, errors.NotFoundError("Gateway notifications are not enabled")
	}

	v, err := s.Verifier.Verify(params.SignatureVersion, params.MerchantParameters, params.Signature)
	if err != nil {
		return nil, errors.BadRequestError("Invalid gateway signature").WithError(err)
	}

	result := &models.PaymentResult{Outcome: models.ReturnFailure, OrderID: v.OrderID}
	status := models.OrderStatusFailed

	if v.Authorized {
		result.Outcome = models.ReturnSuccess
		status = models.OrderStatusPaid
	}

	s.updateOrder(ctx, v.OrderID, status)

	return result, nil
}

// ResendReceipt implements CheckoutService.
func (s *checkoutService) ResendReceipt(ctx context.Context, sessionID string) (*models.ReceiptResponse, error) {
	unlock := s.Store.Lock(sessionID)
	defer unlock()

	now := s.now()

	var lastSent time.Time
	if found, err := s.Store.GetCheckout(ctx, sessionID, session.FieldReceiptLastSent, &lastSent); err != nil {
		return nil, errors.StorageError("Failed to read checkout details").WithError(err)
	} else if found {
		if wait := s.cfg.ReceiptThrottle - now.Sub(lastSent); wait > 0 {
			return nil, errors.TooManyRequestsError("Please wait before requesting another receipt").
				WithDetail(fmt.Sprintf("retry in %d seconds", int(wait.Round(time.Second).Seconds())))
		}
	}

	var orderID string
	if found, err := s.Store.GetCheckout(ctx, sessionID, session.FieldOrderID, &orderID); err != nil {
		return nil, errors.StorageError("Failed to read checkout details").WithError(err)
	} else if !found || orderID == "" {
		return nil, errors.NotFoundError("There is no recent order to send a receipt for")
	}

	// the attempt counts even if delivery fails
	if err := s.Store.SetCheckout(ctx, sessionID, session.FieldReceiptLastSent, now); err != nil {
		return nil, errors.StorageError("Failed to save checkout details").WithError(err)
	}

	if err := s.sendReceipt(ctx, sessionID, orderID); err != nil {
		return nil, err
	}

	s.Publisher.Publish(ctx, events.ReceiptSent{OrderID: orderID, Resend: true})

	return &models.ReceiptResponse{OrderID: orderID, Sent: true, Message: "Receipt sent"}, nil
}

// ClearSession implements CheckoutService.
func (s *checkoutService) ClearSession(ctx context.Context, sessionID string) error {
	if err := s.Store.ClearCheckout(ctx, sessionID); err != nil {
		return errors.StorageError("Failed to clear checkout details").WithError(err)
	}

	return nil
}

// State implements CheckoutService.
func (s *checkoutService) State(ctx context.Context, sessionID string) (models.CheckoutState, error) {
	var state models.CheckoutState

	found, err := s.Store.GetCheckout(ctx, sessionID, session.FieldState, &state)
	if err != nil {
		return "", errors.StorageError("Failed to read checkout details").WithError(err)
	}

	if !found || state == "" {
		return models.CheckoutIdle, nil
	}

	return state, nil
}

// SignPayment implements CheckoutService.
func (s *checkoutService) SignPayment(ctx context.Context, req *models.PaymentRequest) (*models.SignedPayload, error) {
	if s.Signer == nil {
		return nil, errors.NotFoundError("Payment signing is not enabled")
	}

	if req.OrderID == "" {
		req.OrderID = NewOrderID(s.now(), s.digits())
	}

	if req.Description == "" {
		req.Description = s.cfg.Description
	}

	payload, err := s.Signer.Sign(ctx, req)
	if err != nil {
		return nil, errors.ThirdPartyError("The payment could not be processed").WithError(err)
	}

	return payload, nil
}

func (s *checkoutService) verifiesReturns() bool {
	return s.Verifier != nil || s.Confirmer != nil
}

// resolveOutcome trusts signed gateway data over the route when it is present.
// verified reports that the returned order id came from the gateway.
func (s *checkoutService) resolveOutcome(ctx context.Context, params *models.ReturnParams) (models.ReturnOutcome, string, bool) {
	logger := middleware.LoggerFromContext(ctx)

	switch {
	case s.Verifier != nil && params.MerchantParameters != "" && params.Signature != "":
		v, err := s.Verifier.Verify(params.SignatureVersion, params.MerchantParameters, params.Signature)
		if err != nil {
			logger.Warn("Rejected gateway return signature", slog.String("error", err.Error()))
			return models.ReturnFailure, "", false
		}

		if !v.Authorized {
			return models.ReturnFailure, v.OrderID, true
		}

		return params.Outcome, v.OrderID, true

	case s.Confirmer != nil && params.CheckoutSessionID != "" && params.Outcome == models.ReturnSuccess:
		v, err := s.Confirmer.Confirm(ctx, params.CheckoutSessionID)
		if err != nil {
			logger.Warn("Failed to confirm checkout session", slog.String("error", err.Error()))
			return models.ReturnFailure, "", false
		}

		if !v.Authorized {
			return models.ReturnFailure, v.OrderID, true
		}

		return models.ReturnSuccess, v.OrderID, true
	}

	return params.Outcome, "", false
}

// sendReceiptOnce sends the receipt the first time an order returns successfully.
func (s *checkoutService) sendReceiptOnce(ctx context.Context, sessionID, orderID string) (bool, error) {
	claimed, err := s.Store.ClaimReceipt(ctx, orderID)
	if err != nil {
		return false, errors.StorageError("Failed to check receipt status").WithError(err)
	}

	if !claimed {
		return true, nil
	}

	if err := s.sendReceipt(ctx, sessionID, orderID); err != nil {
		if rerr := s.Store.ReleaseReceipt(ctx, orderID); rerr != nil {
			middleware.LoggerFromContext(ctx).Warn("Failed to release receipt flag", slog.String("error", rerr.Error()))
		}

		return false, err
	}

	s.Publisher.Publish(ctx, events.ReceiptSent{OrderID: orderID})

	return true, nil
}

// sendReceipt builds the receipt from the stashed checkout fields. A missing
// total or product list is rebuilt from the cart, then from the order record.
func (s *checkoutService) sendReceipt(ctx context.Context, sessionID, orderID string) error {
	var buyer models.Buyer
	if found, _ := s.Store.GetCheckout(ctx, sessionID, session.FieldBuyer, &buyer); !found || buyer.Email == "" {
		return errors.ValidationError("Buyer details are missing for this order")
	}

	var lines []models.CartLine
	if cart, err := s.Cart.GetCart(ctx, sessionID); err == nil {
		lines = cart.Lines
	}

	if len(lines) == 0 {
		if order, err := s.Orders.GetOrderByID(ctx, orderID); err == nil {
			lines = order.Lines
		}
	}

	total := decimal.Zero

	var totalText string
	if found, _ := s.Store.GetCheckout(ctx, sessionID, session.FieldTotal, &totalText); found {
		if parsed, err := decimal.NewFromString(totalText); err == nil {
			total = parsed
		}
	}

	if !total.IsPositive() {
		total = buildCart(sessionID, lines).TotalPrice
	}

	var names []string
	if found, _ := s.Store.GetCheckout(ctx, sessionID, session.FieldProductNames, &names); !found || len(names) == 0 {
		names = lineNames(lines)
	}

	_, err := s.Notifications.SendEmail(ctx, receiptEmail(orderID, &buyer, total, names, s.cfg))

	return err
}

func receiptEmail(orderID string, buyer *models.Buyer, total decimal.Decimal, names []string, cfg CheckoutConfig) *models.TemplateEmail {
	subject := "Order confirmation " + orderID

	var text strings.Builder
	fmt.Fprintf(&text, "Hello %s,\n\nThank you for your order %s.\n\n", buyer.Name, orderID)

	for _, n := range names {
		fmt.Fprintf(&text, "- %s\n", n)
	}

	fmt.Fprintf(&text, "\nTotal: %s EUR\n\nShipping to:\n%s\n%s %s\n", total.StringFixed(2), buyer.Address, buyer.PostalCode, buyer.City)

	return &models.TemplateEmail{
		Kind:       models.NotificationReceipt,
		Reference:  orderID,
		Recipient:  buyer.Email,
		Name:       buyer.Name,
		Subject:    subject,
		TemplateID: cfg.ReceiptTemplateID,
		BCC:        []string{cfg.OrdersInbox},
		Data: map[string]any{
			"order_id":    orderID,
			"total":       total.StringFixed(2),
			"products":    names,
			"name":        buyer.Name,
			"email":       buyer.Email,
			"phone":       buyer.Phone,
			"address":     buyer.Address,
			"city":        buyer.City,
			"postal_code": buyer.PostalCode,
			"province":    buyer.Province,
			"country":     buyer.Country,
		},
		Text: text.String(),
	}
}

func (s *checkoutService) setState(ctx context.Context, sessionID string, state models.CheckoutState) {
	if err := s.Store.SetCheckout(ctx, sessionID, session.FieldState, state); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to save checkout state", slog.String("state", string(state)), slog.String("error", err.Error()))
	}
}

func (s *checkoutService) updateOrder(ctx context.Context, orderID string, status models.OrderStatus) {
	if orderID == "" {
		return
	}

	if err := s.Orders.UpdateOrderStatus(ctx, orderID, status); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to update order status",
			slog.String("order_id", orderID), slog.String("status", string(status)), slog.String("error", err.Error()))
	}
}

func (s *checkoutService) stashedAmount(ctx context.Context, sessionID string) int64 {
	var totalText string
	if found, _ := s.Store.GetCheckout(ctx, sessionID, session.FieldTotal, &totalText); !found {
		return 0
	}

	total, err := decimal.NewFromString(totalText)
	if err != nil {
		return 0
	}

	return models.ToMinorUnits(total)
}

// plainText strips markup from a gateway supplied message.
func (s *checkoutService) plainText(msg string) string {
	clean := strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(msg)))

	if r := []rune(clean); len(r) > maxReturnMessage {
		clean = string(r[:maxReturnMessage])
	}

	return clean
}

func lineNames(lines []models.CartLine) []string {
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Quantity > 1 {
			names = append(names, fmt.Sprintf("%s x%d", l.Name, l.Quantity))
			continue
		}

		names = append(names, l.Name)
	}

	return names
}
