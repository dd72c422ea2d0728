package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"buildhive-be/internal/constant"
	"buildhive-be/internal/dto"
	"buildhive-be/internal/entity"
	"buildhive-be/internal/pkg/logger"
	"buildhive-be/internal/pkg/serverutils"
	"buildhive-be/internal/repository/specification"
	"buildhive-be/internal/repository/unitofwork"
	"buildhive-be/pkg/events"
	pktNats "buildhive-be/pkg/nats"
	"buildhive-be/pkg/payment"

	"github.com/google/uuid"
)

type IPaymentService interface {
	CreateOrder(ctx context.Context, userId uuid.UUID, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, userId uuid.UUID, req *dto.VerifyPaymentRequest) (*dto.UserResponse, error)
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) error
	Status(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error)
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	gateway        payment.Gateway
	keyId          string
	keySecret      string
	webhookSecret  string
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, gateway payment.Gateway, keyId, keySecret, webhookSecret string, eventPublisher *pktNats.Publisher, log logger.ILogger) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		gateway:        gateway,
		keyId:          keyId,
		keySecret:      keySecret,
		webhookSecret:  webhookSecret,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *paymentService) CreateOrder(ctx context.Context, userId uuid.UUID, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	price, ok := constant.PriceFor(req.Plan)
	if !ok {
		return nil, serverutils.BadRequest("Invalid plan")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.Unauthorized("User not found")
	}

	receipt := fmt.Sprintf("rcpt_%s", uuid.New().String()[:18])
	// Notes travel through the gateway and come back on the webhook,
	// they are the only link between a payment and our user.
	notes := map[string]interface{}{
		"userId": userId.String(),
		"plan":   req.Plan,
	}

	order, err := s.gateway.CreateOrder(price, "INR", receipt, notes)
	if err != nil {
		s.log.Error("payment", "order creation failed", map[string]interface{}{
			"user_id": userId.String(),
			"plan":    req.Plan,
			"error":   err.Error(),
		})
		return nil, serverutils.ServiceUnavailable("Payment service unavailable. Please try again later.")
	}

	return &dto.CreateOrderResponse{
		OrderId:  order.Id,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyId:    s.keyId,
	}, nil
}

func (s *paymentService) VerifyPayment(ctx context.Context, userId uuid.UUID, req *dto.VerifyPaymentRequest) (*dto.UserResponse, error) {
	if !payment.VerifyOrderPayment(req.RazorpayOrderId, req.RazorpayPaymentId, req.RazorpaySignature, s.keySecret) {
		return nil, serverutils.BadRequest("Invalid payment signature")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// A payment already in the ledger was applied by the webhook (or a
	// retried verify call). Activation must not extend twice.
	processed, err := uow.PaymentEventRepository().FindByPaymentId(ctx, req.RazorpayPaymentId)
	if err != nil {
		return nil, err
	}
	if processed != nil {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, serverutils.Unauthorized("User not found")
		}
		res := toUserResponse(user)
		return &res, nil
	}

	user, err := s.applyActivation(ctx, uow, userId, req.Plan, req.RazorpayPaymentId, "payment.verified")
	if err != nil {
		return nil, err
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	if len(rawBody) == 0 || signature == "" {
		return serverutils.BadRequest("Missing webhook signature")
	}
	if !payment.VerifyWebhookBody(rawBody, signature, s.webhookSecret) {
		return serverutils.BadRequest("Invalid webhook signature")
	}

	event, err := payment.ParseWebhookEvent(rawBody)
	if err != nil {
		return serverutils.BadRequest("Malformed webhook payload")
	}
	if !event.IsCaptureEvent() {
		// Acknowledge everything else so the gateway stops retrying.
		return nil
	}

	ent := event.Payload.Payment.Entity
	userIdStr := ent.Notes["userId"]
	plan := ent.Notes["plan"]
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return serverutils.BadRequest("Webhook event missing user metadata")
	}
	if _, ok := constant.PriceFor(plan); !ok {
		return serverutils.BadRequest("Webhook event carries an unknown plan")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	processed, err := uow.PaymentEventRepository().FindByPaymentId(ctx, ent.Id)
	if err != nil {
		return err
	}
	if processed != nil {
		// Gateways redeliver, the ledger makes that a no-op.
		return nil
	}

	if _, err := s.applyActivation(ctx, uow, userId, plan, ent.Id, event.Event); err != nil {
		return err
	}
	return nil
}

// applyActivation records the payment and switches the user onto the
// paid plan inside one transaction.
func (s *paymentService) applyActivation(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, plan, paymentId, eventType string) (*entity.User, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}

	ledger := &entity.PaymentEvent{
		PaymentId:   paymentId,
		Event:       eventType,
		UserId:      userId,
		Plan:        plan,
		ProcessedAt: time.Now(),
	}
	if err := uow.PaymentEventRepository().Create(ctx, ledger); err != nil {
		return nil, err
	}

	status := constant.SubscriptionStatusActive
	endDate := time.Now().AddDate(0, 0, constant.SubscriptionDays)
	user.Plan = plan
	user.SubscriptionStatus = &status
	user.SubscriptionEndDate = &endDate
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("payment", "subscription activated", map[string]interface{}{
		"user_id":    userId.String(),
		"plan":       plan,
		"payment_id": paymentId,
	})
	s.publishActivated(ctx, user, paymentId)

	return user, nil
}

func (s *paymentService) Status(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.Unauthorized("User not found")
	}

	limit := constant.DailyLimitFor(user.Plan)
	usage, err := countTodayReviews(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	percent := 0
	if limit > 0 {
		percent = int(math.Min(math.Round(float64(usage)/float64(limit)*100), 100))
	}

	status := constant.SubscriptionStatusInactive
	if user.SubscriptionStatus != nil {
		status = *user.SubscriptionStatus
	}

	return &dto.SubscriptionStatusResponse{
		Plan:        user.Plan,
		Usage:       usage,
		Limit:       limit,
		PercentUsed: percent,
		ResetTime:   nextMidnight(time.Now()),
		Status:      status,
		EndDate:     user.SubscriptionEndDate,
	}, nil
}

func (s *paymentService) publishActivated(ctx context.Context, user *entity.User, paymentId string) {
	if s.eventPublisher == nil {
		return
	}
	err := s.eventPublisher.Publish(ctx, events.New(events.SubscriptionActive, map[string]interface{}{
		"user_id":    user.Id.String(),
		"plan":       user.Plan,
		"payment_id": paymentId,
	}))
	if err != nil {
		s.log.Warn("payment", "failed to publish activation event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
