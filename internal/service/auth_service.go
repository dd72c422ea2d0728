package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"time"

	"buildhive-be/internal/constant"
	"buildhive-be/internal/dto"
	"buildhive-be/internal/entity"
	"buildhive-be/internal/pkg/logger"
	"buildhive-be/internal/pkg/mailer"
	"buildhive-be/internal/pkg/serverutils"
	"buildhive-be/internal/repository/specification"
	"buildhive-be/internal/repository/unitofwork"

	"buildhive-be/pkg/events"
	pktNats "buildhive-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	otpLifetime   = 10 * time.Minute
	tokenLifetime = 7 * 24 * time.Hour
)

type IAuthService interface {
	SendOtp(ctx context.Context, req *dto.SendOtpRequest) error
	VerifyOtp(ctx context.Context, req *dto.VerifyOtpRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher *pktNats.Publisher, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

func (s *authService) SendOtp(ctx context.Context, req *dto.SendOtpRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return err
	}

	// Mode confusion gets a distinct error each way.
	if req.Type == dto.OtpTypeSignup && existing != nil {
		return serverutils.BadRequest("User already exists. Please login.")
	}
	if req.Type == dto.OtpTypeLogin && existing == nil {
		return serverutils.NotFound("User not found. Please signup.")
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	otp := &entity.Otp{
		Email:     req.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(otpLifetime),
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().UpsertOtp(ctx, otp); err != nil {
		return err
	}

	// Delivery is best-effort. A failed send still leaves a valid code
	// in the store, the client can ask for a resend.
	if err := s.emailService.SendOTP(req.Email, code); err != nil {
		s.log.Warn("auth", "failed to send otp email", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
	}

	return nil
}

func (s *authService) VerifyOtp(ctx context.Context, req *dto.VerifyOtpRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	userRepo := uow.UserRepository()

	otp, err := userRepo.FindOtpByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if otp == nil {
		return nil, serverutils.BadRequest("OTP not found. Request a new one.")
	}
	if otp.Code != req.Otp {
		return nil, serverutils.BadRequest("Invalid OTP")
	}
	// Expired codes stay in place so a newly issued code is not
	// clobbered by a stale verification attempt.
	if time.Now().After(otp.ExpiresAt) {
		return nil, serverutils.BadRequest("OTP expired")
	}

	var user *entity.User
	switch req.Type {
	case dto.OtpTypeSignup:
		if req.Name == "" {
			return nil, serverutils.BadRequest("Name is required for signup")
		}
		existing, err := userRepo.FindOne(ctx, specification.ByEmail{Email: req.Email})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, serverutils.BadRequest("User already exists. Please login.")
		}
		user = &entity.User{
			Id:            uuid.New(),
			Email:         req.Email,
			Name:          req.Name,
			Skills:        []string{},
			EmailVerified: true,
			Plan:          constant.PlanFree,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		s.publishSignedUp(ctx, user)
	case dto.OtpTypeLogin:
		user, err = userRepo.FindOne(ctx, specification.ByEmail{Email: req.Email})
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, serverutils.NotFound("User not found. Please signup.")
		}
	default:
		return nil, serverutils.BadRequest("Invalid verification type")
	}

	if err := userRepo.DeleteOtp(ctx, req.Email); err != nil {
		return nil, err
	}

	token, err := s.mintToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *authService) mintToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func (s *authService) publishSignedUp(ctx context.Context, user *entity.User) {
	if s.eventPublisher == nil {
		return
	}
	err := s.eventPublisher.Publish(ctx, events.New(events.UserSignedUp, map[string]interface{}{
		"user_id": user.Id.String(),
		"email":   user.Email,
	}))
	if err != nil {
		s.log.Warn("auth", "failed to publish signup event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
