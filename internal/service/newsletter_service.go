package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"storefront-api/internal/mail"
	"storefront-api/internal/model"
	"storefront-api/internal/otp"
	"storefront-api/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// newsletterService implements NewsletterService.
type newsletterService struct {
	users  repository.UserRepository
	promos repository.PromoRepository
	codes  otp.Store
	sender mail.Sender
	ttl    time.Duration
	logger zerolog.Logger
}

// NewNewsletterService creates a new newsletter service.
func NewNewsletterService(users repository.UserRepository, promos repository.PromoRepository, codes otp.Store, sender mail.Sender, ttl time.Duration, logger zerolog.Logger) NewsletterService {
	return &newsletterService{
		users:  users,
		promos: promos,
		codes:  codes,
		sender: sender,
		ttl:    ttl,
		logger: logger.With().Str("service", "newsletter").Logger(),
	}
}

// SendOTP issues a one-time code for the email and mails it. The code is
// stored before the email is attempted so a slow mail server cannot lose it.
func (s *newsletterService) SendOTP(ctx context.Context, email string) error {
	if email == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Email is required")
	}
	email = strings.ToLower(email)

	code := otp.GenerateCode()
	if err := s.codes.Put(ctx, email, code, s.ttl); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	subject, body := mail.OTPMessage(code, int(s.ttl.Minutes()))
	if err := s.sender.Send(ctx, email, subject, body); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("otp email failed")
	}

	s.logger.Info().Str("email", email).Msg("otp issued")
	return nil
}

// Verify consumes a one-time code and records the subscription, creating an
// account for the email if none exists.
func (s *newsletterService) Verify(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Email and OTP are required")
	}
	email = strings.ToLower(email)

	if err := s.codes.Consume(ctx, email, code); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	now := time.Now()
	if user != nil {
		if !user.IsNewsletterSubscribed {
			user.IsNewsletterSubscribed = true
			user.UpdatedAt = now
			if err := s.users.Update(ctx, user); err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}
		}
		s.logger.Info().Str("email", email).Msg("newsletter subscription confirmed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(randomSecret()), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	user = &model.User{
		ID:                     uuid.New(),
		Name:                   name,
		Email:                  email,
		PasswordHash:           string(hash),
		Role:                   model.RoleUser,
		IsActive:               true,
		IsNewsletterSubscribed: true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create subscriber: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("subscriber account created")
	return nil
}

// Subscribers retrieves all newsletter subscribers.
func (s *newsletterService) Subscribers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.ListSubscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// Broadcast emails every subscriber. Individual delivery failures are logged
// and skipped; the returned count is the number of successful sends.
func (s *newsletterService) Broadcast(ctx context.Context, subject, message string) (int, error) {
	if subject == "" || message == "" {
		return 0, model.NewDomainError(model.ErrCodeMissingField, "Subject and message are required")
	}

	subscribers, err := s.users.ListSubscribers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list subscribers: %w", err)
	}

	sent := 0
	for _, sub := range subscribers {
		if err := s.sender.Send(ctx, sub.Email, subject, message); err != nil {
			s.logger.Warn().Err(err).Str("email", sub.Email).Msg("broadcast email failed")
			continue
		}
		sent++
	}

	s.logger.Info().Int("sent", sent).Int("subscribers", len(subscribers)).Msg("newsletter broadcast")
	return sent, nil
}

// CreatePromo records a promotion.
func (s *newsletterService) CreatePromo(ctx context.Context, title, description, discountCode string, discountPercent int, validTill string) (*model.Promo, error) {
	if title == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Title is required")
	}
	if discountPercent < 0 || discountPercent > 100 {
		return nil, model.ErrInvalidDiscount
	}

	promo := &model.Promo{
		ID:              uuid.NewString(),
		Title:           title,
		Description:     description,
		DiscountCode:    discountCode,
		DiscountPercent: discountPercent,
		ValidTill:       validTill,
		CreatedAt:       time.Now(),
	}
	if err := s.promos.Create(ctx, promo); err != nil {
		return nil, fmt.Errorf("failed to create promo: %w", err)
	}

	s.logger.Info().Str("promo_id", promo.ID).Str("title", title).Msg("promo created")
	return promo, nil
}

// Promos retrieves all promotions, newest first.
func (s *newsletterService) Promos(ctx context.Context) ([]model.Promo, error) {
	promos, err := s.promos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list promos: %w", err)
	}
	if promos == nil {
		promos = []model.Promo{}
	}
	return promos, nil
}

// randomSecret generates a throwaway password for accounts created through
// newsletter verification. The owner can reset it later.
func randomSecret() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return hex.EncodeToString(b)
}
