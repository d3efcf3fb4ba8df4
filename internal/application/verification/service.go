package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/barista-preorder/internal/domain"
	"github.com/barista-preorder/internal/infrastructure/smtp"
	"github.com/barista-preorder/internal/pkg/id"
	"github.com/rs/zerolog"
)

// IssueRequest asks for a verification code to be emailed.
type IssueRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// RedeemRequest presents a code to finalize a pending action. A zero total
// is a login confirmation; a positive total places an order.
type RedeemRequest struct {
	Name  string              `json:"name" validate:"required"`
	Email string              `json:"email" validate:"required,email"`
	Code  string              `json:"code" validate:"required"`
	Cart  domain.CartSnapshot `json:"cart"`
	Total float64             `json:"total" validate:"gte=0"`
}

// CodeStore is the shared email→code mapping the issuer and redeemer operate on.
type CodeStore interface {
	Set(email, code string)
	Redeem(email, supplied string) bool
	Clear(email string)
}

// OrderBoard receives confirmed orders.
type OrderBoard interface {
	Prepend(o domain.Order)
}

type Service interface {
	IssueCode(ctx context.Context, req IssueRequest) error
	Redeem(ctx context.Context, req RedeemRequest) (*domain.Order, error)
}

type service struct {
	codes          CodeStore
	board          OrderBoard
	mailer         smtp.Mailer
	strictDelivery bool
	log            *zerolog.Logger
}

func NewService(codes CodeStore, board OrderBoard, mailer smtp.Mailer, strictDelivery bool, log *zerolog.Logger) Service {
	return &service{
		codes:          codes,
		board:          board,
		mailer:         mailer,
		strictDelivery: strictDelivery,
		log:            log,
	}
}

// IssueCode generates a fresh 6-digit code for email (replacing any prior
// one), stores it and hands it to the mailer. A delivery failure never rolls
// the stored code back; whether it is reported to the caller depends on the
// strict-delivery policy.
func (s *service) IssueCode(ctx context.Context, req IssueRequest) error {
	if req.Name == "" || req.Email == "" {
		return fmt.Errorf("name and email are required: %w", domain.ErrBadRequest)
	}

	code, err := generateCode()
	if err != nil {
		return err
	}
	s.codes.Set(req.Email, code)

	if err := s.mailer.SendVerificationCode(req.Name, req.Email, code); err != nil {
		// The user may still receive the code through a side channel, so the
		// stored entry stays redeemable.
		s.log.Warn().Err(err).Str("email", req.Email).Msg("verification email delivery failed")
		if s.strictDelivery {
			return fmt.Errorf("send verification email: %w", domain.ErrDelivery)
		}
	}
	return nil
}

// Redeem atomically checks and consumes the stored code for email. On a
// match it builds a confirmed order; positive totals land on the board,
// a zero total returns a transient order for login confirmation only.
// Every failure is the same generic ErrInvalidCode so callers cannot probe
// whether a code exists for an address.
func (s *service) Redeem(ctx context.Context, req RedeemRequest) (*domain.Order, error) {
	if !s.codes.Redeem(req.Email, req.Code) {
		return nil, domain.ErrInvalidCode
	}

	order := domain.Order{
		ID:           id.New(),
		CustomerName: req.Name,
		Total:        req.Total,
		Status:       domain.OrderStatusConfirmed,
		CreatedAt:    time.Now().UTC(),
	}
	if req.Total > 0 {
		s.board.Prepend(order)
	}

	s.log.Info().
		Str("order_id", order.ID).
		Float64("total", order.Total).
		Bool("placed", req.Total > 0).
		Msg("code redeemed")
	return &order, nil
}

// generateCode returns a uniformly random 6-digit numeric string in
// [100000, 999999]; the range excludes leading zeros so no padding is needed.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
