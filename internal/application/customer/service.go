package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/id"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/otp"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/paging"
	"golang.org/x/crypto/bcrypt"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldCustomerName = "customer_name"
	fieldAddress      = "address"
	fieldOTP          = "otp"
	fieldOTPExpires   = "otp_expires"
	fieldIsVerified   = "is_verified"

	fieldAadhaarNumber = "kyc.aadhaar.number"
	fieldAadhaarFront  = "kyc.aadhaar.front_photo"
	fieldAadhaarBack   = "kyc.aadhaar.back_photo"
	fieldPANNumber     = "kyc.pan.number"
	fieldPANPhoto      = "kyc.pan.photo"
	fieldPassbookPhoto = "kyc.bank_passbook.photo"
)

type Service interface {
	SendOTP(ctx context.Context, owner string, req domain.SendOTPRequest) error
	VerifyOTP(ctx context.Context, owner string, req domain.VerifyOTPRequest) (*domain.Customer, error)
	List(ctx context.Context, owner string, page, limit int) ([]domain.Customer, int, error)
	Get(ctx context.Context, customerID, owner string) (*domain.Customer, error)
	Update(ctx context.Context, customerID, owner string, req domain.UpdateCustomerRequest) (*domain.Customer, error)
	Delete(ctx context.Context, customerID, owner string) error
	SetAadhaar(ctx context.Context, customerID, owner, number, frontRef, backRef string) (*domain.Customer, error)
	SetPAN(ctx context.Context, customerID, owner, number, photoRef string) (*domain.Customer, error)
	SetBankPassbook(ctx context.Context, customerID, owner, photoRef string) (*domain.Customer, error)
}

type customerStore interface {
	Put(ctx context.Context, c *domain.Customer) error
	GetOwned(ctx context.Context, customerID, owner string) (*domain.Customer, error)
	GetByMobile(ctx context.Context, owner, mobile string) (*domain.Customer, error)
	ListVerifiedByOwner(ctx context.Context, owner string) ([]domain.Customer, error)
	Update(ctx context.Context, customerID, owner string, updates map[string]interface{}) (*domain.Customer, error)
	MarkVerified(ctx context.Context, customerID, otpHash string) (*domain.Customer, error)
	Delete(ctx context.Context, customerID, owner string) error
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type service struct {
	repo   customerStore
	sms    smsSender
	otpTTL time.Duration
}

func NewService(repo customerStore, sms smsSender, otpTTL time.Duration) Service {
	return &service{repo: repo, sms: sms, otpTTL: otpTTL}
}

// SendOTP starts (or restarts) the verification challenge for
// (mobile, owner). The record is upserted unverified; an expired or
// abandoned prior challenge is simply overwritten.
func (s *service) SendOTP(ctx context.Context, owner string, req domain.SendOTPRequest) error {
	existing, err := s.repo.GetByMobile(ctx, owner, req.MobileNumber)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil && existing.IsVerified {
		return fmt.Errorf("a verified customer with this mobile number already exists: %w", domain.ErrConflict)
	}

	code, err := otp.New()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	expires := time.Now().Add(s.otpTTL).Unix()

	if existing != nil {
		_, err = s.repo.Update(ctx, existing.CustomerID, owner, map[string]interface{}{
			fieldCustomerName: req.CustomerName,
			fieldAddress:      req.Address,
			fieldOTP:          string(hash),
			fieldOTPExpires:   expires,
			fieldIsVerified:   false,
		})
	} else {
		now := time.Now().UTC()
		otpHash := string(hash)
		err = s.repo.Put(ctx, &domain.Customer{
			CustomerID:   id.New(),
			CustomerName: req.CustomerName,
			MobileNumber: req.MobileNumber,
			Address:      req.Address,
			CreatedBy:    owner,
			OTP:          &otpHash,
			OTPExpires:   &expires,
			IsVerified:   false,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	if err != nil {
		return err
	}

	return s.sms.SendSMS(ctx, req.MobileNumber, "Your verification code: "+code)
}

// VerifyOTP completes the challenge. The pending→verified write is
// conditional on the exact challenge that was validated, so a concurrent
// confirm for the same pair can win at most once.
func (s *service) VerifyOTP(ctx context.Context, owner string, req domain.VerifyOTPRequest) (*domain.Customer, error) {
	c, err := s.repo.GetByMobile(ctx, owner, req.MobileNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("customer not found, send OTP first: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	if c.IsVerified {
		return nil, fmt.Errorf("customer is already verified: %w", domain.ErrConflict)
	}
	if c.OTP == nil || c.OTPExpires == nil {
		return nil, domain.ErrInvalidOTP
	}
	if bcrypt.CompareHashAndPassword([]byte(*c.OTP), []byte(req.OTP)) != nil {
		return nil, domain.ErrInvalidOTP
	}
	if time.Now().Unix() >= *c.OTPExpires {
		return nil, domain.ErrInvalidOTP
	}
	return s.repo.MarkVerified(ctx, c.CustomerID, *c.OTP)
}

func (s *service) List(ctx context.Context, owner string, page, limit int) ([]domain.Customer, int, error) {
	page, limit = paging.Clamp(page, limit)
	all, err := s.repo.ListVerifiedByOwner(ctx, owner)
	if err != nil {
		return nil, 0, err
	}
	return paging.Slice(all, page, limit), len(all), nil
}

func (s *service) Get(ctx context.Context, customerID, owner string) (*domain.Customer, error) {
	return s.repo.GetOwned(ctx, customerID, owner)
}

func (s *service) Update(ctx context.Context, customerID, owner string, req domain.UpdateCustomerRequest) (*domain.Customer, error) {
	updates := map[string]interface{}{}
	if req.CustomerName != nil {
		updates[fieldCustomerName] = *req.CustomerName
	}
	if req.Address != nil {
		updates[fieldAddress] = *req.Address
	}
	if len(updates) == 0 {
		return s.repo.GetOwned(ctx, customerID, owner)
	}
	return s.repo.Update(ctx, customerID, owner, updates)
}

func (s *service) Delete(ctx context.Context, customerID, owner string) error {
	return s.repo.Delete(ctx, customerID, owner)
}

func (s *service) SetAadhaar(ctx context.Context, customerID, owner, number, frontRef, backRef string) (*domain.Customer, error) {
	if number == "" || frontRef == "" || backRef == "" {
		return nil, fmt.Errorf("all Aadhaar fields are required: %w", domain.ErrBadRequest)
	}
	return s.repo.Update(ctx, customerID, owner, map[string]interface{}{
		fieldAadhaarNumber: number,
		fieldAadhaarFront:  frontRef,
		fieldAadhaarBack:   backRef,
	})
}

func (s *service) SetPAN(ctx context.Context, customerID, owner, number, photoRef string) (*domain.Customer, error) {
	if number == "" || photoRef == "" {
		return nil, fmt.Errorf("PAN number and photo are required: %w", domain.ErrBadRequest)
	}
	return s.repo.Update(ctx, customerID, owner, map[string]interface{}{
		fieldPANNumber: number,
		fieldPANPhoto:  photoRef,
	})
}

func (s *service) SetBankPassbook(ctx context.Context, customerID, owner, photoRef string) (*domain.Customer, error) {
	if photoRef == "" {
		return nil, fmt.Errorf("bank passbook photo is required: %w", domain.ErrBadRequest)
	}
	return s.repo.Update(ctx, customerID, owner, map[string]interface{}{
		fieldPassbookPhoto: photoRef,
	})
}
