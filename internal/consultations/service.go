package consultations

import (
	"context"
	"errors"

	"neuralink-backend/internal/validation"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrNotFound      = errors.New("consultation request not found")
)

type Notifier interface {
	SendConsultationNotification(ctx context.Context, req Request) (string, error)
}

type Service struct {
	repo     Repository
	val      *validation.Validator
	notifier Notifier
}

func NewService(repo Repository, val *validation.Validator, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		val:      val,
		notifier: notifier,
	}
}

// Validate checks presence of name, email and message before the email shape,
// so a request without an email reports ErrMissingFields.
func (s *Service) Validate(req SubmitRequest) (Submission, error) {
	if err := s.val.Struct(req); err != nil {
		errs := s.val.ValidationErrors(err)
		if errs == nil {
			return Submission{}, err
		}
		if validation.HasTag(errs, validation.TagRequired) {
			return Submission{}, ErrMissingFields
		}
		if validation.HasTag(errs, validation.TagSimpleEmail) {
			return Submission{}, ErrInvalidEmail
		}
		return Submission{}, err
	}

	sub := Submission{
		Name:            req.Name,
		Email:           req.Email,
		Company:         req.Company,
		Message:         req.Message,
		ServiceInterest: req.ServiceInterest,
	}
	if sub.Company == "" {
		sub.Company = DefaultCompany
	}
	if sub.ServiceInterest == "" {
		sub.ServiceInterest = DefaultServiceInterest
	}
	return sub, nil
}

func (s *Service) Submit(ctx context.Context, req SubmitRequest) (Request, error) {
	sub, err := s.Validate(req)
	if err != nil {
		return Request{}, err
	}
	return s.repo.Append(ctx, sub)
}

func (s *Service) List(ctx context.Context) (ListResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return ListResponse{}, err
	}
	return ListResponse{
		Total:    len(items),
		Requests: items,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (Request, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) NotifyNewRequest(ctx context.Context, req Request) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.SendConsultationNotification(ctx, req)
	return err
}
