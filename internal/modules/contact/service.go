package contact

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"lankatrails/internal/domain"
)

type Service struct {
	contacts ContactRepository
	log      *logrus.Logger
}

func NewService(contacts ContactRepository, log *logrus.Logger) *Service {
	return &Service{contacts: contacts, log: log}
}

func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.ContactSubmission, error) {
	cs := &domain.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := s.contacts.Create(ctx, cs); err != nil {
		return nil, err
	}
	s.log.WithField("contact_id", cs.ID).Info("contact submission received")
	return cs, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.ContactSubmission, error) {
	return s.contacts.ListAll(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
