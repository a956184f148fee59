package services

import (
	"context"
	"time"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/validation"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

const commencementDateField = "commencementDate"

type CommencementDateService struct {
	orders application.OrderAPI
	now    func() time.Time
}

func NewCommencementDateService(orders application.OrderAPI, now func() time.Time) *CommencementDateService {
	if now == nil {
		now = time.Now
	}
	return &CommencementDateService{orders: orders, now: now}
}

func (s *CommencementDateService) Get(ctx context.Context, _ *session.Session, order OrderRef) (Outcome[CommencementDatePage], error) {
	section, err := s.orders.GetCommencementDateSection(ctx, order.OrderID)
	if err != nil {
		return Outcome[CommencementDatePage]{}, err
	}
	return render(s.page(order, validation.DateFormOf(commencementDateField, section.CommencementDate), nil)), nil
}

func (s *CommencementDateService) Post(ctx context.Context, _ *session.Session, order OrderRef, form validation.DateForm) (Outcome[CommencementDatePage], error) {
	form.Field = commencementDateField
	if result := validation.ValidateCommencementDateForm(form, s.now()); !result.Success {
		return render(s.page(order, form, result.Errors)), nil
	}

	section := domain.CommencementDateSection{CommencementDate: form.ISO()}
	if err := s.orders.PutCommencementDateSection(ctx, order.OrderID, section); err != nil {
		errs, err := translateValidation(err)
		if err != nil {
			return Outcome[CommencementDatePage]{}, err
		}
		return render(s.page(order, form, errs)), nil
	}
	return redirectTo[CommencementDatePage](order.Path()), nil
}

func (s *CommencementDateService) page(order OrderRef, form validation.DateForm, errs []domain.ValidationError) *CommencementDatePage {
	return &CommencementDatePage{
		PageBase: PageBase{
			Order:    order,
			Title:    "Commencement date for " + order.OrderID,
			BackLink: order.Path(),
			Errors:   errs,
		},
		Date: form,
	}
}
