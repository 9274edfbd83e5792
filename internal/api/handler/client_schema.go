package handler

import "github.com/grandhorizon/booking-gateway/internal/core/domain"

type creditCardRequest struct {
	HolderName string `json:"holdername" validate:"required"`
	CardNumber string `json:"cardnumber" validate:"required"`
	Type       string `json:"type"       validate:"required"`
}

type bankAccountRequest struct {
	Bank          string `json:"bank"          validate:"required"`
	AccountNumber string `json:"accountnumber" validate:"required"`
	RoutingNumber string `json:"routingnumber" validate:"required"`
}

// clientRequest is the client create/update payload. PaymentType selects
// which of the two payment-method variants must be present; both may be
// omitted for a client without a stored payment method.
type clientRequest struct {
	Name        string              `json:"name"        validate:"required"`
	Email       string              `json:"email"       validate:"required,email"`
	Phone       string              `json:"phone"       validate:"omitempty,phone"`
	PaymentType string              `json:"paymentType" validate:"omitempty,oneof=CREDIT_CARD BANK_ACCOUNT"`
	CreditCard  *creditCardRequest  `json:"creditCard"`
	BankAccount *bankAccountRequest `json:"bankAccount"`
}

// createClientRequest adds the initial password, only needed on create.
type createClientRequest struct {
	clientRequest
	Password string `json:"password" validate:"required,min=6"`
}

func (r clientRequest) toDomain() domain.Client {
	client := domain.Client{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		PaymentType: r.PaymentType,
	}
	if r.CreditCard != nil {
		client.CreditCard = &domain.CreditCard{
			HolderName: r.CreditCard.HolderName,
			CardNumber: r.CreditCard.CardNumber,
			Type:       r.CreditCard.Type,
		}
	}
	if r.BankAccount != nil {
		client.BankAccount = &domain.BankAccount{
			Bank:          r.BankAccount.Bank,
			AccountNumber: r.BankAccount.AccountNumber,
			RoutingNumber: r.BankAccount.RoutingNumber,
		}
	}
	return client
}
