package domain

import "errors"

const (
	PaymentCreditCard  = "CREDIT_CARD"
	PaymentBankAccount = "BANK_ACCOUNT"
)

var ErrClientNotFound = errors.New("client not found")
var ErrClientExists = errors.New("client already exists")

// CreditCard holds the card variant of a client's payment method.
type CreditCard struct {
	HolderName string `json:"holdername"`
	CardNumber string `json:"cardnumber"`
	Type       string `json:"type"`
}

// BankAccount holds the bank-transfer variant of a client's payment method.
type BankAccount struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"accountnumber"`
	RoutingNumber string `json:"routingnumber"`
}

// Client is a guest account. PaymentType discriminates which of the two
// payment-method variants is populated; both pointers are nil for a client
// that has not stored one yet.
type Client struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone,omitempty"`
	PaymentType string       `json:"paymentType,omitempty"`
	CreditCard  *CreditCard  `json:"creditCard,omitempty"`
	BankAccount *BankAccount `json:"bankAccount,omitempty"`
}
