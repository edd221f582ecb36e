package domain

import "time"

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit-card"
	PaymentPayPal     PaymentMethod = "paypal"
	PaymentApplePay   PaymentMethod = "apple-pay"
)

type (
	ShippingInfo struct {
		FirstName string
		LastName  string
		Email     string
		Phone     string
		Address   string
		City      string
		State     string
		Zip       string
		Country   string
	}

	CardInfo struct {
		Number string
		Name   string
		Expiry string
		CVC    string
	}

	PaymentInfo struct {
		Method PaymentMethod
		Card   CardInfo
	}
)

type Order struct {
	ID            string
	CustomerEmail string
	Lines         []CartLineItem
	Subtotal      float64
	Tax           float64
	Total         float64
	Shipping      ShippingInfo
	PaymentMethod PaymentMethod
	PlacedAt      time.Time
}

type OrderConfirmation struct {
	OrderID    string
	Subtotal   float64
	Tax        float64
	Total      float64
	TotalItems int
	PlacedAt   time.Time
}
