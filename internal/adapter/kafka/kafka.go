package kafka

import (
	"errors"
	"fmt"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/pkg/schema"
)

var (
	ErrTooFewOpts       = errors.New("too few options")
	ErrInvalidValueType = errors.New("invalid value type")
)

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func orderToSchemaV1(v domain.Order) (s schema.OrderV1) {
	s.OrderID = v.ID
	s.CustomerEmail = v.CustomerEmail
	s.Subtotal = v.Subtotal
	s.Tax = v.Tax
	s.Total = v.Total
	s.PaymentMethod = string(v.PaymentMethod)
	s.PlacedAt = v.PlacedAt

	s.Shipping = schema.OrderShippingV1{
		FirstName: v.Shipping.FirstName,
		LastName:  v.Shipping.LastName,
		Email:     v.Shipping.Email,
		Phone:     v.Shipping.Phone,
		Address:   v.Shipping.Address,
		City:      v.Shipping.City,
		State:     v.Shipping.State,
		Zip:       v.Shipping.Zip,
		Country:   v.Shipping.Country,
	}

	s.Lines = make([]schema.OrderLineV1, len(v.Lines))
	for i, l := range v.Lines {
		s.Lines[i] = schema.OrderLineV1{
			LineID:    l.ID,
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Size:      l.Size,
			Color:     l.Color,
		}
	}
	return
}
