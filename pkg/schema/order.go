package schema

import "time"

const OrderSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront.orders",
	"name": "order",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "customer_email", "type": "string"},
		{"name": "lines", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "line",
				"fields": [
					{"name": "line_id", "type": "string"},
					{"name": "product_id", "type": "string"},
					{"name": "name", "type": "string"},
					{"name": "price", "type": "double"},
					{"name": "quantity", "type": "long"},
					{"name": "size", "type": "string"},
					{"name": "color", "type": "string"}
				]
			}
		}},
		{"name": "subtotal", "type": "double"},
		{"name": "tax", "type": "double"},
		{"name": "total", "type": "double"},
		{"name": "shipping", "type": {
			"type": "record",
			"name": "shipping",
			"fields": [
				{"name": "first_name", "type": "string"},
				{"name": "last_name", "type": "string"},
				{"name": "email", "type": "string"},
				{"name": "phone", "type": "string"},
				{"name": "address", "type": "string"},
				{"name": "city", "type": "string"},
				{"name": "state", "type": "string"},
				{"name": "zip", "type": "string"},
				{"name": "country", "type": "string"}
			]
		}},
		{"name": "payment_method", "type": "string"},
		{"name": "placed_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type (
	OrderV1 struct {
		OrderID       string          `avro:"order_id"`
		CustomerEmail string          `avro:"customer_email"`
		Lines         []OrderLineV1   `avro:"lines"`
		Subtotal      float64         `avro:"subtotal"`
		Tax           float64         `avro:"tax"`
		Total         float64         `avro:"total"`
		Shipping      OrderShippingV1 `avro:"shipping"`
		PaymentMethod string          `avro:"payment_method"`
		PlacedAt      time.Time       `avro:"placed_at"`
	}

	OrderLineV1 struct {
		LineID    string  `avro:"line_id"`
		ProductID string  `avro:"product_id"`
		Name      string  `avro:"name"`
		Price     float64 `avro:"price"`
		Quantity  int     `avro:"quantity"`
		Size      string  `avro:"size"`
		Color     string  `avro:"color"`
	}

	OrderShippingV1 struct {
		FirstName string `avro:"first_name"`
		LastName  string `avro:"last_name"`
		Email     string `avro:"email"`
		Phone     string `avro:"phone"`
		Address   string `avro:"address"`
		City      string `avro:"city"`
		State     string `avro:"state"`
		Zip       string `avro:"zip"`
		Country   string `avro:"country"`
	}
)
