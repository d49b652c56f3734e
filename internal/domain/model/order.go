package model

import (
	"time"

	"github.com/google/uuid"
)

type OrderID struct {
	uuid.UUID
}

func NewOrderID() OrderID {
	return OrderID{UUID: uuid.Must(uuid.NewV7())}
}

func ParseOrderID(s string) (OrderID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OrderID{}, err
	}

	return OrderID{UUID: id}, nil
}

func (o OrderID) String() string {
	return o.UUID.String()
}

type OrderStatus string

const (
	OrderStatusOpen OrderStatus = "open"
	OrderStatusPaid OrderStatus = "paid"
)

func (s OrderStatus) String() string {
	return string(s)
}

type LineItem struct {
	Name      string
	Quantity  uint
	UnitPrice int64
}

// Subtotal is the line total in cents.
func (i LineItem) Subtotal() int64 {
	return int64(i.Quantity) * i.UnitPrice
}

// Order collects line items until it is paid. Every order owns its own item
// slice; nothing is shared between instances.
type Order struct {
	ID        OrderID
	Status    OrderStatus
	Items     []LineItem
	CreatedAt time.Time
	PaidAt    *time.Time
}

func NewOrder() *Order {
	return &Order{
		ID:        NewOrderID(),
		Status:    OrderStatusOpen,
		Items:     make([]LineItem, 0),
		CreatedAt: time.Now().UTC(),
	}
}

func (o *Order) AddItem(name string, quantity uint, unitPrice int64) {
	o.Items = append(o.Items, LineItem{
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
}

// TotalPrice sums quantity times unit price over all line items, in cents.
func (o *Order) TotalPrice() int64 {
	var total int64

	for _, item := range o.Items {
		total += item.Subtotal()
	}

	return total
}

func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}

// MarkPaid transitions the order from open to paid. Paying twice is an error
// so that payment processors stay substitutable without double-charging.
func (o *Order) MarkPaid() error {
	if o.IsPaid() {
		return ErrOrderAlreadyPaid
	}

	now := time.Now().UTC()
	o.Status = OrderStatusPaid
	o.PaidAt = &now

	return nil
}

type PaymentMethod string

const (
	PaymentMethodDebit  PaymentMethod = "debit"
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodPaypal PaymentMethod = "paypal"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodDebit, PaymentMethodCredit, PaymentMethodPaypal:
		return true
	default:
		return false
	}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	if !method.IsValid() {
		return "", ErrUnknownMethod
	}

	return method, nil
}
