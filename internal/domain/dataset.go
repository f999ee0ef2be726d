package domain

import "regexp"

// OrderStatus описывает статус заказа в выгрузке магазина.
type OrderStatus string

const (
	// OrderStatusPaid — заказ оплачен; платёж должен быть захвачен.
	OrderStatusPaid OrderStatus = "PAID"
	// OrderStatusPending — заказ создан, оплата ещё не завершена.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusCancelled — заказ отменён; при наличии позиций ожидается возврат.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Valid сообщает, входит ли статус в допустимый набор.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPaid, OrderStatusPending, OrderStatusCancelled:
		return true
	}
	return false
}

// SupportedCurrencies — коды валют, допустимые в метаданных магазина.
var SupportedCurrencies = []string{"USD", "EUR", "GBP"}

// emailPattern повторяет проверку вида local@domain.tld: без пробелов,
// ровно один @, домен с точкой.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail проверяет адрес по базовому шаблону local@domain.tld.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Store — метаданные магазина из шапки выгрузки.
type Store struct {
	Name          string `json:"name" validate:"required"`
	Currency      string `json:"currency" validate:"required,oneof=USD EUR GBP"`
	DateGenerated string `json:"dateGenerated" validate:"required,isolike"`
}

// Customer — покупатель; e-mail в выгрузке может отсутствовать.
type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Shipping описывает доставку заказа.
type Shipping struct {
	Fee float64 `json:"fee"`
}

// Payment фиксирует, были ли средства фактически списаны.
type Payment struct {
	Captured bool `json:"captured"`
}

// Discount — одна применённая к заказу скидка.
type Discount struct {
	Amount float64 `json:"amount"`
}

// Refund — возврат по отменённому заказу.
type Refund struct {
	Amount float64 `json:"amount"`
}

// LineItem представляет одну позицию заказа.
type LineItem struct {
	SKU      string  `json:"sku"`
	Qty      float64 `json:"qty"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Order агрегирует состояние заказа и его позиции. Вложенные объекты
// декодируются в указатели, чтобы отличать отсутствующее поле от пустого.
type Order struct {
	ID        string      `json:"id" validate:"required"`
	CreatedAt string      `json:"createdAt" validate:"required"`
	Status    OrderStatus `json:"status" validate:"required,oneof=PAID PENDING CANCELLED"`
	Customer  *Customer   `json:"customer" validate:"required"`
	Shipping  *Shipping   `json:"shipping" validate:"required"`
	Payment   *Payment    `json:"payment" validate:"required"`
	Lines     []LineItem  `json:"lines"`
	Discounts []Discount  `json:"discounts,omitempty"`
	Refund    *Refund     `json:"refund,omitempty"`
}

// GMV возвращает сумму qty*price по позициям заказа, до скидок и доставки.
func (o *Order) GMV() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.Qty * line.Price
	}
	return total
}

// Email возвращает e-mail покупателя или пустую строку, если его нет.
func (o *Order) Email() string {
	if o.Customer == nil {
		return ""
	}
	return o.Customer.Email
}

// HasValidEmail сообщает, задан ли у заказа корректный e-mail.
func (o *Order) HasValidEmail() bool {
	email := o.Email()
	return email != "" && ValidEmail(email)
}

// Dataset — корень выгрузки: метаданные магазина и упорядоченный список заказов.
type Dataset struct {
	Store  *Store  `json:"store" validate:"required"`
	Orders []Order `json:"orders"`
}

// TotalLineItems считает все позиции по всем заказам, включая некорректные.
func (d *Dataset) TotalLineItems() int {
	var n int
	for i := range d.Orders {
		n += len(d.Orders[i].Lines)
	}
	return n
}
