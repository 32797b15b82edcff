package domain

type UserRole string

const (
	UserRoleAdmin UserRole = "Admin"
)

// EntryKind направление движения по счету дилера.
type EntryKind string

const (
	// EntryDebit дилер получил товар, долг растет.
	EntryDebit EntryKind = "Debit"
	// EntryCredit дилер заплатил, долг уменьшается.
	EntryCredit EntryKind = "Credit"
)

func (k EntryKind) IsValid() bool {
	return k == EntryDebit || k == EntryCredit
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusDispatched OrderStatus = "Dispatched"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusDispatched, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentCredit  PaymentStatus = "Credit"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentUnpaid, PaymentPartial, PaymentPaid, PaymentCredit:
		return true
	default:
		return false
	}
}

type ApplicationStatus string

const (
	ApplicationNew       ApplicationStatus = "New"
	ApplicationContacted ApplicationStatus = "Contacted"
	ApplicationApproved  ApplicationStatus = "Approved"
	ApplicationRejected  ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationNew, ApplicationContacted, ApplicationApproved, ApplicationRejected:
		return true
	default:
		return false
	}
}

// EventName имя события, рассылаемого подключенным клиентам.
type EventName string

const (
	EventNewApplication     EventName = "new_application"
	EventDealerUpdated      EventName = "dealer_updated"
	EventStockUpdated       EventName = "stock_updated"
	EventNewOrder           EventName = "new_order"
	EventOrderStatusUpdated EventName = "order_status_updated"
)
