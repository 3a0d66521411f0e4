package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
	// StatusBlocked marks a synthetic booking representing professional
	// unavailability: no client, zero price.
	StatusBlocked BookingStatus = "blocked"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// AdditionalCharge an extra charge attached to a booking on top of the base price
type AdditionalCharge struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description,omitempty"`
}

// Pricing holds the monetary breakdown of a booking.
// Amounts are decimal numbers in major currency units (euros, not cents).
// TotalPrice is server-computed; this service never recomputes it.
type Pricing struct {
	BasePrice         float64            `json:"basePrice"`
	DiscountAmount    float64            `json:"discountAmount,omitempty"`
	DiscountReason    *string            `json:"discountReason,omitempty"`
	AdditionalCharges []AdditionalCharge `json:"additionalCharges,omitempty"`
	TotalPrice        float64            `json:"totalPrice"`
	Currency          string             `json:"currency"`
}

// Payment holds the payment state of a booking
type Payment struct {
	Status         PaymentStatus `json:"status"`
	Method         *string       `json:"method,omitempty"`
	PaidAmount     float64       `json:"paidAmount"`
	TransactionIDs []string      `json:"transactionIds,omitempty"`
}

// Client expanded client reference as returned by the booking API
type Client struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// Professional expanded professional reference as returned by the booking API
type Professional struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Role *string `json:"role,omitempty"`
}

// Service expanded service reference as returned by the booking API
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CategoryID      string  `json:"categoryId,omitempty"`
	Price           float64 `json:"price,omitempty"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
}

// Booking represents a scheduled (or blocked) appointment within a tenant.
// Time interval is half-open: [StartTime, EndTime).
type Booking struct {
	ID       string `json:"id"`
	EntityID string `json:"entityId"`

	// Client and Professional may come back from the server as a bare id
	// or an expanded object. Professional is optional: unassigned
	// bookings are allowed.
	Client       Ref[Client]       `json:"clientId,omitempty"`
	Professional Ref[Professional] `json:"professionalId,omitempty"`
	Service      Ref[Service]      `json:"serviceId,omitempty"`

	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Status    BookingStatus `json:"status"`
	Notes     *string       `json:"notes,omitempty"`

	Pricing Pricing  `json:"pricing"`
	Payment *Payment `json:"payment,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsTerminal returns true if the booking reached a terminal state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted ||
		b.Status == StatusCancelled ||
		b.Status == StatusNoShow
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// IsBlocked returns true for synthetic unavailability bookings
func (b *Booking) IsBlocked() bool {
	return b.Status == StatusBlocked
}

// IsCompleted returns true if the booking was completed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusInProgress
}

// CanBeConfirmed returns true if the booking awaits confirmation
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// ServiceID returns the referenced service id regardless of expansion shape
func (b *Booking) ServiceID() string {
	return b.Service.RefID()
}

// ProfessionalID returns the referenced professional id, empty when unassigned
func (b *Booking) ProfessionalID() string {
	return b.Professional.RefID()
}

// ServiceCategoryID returns the category of the booked service.
// Resolvable only when the server expanded the service reference;
// returns empty otherwise.
func (b *Booking) ServiceCategoryID() string {
	if b.Service.Expanded == nil {
		return ""
	}
	return b.Service.Expanded.CategoryID
}

// HasDiscount returns true if a discount was applied to the booking
func (b *Booking) HasDiscount() bool {
	return b.Pricing.DiscountAmount > 0
}
