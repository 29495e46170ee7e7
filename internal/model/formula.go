package model

// Formula is the package a reservation is booked under.
type Formula string

const (
	FormulaWeekStay       Formula = "week_stay"
	FormulaWeekend        Formula = "weekend"
	FormulaHolidayWeekend Formula = "holiday_weekend"
	FormulaDayEvent       Formula = "day_event"
)

// MaxPartySize caps the number of guests for every formula.
const MaxPartySize = 80

// FormulaInfo describes a formula for the public catalog.
type FormulaInfo struct {
	ID          Formula `json:"id"`
	Label       string  `json:"label"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
	MaxGuests   int     `json:"max_guests"`
}

var catalog = []FormulaInfo{
	{ID: FormulaWeekStay, Label: "Week stay", Price: 3000, Duration: "7 consecutive days", Description: "A full week at the villa", MaxGuests: MaxPartySize},
	{ID: FormulaWeekend, Label: "Simple weekend", Price: 800, Duration: "Friday 18:00 to Sunday 20:00", Description: "Two nights away", MaxGuests: MaxPartySize},
	{ID: FormulaHolidayWeekend, Label: "Party weekend", Price: 1500, Duration: "Saturday 09:00 to Sunday 21:00", Description: "Weekend with reception areas for celebrations", MaxGuests: MaxPartySize},
	{ID: FormulaDayEvent, Label: "Day event", Price: 1000, Duration: "09:00 to 20:00, Monday to Thursday", Description: "Single-day hire for events", MaxGuests: MaxPartySize},
}

// Formulas returns the catalog in display order.  The slice is a copy.
func Formulas() []FormulaInfo {
	out := make([]FormulaInfo, len(catalog))
	copy(out, catalog)
	return out
}

// PaymentPlan is the number of installments: 1x to 4x.
type PaymentPlan string

const (
	PaymentPlan1x PaymentPlan = "1x"
	PaymentPlan2x PaymentPlan = "2x"
	PaymentPlan3x PaymentPlan = "3x"
	PaymentPlan4x PaymentPlan = "4x"
)

// PaymentStatus tracks how much of a reservation has been paid.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusPartial   PaymentStatus = "partial"
	StatusComplete  PaymentStatus = "complete"
	StatusCancelled PaymentStatus = "cancelled"
)

// Active reports whether a reservation in this status still holds its dates.
func (s PaymentStatus) Active() bool { return s != StatusCancelled }

// Earned reports whether the amount counts toward revenue.
func (s PaymentStatus) Earned() bool { return s == StatusComplete || s == StatusPartial }
