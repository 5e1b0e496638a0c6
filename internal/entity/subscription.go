package entity

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"
)

// BillingCycle - recurrence period of a subscription charge
type BillingCycle string

const (
	CycleWeekly    BillingCycle = "weekly"
	CycleMonthly   BillingCycle = "monthly"
	CycleQuarterly BillingCycle = "quarterly"
	CycleYearly    BillingCycle = "yearly"
)

// BillingCycles lists every supported cycle
var BillingCycles = []BillingCycle{CycleWeekly, CycleMonthly, CycleQuarterly, CycleYearly}

// Valid reports whether c is one of the supported cycles
func (c BillingCycle) Valid() bool {
	switch c {
	case CycleWeekly, CycleMonthly, CycleQuarterly, CycleYearly:
		return true
	}
	return false
}

// Subscription - a recurring payment owned by a user
type Subscription struct {
	// ID - subscription identifier
	ID int64
	// UserID - owner of the subscription
	UserID strfmt.UUID
	// Name - service name
	Name string
	// Cost - amount charged once per billing cycle
	Cost decimal.Decimal
	// BillingCycle - how often Cost is charged
	BillingCycle BillingCycle
	// NextPaymentDate - calendar date of the next charge (UTC midnight)
	NextPaymentDate time.Time
	// CategoryID - optional category reference
	CategoryID *int64
	// Category - joined category, nil when CategoryID is nil or not loaded
	Category *Category
	// Description - optional free text
	Description *string
	// WebsiteURL - optional link to the service
	WebsiteURL *string
	// Active - inactive subscriptions are excluded from the dashboard
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
