// internal/domain/plan/entity.go
package plan

import (
	"database/sql"
	"math"
	"time"
)

type Duration string

const (
	DurationMonthly  Duration = "monthly"
	DurationAnnual   Duration = "annual"
	DurationQuarter  Duration = "quarter"
	DurationSemester Duration = "semester"
	DurationBiweekly Duration = "biweekly"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// OrderLimitUnlimited is the sentinel stored when a plan carries the
// unlimited_orders feature. Downstream order-counting consumers are expected
// to treat it as unbounded.
const OrderLimitUnlimited = math.MaxInt32

// Features is the plan's feature-flag set, persisted as a JSONB document.
type Features struct {
	AIAgent          bool `json:"ai_agent"`
	PrioritySupport  bool `json:"priority_support"`
	CartaDigital     bool `json:"carta_digital,omitempty"`
	CashClosing      bool `json:"cash_closing,omitempty"`
	ChatsModule      bool `json:"chats_module"`
	MassMessaging    bool `json:"mass_messaging,omitempty"`
	YangoIntegration bool `json:"yango_integration,omitempty"`
	Reservations     bool `json:"reservations,omitempty"`
	OrderModule      bool `json:"order_module,omitempty"`
	DashboardModule  bool `json:"dashboard_module,omitempty"`
	CustomerModule   bool `json:"customer_module,omitempty"`
	ComplaintsModule bool `json:"complaints_module,omitempty"`
	KDSModule        bool `json:"kds_module,omitempty"`
	MultilocalsModule bool `json:"multilocals_module,omitempty"`
	UnlimitedOrders  bool `json:"unlimited_orders,omitempty"`
	Integrations     bool `json:"integrations,omitempty"`
	PremiumWebsite   bool `json:"premium_website,omitempty"`
}

type Plan struct {
	ID           string         `json:"id" db:"id"`
	Name         string         `json:"name" db:"name"`
	Price        float64        `json:"price" db:"price"`
	CurrencyType string         `json:"currency_type" db:"currency_type"`
	Duration     Duration       `json:"duration" db:"duration"`
	OrderLimit   int            `json:"order_limit" db:"order_limit"`
	Features     Features       `json:"features" db:"features"`
	Status       Status         `json:"status" db:"status"`
	Description  sql.NullString `json:"description,omitempty" db:"description"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
