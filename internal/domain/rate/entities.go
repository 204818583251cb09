package rate

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("rate not found")
	ErrUnsupportedKind = errors.New("rate kind not supported, only simple interest is implemented")
	ErrInUse           = errors.New("rate is referenced by at least one loan")
)

type Kind string

const (
	KindSimple   Kind = "simple"
	KindCompound Kind = "compound"
)

type Period string

const (
	PeriodDaily    Period = "daily"
	PeriodWeekly   Period = "weekly"
	PeriodBiweekly Period = "biweekly"
	PeriodMonthly  Period = "monthly"
	PeriodAnnual   Period = "annual"
)

// Rate is an interest rate definition. Immutable once a loan references it.
type Rate struct {
	ID        uint64          `gorm:"primaryKey;column:id" json:"-"`
	RateID    string          `gorm:"column:rate_id;size:32;uniqueIndex:ux_rates_rate_id" json:"rate_id"`
	Name      string          `gorm:"column:name;size:100;uniqueIndex:ux_rates_name" json:"name"`
	Kind      Kind            `gorm:"column:kind;size:10;default:'simple'" json:"kind"`
	Percent   decimal.Decimal `gorm:"column:percent;type:decimal(5,2)" json:"percent"`
	Period    Period          `gorm:"column:period;size:10;default:'monthly'" json:"period"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Rate) TableName() string { return "rates" }

func ValidKind(k Kind) bool { return k == KindSimple || k == KindCompound }

func ValidPeriod(p Period) bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodBiweekly, PeriodMonthly, PeriodAnnual:
		return true
	}
	return false
}
