package models

import (
	"encoding/json"
	"time"

	"github.com/aaravmahajanofficial/easymenu/internal/money"
	"github.com/shopspring/decimal"
)

// Weekday indexes OperationalHours, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const DaysInWeek = 7

var weekdayKeys = [DaysInWeek]string{"segunda", "terca", "quarta", "quinta", "sexta", "sabado", "domingo"}

func (d Weekday) Key() string {
	if d < Monday || d > Sunday {
		return ""
	}

	return weekdayKeys[d]
}

func ParseWeekday(key string) (Weekday, bool) {
	for i, k := range weekdayKeys {
		if k == key {
			return Weekday(i), true
		}
	}

	return 0, false
}

// WeekdayOf maps time.Weekday (Sunday = 0) onto the Monday-first index.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % DaysInWeek)
}

type DayHours struct {
	Open   string `json:"open" validate:"omitempty,datetime=15:04"`
	Close  string `json:"close" validate:"omitempty,datetime=15:04"`
	Closed bool   `json:"closed"`
}

// OperationalHours is encoded as an object keyed by weekday name.
// A day missing from the document decodes as closed.
type OperationalHours [DaysInWeek]DayHours

func (h OperationalHours) Day(d Weekday) DayHours {
	if d < Monday || d > Sunday {
		return DayHours{Closed: true}
	}

	return h[d]
}

func (h OperationalHours) IsZero() bool {
	return h == OperationalHours{}
}

func (h OperationalHours) MarshalJSON() ([]byte, error) {
	days := make(map[string]DayHours, DaysInWeek)
	for d := Monday; d <= Sunday; d++ {
		days[d.Key()] = h[d]
	}

	return json.Marshal(days)
}

func (h *OperationalHours) UnmarshalJSON(data []byte) error {
	var days map[string]DayHours
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}

	for d := Monday; d <= Sunday; d++ {
		if v, ok := days[d.Key()]; ok {
			h[d] = v
		} else {
			h[d] = DayHours{Closed: true}
		}
	}

	return nil
}

// Settings. MinOrderValue and ServiceTax are stored and displayed but not applied to totals.
type Settings struct {
	Currency        string          `json:"currency"`
	DeliveryFee     money.Cents     `json:"delivery_fee" validate:"gte=0"`
	MinOrderValue   money.Cents     `json:"min_order_value" validate:"gte=0"`
	ServiceTax      decimal.Decimal `json:"service_tax"`
	IsAutomaticOpen bool            `json:"is_automatic_open"`
}

type Business struct {
	ID               string           `json:"id"`
	Slug             string           `json:"slug"`
	Name             string           `json:"name"`
	WhatsApp         string           `json:"whatsapp"`
	LogoURL          string           `json:"logo_url,omitempty"`
	BannerURL        string           `json:"banner_url,omitempty"`
	Description      string           `json:"description"`
	Settings         Settings         `json:"settings"`
	OperationalHours OperationalHours `json:"operational_hours"`
}
