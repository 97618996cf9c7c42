package models

import "github.com/aaravmahajanofficial/easymenu/internal/money"

// SelectedOption is a snapshot of an option taken at selection time.
type SelectedOption struct {
	GroupID    string      `json:"group_id"`
	GroupName  string      `json:"group_name"`
	OptionID   string      `json:"option_id"`
	OptionName string      `json:"option_name"`
	Price      money.Cents `json:"price" validate:"gte=0"`
}

type Selection struct {
	Variation *Variation       `json:"variation,omitempty"`
	Options   []SelectedOption `json:"options"`
}

func (s Selection) Clone() Selection {
	out := Selection{Options: make([]SelectedOption, len(s.Options))}
	copy(out.Options, s.Options)

	if s.Variation != nil {
		v := *s.Variation
		out.Variation = &v
	}

	return out
}

type RejectReason string

const (
	ReasonMissingVariation RejectReason = "MISSING_VARIATION"
	ReasonUnknownVariation RejectReason = "UNKNOWN_VARIATION"
	ReasonBelowMinChoices  RejectReason = "BELOW_MIN_CHOICES"
	ReasonAboveMaxChoices  RejectReason = "ABOVE_MAX_CHOICES"
	ReasonUnknownOption    RejectReason = "UNKNOWN_OPTION"
)

// SelectionResult is the verdict on whether a selection may enter the cart.
type SelectionResult struct {
	OK      bool         `json:"ok"`
	Reason  RejectReason `json:"reason,omitempty"`
	GroupID string       `json:"group_id,omitempty"`
}

// OptionRef identifies an option by id, as sent by clients.
type OptionRef struct {
	GroupID  string `json:"group_id" validate:"required"`
	OptionID string `json:"option_id" validate:"required"`
}

type SelectionInput struct {
	VariationID string      `json:"variation_id,omitempty"`
	Options     []OptionRef `json:"options" validate:"dive"`
}
