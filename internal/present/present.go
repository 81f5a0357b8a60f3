// Package present maps fetched quotes and logos onto display fields.
//
// It owns no widgets: a UI keeps a State value, calls its methods as fetches
// start and finish, and renders whatever the fields hold.
package present

import (
	"strconv"

	"github.com/dmitriykara/StocksApp/internal/provider"
)

// Placeholder is shown in every text field while no quote is displayed.
const Placeholder = "-"

// Treatment is the colour class of the change field.
type Treatment int

const (
	Neutral Treatment = iota
	Positive
	Negative
)

func (t Treatment) String() string {
	switch t {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	}
	return "neutral"
}

// ChangeTreatment classifies a price change. Zero is neutral, not positive.
func ChangeTreatment(change float64) Treatment {
	if change > 0 {
		return Positive
	}
	if change < 0 {
		return Negative
	}
	return Neutral
}

// FormatNumber renders v in its shortest round-trip decimal form, with no
// fixed number of decimals.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// State is the displayed quote slot.
type State struct {
	CompanyName string
	Symbol      string
	Price       string
	Change      string
	Treatment   Treatment
	Logo        []byte
	Busy        bool
}

// NewState returns a cleared, idle state.
func NewState() State {
	var s State
	s.Reset()
	s.Busy = false
	return s
}

// Reset clears every field before a fetch and shows the busy indicator.
func (s *State) Reset() {
	s.CompanyName = Placeholder
	s.Symbol = Placeholder
	s.Price = Placeholder
	s.Change = Placeholder
	s.Treatment = Neutral
	s.Logo = nil
	s.Busy = true
}

// ApplyQuote renders q and hides the busy indicator.
func (s *State) ApplyQuote(q provider.Quote) {
	s.CompanyName = q.CompanyName
	s.Symbol = q.Symbol
	s.Price = FormatNumber(q.LatestPrice)
	s.Change = FormatNumber(q.Change)
	s.Treatment = ChangeTreatment(q.Change)
	s.Busy = false
}

// ApplyLogo shows the logo. It does not touch the busy indicator.
func (s *State) ApplyLogo(l provider.Logo) {
	s.Logo = l.Data
}

// Fail hides the busy indicator after a failed quote fetch. Fields keep
// their placeholders.
func (s *State) Fail() {
	s.Busy = false
}
