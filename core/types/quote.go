package types

// Measurements are the job-level quantities gathered in conversation
type Measurements struct {
	WallSqft     float64 `json:"wallSqft"`
	CeilingSqft  float64 `json:"ceilingSqft"`
	TrimLinearFt float64 `json:"trimLinearFt"`
	Doors        float64 `json:"doors"`
	Windows      float64 `json:"windows"`
}

// IsZero reports whether no measurement has been captured
func (m Measurements) IsZero() bool {
	return m.WallSqft <= 0 && m.CeilingSqft <= 0 && m.TrimLinearFt <= 0 && m.Doors <= 0 && m.Windows <= 0
}

// QuoteInformation is the structured quote data accumulated across turns.
// An empty ProjectType means none has been stated yet; use ProjectType.OrDefault
// wherever an effective type is needed.
type QuoteInformation struct {
	CustomerName    string       `json:"customerName,omitempty"`
	CustomerEmail   string       `json:"customerEmail,omitempty"`
	CustomerPhone   string       `json:"customerPhone,omitempty"`
	Address         string       `json:"address,omitempty"`
	ProjectType     ProjectType  `json:"projectType,omitempty"`
	Surfaces        []string     `json:"surfaces"`
	Rooms           []string     `json:"rooms"`
	Measurements    Measurements `json:"measurements"`
	PaintQuality    string       `json:"paintQuality,omitempty"`
	PrepWork        string       `json:"prepWork,omitempty"`
	Timeline        string       `json:"timeline,omitempty"`
	SpecialRequests string       `json:"specialRequests,omitempty"`
}

// NewQuoteInformation returns an empty record with non-nil lists
func NewQuoteInformation() QuoteInformation {
	return QuoteInformation{
		Surfaces: []string{},
		Rooms:    []string{},
	}
}

// HasContact reports whether any way of reaching the customer is known
func (q QuoteInformation) HasContact() bool {
	return q.Address != "" || q.CustomerEmail != "" || q.CustomerPhone != ""
}

// IsEmpty reports whether no field has been populated
func (q QuoteInformation) IsEmpty() bool {
	return q.CustomerName == "" &&
		!q.HasContact() &&
		q.ProjectType == "" &&
		len(q.Surfaces) == 0 &&
		len(q.Rooms) == 0 &&
		q.Measurements.IsZero() &&
		q.PaintQuality == "" &&
		q.PrepWork == "" &&
		q.Timeline == "" &&
		q.SpecialRequests == ""
}

// Clone returns a deep copy
func (q QuoteInformation) Clone() QuoteInformation {
	out := q
	out.Surfaces = append([]string{}, q.Surfaces...)
	out.Rooms = append([]string{}, q.Rooms...)
	return out
}
