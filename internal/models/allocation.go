package models

import "github.com/goccy/go-json"

// OthersName is the name of the synthetic long-tail allocation entry.
const OthersName = "others"

// Allocation is one slice of a sector or stock allocation, shaped for a pie series.
type Allocation struct {
	Name                  string  `json:"name"`
	Y                     float64 `json:"y"`
	PercentageOfPortfolio float64 `json:"percentageOfPortfolio"`
	PercentageGain        float64 `json:"percentageGain"`
}

// AllocationState distinguishes "no portfolio" from "portfolio without holdings".
type AllocationState int

const (
	// AllocationUnset means there is no current portfolio.
	AllocationUnset AllocationState = iota
	// AllocationEmpty means the portfolio has no holdings.
	AllocationEmpty
	// AllocationData means entries were computed.
	AllocationData
)

func (s AllocationState) String() string {
	switch s {
	case AllocationEmpty:
		return "empty"
	case AllocationData:
		return "data"
	default:
		return "unset"
	}
}

// AllocationSet is a tri-state allocation result.
// JSON: Unset -> null, Empty -> [], Data -> the entries.
type AllocationSet struct {
	State   AllocationState
	Entries []Allocation
}

// UnsetAllocations returns an AllocationSet with no portfolio.
func UnsetAllocations() AllocationSet {
	return AllocationSet{State: AllocationUnset}
}

// EmptyAllocations returns an AllocationSet for a portfolio without holdings.
func EmptyAllocations() AllocationSet {
	return AllocationSet{State: AllocationEmpty}
}

// AllocationsOf wraps computed entries.
func AllocationsOf(entries []Allocation) AllocationSet {
	if entries == nil {
		entries = []Allocation{}
	}
	return AllocationSet{State: AllocationData, Entries: entries}
}

// Items returns the entries, empty for Unset and Empty.
func (s AllocationSet) Items() []Allocation {
	if s.State != AllocationData {
		return nil
	}
	return s.Entries
}

// MarshalJSON implements json.Marshaler.
func (s AllocationSet) MarshalJSON() ([]byte, error) {
	switch s.State {
	case AllocationData:
		entries := s.Entries
		if entries == nil {
			entries = []Allocation{}
		}
		return json.Marshal(entries)
	case AllocationEmpty:
		return []byte("[]"), nil
	default:
		return []byte("null"), nil
	}
}
