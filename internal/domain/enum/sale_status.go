package enum

// SaleStatus represents the lifecycle state of a sale.
// Draft exists only in memory; the remote sales service never sees it.
type SaleStatus string

const (
	SaleStatusDraft     SaleStatus = "DRAFT"
	SaleStatusPending   SaleStatus = "PENDING"
	SaleStatusConfirmed SaleStatus = "CONFIRMED"
	SaleStatusAnnulled  SaleStatus = "ANNULLED"
)

// Terminal reports whether the status admits no further transitions.
func (s SaleStatus) Terminal() bool {
	return s == SaleStatusConfirmed || s == SaleStatusAnnulled
}

// Valid reports whether the status is one of the known states.
func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusDraft, SaleStatusPending, SaleStatusConfirmed, SaleStatusAnnulled:
		return true
	}
	return false
}

func (s SaleStatus) String() string {
	return string(s)
}
