package enum

// Tender represents the payment method chosen for a sale.
type Tender string

const (
	TenderCash     Tender = "CASH"
	TenderCard     Tender = "CARD"
	TenderTransfer Tender = "TRANSFER"
	TenderCheque   Tender = "CHEQUE"
	TenderCredit   Tender = "CREDIT"
)

// ParseTender converts a wire string into a Tender, reporting whether it is known.
func ParseTender(s string) (Tender, bool) {
	t := Tender(s)
	return t, t.Valid()
}

// Valid reports whether the tender is one of the supported payment methods.
func (t Tender) Valid() bool {
	switch t {
	case TenderCash, TenderCard, TenderTransfer, TenderCheque, TenderCredit:
		return true
	}
	return false
}

func (t Tender) String() string {
	return string(t)
}
