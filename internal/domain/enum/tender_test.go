package enum

import "testing"

func TestParseTender(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Tender
		ok   bool
	}{
		{name: "cash", in: "CASH", want: TenderCash, ok: true},
		{name: "card", in: "CARD", want: TenderCard, ok: true},
		{name: "transfer", in: "TRANSFER", want: TenderTransfer, ok: true},
		{name: "cheque", in: "CHEQUE", want: TenderCheque, ok: true},
		{name: "credit", in: "CREDIT", want: TenderCredit, ok: true},
		{name: "unknown", in: "BARTER", ok: false},
		{name: "wrong case", in: "cash", ok: false},
		{name: "empty", in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTender(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if tt.ok && got != tt.want {
				t.Errorf("tender = %s, want %s", got, tt.want)
			}
		})
	}
}
