package response

import "github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"

// LedgerAppendResponse returns the appended transaction together with the
// recomputed order, so the caller sees the new totals without a second read.
type LedgerAppendResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Order       OrderResponse       `json:"order"`
}

func FromLedgerAppend(o entities.Order, tx entities.PaymentTransaction) LedgerAppendResponse {
	return LedgerAppendResponse{
		Transaction: FromTransaction(tx),
		Order:       FromOrder(o),
	}
}
