package transaction

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spend-server/internal/service"
)

// dateOnlyFormat is the wire format of calendar dates.
const dateOnlyFormat = "2006-01-02"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID       int64   `json:"id" doc:"Transaction ID"`
	Price    float64 `json:"price" doc:"Amount, 2 decimal places"`
	Items    string  `json:"items" doc:"Description of the purchase"`
	DateTime string  `json:"dateTime" doc:"RFC3339 timestamp of the transaction"`
	DateOnly string  `json:"dateOnly" doc:"Calendar date of dateTime"`
	Category string  `json:"category" doc:"Category label"`
	UserID   string  `json:"userId,omitempty" doc:"Owning user UUID"`
}

func toAPITransaction(tx service.Transaction) Transaction {
	userID := ""
	if tx.UserID != uuid.Nil {
		userID = tx.UserID.String()
	}
	return Transaction{
		ID:       tx.ID,
		Price:    tx.Price.InexactFloat64(),
		Items:    tx.Items,
		DateTime: tx.DateTime.Format(time.RFC3339),
		DateOnly: tx.DateOnly.Format(dateOnlyFormat),
		Category: tx.Category,
		UserID:   userID,
	}
}
