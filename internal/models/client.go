package models

// Client mirrors the clients table.
type Client struct {
	ClientID      int64  `json:"clientID"`
	Name          string `json:"name"` // unique
	LastPaymentID *int64 `json:"lastPaymentID,omitempty"`
}
