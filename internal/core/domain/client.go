package domain

// Client represents a member of the club. Clients are created lazily when
// their first payment is registered and removed when their last payment is
// deleted.
type Client struct {
	ClientID int64  `json:"clientID"`
	Name     string `json:"name"` // unique, uppercased by callers

	// LastPaymentID denormalizes the client's most recent payment by covered
	// period (max (year, month), ties broken by highest payment id). Nil for
	// a client with no payments yet. Maintained by the payment service only,
	// never by the repositories themselves.
	LastPaymentID *int64 `json:"lastPaymentID,omitempty"`
}
