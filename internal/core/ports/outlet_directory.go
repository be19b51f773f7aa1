package ports

import "context"

// OutletRecord is the raw outlet row consulted during credential resolution.
// Empty credential fields mean the carrier is not provisioned at the outlet.
type OutletRecord struct {
	ID                    int64
	Name                  string
	NZPostAPIKey          string
	NZPostSubscriptionKey string
	GSSToken              string
	CourierAccountNumber  string
	Address1              string
	Address2              string
	City                  string
	Region                string
	Postcode              string
}

// OutletDirectory resolves outlets and their carrier credentials. Lookup
// failures degrade the request to the environment default configuration and
// are never surfaced to the caller.
type OutletDirectory interface {
	// OutletByID loads one outlet row.
	OutletByID(ctx context.Context, id int64) (*OutletRecord, error)

	// OutletForTransfer returns the source outlet id of a stock transfer,
	// 0 if the transfer is unknown.
	OutletForTransfer(ctx context.Context, transferID int64) (int64, error)
}
