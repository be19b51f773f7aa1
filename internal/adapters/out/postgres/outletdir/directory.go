// Package outletdir reads outlet rows and transfer ownership from the retail
// platform's tables. The gateway only reads here; outlets and transfers are
// owned by the wider platform, not by shipping.
package outletdir

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"freightgate/internal/core/ports"
	"freightgate/internal/pkg/errs"
)

// OutletDTO maps the platform's outlet table, carrier credentials included.
type OutletDTO struct {
	ID                    int64 `gorm:"primaryKey"`
	Name                  string
	NZPostAPIKey          string `gorm:"column:nz_post_api_key"`
	NZPostSubscriptionKey string `gorm:"column:nz_post_subscription_key"`
	GSSToken              string `gorm:"column:gss_token"`
	CourierAccountNumber  string
	Address1              string
	Address2              string
	City                  string
	Region                string
	Postcode              string
}

// TableName specifies the platform's outlet table.
func (OutletDTO) TableName() string {
	return "vend_outlets"
}

// TransferDTO maps the subset of the transfers table the gateway reads.
type TransferDTO struct {
	ID         int64 `gorm:"primaryKey"`
	OutletFrom int64
}

// TableName specifies the platform's transfer table.
func (TransferDTO) TableName() string {
	return "transfers"
}

// GormOutletDirectory implements OutletDirectory using GORM.
type GormOutletDirectory struct {
	db *gorm.DB
}

// NewGormOutletDirectory creates a new GORM outlet directory.
func NewGormOutletDirectory(db *gorm.DB) *GormOutletDirectory {
	return &GormOutletDirectory{db: db}
}

// OutletByID loads one outlet row with its carrier credentials.
func (d *GormOutletDirectory) OutletByID(ctx context.Context, id int64) (*ports.OutletRecord, error) {
	var dto OutletDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("outlet", id)
		}
		return nil, err
	}

	return &ports.OutletRecord{
		ID:                    dto.ID,
		Name:                  dto.Name,
		NZPostAPIKey:          dto.NZPostAPIKey,
		NZPostSubscriptionKey: dto.NZPostSubscriptionKey,
		GSSToken:              dto.GSSToken,
		CourierAccountNumber:  dto.CourierAccountNumber,
		Address1:              dto.Address1,
		Address2:              dto.Address2,
		City:                  dto.City,
		Region:                dto.Region,
		Postcode:              dto.Postcode,
	}, nil
}

// OutletForTransfer returns the source outlet of a stock transfer, zero when
// the transfer is unknown.
func (d *GormOutletDirectory) OutletForTransfer(ctx context.Context, transferID int64) (int64, error) {
	var dto TransferDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", transferID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return dto.OutletFrom, nil
}
