// Package siterepo provides data transfer objects and mapping functions for
// pickup site persistence.
package siterepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/site"

	"github.com/google/uuid"
)

// SiteDTO represents the database structure for persisting pickup site
// aggregates. CurrentLoad is only ever written through the conditional slot
// operations, never through a plain update.
type SiteDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Latitude    float64
	Longitude   float64
	Capacity    int
	CurrentLoad int
}

// TableName specifies the database table name for pickup site entities.
func (SiteDTO) TableName() string {
	return "pickup_sites"
}

// fromDomain converts a pickup site domain aggregate to its database representation.
func fromDomain(aggregate *site.PickupSite) SiteDTO {
	return SiteDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Latitude:    aggregate.Location().Latitude(),
		Longitude:   aggregate.Location().Longitude(),
		Capacity:    aggregate.Capacity(),
		CurrentLoad: aggregate.CurrentLoad(),
	}
}

// toDomain converts a database DTO to a pickup site domain aggregate.
func toDomain(dto SiteDTO) (*site.PickupSite, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return site.RestorePickupSite(id, dto.Name, location, dto.Capacity, dto.CurrentLoad)
}
