// Package agentrepo provides data transfer objects and mapping functions for
// agent persistence.
package agentrepo

import (
	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent aggregates.
// SiteID is indexed because confirmation authorization looks managers up by
// the site they manage.
type AgentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Role      string
	Available bool
	SiteID    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(aggregate *agent.Agent) AgentDTO {
	var siteID *uuid.UUID
	if id := aggregate.SiteID(); id != nil {
		raw := id.Bytes()
		siteID = &raw
	}

	return AgentDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Role:      aggregate.Role().String(),
		Available: aggregate.IsAvailable(),
		SiteID:    siteID,
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var siteID *kernel.UUID
	if dto.SiteID != nil {
		sID, siteErr := kernel.UUIDFromBytes((*dto.SiteID)[:])
		if siteErr != nil {
			return nil, siteErr
		}
		siteID = &sID
	}

	return agent.RestoreAgent(id, dto.Name, agent.Role(dto.Role), dto.Available, siteID)
}
