package models

import (
	"github.com/cotizador/backend/internal/domain/partner"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	BaseModel
	Name    string `gorm:"type:varchar(200);not null;index"`
	Email   string `gorm:"type:varchar(200);index"`
	Phone   string `gorm:"type:varchar(50)"`
	Address string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
		Timestamps: m.ToTimestamps(),
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *partner.Client) {
	m.ID = c.ID
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
	m.FromTimestamps(c.Timestamps)
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity.
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}
