package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/cotizador/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[0-9\s\-()]{10,}$`)
)

// Client represents a customer a quotation can be issued to.
type Client struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Address string
	shared.Timestamps
}

// NewClient creates a new client with the required name and optional contact fields
func NewClient(name, email, phone, address string) (*Client, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return nil, shared.NewDomainError("VALIDATION", "Client name must have at least 2 characters")
	}

	c := &Client{
		Name:    name,
		Address: strings.TrimSpace(address),
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := c.SetContact(email, phone); err != nil {
		return nil, err
	}
	return c, nil
}

// Rename updates the client name
func (c *Client) Rename(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return shared.NewDomainError("VALIDATION", "Client name must have at least 2 characters")
	}
	c.Name = name
	c.Touch()
	return nil
}

// SetContact updates the optional email and phone, validating their formats
func (c *Client) SetContact(email, phone string) error {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if email != "" && !emailPattern.MatchString(email) {
		return shared.NewDomainError("VALIDATION", "Invalid email format")
	}
	if phone != "" && !phonePattern.MatchString(phone) {
		return shared.NewDomainError("VALIDATION", "Invalid phone format")
	}

	c.Email = email
	c.Phone = phone
	c.Touch()
	return nil
}

// SetAddress updates the client address
func (c *Client) SetAddress(address string) {
	c.Address = strings.TrimSpace(address)
	c.Touch()
}

// ClientStats aggregates quotation activity for a client.
type ClientStats struct {
	QuotationCount int64
	TotalAmount    decimal.Decimal
	FirstQuotation *time.Time
	LastQuotation  *time.Time
}
