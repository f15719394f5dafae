package entity

import "time"

// Client representa un cliente del taller.
type Client struct {
	ID        string
	Name      string
	Surname   string
	Email     string // único
	Phone     string
	Address   string
	CreatedAt time.Time
}

// FullName devuelve nombre y apellido concatenados.
func (c *Client) FullName() string {
	return c.Name + " " + c.Surname
}
