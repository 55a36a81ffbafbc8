package model

// Item is one entry of the list.
// ID only lets a rendered element point back at its item; order is the identity users see.
type Item struct {
	ID      string `json:"-"`
	Text    string `json:"text"`
	Visible bool   `json:"visible"`
}
