// models/product.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product statuses. "Assigned" is derived from the assignment ledger and is
// never accepted from a client payload.
const (
	ProductStatusAvailable     = "Available"
	ProductStatusAssigned      = "Assigned"
	ProductStatusInMaintenance = "In Maintenance"
	ProductStatusDamaged       = "Damaged"
	ProductStatusLost          = "Lost"
	ProductStatusReserved      = "Reserved"
	ProductStatusDisposed      = "Disposed"
	ProductStatusInTransit     = "In Transit"
)

var productStatuses = map[string]bool{
	ProductStatusAvailable:     true,
	ProductStatusAssigned:      true,
	ProductStatusInMaintenance: true,
	ProductStatusDamaged:       true,
	ProductStatusLost:          true,
	ProductStatusReserved:      true,
	ProductStatusDisposed:      true,
	ProductStatusInTransit:     true,
}

// ValidProductStatus reports whether s is part of the canonical vocabulary.
func ValidProductStatus(s string) bool {
	return productStatuses[s]
}

var productTypes = map[string]bool{
	"Laptop":   true,
	"CPU":      true,
	"Monitor":  true,
	"Printer":  true,
	"IP Phone": true,
	"Mouse":    true,
	"Keyboard": true,
	"Scanner":  true,
	"Pendrive": true,
}

// ValidProductType reports whether t is a recognized hardware category.
func ValidProductType(t string) bool {
	return productTypes[t]
}

// Product documents live in the "products" collection. ServiceTag is the
// human-facing secondary lookup key.
type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductType     string             `bson:"product_type" json:"product_type"`
	Organization    string             `bson:"organization" json:"organization"`
	Brand           string             `bson:"brand" json:"brand"`
	Model           string             `bson:"model" json:"model"`
	DisplaySize     string             `bson:"display_size" json:"display_size"`
	Type            string             `bson:"type" json:"type"`
	ServiceTag      string             `bson:"service_tag" json:"service_tag"`
	SerialNumber    string             `bson:"serial_number" json:"serial_number"`
	Processor       string             `bson:"processor" json:"processor"`
	Generation      string             `bson:"generation" json:"generation"`
	SSD             string             `bson:"ssd" json:"ssd"`
	HDD             string             `bson:"hdd" json:"hdd"`
	RAM             string             `bson:"ram" json:"ram"`
	Specifications  string             `bson:"specifications" json:"specifications"`
	Note            string             `bson:"note" json:"note"`
	UserInformation string             `bson:"user_information" json:"user_information"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
