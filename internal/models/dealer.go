package models

import "time"

// Dealer statuses.
const (
	DealerStatusActive   = "active"
	DealerStatusInactive = "inactive"
)

// Dealer represents a dealership directory entry with contact and
// address metadata. DealerCode is unique across all dealers.
type Dealer struct {
	ID             string    `db:"id" json:"id"`
	DealershipName string    `db:"dealership_name" json:"dealershipName"`
	DealerCode     string    `db:"dealer_code" json:"dealerCode"`
	Address        string    `db:"address" json:"address"`
	ContactPerson  string    `db:"contact_person" json:"contactPerson"`
	ContactNumber  string    `db:"contact_number" json:"contactNumber"`
	Pincode        string    `db:"pincode" json:"pincode"`
	City           string    `db:"city" json:"city"`
	District       string    `db:"district" json:"district"`
	State          string    `db:"state" json:"state"`
	Country        string    `db:"country" json:"country"`
	Services       string    `db:"services" json:"services"`
	Email          string    `db:"email" json:"email"`
	Website        string    `db:"website" json:"website"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// DealerFilter narrows List results. Zero-value fields are ignored.
type DealerFilter struct {
	Name  string // case-insensitive substring match on dealership name
	State string // exact match
	City  string // exact match
}

// IsZero reports whether no filter field is set.
func (f DealerFilter) IsZero() bool {
	return f.Name == "" && f.State == "" && f.City == ""
}
