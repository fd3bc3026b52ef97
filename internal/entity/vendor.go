package entity

type Vendor struct {
	ID           string  `json:"_id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"omitempty,email"`
	Phone        string  `json:"phone,omitempty"`
	Location     string  `json:"location,omitempty"`
	Description  string  `json:"description,omitempty"`
	ProfileImage string  `json:"profileImage,omitempty" validate:"omitempty,url"`
	Rating       float64 `json:"rating" validate:"gte=0,lte=5"`
	IsBlocked    bool    `json:"isBlocked"`
}

type VendorList struct {
	Vendors []Vendor `json:"vendors" validate:"dive"`
}
