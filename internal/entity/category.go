package entity

type Category struct {
	ID          string `json:"_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

type CategoryList struct {
	Categories []Category `json:"categories" validate:"dive"`
}
