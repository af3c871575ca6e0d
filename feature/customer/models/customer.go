package models

// Customer is a row of the customer table.
type Customer struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"column:name;size:255;not null" json:"name"`
	Email string `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Age   int    `gorm:"column:age;not null" json:"age"`
}

// TableName overrides the table name.
func (Customer) TableName() string {
	return "customer"
}

// Registration is the payload for adding a customer.
type Registration struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"gte=0"`
}

// ToCustomer builds an unsaved customer; the store assigns the id.
func (r Registration) ToCustomer() Customer {
	return Customer{
		Name:  r.Name,
		Email: r.Email,
		Age:   r.Age,
	}
}
