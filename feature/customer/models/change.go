package models

// ChangeRequest describes a partial update. Absent fields are left unchanged.
type ChangeRequest struct {
	Name  Optional[string] `json:"name"`
	Email Optional[string] `json:"email"`
	Age   Optional[int]    `json:"age"`
}
