package domain

// StaffMember is one entry of the staff directory shown by the internal
// lookup page.
type StaffMember struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	RoleTitle  string `json:"role_title"`
	Phone      string `json:"phone"`
}
