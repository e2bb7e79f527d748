package models

type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleSuperuser Role = "superuser"
)

// IsStaff reports whether the role may access the admin dashboard.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperuser
}

type Address struct {
	State string `json:"state"`
	LGA   string `json:"lga,omitempty"`
}

// User is created upstream on first authentication and cached for the
// session only; it is re-fetched on load via the auth check.
type User struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Avatar      string      `json:"avatar,omitempty"`
	Role        Role        `json:"role"`
	Address     Address     `json:"address"`
	TotalSpent  float64     `json:"totalSpent"`
	RecentOrder RecentOrder `json:"recentOrder"`
	CreatedAt   string      `json:"createdAt,omitempty"`
}

type RecentOrder struct {
	Orders   int     `json:"orders"`
	Products []Order `json:"products"`
}
