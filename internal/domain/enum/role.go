package enum

import (
	"encoding/json"
	"fmt"
)

// Role represents the type of an authenticated user
type Role int

const (
	RoleAdmin   Role = 0
	RoleCashier Role = 1
)

// wire values used by the backend's typeUser field
const (
	roleAdminWire   = "Admin"
	roleCashierWire = "caissier"
)

func (r Role) String() string {
	names := [...]string{"Admin", "Cashier"}
	if int(r) < 0 || int(r) >= len(names) {
		return "Unknown"
	}
	return names[r]
}

// IsValid reports whether the role is one of the known variants.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCashier
}

func (r Role) MarshalJSON() ([]byte, error) {
	switch r {
	case RoleAdmin:
		return json.Marshal(roleAdminWire)
	case RoleCashier:
		return json.Marshal(roleCashierWire)
	default:
		return nil, fmt.Errorf("invalid role %d", int(r))
	}
}

// UnmarshalJSON accepts only the known wire values. Anything else is an
// error, never a silent grant of a known role.
func (r *Role) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if !Role(i).IsValid() {
			return fmt.Errorf("invalid role %d", i)
		}
		*r = Role(i)
		return nil
	}
	switch str {
	case roleAdminWire:
		*r = RoleAdmin
	case roleCashierWire:
		*r = RoleCashier
	default:
		return fmt.Errorf("invalid role %q", str)
	}
	return nil
}
