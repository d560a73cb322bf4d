package roles

// Role is the ordered privilege level of a principal: Customer < Staff < Admin.
type Role int

const (
	Customer Role = iota
	Staff
	Admin
)

const (
	customerName = "customer"
	staffName    = "staff"
	adminName    = "admin"
)

func (r Role) String() string {
	switch r {
	case Admin:
		return adminName
	case Staff:
		return staffName
	default:
		return customerName
	}
}

// Parse maps a stored role name to a Role. Unknown names fall back to Customer.
func Parse(name string) Role {
	switch name {
	case adminName:
		return Admin
	case staffName:
		return Staff
	default:
		return Customer
	}
}

// Valid reports whether name is one of the three known role names.
func Valid(name string) bool {
	return name == customerName || name == staffName || name == adminName
}

// AtLeast reports whether r carries at least the privilege of min.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}
