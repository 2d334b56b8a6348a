package domain

// Actor is the authenticated caller of an admin operation. Identity is
// established by the external token issuer; the core only consumes the
// staff capability.
type Actor struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	IsStaff bool   `json:"is_staff"`
}
