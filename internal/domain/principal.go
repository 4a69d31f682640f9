package domain

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID  int64
	IsStaff bool
}

func (p Principal) CanAccess(ownerID int64) bool {
	return p.IsStaff || p.UserID == ownerID
}
