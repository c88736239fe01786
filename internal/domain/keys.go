package domain

type CtxKey string

// Each guard stores the authenticated subject under its own key so a handler
// can only see an identity verified by the guard protecting its route.
const (
	KeyAdminID     CtxKey = "AdminID"
	KeyRecruiterID CtxKey = "RecruiterID"
	KeyUserID      CtxKey = "UserID"
)
