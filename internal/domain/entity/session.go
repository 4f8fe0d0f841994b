package entity

// Session is a point-in-time copy of the authenticated session state.
type Session struct {
	User            *User
	Token           string
	IsAuthenticated bool
	IsHydrated      bool
}

// Role returns the role of the session user, or an empty role when anonymous.
func (s Session) Role() Role {
	if s.User == nil {
		return ""
	}

	return s.User.Role
}
