package domain

// Session is the authenticated caller, established by the auth service at
// login. It is passed explicitly to every service call that reads user data.
type Session struct {
	UserID   string
	Email    string
	FullName string
}
