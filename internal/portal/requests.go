package portal

// SignupRequest is the Signup page form.
type SignupRequest struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginRequest is the Login page form.
type LoginRequest struct {
	Email    string
	Password string
}

// FeedbackRequest is the Feedback & Contact page form.
type FeedbackRequest struct {
	Message string
	Rating  int
}
