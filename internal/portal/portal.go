// Package portal applies visitor events to a session: signup, login,
// navigation, predictions, the report toggle, feedback and logout.
//
// Every method receives the visitor's session explicitly and either applies
// a complete transition or leaves the session untouched.
package portal

import (
	"context"
	"log"
	"strings"
	"time"

	"predictive-disease-detection/internal/account"
	"predictive-disease-detection/internal/apperrors"
	"predictive-disease-detection/internal/feedback"
	"predictive-disease-detection/internal/predict"
	"predictive-disease-detection/internal/session"
)

var (
	ErrPasswordMismatch = apperrors.New(apperrors.CodeValidation, "Passwords do not match. Please try again.")
	ErrMissingName      = apperrors.New(apperrors.CodeValidation, "Please enter your full name.")
	ErrMissingPassword  = apperrors.New(apperrors.CodeValidation, "Please enter a password.")
)

// Portal holds the collaborators behind the session transitions.
type Portal struct {
	accounts    account.Store
	predictions *predict.Service
	feedback    feedback.Store
	now         func() time.Time
}

// New creates a Portal.
func New(accounts account.Store, predictions *predict.Service, fb feedback.Store) *Portal {
	return &Portal{
		accounts:    accounts,
		predictions: predictions,
		feedback:    fb,
		now:         time.Now,
	}
}

// Signup registers a new account and signs the visitor in.
func (p *Portal) Signup(ctx context.Context, s *session.Session, req SignupRequest) error {
	if s.Authenticated {
		return session.ErrAlreadyAuthenticated
	}
	name := strings.TrimSpace(req.Name)
	switch {
	case !account.ValidEmail(req.Email):
		return account.ErrInvalidEmail
	case req.Password != req.ConfirmPassword:
		return ErrPasswordMismatch
	case name == "":
		return ErrMissingName
	case req.Password == "":
		return ErrMissingPassword
	}

	if err := p.accounts.Register(ctx, name, req.Email, req.Password); err != nil {
		return err
	}
	email := account.NormalizeEmail(req.Email)
	log.Printf("account created for %s", email)
	s.SignIn(email, name)
	return nil
}

// Login checks credentials and signs the visitor in.
func (p *Portal) Login(ctx context.Context, s *session.Session, req LoginRequest) error {
	if s.Authenticated {
		return session.ErrAlreadyAuthenticated
	}
	if !account.ValidEmail(req.Email) {
		return account.ErrInvalidEmail
	}
	acct, err := p.accounts.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}
	s.SignIn(acct.Email, acct.Name)
	return nil
}

// Navigate selects a sidebar page.
func (p *Portal) Navigate(s *session.Session, page session.Page) error {
	return s.Select(page)
}

// Predict validates a disease form and runs its classifier. Incomplete
// input never reaches the model and leaves the session as it was; a model
// failure clears any previously shown result.
func (p *Portal) Predict(ctx context.Context, s *session.Session, kind predict.Kind, values map[string]string) (predict.Result, error) {
	page := session.PageFor(kind)
	if page == 0 {
		return predict.Result{}, predict.ErrUnknownKind
	}
	if !s.Authenticated {
		return predict.Result{}, session.ErrNotAuthenticated
	}
	in, err := predict.ParseInput(kind, values)
	if err != nil {
		return predict.Result{}, err
	}
	if err := s.Select(page); err != nil {
		return predict.Result{}, err
	}

	res, err := p.predictions.Run(ctx, in)
	if err != nil {
		s.ClearPrediction()
		return predict.Result{}, err
	}
	s.RecordPrediction(res)
	return res, nil
}

// ToggleReport expands or collapses the report for the shown prediction.
func (p *Portal) ToggleReport(s *session.Session) bool {
	return s.ToggleReport()
}

// SubmitFeedback stores a message from a signed-in visitor.
func (p *Portal) SubmitFeedback(ctx context.Context, s *session.Session, req FeedbackRequest) error {
	if !s.Authenticated {
		return session.ErrNotAuthenticated
	}
	entry, err := feedback.Normalize(feedback.Entry{
		Name:      s.UserName,
		Email:     s.UserEmail,
		Message:   req.Message,
		Rating:    req.Rating,
		CreatedAt: p.now().UTC(),
	})
	if err != nil {
		return err
	}
	return p.feedback.Save(ctx, entry)
}

// Feedback lists the visitor's earlier messages.
func (p *Portal) Feedback(ctx context.Context, s *session.Session) ([]feedback.Entry, error) {
	if !s.Authenticated {
		return nil, session.ErrNotAuthenticated
	}
	return p.feedback.ListByEmail(ctx, s.UserEmail)
}

// Logout resets the session to its initial state.
func (p *Portal) Logout(s *session.Session) {
	_ = s.Select(session.Logout)
}
