package portal

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"predictive-disease-detection/internal/account"
	"predictive-disease-detection/internal/apperrors"
	"predictive-disease-detection/internal/feedback"
	"predictive-disease-detection/internal/predict"
	"predictive-disease-detection/internal/session"
)

type fakeModel struct {
	calls  int
	output []int
	err    error
}

func (m *fakeModel) Predict(context.Context, []float64) ([]int, error) {
	m.calls++
	return m.output, m.err
}

func newTestPortal(model *fakeModel) (*Portal, *account.MemoryStore) {
	accounts := account.NewMemoryStore(nil)
	models := map[predict.Kind]predict.Model{
		predict.Diabetes:     model,
		predict.HeartDisease: model,
		predict.Parkinsons:   model,
	}
	p := New(accounts, predict.NewService(models), feedback.NewMemoryStore())
	p.now = func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) }
	return p, accounts
}

func formValues(k predict.Kind) map[string]string {
	values := map[string]string{predict.PatientNameKey: "Jane"}
	for i, f := range predict.Schema(k) {
		values[f.Key] = strconv.Itoa(i + 1)
	}
	return values
}

func loggedIn(t *testing.T, p *Portal) *session.Session {
	t.Helper()
	s := session.New("sid")
	if err := p.Signup(context.Background(), s, SignupRequest{Name: "A", Email: "A@gmail.com", Password: "p", ConfirmPassword: "p"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	return s
}

func TestSignupSignsIn(t *testing.T) {
	p, accounts := newTestPortal(&fakeModel{})
	s := loggedIn(t, p)
	if !s.Authenticated || s.UserEmail != "a@gmail.com" || s.UserName != "A" || s.Current() != session.Home {
		t.Fatalf("session = %+v", s)
	}
	if _, err := accounts.Authenticate(context.Background(), "a@gmail.com", "p"); err != nil {
		t.Fatalf("expected stored account: %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name string
		req  SignupRequest
		want error
	}{
		{name: "bad domain", req: SignupRequest{Name: "A", Email: "a@yahoo.com", Password: "p", ConfirmPassword: "p"}, want: account.ErrInvalidEmail},
		{name: "mismatch", req: SignupRequest{Name: "A", Email: "a@gmail.com", Password: "p", ConfirmPassword: "q"}, want: ErrPasswordMismatch},
		{name: "no name", req: SignupRequest{Name: " ", Email: "a@gmail.com", Password: "p", ConfirmPassword: "p"}, want: ErrMissingName},
		{name: "no password", req: SignupRequest{Name: "A", Email: "a@gmail.com"}, want: ErrMissingPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPortal(&fakeModel{})
			s := session.New("sid")
			err := p.Signup(context.Background(), s, tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Signup() = %v, want %v", err, tt.want)
			}
			if !apperrors.IsCode(err, apperrors.CodeValidation) {
				t.Fatalf("code = %q", apperrors.CodeOf(err))
			}
			if *s != *session.New("sid") {
				t.Fatalf("session changed: %+v", s)
			}
		})
	}
}

func TestSignupDuplicate(t *testing.T) {
	p, _ := newTestPortal(&fakeModel{})
	loggedIn(t, p)

	s := session.New("other")
	err := p.Signup(context.Background(), s, SignupRequest{Name: "B", Email: "a@gmail.com", Password: "q", ConfirmPassword: "q"})
	if !errors.Is(err, account.ErrAlreadyExists) {
		t.Fatalf("Signup() = %v, want ErrAlreadyExists", err)
	}
	if s.Authenticated {
		t.Fatal("duplicate signup must not sign in")
	}
}

func TestLogin(t *testing.T) {
	p, _ := newTestPortal(&fakeModel{})
	first := loggedIn(t, p)
	p.Logout(first)

	s := session.New("sid2")
	if err := p.Login(context.Background(), s, LoginRequest{Email: "a@gmail.com", Password: "wrong"}); !errors.Is(err, account.ErrInvalidCredentials) {
		t.Fatalf("Login(wrong) = %v", err)
	}
	if err := p.Login(context.Background(), s, LoginRequest{Email: "missing@gmail.com", Password: "p"}); !errors.Is(err, account.ErrInvalidCredentials) {
		t.Fatalf("Login(missing) = %v", err)
	}
	if err := p.Login(context.Background(), s, LoginRequest{Email: "nope", Password: "p"}); !errors.Is(err, account.ErrInvalidEmail) {
		t.Fatalf("Login(invalid) = %v", err)
	}
	if s.Authenticated {
		t.Fatal("failed logins must not sign in")
	}
	if err := p.Login(context.Background(), s, LoginRequest{Email: " A@GMAIL.com", Password: "p"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.UserName != "A" || s.UserEmail != "a@gmail.com" || s.Current() != session.Home {
		t.Fatalf("session = %+v", s)
	}
}

func TestPredictRecordsResult(t *testing.T) {
	model := &fakeModel{output: []int{1}}
	p, _ := newTestPortal(model)
	s := loggedIn(t, p)

	res, err := p.Predict(context.Background(), s, predict.Parkinsons, formValues(predict.Parkinsons))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if res.Label != "The person has Parkinson's disease" {
		t.Fatalf("label = %q", res.Label)
	}
	if !s.ReportVisible || s.Prediction == nil || s.Current() != session.ParkinsonsPrediction {
		t.Fatalf("session = %+v", s)
	}
	if !p.ToggleReport(s) {
		t.Fatal("expected report shown")
	}
	if rows := predict.Report(*s.Prediction); len(rows) != 22 {
		t.Fatalf("report rows = %d", len(rows))
	}
}

func TestPredictMissingFieldSkipsModel(t *testing.T) {
	model := &fakeModel{output: []int{0}}
	p, _ := newTestPortal(model)
	s := loggedIn(t, p)

	if _, err := p.Predict(context.Background(), s, predict.Diabetes, formValues(predict.Diabetes)); err != nil {
		t.Fatalf("first Predict: %v", err)
	}
	before := *s

	values := formValues(predict.Diabetes)
	values["Insulin"] = ""
	_, err := p.Predict(context.Background(), s, predict.Diabetes, values)
	if !apperrors.IsCode(err, apperrors.CodeValidation) {
		t.Fatalf("Predict() = %v, want validation error", err)
	}
	if model.calls != 1 {
		t.Fatalf("model calls = %d, want 1", model.calls)
	}
	if *s != before {
		t.Fatalf("session changed after validation error: %+v", s)
	}
}

func TestPredictFailureClearsResult(t *testing.T) {
	model := &fakeModel{output: []int{0}}
	p, _ := newTestPortal(model)
	s := loggedIn(t, p)
	_, _ = p.Predict(context.Background(), s, predict.HeartDisease, formValues(predict.HeartDisease))

	model.err = errors.New("model crashed")
	_, err := p.Predict(context.Background(), s, predict.HeartDisease, formValues(predict.HeartDisease))
	if !apperrors.IsCode(err, apperrors.CodePredictionFailure) {
		t.Fatalf("Predict() = %v", err)
	}
	if s.Prediction != nil || s.ReportVisible {
		t.Fatalf("result not cleared: %+v", s)
	}
	if !s.Authenticated {
		t.Fatal("prediction failure must not end the session")
	}
}

func TestPredictRequiresLogin(t *testing.T) {
	model := &fakeModel{output: []int{0}}
	p, _ := newTestPortal(model)
	s := session.New("sid")
	if _, err := p.Predict(context.Background(), s, predict.Diabetes, formValues(predict.Diabetes)); !errors.Is(err, session.ErrNotAuthenticated) {
		t.Fatalf("Predict() = %v", err)
	}
	if model.calls != 0 {
		t.Fatal("model called for guest")
	}
}

func TestFeedback(t *testing.T) {
	p, _ := newTestPortal(&fakeModel{})
	s := loggedIn(t, p)
	ctx := context.Background()

	if err := p.SubmitFeedback(ctx, s, FeedbackRequest{Message: "  "}); !errors.Is(err, feedback.ErrEmptyMessage) {
		t.Fatalf("SubmitFeedback(empty) = %v", err)
	}
	if err := p.SubmitFeedback(ctx, s, FeedbackRequest{Message: "Great app", Rating: 5}); err != nil {
		t.Fatalf("SubmitFeedback: %v", err)
	}
	entries, err := p.Feedback(ctx, s)
	if err != nil {
		t.Fatalf("Feedback: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "A" || entries[0].Email != "a@gmail.com" || entries[0].Rating != 5 {
		t.Fatalf("entries = %+v", entries)
	}

	p.Logout(s)
	if err := p.SubmitFeedback(ctx, s, FeedbackRequest{Message: "hi"}); !errors.Is(err, session.ErrNotAuthenticated) {
		t.Fatalf("SubmitFeedback(guest) = %v", err)
	}
}

func TestLogoutResets(t *testing.T) {
	p, _ := newTestPortal(&fakeModel{output: []int{1}})
	s := loggedIn(t, p)
	_, _ = p.Predict(context.Background(), s, predict.Diabetes, formValues(predict.Diabetes))
	p.ToggleReport(s)

	p.Logout(s)
	if *s != *session.New("sid") || s.Current() != session.Login {
		t.Fatalf("session after logout = %+v", s)
	}
}
