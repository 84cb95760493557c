package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	clockMocks "github.com/huntlabs/treasurehunt/internal/common/clock/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockClock     *clockMocks.MockClock
	authenticator *Authenticator

	testTime time.Time
}

func (s *AuthTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.testTime = time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)

	a, err := New(&Config{
		Secret:        "test-secret",
		AdminPassword: "hunt-master",
		Clock:         s.mockClock,
	})
	s.Require().NoError(err)
	s.authenticator = a
}

func (s *AuthTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (s *AuthTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrMissingSecret, err)

	_, err = New(&Config{Secret: "x"})
	s.Equal(ErrMissingPassword, err)
}

func (s *AuthTestSuite) TestIssueAndVerifyRoundTrip() {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	token, err := s.authenticator.IssueToken("hunt-master")
	s.Require().NoError(err)
	s.NotEmpty(token)

	s.NoError(s.authenticator.VerifyToken(token))
}

func (s *AuthTestSuite) TestIssueTokenRejectsWrongPassword() {
	_, err := s.authenticator.IssueToken("guess")
	s.Equal(ErrInvalidCredentials, err)
}

func (s *AuthTestSuite) TestVerifyTokenRejectsGarbage() {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.Equal(ErrInvalidToken, s.authenticator.VerifyToken("not-a-token"))
}

func (s *AuthTestSuite) TestVerifyTokenRejectsExpiredToken() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	token, err := s.authenticator.IssueToken("hunt-master")
	s.Require().NoError(err)

	// Jump past the token's lifetime
	s.mockClock.EXPECT().Now().Return(s.testTime.Add(DefaultTokenTTL + time.Minute)).AnyTimes()

	s.Equal(ErrInvalidToken, s.authenticator.VerifyToken(token))
}

func (s *AuthTestSuite) TestVerifyTokenRejectsForeignSignature() {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	other, err := New(&Config{
		Secret:        "different-secret",
		AdminPassword: "hunt-master",
		Clock:         s.mockClock,
	})
	s.Require().NoError(err)

	token, err := other.IssueToken("hunt-master")
	s.Require().NoError(err)

	s.Equal(ErrInvalidToken, s.authenticator.VerifyToken(token))
}

func (s *AuthTestSuite) TestMiddleware() {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	handler := s.authenticator.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	// No token
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	s.Equal(http.StatusUnauthorized, rec.Code)

	// Bad token
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer junk")
	handler.ServeHTTP(rec, req)
	s.Equal(http.StatusForbidden, rec.Code)

	// Valid token in the header
	token, err := s.authenticator.IssueToken("hunt-master")
	s.Require().NoError(err)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)
	s.Equal(http.StatusNoContent, rec.Code)

	// Valid token in the query string
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin?token="+token, nil)
	handler.ServeHTTP(rec, req)
	s.Equal(http.StatusNoContent, rec.Code)
}
