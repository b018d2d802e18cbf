package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model/auth"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/utils/logging"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6

	defaultTokenTTL = 7 * 24 * time.Hour
)

// AuthUseCase handles password login, stateless session tokens and user
// provisioning. Session tokens are HS256 JWTs; with no configured secret a
// random one is generated at startup and sessions do not survive restarts.
type AuthUseCase struct {
	repo        interfaces.Repository
	masterEmail string
	secret      []byte
	tokenTTL    time.Duration
}

func NewAuthUseCase(repo interfaces.Repository, masterEmail string, options ...AuthOption) *AuthUseCase {
	uc := &AuthUseCase{
		repo:        repo,
		masterEmail: masterEmail,
		tokenTTL:    defaultTokenTTL,
	}

	for _, opt := range options {
		opt(uc)
	}

	if len(uc.secret) == 0 {
		uc.secret = make([]byte, 32)
		if _, err := rand.Read(uc.secret); err != nil {
			panic("failed to generate session token secret: " + err.Error())
		}
	}

	return uc
}

// AuthOption is a functional option for AuthUseCase
type AuthOption func(*AuthUseCase)

// WithTokenSecret sets the HS256 signing key for session tokens
func WithTokenSecret(secret []byte) AuthOption {
	return func(uc *AuthUseCase) {
		if len(secret) > 0 {
			uc.secret = secret
		}
	}
}

// WithTokenTTL sets the session token lifetime
func WithTokenTTL(ttl time.Duration) AuthOption {
	return func(uc *AuthUseCase) {
		if ttl > 0 {
			uc.tokenTTL = ttl
		}
	}
}

// Login verifies the email/password pair against the credential store and
// returns the session principal. Missing credentials and password mismatch
// are indistinguishable to the caller.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, goerr.Wrap(ErrInvalidCredentials, "empty email or password")
	}

	cred, err := uc.repo.Credential().Get(ctx, email)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrInvalidCredentials, "unknown email")
		}
		return nil, goerr.Wrap(err, "failed to load credential")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, goerr.Wrap(ErrInvalidCredentials, "password mismatch")
	}

	sub := cred.PersonID.String()
	if sub == "" {
		sub = strings.ToLower(cred.Email)
	}

	name := ""
	if profile, err := uc.repo.Person().GetByEmail(ctx, cred.Email); err == nil && profile != nil {
		name = profile.FullName
	}

	return auth.NewSession(sub, strings.ToLower(cred.Email), name), nil
}

// IssueToken signs a session token. The returned time is the expiry.
func (uc *AuthUseCase) IssueToken(session *auth.Session) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(uc.tokenTTL)

	tok, err := jwt.NewBuilder().
		Subject(session.Sub).
		IssuedAt(now).
		Expiration(exp).
		Claim("email", session.Email).
		Claim("name", session.Name).
		Build()
	if err != nil {
		return "", time.Time{}, goerr.Wrap(err, "failed to build session token")
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, uc.secret))
	if err != nil {
		return "", time.Time{}, goerr.Wrap(err, "failed to sign session token")
	}

	return string(signed), exp, nil
}

// ValidateToken verifies the signature and expiry of a session token and
// reconstructs the session principal.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, token string) (*auth.Session, error) {
	parsed, err := jwt.Parse([]byte(token), jwt.WithKey(jwa.HS256, uc.secret), jwt.WithValidate(true))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid session token")
	}

	email, _ := parsed.Get("email")
	name, _ := parsed.Get("name")
	emailStr, _ := email.(string)
	nameStr, _ := name.(string)

	return auth.NewSession(parsed.Subject(), emailStr, nameStr), nil
}

// Identify resolves the profile and effective role of a session. The profile
// is nil when no person record is linked to the session email.
func (uc *AuthUseCase) Identify(ctx context.Context, session *auth.Session) (*model.Person, types.Role, error) {
	profile, err := uc.repo.Person().GetByEmail(ctx, session.Email)
	if err != nil {
		return nil, types.RoleViewer, goerr.Wrap(err, "failed to load profile", goerr.V("email", session.Email))
	}

	return profile, access.DeriveRole(session.Email, profile, uc.masterEmail), nil
}

// Viewer resolves the access identity a session acts as
func (uc *AuthUseCase) Viewer(ctx context.Context, session *auth.Session) (access.Viewer, error) {
	profile, role, err := uc.Identify(ctx, session)
	if err != nil {
		return access.Viewer{}, err
	}

	viewer := access.Viewer{Role: role}
	if profile != nil {
		viewer.PersonID = profile.ID
	}
	return viewer, nil
}

// ProvisionUser creates a credential and its person profile as one logical
// operation. An empty role defaults to Auditor and the profile gets a
// deterministic placeholder avatar. When a profile already exists for the
// email the credential is linked to it instead of creating a duplicate. If
// the profile insert fails the freshly stored credential is removed again.
func (uc *AuthUseCase) ProvisionUser(ctx context.Context, viewer access.Viewer, email, password, fullName, role string, visible bool) (*model.Person, error) {
	if !access.Can(viewer.Role, access.ActionManageUsers) {
		return nil, goerr.Wrap(ErrForbidden, "user provisioning requires master role")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, goerr.Wrap(ErrInvalidInput, "valid email is required")
	}
	if len(password) < minPasswordLength {
		return nil, goerr.Wrap(ErrInvalidInput, "password must be at least 6 characters")
	}
	if fullName == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "full name is required")
	}
	if role == "" {
		role = string(types.RoleAuditor)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to hash password")
	}

	existing, err := uc.repo.Person().GetByEmail(ctx, email)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check existing profile", goerr.V("email", email))
	}
	if existing != nil {
		cred := &model.Credential{
			Email:        email,
			PasswordHash: string(hash),
			PersonID:     existing.ID,
		}
		if err := uc.repo.Credential().Put(ctx, cred); err != nil {
			return nil, goerr.Wrap(err, "failed to store credential", goerr.V("email", email))
		}
		return existing, nil
	}

	personID := types.NewPersonID()
	cred := &model.Credential{
		Email:        email,
		PasswordHash: string(hash),
		PersonID:     personID,
	}
	if err := uc.repo.Credential().Put(ctx, cred); err != nil {
		return nil, goerr.Wrap(err, "failed to store credential", goerr.V("email", email))
	}

	person := &model.Person{
		ID:            personID,
		FullName:      fullName,
		Role:          role,
		Email:         email,
		AvatarURL:     fmt.Sprintf("https://picsum.photos/seed/%s/100", fullName),
		VisibleInTeam: visible,
	}
	created, err := uc.repo.Person().Create(ctx, person)
	if err != nil {
		if delErr := uc.repo.Credential().Delete(ctx, email); delErr != nil {
			logging.From(ctx).Warn("failed to roll back credential after profile insert failure",
				"email", email, "error", delErr)
		}
		return nil, goerr.Wrap(err, "failed to create profile", goerr.V("email", email))
	}

	return created, nil
}
