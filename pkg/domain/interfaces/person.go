package interfaces

import (
	"context"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
)

// PersonRepository defines data access for person profiles
type PersonRepository interface {
	// Create creates a new person, assigning an ID when empty
	Create(ctx context.Context, person *model.Person) (*model.Person, error)

	// Get retrieves a person by ID
	Get(ctx context.Context, id types.PersonID) (*model.Person, error)

	// GetByEmail retrieves a person by email. Returns nil, nil when no
	// profile exists for the address.
	GetByEmail(ctx context.Context, email string) (*model.Person, error)

	// List retrieves all people
	List(ctx context.Context) ([]*model.Person, error)

	// Update updates an existing person
	Update(ctx context.Context, person *model.Person) (*model.Person, error)

	// Delete deletes a person by ID
	Delete(ctx context.Context, id types.PersonID) error
}

// CredentialRepository stores auth principals keyed by email
type CredentialRepository interface {
	// Put creates or replaces the credential for its email
	Put(ctx context.Context, cred *model.Credential) error

	// Get retrieves the credential for an email
	Get(ctx context.Context, email string) (*model.Credential, error)

	// Delete removes the credential for an email
	Delete(ctx context.Context, email string) error
}
