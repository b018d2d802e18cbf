package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type personRepository struct {
	mu     sync.RWMutex
	people map[types.PersonID]*model.Person
}

func newPersonRepository() *personRepository {
	return &personRepository{
		people: make(map[types.PersonID]*model.Person),
	}
}

func copyPerson(p *model.Person) *model.Person {
	cp := *p
	return &cp
}

func (r *personRepository) Create(ctx context.Context, person *model.Person) (*model.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyPerson(person)
	if created.ID == "" {
		created.ID = types.NewPersonID()
	}
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.people[created.ID] = created
	return copyPerson(created), nil
}

func (r *personRepository) Get(ctx context.Context, id types.PersonID) (*model.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	person, exists := r.people[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "person not found", goerr.V("id", id))
	}

	return copyPerson(person), nil
}

func (r *personRepository) GetByEmail(ctx context.Context, email string) (*model.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.people {
		if strings.EqualFold(p.Email, email) {
			return copyPerson(p), nil
		}
	}

	return nil, nil
}

func (r *personRepository) List(ctx context.Context) ([]*model.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	people := make([]*model.Person, 0, len(r.people))
	for _, p := range r.people {
		people = append(people, copyPerson(p))
	}

	return people, nil
}

func (r *personRepository) Update(ctx context.Context, person *model.Person) (*model.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.people[person.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "person not found", goerr.V("id", person.ID))
	}

	updated := copyPerson(person)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.people[updated.ID] = updated
	return copyPerson(updated), nil
}

func (r *personRepository) Delete(ctx context.Context, id types.PersonID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.people[id]; !exists {
		return goerr.Wrap(ErrNotFound, "person not found", goerr.V("id", id))
	}

	delete(r.people, id)
	return nil
}

type credentialRepository struct {
	mu    sync.RWMutex
	creds map[string]*model.Credential
}

func newCredentialRepository() *credentialRepository {
	return &credentialRepository{
		creds: make(map[string]*model.Credential),
	}
}

func (r *credentialRepository) Put(ctx context.Context, cred *model.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *cred
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	r.creds[strings.ToLower(cred.Email)] = &cp
	return nil
}

func (r *credentialRepository) Get(ctx context.Context, email string) (*model.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, exists := r.creds[strings.ToLower(email)]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "credential not found", goerr.V("email", email))
	}

	cp := *cred
	return &cp, nil
}

func (r *credentialRepository) Delete(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := r.creds[key]; !exists {
		return goerr.Wrap(ErrNotFound, "credential not found", goerr.V("email", email))
	}

	delete(r.creds, key)
	return nil
}
