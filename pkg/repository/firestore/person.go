package firestore

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type personDocument struct {
	ID            string    `firestore:"id"`
	FullName      string    `firestore:"full_name"`
	Role          string    `firestore:"role"`
	Email         string    `firestore:"email"`
	AvatarURL     string    `firestore:"avatar_url"`
	VisibleInTeam bool      `firestore:"visible_in_team"`
	CreatedAt     time.Time `firestore:"created_at"`
	UpdatedAt     time.Time `firestore:"updated_at"`
}

func personToDocument(p *model.Person) *personDocument {
	return &personDocument{
		ID:            p.ID.String(),
		FullName:      p.FullName,
		Role:          p.Role,
		Email:         p.Email,
		AvatarURL:     p.AvatarURL,
		VisibleInTeam: p.VisibleInTeam,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func personFromDocument(doc *personDocument) *model.Person {
	return &model.Person{
		ID:            types.PersonID(doc.ID),
		FullName:      doc.FullName,
		Role:          doc.Role,
		Email:         doc.Email,
		AvatarURL:     doc.AvatarURL,
		VisibleInTeam: doc.VisibleInTeam,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}

type personRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newPersonRepository(client *firestore.Client) *personRepository {
	return &personRepository{client: client}
}

func (r *personRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_people"
	}
	return "people"
}

func (r *personRepository) Create(ctx context.Context, person *model.Person) (*model.Person, error) {
	created := *person
	if created.ID == "" {
		created.ID = types.NewPersonID()
	}
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	doc := personToDocument(&created)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create person", goerr.V("id", doc.ID))
	}

	return personFromDocument(doc), nil
}

func (r *personRepository) Get(ctx context.Context, id types.PersonID) (*model.Person, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "person not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get person", goerr.V("id", id))
	}

	var doc personDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal person", goerr.V("id", id))
	}

	return personFromDocument(&doc), nil
}

func (r *personRepository) GetByEmail(ctx context.Context, email string) (*model.Person, error) {
	iter := r.client.Collection(r.collection()).
		Where("email", "==", strings.ToLower(email)).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query person by email", goerr.V("email", email))
	}

	var doc personDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal person", goerr.V("email", email))
	}

	return personFromDocument(&doc), nil
}

func (r *personRepository) List(ctx context.Context) ([]*model.Person, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var people []*model.Person
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate people")
		}

		var doc personDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal person")
		}

		people = append(people, personFromDocument(&doc))
	}

	return people, nil
}

func (r *personRepository) Update(ctx context.Context, person *model.Person) (*model.Person, error) {
	existing, err := r.Get(ctx, person.ID)
	if err != nil {
		return nil, err
	}

	updated := *person
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	doc := personToDocument(&updated)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update person", goerr.V("id", doc.ID))
	}

	return personFromDocument(doc), nil
}

func (r *personRepository) Delete(ctx context.Context, id types.PersonID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "person not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get person", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete person", goerr.V("id", id))
	}

	return nil
}

type credentialDocument struct {
	Email        string    `firestore:"email"`
	PasswordHash string    `firestore:"password_hash"`
	PersonID     string    `firestore:"person_id"`
	CreatedAt    time.Time `firestore:"created_at"`
}

type credentialRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newCredentialRepository(client *firestore.Client) *credentialRepository {
	return &credentialRepository{client: client}
}

func (r *credentialRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_credentials"
	}
	return "credentials"
}

func (r *credentialRepository) Put(ctx context.Context, cred *model.Credential) error {
	doc := &credentialDocument{
		Email:        strings.ToLower(cred.Email),
		PasswordHash: cred.PasswordHash,
		PersonID:     cred.PersonID.String(),
		CreatedAt:    cred.CreatedAt,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.Email)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put credential", goerr.V("email", cred.Email))
	}

	return nil
}

func (r *credentialRepository) Get(ctx context.Context, email string) (*model.Credential, error) {
	docRef := r.client.Collection(r.collection()).Doc(strings.ToLower(email))
	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "credential not found", goerr.V("email", email))
		}
		return nil, goerr.Wrap(err, "failed to get credential", goerr.V("email", email))
	}

	var doc credentialDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal credential", goerr.V("email", email))
	}

	return &model.Credential{
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		PersonID:     types.PersonID(doc.PersonID),
		CreatedAt:    doc.CreatedAt,
	}, nil
}

func (r *credentialRepository) Delete(ctx context.Context, email string) error {
	docRef := r.client.Collection(r.collection()).Doc(strings.ToLower(email))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "credential not found", goerr.V("email", email))
		}
		return goerr.Wrap(err, "failed to get credential", goerr.V("email", email))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete credential", goerr.V("email", email))
	}

	return nil
}
