package usecase

import (
	"context"
	"errors"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// PeopleUseCase handles team member profiles
type PeopleUseCase struct {
	repo interfaces.Repository
}

func NewPeopleUseCase(repo interfaces.Repository) *PeopleUseCase {
	return &PeopleUseCase{repo: repo}
}

// List returns people matching the search term: by name substring, or the
// responsible of the entity whose name equals the term exactly.
func (uc *PeopleUseCase) List(ctx context.Context, searchTerm string) ([]*model.Person, error) {
	people, err := uc.repo.Person().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list people")
	}
	entities, err := uc.repo.Audit().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list audit entities")
	}

	return access.FilterPeople(people, entities, searchTerm), nil
}

// Create stores a new person profile
func (uc *PeopleUseCase) Create(ctx context.Context, viewer access.Viewer, person *model.Person) (*model.Person, error) {
	if !access.Can(viewer.Role, access.ActionCreatePerson) {
		return nil, goerr.Wrap(ErrForbidden, "person creation not allowed", goerr.V("role", viewer.Role))
	}
	if person.FullName == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "full name is required")
	}

	created, err := uc.repo.Person().Create(ctx, person)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create person")
	}

	return created, nil
}

// Update replaces a person profile
func (uc *PeopleUseCase) Update(ctx context.Context, viewer access.Viewer, person *model.Person) (*model.Person, error) {
	if !access.Can(viewer.Role, access.ActionEditPerson) {
		return nil, goerr.Wrap(ErrForbidden, "person edit not allowed", goerr.V("role", viewer.Role))
	}
	if person.FullName == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "full name is required")
	}

	updated, err := uc.repo.Person().Update(ctx, person)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrPersonNotFound, "no such person", goerr.V("id", person.ID))
		}
		return nil, goerr.Wrap(err, "failed to update person", goerr.V("id", person.ID))
	}

	return updated, nil
}

// Delete removes a person profile. The login credential for the email, when
// one exists, is kept; without a profile the principal falls back to the
// lowest privilege on next login.
func (uc *PeopleUseCase) Delete(ctx context.Context, viewer access.Viewer, id types.PersonID) error {
	if !access.Can(viewer.Role, access.ActionDeletePerson) {
		return goerr.Wrap(ErrForbidden, "person delete not allowed", goerr.V("role", viewer.Role))
	}

	if err := uc.repo.Person().Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrPersonNotFound, "no such person", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to delete person", goerr.V("id", id))
	}

	return nil
}
