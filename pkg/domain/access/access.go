// Package access centralizes role derivation, capability checks and the
// record visibility filters applied to already-fetched collections. The
// rules here are pure; the repository layer remains the trust boundary.
package access

import (
	"strings"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
)

// DefaultMasterEmail is the super-admin address recognized regardless of the
// profile role. It can be overridden through configuration.
const DefaultMasterEmail = "ccp@qtc-soluitons.com"

// Action is a UI-level operation subject to role gating
type Action string

const (
	ActionCreateEntity      Action = "create_entity"
	ActionEditEntity        Action = "edit_entity"
	ActionCreatePerson      Action = "create_person"
	ActionEditPerson        Action = "edit_person"
	ActionDeletePerson      Action = "delete_person"
	ActionManageAreas       Action = "manage_areas"
	ActionManageUsers       Action = "manage_users"
	ActionUpdatePhaseStatus Action = "update_phase_status"
	ActionUpdateTask        Action = "update_task"
	ActionEditRisk          Action = "edit_risk"
	ActionEditCriterion     Action = "edit_criterion"
	ActionEditPlanner       Action = "edit_planner"
)

// Viewer is the resolved identity a request acts as: a role plus the linked
// profile ID when one exists.
type Viewer struct {
	Role     types.Role
	PersonID types.PersonID
}

// DeriveRole resolves the role with fixed precedence: the master email wins,
// then the role recorded on the principal's profile. A nil profile or an
// unrecognized role string resolves to the lowest privilege.
func DeriveRole(sessionEmail string, profile *model.Person, masterEmail string) types.Role {
	if masterEmail == "" {
		masterEmail = DefaultMasterEmail
	}
	if sessionEmail != "" && strings.EqualFold(sessionEmail, masterEmail) {
		return types.RoleMaster
	}
	if profile == nil {
		return types.RoleViewer
	}
	return types.ParseRole(profile.Role)
}

// Can reports whether the role is allowed to perform the action.
func Can(role types.Role, action Action) bool {
	switch action {
	case ActionCreateEntity, ActionEditEntity,
		ActionCreatePerson, ActionEditPerson, ActionDeletePerson,
		ActionManageAreas:
		return role == types.RoleMaster || role == types.RolePlanner
	case ActionManageUsers:
		return role == types.RoleMaster
	case ActionUpdatePhaseStatus, ActionUpdateTask, ActionEditRisk, ActionEditCriterion, ActionEditPlanner:
		return role == types.RoleMaster || role == types.RolePlanner || role == types.RoleAuditor
	default:
		return false
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// FilterEntities applies the role visibility rule and the free-text search:
// MASTER and Planificadora see all entities, an Auditor only those they are
// responsible for. A non-empty search term keeps entities whose name
// contains it case-insensitively.
func FilterEntities(entities []*model.AuditEntity, viewer Viewer, searchTerm string) []*model.AuditEntity {
	result := make([]*model.AuditEntity, 0, len(entities))
	for _, e := range entities {
		if viewer.Role == types.RoleAuditor && e.ResponsibleID != viewer.PersonID {
			continue
		}
		if searchTerm != "" && !containsFold(e.Name, searchTerm) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// FilterRisks keeps risks belonging to a visible entity, then applies the
// search term against the entity name or the risk description.
func FilterRisks(risks []*model.RiskControl, visible []*model.AuditEntity, searchTerm string) []*model.RiskControl {
	visibleIDs := make(map[types.AuditID]bool, len(visible))
	for _, e := range visible {
		visibleIDs[e.ID] = true
	}

	result := make([]*model.RiskControl, 0, len(risks))
	for _, r := range risks {
		if !visibleIDs[r.AuditID] {
			continue
		}
		if searchTerm != "" &&
			!containsFold(r.EntityName, searchTerm) &&
			!containsFold(r.RiskDescription, searchTerm) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// FilterCriteria keeps criteria belonging to a visible entity, then applies
// the search term against the entity name or the criterion code.
func FilterCriteria(criteria []*model.CLACriterion, visible []*model.AuditEntity, searchTerm string) []*model.CLACriterion {
	visibleIDs := make(map[types.AuditID]bool, len(visible))
	for _, e := range visible {
		visibleIDs[e.ID] = true
	}

	result := make([]*model.CLACriterion, 0, len(criteria))
	for _, c := range criteria {
		if !visibleIDs[c.AuditID] {
			continue
		}
		if searchTerm != "" &&
			!containsFold(c.EntityName, searchTerm) &&
			!containsFold(c.Criterion, searchTerm) {
			continue
		}
		result = append(result, c)
	}
	return result
}

// FilterPeople matches people by name substring, or keeps the responsible
// person of the entity whose name equals the search term exactly
// (case-insensitive). An empty term returns everyone.
func FilterPeople(people []*model.Person, entities []*model.AuditEntity, searchTerm string) []*model.Person {
	if searchTerm == "" {
		return people
	}

	var assignedID types.PersonID
	for _, e := range entities {
		if strings.EqualFold(e.Name, searchTerm) {
			assignedID = e.ResponsibleID
			break
		}
	}

	result := make([]*model.Person, 0, len(people))
	for _, p := range people {
		if containsFold(p.FullName, searchTerm) || (assignedID != "" && p.ID == assignedID) {
			result = append(result, p)
		}
	}
	return result
}
