package model

import "github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"

// TaskPlannerEntry is a reusable template row linking a scope item, a task
// description and a phase label. Entries are independent of any entity.
type TaskPlannerEntry struct {
	ID    types.EntryID `json:"id"`
	Scope string        `json:"scope"`
	Task  string        `json:"task"`
	Phase string        `json:"phase"`
}