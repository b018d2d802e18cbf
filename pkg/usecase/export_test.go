package usecase

import "time"

// SetNowForTest overrides the schedule clock for testing purposes
func (uc *ScheduleUseCase) SetNowForTest(now func() time.Time) {
	uc.now = now
}
