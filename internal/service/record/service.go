package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/code"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/employee"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/record"
	"github.com/timedesk/timekeeper-backend-go/internal/pkg/sse"
	"github.com/timedesk/timekeeper-backend-go/internal/pkg/validator"
)

type service struct {
	recordRepo   record.RecordRepository
	employeeRepo employee.EmployeeRepository
	codeSvc      code.CodeService
	hub          *sse.Hub
	policy       record.ShiftPolicy
}

func NewService(
	recordRepo record.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	codeSvc code.CodeService,
	hub *sse.Hub,
	policy record.ShiftPolicy,
) record.RecordService {
	return &service{
		recordRepo:   recordRepo,
		employeeRepo: employeeRepo,
		codeSvc:      codeSvc,
		hub:          hub,
		policy:       policy,
	}
}

// CheckIn implements record.RecordService.
func (s *service) CheckIn(ctx context.Context, req record.CheckInRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return record.RecordResponse{}, fmt.Errorf("resolve employee: %w", err)
	}
	if !emp.IsActive {
		return record.RecordResponse{}, employee.ErrEmployeeInactive
	}

	ts := s.resolveTimestamp(req.Timestamp)
	date := record.DayOf(ts)

	existing, err := s.recordRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return record.RecordResponse{}, fmt.Errorf("load day record: %w", err)
	}

	if existing != nil {
		if existing.CheckIn != nil {
			return record.RecordResponse{}, record.ErrAlreadyCheckedIn
		}

		// The day was pre-filled (absence sweep or code assignment);
		// attach the stamp instead of rejecting the employee.
		existing.CheckIn = &record.Stamp{Time: ts, Device: req.Device, Notes: req.Notes}
		if existing.Status == record.StatusAbsent {
			existing.Status = DeriveCheckInStatus(ts, s.policy)
		}
		if err := s.recordRepo.Update(ctx, *existing); err != nil {
			return record.RecordResponse{}, fmt.Errorf("attach check-in: %w", err)
		}
		s.publish(sse.EventRecordCreated, *existing)
		return toRecordResponse(*existing), nil
	}

	rec := record.AttendanceRecord{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		Date:       date,
		CheckIn:    &record.Stamp{Time: ts, Device: req.Device, Notes: req.Notes},
		Status:     DeriveCheckInStatus(ts, s.policy),
	}

	created, err := s.recordRepo.Create(ctx, rec)
	if err != nil {
		return record.RecordResponse{}, fmt.Errorf("create day record: %w", err)
	}

	s.publish(sse.EventRecordCreated, created)
	return toRecordResponse(created), nil
}

// CheckOut implements record.RecordService. Re-sending the stored check-out
// timestamp is idempotent; a different timestamp on a closed day conflicts.
func (s *service) CheckOut(ctx context.Context, req record.CheckOutRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return record.RecordResponse{}, fmt.Errorf("resolve employee: %w", err)
	}

	ts := s.resolveTimestamp(req.Timestamp)

	rec, err := s.findOpenRecord(ctx, req.EmployeeID, ts)
	if err != nil {
		return record.RecordResponse{}, err
	}

	if rec.CheckOut != nil {
		if rec.CheckOut.Time.Equal(ts) {
			return toRecordResponse(*rec), nil
		}
		return record.RecordResponse{}, record.ErrAlreadyCheckedOut
	}

	workHours := DeriveWorkHours(rec.CheckIn.Time, ts)
	overtime := DeriveOvertime(workHours, s.policy.StandardHours)

	rec.CheckOut = &record.Stamp{Time: ts, Device: req.Device, Notes: req.Notes}
	rec.WorkHours = &workHours
	rec.Overtime = &overtime

	if err := s.recordRepo.Update(ctx, *rec); err != nil {
		return record.RecordResponse{}, fmt.Errorf("close day record: %w", err)
	}

	s.publish(sse.EventRecordCheckedOut, *rec)
	return toRecordResponse(*rec), nil
}

// findOpenRecord resolves the record a check-out belongs to. When the
// timestamp falls past midnight the open record of the previous day still
// owns it; Date stays authoritative for month attribution.
func (s *service) findOpenRecord(ctx context.Context, employeeID string, ts time.Time) (*record.AttendanceRecord, error) {
	date := record.DayOf(ts)

	rec, err := s.recordRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("load day record: %w", err)
	}
	if rec != nil && rec.CheckIn != nil {
		return rec, nil
	}

	prev, err := s.recordRepo.GetByEmployeeAndDate(ctx, employeeID, date.AddDate(0, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("load previous day record: %w", err)
	}
	if prev != nil && prev.CheckIn != nil && prev.CheckOut == nil {
		return prev, nil
	}

	return nil, record.ErrNotCheckedIn
}

// AssignCode implements record.RecordService. Re-assigning the same code with
// the same premium and notes is a no-op; any changed field rewrites the day.
func (s *service) AssignCode(ctx context.Context, req record.AssignCodeRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return record.RecordResponse{}, fmt.Errorf("resolve employee: %w", err)
	}

	c, err := s.codeSvc.Lookup(ctx, req.Code)
	if err != nil {
		return record.RecordResponse{}, fmt.Errorf("resolve attendance code: %w", err)
	}
	if !c.IsActive {
		return record.RecordResponse{}, code.ErrCodeInactive
	}

	date, _ := validator.IsValidDate(req.Date)

	existing, err := s.recordRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return record.RecordResponse{}, fmt.Errorf("load day record: %w", err)
	}

	if existing != nil {
		sameToken := existing.CodeToken != nil && *existing.CodeToken == c.Code
		samePremium := existing.PremiumAmount.Equal(req.PremiumAmount)
		sameNotes := req.Notes == nil ||
			(existing.Notes != nil && *existing.Notes == *req.Notes)
		if sameToken && samePremium && sameNotes {
			return toRecordResponse(*existing), nil
		}

		existing.CodeToken = &c.Code
		existing.PremiumAmount = req.PremiumAmount
		if req.Notes != nil {
			existing.Notes = req.Notes
		}
		existing.Status = statusForCode(c, existing.CheckIn, existing.Status)

		if err := s.recordRepo.Update(ctx, *existing); err != nil {
			return record.RecordResponse{}, fmt.Errorf("assign code: %w", err)
		}
		s.publish(sse.EventCodeAssigned, *existing)
		return toRecordResponse(*existing), nil
	}

	rec := record.AttendanceRecord{
		ID:            uuid.NewString(),
		EmployeeID:    emp.ID,
		Date:          date,
		CodeToken:     &c.Code,
		PremiumAmount: req.PremiumAmount,
		Notes:         req.Notes,
		Status:        statusForCode(c, nil, record.StatusPresent),
	}

	created, err := s.recordRepo.Create(ctx, rec)
	if err != nil {
		return record.RecordResponse{}, fmt.Errorf("create day record: %w", err)
	}

	s.publish(sse.EventCodeAssigned, created)
	return toRecordResponse(created), nil
}

// statusForCode maps a code's category onto the record status. A derived
// present/late status from an actual check-in outranks a full-day presence
// code; everything else is dictated by the code.
func statusForCode(c code.AttendanceCode, checkIn *record.Stamp, current record.Status) record.Status {
	switch c.Category {
	case code.CategoryAbsent:
		return record.StatusAbsent
	case code.CategoryLeave, code.CategoryHoliday, code.CategoryMission, code.CategoryOther:
		return record.StatusLeave
	case code.CategoryPresent:
		if c.DayFraction < 1 {
			return record.StatusHalfDay
		}
		if checkIn != nil {
			return current
		}
		return record.StatusPresent
	default:
		return current
	}
}

// Upsert implements record.RecordService: the management write path for
// creating or correcting a day without going through the check-in flow.
func (s *service) Upsert(ctx context.Context, req record.UpsertRecordRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return record.RecordResponse{}, fmt.Errorf("resolve employee: %w", err)
	}

	var codeToken *string
	if req.Code != nil {
		c, err := s.codeSvc.Lookup(ctx, *req.Code)
		if err != nil {
			return record.RecordResponse{}, fmt.Errorf("resolve attendance code: %w", err)
		}
		codeToken = &c.Code
	}

	date, _ := validator.IsValidDate(req.Date)

	existing, err := s.recordRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return record.RecordResponse{}, fmt.Errorf("load day record: %w", err)
	}

	rec := record.AttendanceRecord{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		Date:       date,
	}
	if existing != nil {
		rec = *existing
	}

	if req.CheckInTime != nil {
		t, _ := validator.IsValidDateTime(*req.CheckInTime)
		rec.CheckIn = &record.Stamp{Time: t.UTC()}
	}
	if req.CheckOutTime != nil {
		t, _ := validator.IsValidDateTime(*req.CheckOutTime)
		rec.CheckOut = &record.Stamp{Time: t.UTC()}
	}
	if codeToken != nil {
		rec.CodeToken = codeToken
	}
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	if rec.CheckIn != nil && rec.CheckOut != nil {
		workHours := DeriveWorkHours(rec.CheckIn.Time, rec.CheckOut.Time)
		overtime := DeriveOvertime(workHours, s.policy.StandardHours)
		rec.WorkHours = &workHours
		rec.Overtime = &overtime
	}

	switch {
	case req.Status != nil:
		rec.Status = record.Status(*req.Status)
	case rec.CheckIn != nil:
		rec.Status = DeriveCheckInStatus(rec.CheckIn.Time, s.policy)
	case rec.Status == "":
		rec.Status = record.StatusAbsent
	}

	if existing != nil {
		if err := s.recordRepo.Update(ctx, rec); err != nil {
			return record.RecordResponse{}, fmt.Errorf("update day record: %w", err)
		}
		return toRecordResponse(rec), nil
	}

	created, err := s.recordRepo.Create(ctx, rec)
	if err != nil {
		return record.RecordResponse{}, fmt.Errorf("create day record: %w", err)
	}

	s.publish(sse.EventRecordCreated, created)
	return toRecordResponse(created), nil
}

// Get implements record.RecordService.
func (s *service) Get(ctx context.Context, id string) (record.RecordResponse, error) {
	rec, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return record.RecordResponse{}, err
	}
	return toRecordResponse(rec), nil
}

// List implements record.RecordService.
func (s *service) List(ctx context.Context, filter record.ListFilter) ([]record.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	from, _ := validator.IsValidDate(filter.From)
	to, _ := validator.IsValidDate(filter.To)

	records, err := s.recordRepo.ListByDateRange(ctx, record.RangeFilter{
		EmployeeID:   filter.EmployeeID,
		DepartmentID: filter.DepartmentID,
		From:         from,
		To:           to,
	})
	if err != nil {
		return nil, fmt.Errorf("list day records: %w", err)
	}

	responses := make([]record.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
	}
	return responses, nil
}

// Delete implements record.RecordService.
func (s *service) Delete(ctx context.Context, id string) error {
	return s.recordRepo.Delete(ctx, id)
}

func (s *service) resolveTimestamp(raw string) time.Time {
	if raw != "" {
		if t, ok := validator.IsValidDateTime(raw); ok {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}

// publish is fire-and-forget: a slow or absent dashboard never blocks an
// attendance write.
func (s *service) publish(event string, rec record.AttendanceRecord) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(sse.Event{Event: event, Data: toRecordResponse(rec)})
}

func toRecordResponse(rec record.AttendanceRecord) record.RecordResponse {
	resp := record.RecordResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		EmployeeName:   rec.EmployeeName,
		DepartmentName: rec.DepartmentName,
		Date:           rec.Date.Format("2006-01-02"),
		Status:         string(rec.Status),
		Code:           rec.CodeToken,
		PremiumAmount:  rec.PremiumAmount.String(),
		WorkHours:      rec.WorkHours,
		Overtime:       rec.Overtime,
		Notes:          rec.Notes,
		CreatedAt:      rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      rec.UpdatedAt.Format(time.RFC3339),
	}

	if rec.CheckIn != nil {
		t := rec.CheckIn.Time.Format(time.RFC3339)
		resp.CheckInTime = &t
		resp.CheckInDevice = rec.CheckIn.Device
	}
	if rec.CheckOut != nil {
		t := rec.CheckOut.Time.Format(time.RFC3339)
		resp.CheckOutTime = &t
		resp.CheckOutDevice = rec.CheckOut.Device
	}

	return resp
}
