package grid

import (
	"context"
	"fmt"
	"time"

	"github.com/timedesk/timekeeper-backend-go/internal/domain/code"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/employee"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/grid"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/record"
)

type service struct {
	recordRepo   record.RecordRepository
	employeeRepo employee.EmployeeRepository
	codeRepo     code.CodeRepository
	policy       grid.UnrecordedPolicy
}

func NewService(
	recordRepo record.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	codeRepo code.CodeRepository,
	policy grid.UnrecordedPolicy,
) grid.GridService {
	return &service{
		recordRepo:   recordRepo,
		employeeRepo: employeeRepo,
		codeRepo:     codeRepo,
		policy:       policy,
	}
}

// statusSymbols render records that carry no explicit code.
var statusSymbols = map[record.Status]string{
	record.StatusPresent: "P",
	record.StatusLate:    "L",
	record.StatusHalfDay: "P/2",
	record.StatusAbsent:  "A",
	record.StatusLeave:   "CM",
}

// statusWeights are the presence fractions of the bare statuses.
var statusWeights = map[record.Status]float64{
	record.StatusPresent: 1,
	record.StatusLate:    1,
	record.StatusHalfDay: 0.5,
	record.StatusAbsent:  0,
	record.StatusLeave:   0,
}

// BuildMonthlyGrid implements grid.GridService. The grid is a pure read: it
// is recomputed from the roster, the calendar, the record set and the full
// code catalog on every call, so a catalog change shows up on the next build.
func (s *service) BuildMonthlyGrid(ctx context.Context, req grid.BuildRequest) (grid.MonthlyGrid, error) {
	if err := req.Validate(); err != nil {
		return grid.MonthlyGrid{}, err
	}

	employees, err := s.employeeRepo.ListActive(ctx, req.DepartmentID)
	if err != nil {
		return grid.MonthlyGrid{}, fmt.Errorf("list roster: %w", err)
	}

	first := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	daysInMonth := last.Day()

	records, err := s.recordRepo.ListByDateRange(ctx, record.RangeFilter{
		DepartmentID: req.DepartmentID,
		From:         first,
		To:           last,
	})
	if err != nil {
		return grid.MonthlyGrid{}, fmt.Errorf("list month records: %w", err)
	}

	// The weight map covers the whole catalog, inactive codes included, so
	// historical cells keep their fraction after a deactivation.
	catalog, err := s.codeRepo.List(ctx)
	if err != nil {
		return grid.MonthlyGrid{}, fmt.Errorf("load code catalog: %w", err)
	}
	codesByToken := make(map[string]code.AttendanceCode, len(catalog))
	for _, c := range catalog {
		codesByToken[c.Code] = c
	}

	recordsByEmployeeDay := make(map[string]map[int]record.AttendanceRecord)
	for _, rec := range records {
		day := rec.Date.Day()
		if recordsByEmployeeDay[rec.EmployeeID] == nil {
			recordsByEmployeeDay[rec.EmployeeID] = make(map[int]record.AttendanceRecord)
		}
		recordsByEmployeeDay[rec.EmployeeID][day] = rec
	}

	headers := make([]grid.DayHeader, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(req.Year, time.Month(req.Month), day, 0, 0, 0, 0, time.UTC)
		wd := date.Weekday()
		headers = append(headers, grid.DayHeader{
			Day:       day,
			Weekday:   wd.String()[:3],
			IsWeekend: wd == time.Saturday || wd == time.Sunday,
		})
	}

	result := grid.MonthlyGrid{
		Year:         req.Year,
		Month:        req.Month,
		DepartmentID: req.DepartmentID,
		Days:         headers,
		Rows:         make([]grid.Row, 0, len(employees)),
		DayTotals:    make([]float64, daysInMonth),
	}

	for _, emp := range employees {
		row := grid.Row{
			EmployeeID:   emp.ID,
			EmployeeCode: emp.EmployeeCode,
			LastName:     emp.LastName,
			FirstName:    emp.FirstName,
			Position:     emp.Position,
			Cells:        make([]grid.Cell, 0, daysInMonth),
		}

		for day := 1; day <= daysInMonth; day++ {
			cell := s.buildCell(day, headers[day-1].IsWeekend, recordsByEmployeeDay[emp.ID], codesByToken)
			row.Cells = append(row.Cells, cell)
			row.Total += cell.Weight
			result.DayTotals[day-1] += cell.Weight
		}

		result.GrandTotal += row.Total
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

// buildCell resolves one employee-day. Precedence: explicit code, then bare
// record status, then the weekend symbol, then the unrecorded-weekday policy.
func (s *service) buildCell(day int, isWeekend bool, dayRecords map[int]record.AttendanceRecord, codesByToken map[string]code.AttendanceCode) grid.Cell {
	if rec, ok := dayRecords[day]; ok {
		if rec.CodeToken != nil {
			if c, known := codesByToken[*rec.CodeToken]; known {
				return grid.Cell{Day: day, Symbol: c.Code, Weight: c.PresenceWeight(), Recorded: true}
			}
			// Token no longer in the catalog; render it with no weight.
			return grid.Cell{Day: day, Symbol: *rec.CodeToken, Recorded: true}
		}
		return grid.Cell{
			Day:      day,
			Symbol:   statusSymbols[rec.Status],
			Weight:   statusWeights[rec.Status],
			Recorded: true,
		}
	}

	if isWeekend {
		return grid.Cell{Day: day, Symbol: grid.WeekendSymbol}
	}

	switch s.policy {
	case grid.PolicyPresent:
		return grid.Cell{Day: day, Symbol: statusSymbols[record.StatusPresent], Weight: 1}
	case grid.PolicyBlank:
		return grid.Cell{Day: day}
	default:
		return grid.Cell{Day: day, Symbol: statusSymbols[record.StatusAbsent]}
	}
}
