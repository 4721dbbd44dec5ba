package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	leaveerrors "github.com/thakursapna1996/LeaveTrack-Pro/internal/leave/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id uint) (LeaveResponse, error)
	Update(ctx context.Context, id uint, req UpdateLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("employee_name", req.EmployeeName),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	startDate, endDate, messages := validateCreateRequest(req)
	if len(messages) > 0 {
		s.logger.Warn("create leave validation failed", zap.Strings("messages", messages))
		return LeaveResponse{}, leaveerrors.NewValidationError(messages)
	}

	l := &Leave{
		EmployeeName: strings.TrimSpace(req.EmployeeName),
		Email:        strings.TrimSpace(req.Email),
		LeaveType:    strings.TrimSpace(req.LeaveType),
		StartDate:    startDate,
		EndDate:      endDate,
		Reason:       strings.TrimSpace(req.Reason),
		Status:       StatusPending,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.Uint("leave_id", l.ID),
		zap.String("employee_name", l.EmployeeName),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAllByCreatedDesc(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("update leave requested",
		zap.Uint("leave_id", id),
		zap.String("target_status", req.Status),
	)

	// A malformed date aborts the edit before any field is touched.
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if endDate.Before(startDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}

	// Full-field overwrite; ID and CreatedAt stay as inserted. The remaining
	// fields are not re-validated here, unlike Create.
	l.EmployeeName = strings.TrimSpace(req.EmployeeName)
	l.Email = strings.TrimSpace(req.Email)
	l.LeaveType = strings.TrimSpace(req.LeaveType)
	l.StartDate = startDate
	l.EndDate = endDate
	l.Reason = strings.TrimSpace(req.Reason)
	l.Status = status

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("update leave persist failed",
			zap.Uint("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	s.logger.Info("update leave success",
		zap.Uint("leave_id", id),
		zap.String("status", l.Status),
	)

	return mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("delete leave failed",
			zap.Uint("leave_id", id),
			zap.Error(err),
		)
		return err
	}
	s.logger.Info("delete leave success", zap.Uint("leave_id", id))
	return nil
}

// validateCreateRequest evaluates every rule and returns all violations in
// rule order, never just the first one.
func validateCreateRequest(req CreateLeaveRequest) (time.Time, time.Time, []string) {
	var messages []string

	if len(strings.TrimSpace(req.EmployeeName)) < 2 {
		messages = append(messages, "Employee name must be at least 2 characters")
	}
	if email := strings.TrimSpace(req.Email); email == "" || !strings.Contains(email, "@") {
		messages = append(messages, "Please enter a valid email")
	}
	if strings.TrimSpace(req.LeaveType) == "" {
		messages = append(messages, "Please select leave type")
	}

	var startDate, endDate time.Time
	startOK, endOK := false, false
	if req.StartDate == "" || req.EndDate == "" {
		messages = append(messages, "Please select dates")
	}
	if req.StartDate != "" {
		if t, err := time.Parse(dateLayout, req.StartDate); err != nil {
			messages = append(messages, "Start date is not a valid date")
		} else {
			startDate, startOK = t, true
		}
	}
	if req.EndDate != "" {
		if t, err := time.Parse(dateLayout, req.EndDate); err != nil {
			messages = append(messages, "End date is not a valid date")
		} else {
			endDate, endOK = t, true
		}
	}
	if startOK && endOK && endDate.Before(startDate) {
		messages = append(messages, "End date cannot be before start date")
	}

	if len(strings.TrimSpace(req.Reason)) < 10 {
		messages = append(messages, "Reason must be at least 10 characters")
	}

	return startDate, endDate, messages
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		EmployeeName: l.EmployeeName,
		Email:        l.Email,
		LeaveType:    l.LeaveType,
		StartDate:    l.StartDate.Format(dateLayout),
		EndDate:      l.EndDate.Format(dateLayout),
		Reason:       l.Reason,
		Status:       l.Status,
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
