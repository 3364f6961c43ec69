package services

import (
	"errors"
	"time"

	"github.com/siteguard/siteguard-api/internal/models"
	"github.com/siteguard/siteguard-api/internal/repository"
	"github.com/siteguard/siteguard-api/internal/utils"
)

var (
	ErrReportNotFound   = errors.New("safety report not found")
	ErrInvalidRiskScore = errors.New("risk score must be between 0 and 100")
)

// SafetyService manages the append-only safety report history of a
// workspace. The workspace safety score always reflects the latest report.
type SafetyService struct {
	workspaceRepo repository.WorkspaceRepository
}

// NewSafetyService creates a new SafetyService.
func NewSafetyService(workspaceRepo repository.WorkspaceRepository) *SafetyService {
	return &SafetyService{
		workspaceRepo: workspaceRepo,
	}
}

// SafetyReportInput represents a report as accepted from clients. The id
// and report date are assigned on save.
type SafetyReportInput struct {
	RiskScore int
	Hazards   []models.Hazard
	Summary   string
}

// Save stores a new report at the head of the history and recomputes the
// workspace safety score from this report alone.
func (s *SafetyService) Save(workspaceID, ownerID uint64, input SafetyReportInput) (*models.SafetyReport, error) {
	if input.RiskScore < 0 || input.RiskScore > 100 {
		return nil, ErrInvalidRiskScore
	}

	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}

	report := models.SafetyReport{
		ID:         utils.GenerateID(),
		ReportDate: time.Now().Format("2006-01-02"),
		RiskScore:  input.RiskScore,
		Hazards:    input.Hazards,
		Summary:    input.Summary,
	}

	// Newest first.
	workspace.SafetyReports = append([]models.SafetyReport{report}, workspace.SafetyReports...)
	workspace.SafetyScore = models.SafetyScoreFor(report.RiskScore)

	if err := saveWorkspace(s.workspaceRepo, workspace); err != nil {
		return nil, err
	}
	return &report, nil
}

// List returns the full report history, newest first.
func (s *SafetyService) List(workspaceID, ownerID uint64) ([]models.SafetyReport, error) {
	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}
	return workspace.SafetyReports, nil
}

// GetByID returns a single report from the history.
func (s *SafetyService) GetByID(workspaceID, ownerID uint64, reportID string) (*models.SafetyReport, error) {
	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}

	report := workspace.FindSafetyReport(reportID)
	if report == nil {
		return nil, ErrReportNotFound
	}
	found := *report
	return &found, nil
}
