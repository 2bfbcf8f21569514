package interfaces

import (
	"github.com/Pateriya27/Paisa-Ai/internal/finance/application"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
)

type MockDashboardService struct {
	summary    *application.DashboardSummary
	shouldFail bool
}

func (m *MockDashboardService) GetDashboardSummary(userID string) (*application.DashboardSummary, error) {
	if m.shouldFail {
		return nil, financeErrors.NewExternalServiceError("dashboard", nil)
	}
	return m.summary, nil
}
