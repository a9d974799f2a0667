package save

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"log/slog"

	"mill-backend/internal/service/electrical"
)

type MockElectricalSubmitter struct {
	mock.Mock
}

func (m *MockElectricalSubmitter) Submit(ctx context.Context, date string, sections map[string]electrical.SectionInput) (bool, error) {
	args := m.Called(ctx, date, sections)
	return args.Bool(0), args.Error(1)
}

func postElectrical(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/add-electrical", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestAddElectrical_CreatedRespondsWith201(t *testing.T) {
	mockSubmitter := new(MockElectricalSubmitter)
	mockSubmitter.On("Submit", mock.Anything, "2024-03-01", map[string]electrical.SectionInput{
		"TOP_APRON": {MachineType: "SKF-61", InstallDate: "2024-01-01"},
	}).Return(true, nil)

	handler := AddElectrical(slog.Default(), mockSubmitter)

	rr := postElectrical(handler, `{
		"date": "2024-03-01",
		"sections": {"TOP_APRON": {"type": "SKF-61", "date": "2024-01-01"}}
	}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "Data added successfully!")
	mockSubmitter.AssertExpectations(t)
}

func TestAddElectrical_UpdatedRespondsWith200(t *testing.T) {
	mockSubmitter := new(MockElectricalSubmitter)
	mockSubmitter.On("Submit", mock.Anything, "2024-03-01", mock.Anything).Return(false, nil)

	handler := AddElectrical(slog.Default(), mockSubmitter)

	rr := postElectrical(handler, `{
		"date": "2024-03-01",
		"sections": {"TOP_APRON": {"type": "NSK-70", "date": "2024-02-01"}}
	}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Data updated successfully!")
}

func TestAddElectrical_ValidationErrorRespondsWith400(t *testing.T) {
	mockSubmitter := new(MockElectricalSubmitter)
	mockSubmitter.On("Submit", mock.Anything, "", mock.Anything).
		Return(false, fmt.Errorf("service.electrical.Submit: %w", electrical.ErrMissingDate))

	handler := AddElectrical(slog.Default(), mockSubmitter)

	rr := postElectrical(handler, `{"sections": {"TOP_APRON": {"type": "SKF-61", "date": "2024-01-01"}}}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid data format received.")
}

func TestAddElectrical_StoreErrorRespondsWith500(t *testing.T) {
	mockSubmitter := new(MockElectricalSubmitter)
	mockSubmitter.On("Submit", mock.Anything, "2024-03-01", mock.Anything).
		Return(false, fmt.Errorf("storage.mysql.SaveElectrical: connection refused"))

	handler := AddElectrical(slog.Default(), mockSubmitter)

	rr := postElectrical(handler, `{
		"date": "2024-03-01",
		"sections": {"TOP_APRON": {"type": "SKF-61", "date": "2024-01-01"}}
	}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to save data.")
}
