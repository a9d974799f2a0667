package get

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"

	"mill-backend/internal/storage"
)

type MockElectricalProvider struct {
	mock.Mock
}

func (m *MockElectricalProvider) All(ctx context.Context) ([]storage.ElectricalRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ElectricalRecord), args.Error(1)
}

func (m *MockElectricalProvider) CumulativeAsOf(ctx context.Context, through string) (map[string]storage.SectionTotals, bool, error) {
	args := m.Called(ctx, through)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(map[string]storage.SectionTotals), args.Bool(1), args.Error(2)
}

func serveWithDateParam(handler http.HandlerFunc, path string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Get("/cumulative/{date}", handler)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCumulativeAsOf_EmptyObjectWhenNothingMatched(t *testing.T) {
	mockProvider := new(MockElectricalProvider)
	mockProvider.On("CumulativeAsOf", mock.Anything, "2020-01-01").
		Return(map[string]storage.SectionTotals{
			"TOP_APRON": {}, "MIDDLE_APRON": {}, "BOTTOM_APRON": {},
		}, false, nil)

	rr := serveWithDateParam(CumulativeAsOf(slog.Default(), mockProvider), "/cumulative/2020-01-01")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())
}

func TestCumulativeAsOf_RendersTotals(t *testing.T) {
	mockProvider := new(MockElectricalProvider)
	mockProvider.On("CumulativeAsOf", mock.Anything, "2024-01-10").
		Return(map[string]storage.SectionTotals{
			"TOP_APRON":    {MachineType: "NSK-70", LifeInDays: 12, LifeInMonths: 0.39, NextSchedule: "2026-01-10"},
			"MIDDLE_APRON": {},
			"BOTTOM_APRON": {},
		}, true, nil)

	rr := serveWithDateParam(CumulativeAsOf(slog.Default(), mockProvider), "/cumulative/2024-01-10")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]storage.SectionTotals
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	require.NoError(t, err)

	assert.Len(t, resp, 3)
	assert.Equal(t, 12, resp["TOP_APRON"].LifeInDays)
	assert.Equal(t, "NSK-70", resp["TOP_APRON"].MachineType)
	assert.Equal(t, storage.SectionTotals{}, resp["MIDDLE_APRON"])
}

func TestCumulativeElectrical_ZeroFilledWhenNothingMatched(t *testing.T) {
	mockProvider := new(MockElectricalProvider)
	mockProvider.On("CumulativeAsOf", mock.Anything, "2020-01-01").
		Return(map[string]storage.SectionTotals{
			"TOP_APRON": {}, "MIDDLE_APRON": {}, "BOTTOM_APRON": {},
		}, false, nil)

	router := chi.NewRouter()
	router.Get("/cumulative/electrical/{date}", CumulativeElectrical(slog.Default(), mockProvider))

	req := httptest.NewRequest(http.MethodGet, "/cumulative/electrical/2020-01-01", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// Unlike /cumulative/{date}, this endpoint always renders the template.
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]storage.SectionTotals
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 3)
}

func TestAllElectrical_NotFoundWhenEmpty(t *testing.T) {
	mockProvider := new(MockElectricalProvider)
	mockProvider.On("All", mock.Anything).Return([]storage.ElectricalRecord{}, nil)

	handler := AllElectrical(slog.Default(), mockProvider)
	req := httptest.NewRequest(http.MethodGet, "/electrical-all", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "No electrical records found.")
}

func TestAllElectrical_ReturnsCountAndData(t *testing.T) {
	records := []storage.ElectricalRecord{
		{Date: "2024-01-10", Sections: map[string]storage.SectionStatus{
			"TOP_APRON": {MachineType: "NSK-70", InstallDate: "2024-01-01", LifeInDays: 9},
		}},
		{Date: "2024-01-01", Sections: map[string]storage.SectionStatus{
			"TOP_APRON": {MachineType: "SKF-61", InstallDate: "2023-12-01", LifeInDays: 31},
		}},
	}

	mockProvider := new(MockElectricalProvider)
	mockProvider.On("All", mock.Anything).Return(records, nil)

	handler := AllElectrical(slog.Default(), mockProvider)
	req := httptest.NewRequest(http.MethodGet, "/electrical-all", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ListResponse
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "2024-01-10", resp.Data[0].Date)
}
