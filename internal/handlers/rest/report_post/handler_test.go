package report_post_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
	"reporting/internal/entities"
	"reporting/internal/handlers/rest/report_post"
	reportservice "reporting/internal/service/report"
)

func TestReportPostHandler(t *testing.T) {
	t.Parallel()

	highValueResult := &entities.ReportResult{
		Info: entities.ReportInfo{
			ID:   4,
			Slug: "high-value-customers",
			Columns: []entities.ReportColumn{
				{Name: "customer_id", Type: entities.ColumnInt},
				{Name: "customer_name", Type: entities.ColumnString},
				{Name: "total_spent", Type: entities.ColumnFloat},
			},
		},
		Rows: [][]any{{int64(20), "Riya Kapoor", 150000.0}},
	}

	tests := []struct {
		name           string
		pathID         string
		body           string
		setupService   func(m *MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Успешный запуск возвращает строки отчёта",
			pathID: "4",
			body:   `{"customer_name": "Riya Kapoor"}`,
			setupService: func(m *MockService) {
				m.EXPECT().
					RunReport(gomock.Any(), 4, entities.ReportParams{CustomerName: pointer.To("Riya Kapoor")}).
					Return(highValueResult, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"id": 4,
				"slug": "high-value-customers",
				"columns": [
					{"name": "customer_id", "type": "int"},
					{"name": "customer_name", "type": "string"},
					{"name": "total_spent", "type": "float"}
				],
				"rows": [[20, "Riya Kapoor", 150000]]
			}`,
		},
		{
			name:   "Пустой результат сериализуется с пустым rows",
			pathID: "5",
			setupService: func(m *MockService) {
				m.EXPECT().
					RunReport(gomock.Any(), 5, entities.ReportParams{}).
					Return(&entities.ReportResult{
						Info: entities.ReportInfo{
							ID:   5,
							Slug: "orders-without-delivery",
							Columns: []entities.ReportColumn{
								{Name: "restaurant_id", Type: entities.ColumnInt},
							},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"id": 5,
				"slug": "orders-without-delivery",
				"columns": [{"name": "restaurant_id", "type": "int"}],
				"rows": []
			}`,
		},
		{
			name:           "Нечисловой идентификатор отчёта",
			pathID:         "abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Невалидное тело запроса",
			pathID:         "4",
			body:           `{"customer_name":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "as_of не в формате RFC 3339",
			pathID:         "4",
			body:           `{"as_of": "вчера"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Неизвестный отчёт",
			pathID: "99",
			setupService: func(m *MockService) {
				m.EXPECT().
					RunReport(gomock.Any(), 99, entities.ReportParams{}).
					Return(nil, reportservice.ErrReportNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Неположительный идентификатор отчёта",
			pathID: "0",
			setupService: func(m *MockService) {
				m.EXPECT().
					RunReport(gomock.Any(), 0, entities.ReportParams{}).
					Return(nil, reportservice.ErrInvalidReportID)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Невалидные параметры отчёта",
			pathID: "1",
			body:   `{"customer_name": "   "}`,
			setupService: func(m *MockService) {
				m.EXPECT().
					RunReport(gomock.Any(), 1, gomock.Any()).
					Return(nil, reportservice.ErrInvalidParams)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Внутренняя ошибка сервиса",
			pathID: "4",
			setupService: func(m *MockService) {
				m.EXPECT().
					RunReport(gomock.Any(), 4, entities.ReportParams{}).
					Return(nil, errors.New("load snapshot: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockLog := NewMockhandlerLogger(ctrl)
			mockService := NewMockService(ctrl)

			mockLog.EXPECT().
				With(gomock.Any()).
				Return(mockLog).
				AnyTimes()
			mockLog.EXPECT().
				Error(gomock.Any(), gomock.Any()).
				AnyTimes()

			if tt.setupService != nil {
				tt.setupService(mockService)
			}

			handler := report_post.New(mockLog, mockService)

			req := httptest.NewRequest(http.MethodPost, "/reports/"+tt.pathID, strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"id": tt.pathID})
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "unexpected status code")

			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String(), "unexpected response body")
			}
		})
	}
}
