//go:build unit

package api_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"studio-booking/internal/domain/admin"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/handler/api"
	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/jwt"
	"studio-booking/internal/usecase"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/readmodel"
	"studio-booking/internal/usecase/shared"
	"studio-booking/tests/common/builder"
	"studio-booking/tests/common/httptest"
	commandsmock "studio-booking/tests/mock/commands"
	queriesmock "studio-booking/tests/mock/queries"
	sharedmock "studio-booking/tests/mock/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockScheduleCommands
	mockQueries  *queriesmock.MockScheduleQueries
	mockProofs   *sharedmock.MockProofStore
	adminToken   string
}

func (s *ScheduleHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.mockProofs = sharedmock.NewMockProofStore(s.mockCtrl)

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration)
	var err error
	s.adminToken, err = jwtService.GenerateAccessToken(uuid.New(), admin.RoleAdmin)
	s.Require().NoError(err)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))

	h := api.NewScheduleHandler(s.mockCommands, s.mockQueries)
	s.router.POST("/schedules/unavailable", auth.RequireAuth(), auth.RequireRoleAtLeast(admin.RoleAdmin), h.Replace)
	s.router.GET("/schedules/unavailable/:date", h.ByDate)
	s.router.GET("/schedules/unavailable/month/:year/:month", h.ByMonth)
	s.router.GET("/files/view/:ref", api.NewFileHandler(s.mockProofs).View)
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

func (s *ScheduleHandlerTestSuite) TestReplace() {
	url := "/schedules/unavailable"

	s.Run("success: returns the stored set", func() {
		saved := []schedule.UnavailableRange{
			builder.NewRangeBuilder().WithSlot("08:00", "09:00").MustDomain(),
			builder.NewRangeBuilder().WithSlot("17:00", "18:00").MustDomain(),
		}
		s.mockCommands.EXPECT().ReplaceUnavailableRanges(gomock.Any(), gomock.Any(), "2024-06-01", []commands.RangeInput{
			{StartTime: "08:00", EndTime: "09:00"},
			{StartTime: "17:00", EndTime: "18:00"},
		}).Return(saved, nil)

		body := map[string]any{
			"date": "2024-06-01",
			"ranges": []map[string]any{
				{"start_time": "08:00", "end_time": "09:00"},
				{"start_time": "17:00", "end_time": "18:00"},
			},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.adminToken)

		var response []resdto.UnavailableRangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: empty list clears the date", func() {
		s.mockCommands.EXPECT().ReplaceUnavailableRanges(gomock.Any(), gomock.Any(), "2024-06-01", []commands.RangeInput{}).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"date": "2024-06-01", "ranges": []any{}}, s.adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: malformed range", func() {
		body := map[string]any{"date": "2024-06-01", "ranges": []map[string]any{{"start_time": "8am", "end_time": "09:00"}}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: inverted range", func() {
		s.mockCommands.EXPECT().ReplaceUnavailableRanges(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, shared.Validation(schedule.ErrInvalidTimeSlot))

		body := map[string]any{"date": "2024-06-01", "ranges": []map[string]any{{"start_time": "10:00", "end_time": "09:00"}}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "start time must be before end time")
	})

	s.Run("error: requires a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"date": "2024-06-01"}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *ScheduleHandlerTestSuite) TestReads() {
	rows := []*readmodel.UnavailableRangeRM{{ID: 1, Date: "2024-06-01", StartTime: "13:00", EndTime: "14:00", Status: "unavailable"}}

	s.Run("by date", func() {
		s.mockQueries.EXPECT().GetUnavailableRanges(gomock.Any(), "2024-06-01").Return(rows, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedules/unavailable/2024-06-01", nil, "")

		var response []resdto.UnavailableRangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("13:00", response[0].StartTime)
	})

	s.Run("by month", func() {
		s.mockQueries.EXPECT().GetUnavailableRangesForMonth(gomock.Any(), 2024, 6).Return(rows, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedules/unavailable/month/2024/6", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("bad date", func() {
		s.mockQueries.EXPECT().GetUnavailableRanges(gomock.Any(), "june").Return(nil, shared.Validation(schedule.ErrInvalidDate))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedules/unavailable/june", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid date")
	})
}

func (s *ScheduleHandlerTestSuite) TestFileView() {
	s.Run("streams the proof", func() {
		s.mockProofs.EXPECT().Open(gomock.Any(), "abc.png").
			Return(io.NopCloser(strings.NewReader("png-bytes")), "image/png", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/files/view/abc.png", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("png-bytes", rec.Body.String())
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":           "image/png",
			"X-Content-Type-Options": "nosniff",
		})
	})

	s.Run("unknown proof", func() {
		s.mockProofs.EXPECT().Open(gomock.Any(), "missing.png").
			Return(nil, "", errs.Sentinel("stored object not found", errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/files/view/missing.png", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}
