package visastatus

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/aanand-mishra/student-records-api/internal/registry"
	"github.com/aanand-mishra/student-records-api/internal/storage/memory"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

type HandlerSuite struct {
	suite.Suite
	router http.Handler
}

func (s *HandlerSuite) SetupTest() {
	r := chi.NewRouter()
	Register(r, registry.New(memory.New()))
	s.router = r
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestGet_Unknown() {
	rec := s.do(http.MethodGet, "/visa_status/"+uuid.New().String(), "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerSuite) TestLifecycle() {
	rec := s.do(http.MethodPost, "/visa_status", `{"visa_status":"F1"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var v types.VisaStatus
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &v))
	s.Equal("F1", v.VisaStatus)

	rec = s.do(http.MethodPatch, "/visa_status/"+v.ID.String(), `{"visa_status":"OPT"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/visa_status?visa_status=OPT", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var list []types.VisaStatus
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Require().Len(list, 1)
	s.Equal(v.ID, list[0].ID)

	rec = s.do(http.MethodGet, "/visa_status?visa_status=F1", "")
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *HandlerSuite) TestCreate_EmptyStatus() {
	rec := s.do(http.MethodPost, "/visa_status", `{"visa_status":""}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}
