package feedetails

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
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

func (s *HandlerSuite) create(body string) types.FeeDetails {
	rec := s.do(http.MethodPost, "/fee_details", body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var f types.FeeDetails
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &f))
	return f
}

func (s *HandlerSuite) TestCreate_ZeroValues() {
	f := s.create(`{"university_name":"Columbia University","number_of_credits":0,"fee_paid":false}`)
	s.Equal(0, f.NumberOfCredits)
	s.False(f.FeePaid)
}

func (s *HandlerSuite) TestCreate_MissingFeePaid() {
	rec := s.do(http.MethodPost, "/fee_details", `{"university_name":"Columbia University","number_of_credits":30}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "fee_paid")
}

func (s *HandlerSuite) TestCreate_WrongType() {
	rec := s.do(http.MethodPost, "/fee_details", `{"university_name":"NYU","number_of_credits":"thirty","fee_paid":true}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestList_FeePaidFilter() {
	paid := s.create(`{"university_name":"Columbia University","number_of_credits":30,"fee_paid":true}`)
	s.create(`{"university_name":"NYU","number_of_credits":12,"fee_paid":false}`)

	rec := s.do(http.MethodGet, "/fee_details?fee_paid=true", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got []types.FeeDetails
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 1)
	s.Equal(paid.ID, got[0].ID)

	rec = s.do(http.MethodGet, "/fee_details?fee_paid=maybe", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestUpdate() {
	f := s.create(`{"university_name":"NYU","number_of_credits":12,"fee_paid":false}`)

	rec := s.do(http.MethodPatch, "/fee_details/"+f.ID.String(), `{"fee_paid":true}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var got types.FeeDetails
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.True(got.FeePaid)
	s.Equal(12, got.NumberOfCredits)
	s.Equal("NYU", got.UniversityName)

	rec = s.do(http.MethodGet, "/fee_details/"+f.ID.String(), "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.True(got.FeePaid)
}
