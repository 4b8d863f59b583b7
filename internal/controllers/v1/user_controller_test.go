package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/DevLoom-Space/Expense-Tracker/internal/controllers/v1"
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/DevLoom-Space/Expense-Tracker/test"
)

func (suite *TestSuiteStandard) TestUserCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/users", `{"name": "erick"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("erick", response.Data.Name)
	suite.Assert().Contains(response.Data.Links.Self, "/v1/users/")
}

func (suite *TestSuiteStandard) TestUserCreateDuplicateName() {
	_ = suite.createTestUser(models.User{Name: "erick"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/users", `{"name": "erick"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUserCreateEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/users", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUserGet() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/users/%s", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(user.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestUserGetInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/users/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUserGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/users/4e743e94-6a4b-44d6-aba5-d77c87103ff7", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUserUpdate() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/users/%s", user.ID), `{"name": "wanjiku"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("wanjiku", response.Data.Name)
}

func (suite *TestSuiteStandard) TestUserDelete() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/users/%s", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/users/%s", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUserList() {
	_ = suite.createTestUser(models.User{Name: "erick"})
	_ = suite.createTestUser(models.User{Name: "wanjiku"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/users", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Len(response.Data, 2)
	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
}
