package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/DevLoom-Space/Expense-Tracker/internal/controllers/v1"
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/DevLoom-Space/Expense-Tracker/internal/types"
	"github.com/DevLoom-Space/Expense-Tracker/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetCreate() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", fmt.Sprintf(`{"ownerId": "%s", "categoryId": "%s", "month": "2026-02-01", "limitAmount": 200}`, user.ID, category.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Month.Equal(types.NewMonth(2026, 2)))
}

func (suite *TestSuiteStandard) TestBudgetCreateNonPositiveLimit() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", fmt.Sprintf(`{"ownerId": "%s", "categoryId": "%s", "month": "2026-02-01", "limitAmount": 0}`, user.ID, category.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetCreateDuplicateMonth() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})
	suite.createTestBudget(models.Budget{OwnerID: user.ID, CategoryID: category.ID, Month: types.NewMonth(2026, 2), LimitAmount: decimal.NewFromInt(200)})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", fmt.Sprintf(`{"ownerId": "%s", "categoryId": "%s", "month": "2026-02-01", "limitAmount": 300}`, user.ID, category.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetListFilterMonth() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})
	suite.createTestBudget(models.Budget{OwnerID: user.ID, CategoryID: category.ID, Month: types.NewMonth(2026, 2), LimitAmount: decimal.NewFromInt(200)})
	suite.createTestBudget(models.Budget{OwnerID: user.ID, CategoryID: category.ID, Month: types.NewMonth(2026, 3), LimitAmount: decimal.NewFromInt(250)})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budgets?owner=%s&month=2026-02-01", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().True(response.Data[0].Month.Equal(types.NewMonth(2026, 2)))
}

func (suite *TestSuiteStandard) TestBudgetListInvalidMonth() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budgets?owner=%s&month=february", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetUpdateLimit() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})
	budget := suite.createTestBudget(models.Budget{OwnerID: user.ID, CategoryID: category.ID, Month: types.NewMonth(2026, 2), LimitAmount: decimal.NewFromInt(200)})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/budgets/%s", budget.ID), `{"limitAmount": 250}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var got models.Budget
	suite.Require().NoError(models.DB.First(&got, budget.ID).Error)
	suite.Assert().True(decimal.NewFromInt(250).Equal(got.LimitAmount))
}
