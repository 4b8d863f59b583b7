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

func (suite *TestSuiteStandard) TestCategoryCreate() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", fmt.Sprintf(`{"ownerId": "%s", "name": "Food"}`, user.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Food", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoryCreateDuplicate() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", fmt.Sprintf(`{"ownerId": "%s", "name": "Food"}`, user.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryListRequiresOwner() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryDeleteDetachesTransactions() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})
	category := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})
	transaction := suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Amount: decimal.NewFromInt(10), CategoryID: &category.ID})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The transaction survives as uncategorized
	var got models.Transaction
	suite.Require().NoError(models.DB.First(&got, transaction.ID).Error)
	suite.Assert().Nil(got.CategoryID)
}

func (suite *TestSuiteStandard) TestCategoryDeleteRemovesBudgets() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})
	category := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})
	suite.createTestBudget(models.Budget{OwnerID: user.ID, CategoryID: category.ID, Month: types.NewMonth(2020, 5), LimitAmount: decimal.NewFromInt(50)})

	// Uncategorized spending in the budget month. Without the budget
	// following the category into deletion, it would be charged against
	// the orphaned budget.
	suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Amount: decimal.NewFromInt(300), Date: date(2020, 5, 10)})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/analytics/budget-alerts?owner=%s&month=2020-05-01", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetAlertsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}
