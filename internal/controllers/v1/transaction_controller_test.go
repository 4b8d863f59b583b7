package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/DevLoom-Space/Expense-Tracker/internal/controllers/v1"
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/DevLoom-Space/Expense-Tracker/test"
	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", fmt.Sprintf(`{"ownerId": "%s", "walletId": "%s", "type": "INCOME", "amount": 500, "date": "2026-02-10T00:00:00Z"}`, user.ID, wallet.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.Income, response.Data.Type)
	suite.Assert().True(decimal.NewFromInt(500).Equal(response.Data.Amount))
}

func (suite *TestSuiteStandard) TestTransactionCreateForeignWallet() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	otherWallet := suite.createTestWallet(models.Wallet{OwnerID: other.ID})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", fmt.Sprintf(`{"ownerId": "%s", "walletId": "%s", "amount": 10}`, user.ID, otherWallet.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionCreateNegativeAmount() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", fmt.Sprintf(`{"ownerId": "%s", "walletId": "%s", "amount": -10}`, user.ID, wallet.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionListRequiresOwner() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionListFilters() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})
	food := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})

	suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Type: models.Expense, Amount: decimal.NewFromInt(10), CategoryID: &food.ID, Date: date(2026, 2, 3)})
	suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Type: models.Income, Amount: decimal.NewFromInt(500), Date: date(2026, 2, 5)})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"all", "", 2},
		{"by type", "&type=INCOME", 1},
		{"by category", fmt.Sprintf("&category=%s", food.ID), 1},
		{"uncategorized", "&uncategorized=true", 1},
		{"window", "&fromDate=2026-02-04&untilDate=2026-02-06", 1},
		{"no match", "&fromDate=2026-03-01", 0},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions?owner=%s%s", user.ID, tt.query), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.TransactionListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Len(response.Data, tt.count, "wrong count for case %q", tt.name)
	}
}

func (suite *TestSuiteStandard) TestTransactionListDeleted() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})

	deleted := suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Amount: decimal.NewFromInt(10), Date: date(2026, 2, 3)})
	suite.Require().NoError(models.DB.Delete(&deleted).Error)

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions?owner=%s", user.ID), "")
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions?owner=%s&deleted=true", user.ID), "")
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestTransactionListInvalidOrdering() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions?owner=%s&order=note", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionDeleteIsSoft() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})
	transaction := suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Amount: decimal.NewFromInt(10), Date: date(2026, 2, 3)})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Gone from the API
	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	// Still in the database
	var got models.Transaction
	suite.Require().NoError(models.DB.Unscoped().First(&got, transaction.ID).Error)
	suite.Assert().True(got.DeletedAt.Valid)
}

func (suite *TestSuiteStandard) TestTransactionExport() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID, Name: "M-Pesa"})
	food := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})

	suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Type: models.Expense, Amount: decimal.RequireFromString("12.50"), CategoryID: &food.ID, Date: date(2026, 2, 3), Note: "Lunch"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/export?owner=%s", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Contains(recorder.Header().Get("Content-Type"), "text/csv")
	suite.Assert().Contains(recorder.Body.String(), "Date,Wallet,Type,Amount,Category,Note")
	suite.Assert().Contains(recorder.Body.String(), "2026-02-03,M-Pesa,EXPENSE,12.50,Food,Lunch")
}

func (suite *TestSuiteStandard) TestTransactionExportRequiresOwner() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
