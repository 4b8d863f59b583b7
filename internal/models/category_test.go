package models_test

import (
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/DevLoom-Space/Expense-Tracker/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCategoryNameUniquePerOwner() {
	user := suite.createTestUser(models.User{})
	suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})

	err := models.DB.Create(&models.Category{OwnerID: user.ID, Name: "Food"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	other := suite.createTestUser(models.User{})
	suite.createTestCategory(models.Category{OwnerID: other.ID, Name: "Food"})
}

func (suite *TestSuiteStandard) TestCategoryDetach() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})
	category := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})

	transaction := suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Amount: decimal.NewFromInt(10), CategoryID: &category.ID})

	suite.Require().NoError(category.Detach(models.DB))

	// The transaction survives without its category
	var got models.Transaction
	suite.Require().NoError(models.DB.First(&got, transaction.ID).Error)
	suite.Assert().Nil(got.CategoryID)
}

func (suite *TestSuiteStandard) TestCategoryDeleteBudgets() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})
	other := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Rent"})

	suite.createTestBudget(models.Budget{OwnerID: user.ID, CategoryID: category.ID, Month: types.NewMonth(2026, 2), LimitAmount: decimal.NewFromInt(50)})
	kept := suite.createTestBudget(models.Budget{OwnerID: user.ID, CategoryID: other.ID, Month: types.NewMonth(2026, 2), LimitAmount: decimal.NewFromInt(100)})

	suite.Require().NoError(category.DeleteBudgets(models.DB))

	// Only the budget of the other category remains
	var budgets []models.Budget
	suite.Require().NoError(models.DB.Where("owner_id = ?", user.ID).Find(&budgets).Error)
	suite.Require().Len(budgets, 1)
	suite.Assert().Equal(kept.ID, budgets[0].ID)
}
