package models_test

import (
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/DevLoom-Space/Expense-Tracker/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetLimitMustBePositive() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{OwnerID: user.ID})

	err := models.DB.Create(&models.Budget{OwnerID: user.ID, CategoryID: category.ID, Month: types.NewMonth(2026, 2), LimitAmount: decimal.Zero}).Error
	suite.Assert().ErrorIs(err, models.ErrLimitNotPositive)
}

func (suite *TestSuiteStandard) TestBudgetCategoryMustBeOwned() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	otherCategory := suite.createTestCategory(models.Category{OwnerID: other.ID})

	err := models.DB.Create(&models.Budget{OwnerID: user.ID, CategoryID: otherCategory.ID, Month: types.NewMonth(2026, 2), LimitAmount: decimal.NewFromInt(100)}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNotOwned)
}

func (suite *TestSuiteStandard) TestBudgetUniquePerCategoryAndMonth() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{OwnerID: user.ID})

	suite.createTestBudget(models.Budget{OwnerID: user.ID, CategoryID: category.ID, Month: types.NewMonth(2026, 2), LimitAmount: decimal.NewFromInt(100)})

	err := models.DB.Create(&models.Budget{OwnerID: user.ID, CategoryID: category.ID, Month: types.NewMonth(2026, 2), LimitAmount: decimal.NewFromInt(150)}).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetNotUnique)

	// Another month for the same category is fine
	suite.createTestBudget(models.Budget{OwnerID: user.ID, CategoryID: category.ID, Month: types.NewMonth(2026, 3), LimitAmount: decimal.NewFromInt(150)})
}
