package ledger_test

import (
	"testing"
	"time"

	"github.com/DevLoom-Space/Expense-Tracker/internal/ledger"
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/DevLoom-Space/Expense-Tracker/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (suite *TestSuiteStandard) TestTransactionsOwnerScope() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})
	other := suite.createTestUser(models.User{})
	otherWallet := suite.createTestWallet(models.Wallet{OwnerID: other.ID})

	suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Amount: decimal.NewFromInt(10), Date: date(2026, 2, 1)})
	suite.createTestTransaction(models.Transaction{OwnerID: other.ID, WalletID: otherWallet.ID, Amount: decimal.NewFromInt(20), Date: date(2026, 2, 1)})

	transactions, err := ledger.New(models.DB).Transactions(ledger.TransactionFilter{Owner: user.ID})
	suite.Require().NoError(err)
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(user.ID, transactions[0].OwnerID)
}

func (suite *TestSuiteStandard) TestTransactionsFilters() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})
	otherWallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})
	food := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})

	suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Type: models.Expense, Amount: decimal.NewFromInt(10), CategoryID: &food.ID, Date: date(2026, 2, 3), Note: "Chips and soda"})
	suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Type: models.Income, Amount: decimal.NewFromInt(500), Date: date(2026, 2, 5)})
	suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: otherWallet.ID, Type: models.Expense, Amount: decimal.NewFromInt(30), Date: date(2026, 2, 7)})

	store := ledger.New(models.DB)

	tests := []struct {
		name   string
		filter ledger.TransactionFilter
		count  int
	}{
		{"all", ledger.TransactionFilter{Owner: user.ID}, 3},
		{"by wallet", ledger.TransactionFilter{Owner: user.ID, WalletID: wallet.ID}, 2},
		{"by category", ledger.TransactionFilter{Owner: user.ID, CategoryID: food.ID}, 1},
		{"uncategorized", ledger.TransactionFilter{Owner: user.ID, Uncategorized: true}, 2},
		{"by type", ledger.TransactionFilter{Owner: user.ID, Type: models.Income}, 1},
		{"from date is inclusive", ledger.TransactionFilter{Owner: user.ID, From: date(2026, 2, 5)}, 2},
		{"until date is inclusive", ledger.TransactionFilter{Owner: user.ID, Until: date(2026, 2, 5)}, 2},
		{"window", ledger.TransactionFilter{Owner: user.ID, From: date(2026, 2, 4), Until: date(2026, 2, 6)}, 1},
		{"note substring", ledger.TransactionFilter{Owner: user.ID, Note: "soda"}, 1},
		{"no match", ledger.TransactionFilter{Owner: user.ID, Note: "pizza"}, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transactions, err := store.Transactions(tt.filter)
			require.NoError(t, err)
			assert.Len(t, transactions, tt.count)

			count, err := store.CountTransactions(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(tt.count), count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsOrdering() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})

	suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Amount: decimal.NewFromInt(50), Date: date(2026, 2, 3)})
	suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Amount: decimal.NewFromInt(10), Date: date(2026, 2, 9)})
	suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Amount: decimal.NewFromInt(30), Date: date(2026, 2, 6)})

	store := ledger.New(models.DB)

	// The default ordering is newest first
	transactions, err := store.Transactions(ledger.TransactionFilter{Owner: user.ID})
	suite.Require().NoError(err)
	suite.Require().Len(transactions, 3)
	suite.Assert().Equal(date(2026, 2, 9), transactions[0].Date)

	transactions, err = store.Transactions(ledger.TransactionFilter{Owner: user.ID, OrderBy: "amount"})
	suite.Require().NoError(err)
	suite.Assert().True(decimal.NewFromInt(10).Equal(transactions[0].Amount))

	transactions, err = store.Transactions(ledger.TransactionFilter{Owner: user.ID, OrderBy: "-amount"})
	suite.Require().NoError(err)
	suite.Assert().True(decimal.NewFromInt(50).Equal(transactions[0].Amount))

	transactions, err = store.Transactions(ledger.TransactionFilter{Owner: user.ID, OrderBy: "date"})
	suite.Require().NoError(err)
	suite.Assert().Equal(date(2026, 2, 3), transactions[0].Date)
}

func (suite *TestSuiteStandard) TestTransactionsOrderingInvalid() {
	user := suite.createTestUser(models.User{})

	_, err := ledger.New(models.DB).Transactions(ledger.TransactionFilter{Owner: user.ID, OrderBy: "note"})
	suite.Assert().ErrorIs(err, ledger.ErrOrderingInvalid)
}

func (suite *TestSuiteStandard) TestTransactionsDeleted() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})

	kept := suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Amount: decimal.NewFromInt(10), Date: date(2026, 2, 3)})
	deleted := suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Amount: decimal.NewFromInt(20), Date: date(2026, 2, 4)})
	suite.Require().NoError(models.DB.Delete(&deleted).Error)

	store := ledger.New(models.DB)

	// Deleted rows are excluded by default
	transactions, err := store.Transactions(ledger.TransactionFilter{Owner: user.ID})
	suite.Require().NoError(err)
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(kept.ID, transactions[0].ID)

	// And included on explicit opt-in
	transactions, err = store.Transactions(ledger.TransactionFilter{Owner: user.ID, IncludeDeleted: true})
	suite.Require().NoError(err)
	suite.Assert().Len(transactions, 2)
}

func (suite *TestSuiteStandard) TestTransactionsPreload() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID, Name: "M-Pesa"})
	food := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})

	suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Amount: decimal.NewFromInt(10), CategoryID: &food.ID, Date: date(2026, 2, 3)})

	transactions, err := ledger.New(models.DB).Transactions(ledger.TransactionFilter{Owner: user.ID})
	suite.Require().NoError(err)
	suite.Require().Len(transactions, 1)

	suite.Assert().Equal("M-Pesa", transactions[0].Wallet.Name)
	suite.Require().NotNil(transactions[0].Category)
	suite.Assert().Equal("Food", transactions[0].Category.Name)
}

func (suite *TestSuiteStandard) TestTransactionsOffsetLimit() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})

	for i := 1; i <= 5; i++ {
		suite.createTestTransaction(models.Transaction{OwnerID: user.ID, WalletID: wallet.ID, Amount: decimal.NewFromInt(int64(i)), Date: date(2026, 2, i)})
	}

	store := ledger.New(models.DB)

	transactions, err := store.Transactions(ledger.TransactionFilter{Owner: user.ID, OrderBy: "date", Offset: 1, Limit: 2})
	suite.Require().NoError(err)
	suite.Require().Len(transactions, 2)
	suite.Assert().Equal(date(2026, 2, 2), transactions[0].Date)

	// The count ignores offset and limit
	count, err := store.CountTransactions(ledger.TransactionFilter{Owner: user.ID, Offset: 1, Limit: 2})
	suite.Require().NoError(err)
	suite.Assert().Equal(int64(5), count)
}

func (suite *TestSuiteStandard) TestBudgetsExactMonth() {
	user := suite.createTestUser(models.User{})
	food := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})

	february := suite.createTestBudget(models.Budget{OwnerID: user.ID, CategoryID: food.ID, Month: types.NewMonth(2026, 2), LimitAmount: decimal.NewFromInt(200)})
	suite.createTestBudget(models.Budget{OwnerID: user.ID, CategoryID: food.ID, Month: types.NewMonth(2026, 3), LimitAmount: decimal.NewFromInt(250)})

	budgets, err := ledger.New(models.DB).Budgets(user.ID, types.NewMonth(2026, 2))
	suite.Require().NoError(err)
	suite.Require().Len(budgets, 1)
	suite.Assert().Equal(february.ID, budgets[0].ID)
	suite.Assert().Equal("Food", budgets[0].Category.Name)
}

func (suite *TestSuiteStandard) TestBudgetsForOwner() {
	user := suite.createTestUser(models.User{})
	food := suite.createTestCategory(models.Category{OwnerID: user.ID, Name: "Food"})

	suite.createTestBudget(models.Budget{OwnerID: user.ID, CategoryID: food.ID, Month: types.NewMonth(2026, 1), LimitAmount: decimal.NewFromInt(150)})
	suite.createTestBudget(models.Budget{OwnerID: user.ID, CategoryID: food.ID, Month: types.NewMonth(2026, 2), LimitAmount: decimal.NewFromInt(200)})

	budgets, err := ledger.New(models.DB).BudgetsForOwner(user.ID)
	suite.Require().NoError(err)
	suite.Require().Len(budgets, 2)

	// Newest month first
	suite.Assert().True(budgets[0].Month.Equal(types.NewMonth(2026, 2)))
}

func (suite *TestSuiteStandard) TestWalletResolver() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{OwnerID: user.ID})

	store := ledger.New(models.DB)

	resolved, err := store.Wallet(user.ID, wallet.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal(wallet.ID, resolved.ID)

	// Another user cannot resolve the wallet
	_, err = store.Wallet(other.ID, wallet.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategoryResolver() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{OwnerID: user.ID})

	store := ledger.New(models.DB)

	resolved, err := store.Category(user.ID, category.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal(category.ID, resolved.ID)

	_, err = store.Category(other.ID, category.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
