package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrUserNameNotUnique     = errors.New("the user name is already in use")
	ErrWalletNameNotUnique   = errors.New("the wallet name is already in use for this owner")
	ErrCategoryNameNotUnique = errors.New("the category name is already in use for this owner")
	ErrBudgetNotUnique       = errors.New("there is already a budget for this category and month")

	ErrAmountNotPositive = errors.New("the amount must be positive")
	ErrLimitNotPositive  = errors.New("the limit amount must be positive")
	ErrTypeInvalid       = errors.New("the transaction type must be INCOME or EXPENSE")
	ErrWalletNotOwned    = errors.New("the wallet does not belong to the transaction owner")
	ErrCategoryNotOwned  = errors.New("the category does not belong to the resource owner")
)
