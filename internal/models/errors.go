package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Budget errors
var ErrBudgetWeekNotUnique = errors.New("there is already a budget for this week")

// Settlement errors
var (
	ErrWeekAlreadySettled  = errors.New("this week has already been settled")
	ErrWeekNotElapsed      = errors.New("a week can only be settled after it has ended")
	ErrSettlementNotUnique = errors.New("there is already a settlement entry for this week")
)

// Wish errors
var (
	ErrWishAmountNotPositive   = errors.New("wish amounts must be larger than zero")
	ErrWishAlreadyFulfilled    = errors.New("this wish has already been fulfilled")
	ErrWishNotFulfilled        = errors.New("this wish has not been fulfilled")
	ErrPoolBalanceInsufficient = errors.New("the wish pool balance is not sufficient to fulfill this wish")
	ErrDeductionEntryNotFound  = errors.New("no pool entry exists for the fulfillment of this wish")
)

// Special budget errors
var ErrSpecialBudgetNameNotUnique = errors.New("there is already a special budget with this name")
