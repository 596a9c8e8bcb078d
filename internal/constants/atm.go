package constants

// Menu choices, as typed or selected in the session menu.
const (
	MenuBalance  = "1"
	MenuWithdraw = "2"
	MenuDeposit  = "3"
	MenuExit     = "4"
)

const (
	ActionWithdraw = "withdraw"
	ActionDeposit  = "deposit"
)

const (
	AppName        = "atm"
	WelcomeMessage = "Welcome to ATM Service"
	GoodbyeMessage = "Thank you for using ATM Service"
)
