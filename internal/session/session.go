// Package session runs one interactive ATM session: a single login
// followed by the balance/withdraw/deposit menu until the user exits.
package session

import (
	"errors"

	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/store"
	"github.com/hance08/atm/internal/utils"
)

type Prompter interface {
	Credentials() (id, pin string, err error)
	MenuChoice() (string, error)
	Amount(action string) (string, error)
}

type Renderer interface {
	Welcome()
	LoginFailed(err error)
	Balance(balance int64)
	Withdrawal(receipt *service.WithdrawReceipt)
	Deposit(receipt *service.DepositReceipt)
	Failure(err error)
	InvalidChoice(choice string)
	Goodbye()
}

type Session struct {
	svc    *service.Service
	prompt Prompter
	view   Renderer
}

func New(svc *service.Service, prompt Prompter, view Renderer) *Session {
	return &Session{svc: svc, prompt: prompt, view: view}
}

// Run authenticates once and then serves the menu. A failed login ends the
// session without an error; prompt errors (including interrupts) are returned.
func (s *Session) Run() error {
	s.view.Welcome()

	id, pin, err := s.prompt.Credentials()
	if err != nil {
		return err
	}

	acc, err := s.svc.Account.Authenticate(id, pin)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			s.view.LoginFailed(err)
			return nil
		}
		return err
	}

	return s.menu(acc)
}

func (s *Session) menu(acc *store.Account) error {
	for {
		choice, err := s.prompt.MenuChoice()
		if err != nil {
			return err
		}

		switch choice {
		case constants.MenuBalance:
			balance, err := s.svc.Transaction.CheckBalance(acc.ID)
			if err != nil {
				s.view.Failure(err)
				continue
			}
			s.view.Balance(balance)

		case constants.MenuWithdraw:
			amount, ok, err := s.readAmount(constants.ActionWithdraw)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			receipt, err := s.svc.Transaction.Withdraw(acc.ID, amount)
			if err != nil {
				s.view.Failure(err)
				continue
			}
			s.view.Withdrawal(receipt)

		case constants.MenuDeposit:
			amount, ok, err := s.readAmount(constants.ActionDeposit)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			receipt, err := s.svc.Transaction.Deposit(acc.ID, amount)
			if err != nil {
				s.view.Failure(err)
				continue
			}
			s.view.Deposit(receipt)

		case constants.MenuExit:
			s.view.Goodbye()
			return nil

		default:
			s.view.InvalidChoice(choice)
		}
	}
}

// readAmount reports ok=false when the input was not an integer; the
// failure has already been shown and the engine is never consulted.
func (s *Session) readAmount(action string) (int64, bool, error) {
	raw, err := s.prompt.Amount(action)
	if err != nil {
		return 0, false, err
	}

	amount, err := utils.ParseAmount(raw)
	if err != nil {
		s.view.Failure(utils.ErrParse)
		return 0, false, nil
	}
	return amount, true, nil
}
