package cmd

import (
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/session"
	"github.com/hance08/atm/internal/ui/prompts"
	"github.com/hance08/atm/internal/ui/views"
)

type sessionRunner struct {
	svc *service.Service
}

func (r *sessionRunner) Run() error {
	view := views.NewSessionView(r.svc.Config.Currency.Symbol)
	return session.New(r.svc, prompts.NewSessionPrompter(), view).Run()
}
