package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/store"
	"github.com/hance08/atm/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errScriptExhausted = errors.New("script exhausted")

type scriptedPrompter struct {
	id, pin string
	inputs  []string
	asked   []string
}

func (p *scriptedPrompter) Credentials() (string, string, error) {
	return p.id, p.pin, nil
}

func (p *scriptedPrompter) next() (string, error) {
	if len(p.inputs) == 0 {
		return "", errScriptExhausted
	}
	in := p.inputs[0]
	p.inputs = p.inputs[1:]
	return in, nil
}

func (p *scriptedPrompter) MenuChoice() (string, error) {
	return p.next()
}

func (p *scriptedPrompter) Amount(action string) (string, error) {
	p.asked = append(p.asked, action)
	return p.next()
}

type recorder struct {
	events   []string
	failures []error
	receipts []*service.WithdrawReceipt
}

func (r *recorder) Welcome()              { r.events = append(r.events, "welcome") }
func (r *recorder) LoginFailed(err error) { r.events = append(r.events, "login failed") }
func (r *recorder) Balance(balance int64) {
	r.events = append(r.events, fmt.Sprintf("balance %d", balance))
}
func (r *recorder) Withdrawal(receipt *service.WithdrawReceipt) {
	r.receipts = append(r.receipts, receipt)
	r.events = append(r.events, fmt.Sprintf("withdrew %d, left %d", receipt.Amount, receipt.Balance))
}
func (r *recorder) Deposit(receipt *service.DepositReceipt) {
	r.events = append(r.events, fmt.Sprintf("deposited %d, now %d", receipt.Amount, receipt.Balance))
}
func (r *recorder) Failure(err error) {
	r.failures = append(r.failures, err)
	r.events = append(r.events, "failure")
}
func (r *recorder) InvalidChoice(choice string) { r.events = append(r.events, "invalid "+choice) }
func (r *recorder) Goodbye()                    { r.events = append(r.events, "goodbye") }

func newService(t *testing.T) *service.Service {
	t.Helper()
	repo := store.NewMemoryStore()
	require.NoError(t, repo.Seed([]store.Account{
		{ID: "1234", PIN: "5678", Balance: 1000},
		{ID: "2345", PIN: "6789", Balance: 2000},
	}))
	svc, err := service.NewService(repo, config.NewDefault(), nil)
	require.NoError(t, err)
	return svc
}

func TestRunFullSession(t *testing.T) {
	svc := newService(t)
	prompt := &scriptedPrompter{
		id: "1234", pin: "5678",
		inputs: []string{"1", "2", "300", "3", "500", "1", "4"},
	}
	view := &recorder{}

	require.NoError(t, New(svc, prompt, view).Run())

	assert.Equal(t, []string{
		"welcome",
		"balance 1000",
		"withdrew 300, left 700",
		"deposited 500, now 1200",
		"balance 1200",
		"goodbye",
	}, view.events)
	assert.Equal(t, []string{"withdraw", "deposit"}, prompt.asked)
	assert.Equal(t, map[int64]int64{200: 1, 100: 1}, view.receipts[0].Breakdown.Map())
}

func TestRunLoginFailed(t *testing.T) {
	svc := newService(t)
	prompt := &scriptedPrompter{id: "1234", pin: "0000", inputs: []string{"1", "4"}}
	view := &recorder{}

	require.NoError(t, New(svc, prompt, view).Run())

	assert.Equal(t, []string{"welcome", "login failed"}, view.events)
	assert.Len(t, prompt.inputs, 2, "menu must not be entered")
}

func TestRunEmptyCredentialsReachAuthentication(t *testing.T) {
	for _, creds := range [][2]string{{"1234", ""}, {"", ""}, {"", "5678"}} {
		svc := newService(t)
		prompt := &scriptedPrompter{id: creds[0], pin: creds[1], inputs: []string{"4"}}
		view := &recorder{}

		require.NoError(t, New(svc, prompt, view).Run())
		assert.Equal(t, []string{"welcome", "login failed"}, view.events, "%q", creds)
	}
}

func TestRunParseErrorSkipsEngine(t *testing.T) {
	svc := newService(t)
	prompt := &scriptedPrompter{
		id: "1234", pin: "5678",
		inputs: []string{"2", "12.5", "3", "abc", "4"},
	}
	view := &recorder{}

	require.NoError(t, New(svc, prompt, view).Run())

	require.Len(t, view.failures, 2)
	for _, err := range view.failures {
		assert.ErrorIs(t, err, utils.ErrParse)
	}
	balance, err := svc.Transaction.CheckBalance("1234")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)
}

func TestRunReportsEngineFailures(t *testing.T) {
	svc := newService(t)
	prompt := &scriptedPrompter{
		id: "1234", pin: "5678",
		inputs: []string{"2", "150", "2", "100000", "3", "-100", "4"},
	}
	view := &recorder{}

	require.NoError(t, New(svc, prompt, view).Run())

	require.Len(t, view.failures, 3)
	assert.ErrorIs(t, view.failures[0], service.ErrInvalidAmount)
	assert.ErrorIs(t, view.failures[1], service.ErrInsufficientBalance)
	assert.ErrorIs(t, view.failures[2], service.ErrInvalidAmount)
}

func TestRunInvalidChoiceLoops(t *testing.T) {
	svc := newService(t)
	prompt := &scriptedPrompter{id: "2345", pin: "6789", inputs: []string{"9", "", "1", "4"}}
	view := &recorder{}

	require.NoError(t, New(svc, prompt, view).Run())

	assert.Equal(t, []string{"welcome", "invalid 9", "invalid ", "balance 2000", "goodbye"}, view.events)
}

func TestRunReturnsPromptErrors(t *testing.T) {
	svc := newService(t)
	prompt := &scriptedPrompter{id: "1234", pin: "5678", inputs: []string{"2"}}
	view := &recorder{}

	err := New(svc, prompt, view).Run()
	assert.ErrorIs(t, err, errScriptExhausted)
}
