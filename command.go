package tracker

import "errors"

// Outcome is the result of resolving a confirmation-required command.
type Outcome string

const (
	Applied   Outcome = "applied"
	Cancelled Outcome = "cancelled"
)

// ErrCommandResolved is returned when a command is confirmed or cancelled twice.
var ErrCommandResolved = errors.New("command already resolved")

// Command is a destructive mutation held back until the caller confirms it.
// The ledger hands these out for deletes and resets instead of acting
// immediately; the caller decides the confirmation modality (prompt, flag,
// nothing at all) and resolves the command exactly once.
type Command struct {
	description string
	apply       func() error
	resolved    bool
}

func newCommand(description string, apply func() error) *Command {
	return &Command{description: description, apply: apply}
}

// Description says what confirming the command will do, in user terms.
func (c *Command) Description() string { return c.description }

// Confirm applies the mutation. The ledger is only touched here.
func (c *Command) Confirm() (Outcome, error) {
	if c.resolved {
		return Cancelled, ErrCommandResolved
	}
	c.resolved = true
	if err := c.apply(); err != nil {
		return Cancelled, err
	}
	return Applied, nil
}

// Cancel drops the command without touching the ledger.
func (c *Command) Cancel() (Outcome, error) {
	if c.resolved {
		return Cancelled, ErrCommandResolved
	}
	c.resolved = true
	return Cancelled, nil
}
