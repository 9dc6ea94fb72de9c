// Package account provides the runners behind register, login, logout and
// whoami.
package account

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/deck/pkg/printers"
	"tableflip.dev/deck/pkg/session"
	"tableflip.dev/deck/pkg/store"
)

func service(b store.Blobs) (*session.Service, error) {
	if b == nil {
		return nil, errors.New("no blob store")
	}
	return session.NewService(b), nil
}

func writer(out io.Writer) io.Writer {
	if out != nil {
		return out
	}
	return os.Stdout
}

// Register creates a user and signs them in.
type Register struct {
	Blobs   store.Blobs
	Request session.RegisterRequest
	JSON    bool
	Out     io.Writer
}

func (n *Register) Do(ctx context.Context) error {
	svc, err := service(n.Blobs)
	if err != nil {
		return err
	}
	s, err := svc.Register(n.Request)
	if err != nil {
		return err
	}
	return show(s, n.JSON, n.Out, "registered")
}

// Login signs a stored user in.
type Login struct {
	Blobs    store.Blobs
	Username string
	Password string
	JSON     bool
	Out      io.Writer
}

func (n *Login) Do(ctx context.Context) error {
	svc, err := service(n.Blobs)
	if err != nil {
		return err
	}
	s, err := svc.Login(n.Username, n.Password)
	if err != nil {
		return err
	}
	return show(s, n.JSON, n.Out, "signed in")
}

// Logout ends the current session.
type Logout struct {
	Blobs store.Blobs
	Out   io.Writer
}

func (n *Logout) Do(ctx context.Context) error {
	svc, err := service(n.Blobs)
	if err != nil {
		return err
	}
	if err := svc.Logout(); err != nil {
		return err
	}
	_, err = fmt.Fprintln(writer(n.Out), "signed out")
	return err
}

// WhoAmI prints the signed-in user and, with Events, the security log.
type WhoAmI struct {
	Blobs  store.Blobs
	Events bool
	JSON   bool
	Out    io.Writer
}

func (n *WhoAmI) Do(ctx context.Context) error {
	svc, err := service(n.Blobs)
	if err != nil {
		return err
	}
	s, err := svc.Current()
	if err != nil {
		return err
	}
	if !n.Events {
		return show(s, n.JSON, n.Out, "signed in")
	}

	events := svc.Events()
	pp := printers.PrettyPrint{JSON: n.JSON, Out: n.Out}
	if pp.JSON {
		return pp.Value(map[string]any{"session": s, "events": events})
	}
	if err := show(s, false, n.Out, "signed in"); err != nil {
		return err
	}
	pp.NewLine()
	pp.TitleWithCount("Security events", len(events))
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{e.At.Format("2006-01-02 15:04:05"), e.Type, e.Username})
	}
	pp.Table([]string{"At", "Event", "User"}, rows...)
	return nil
}

func show(s session.Session, asJSON bool, out io.Writer, verb string) error {
	pp := printers.PrettyPrint{JSON: asJSON, Out: out}
	if pp.JSON {
		return pp.Value(s)
	}
	name := s.Username
	if s.Name != "" {
		name = fmt.Sprintf("%s (%s)", s.Name, s.Username)
	}
	_, err := fmt.Fprintf(writer(out), "%s as %s\n", verb, name)
	return err
}
