// Package xwm holds the X11 plumbing: the root window, the event pump,
// and the Model contract the host implements.
package xwm

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jezek/xgb"
)

var errQuit = errors.New("quit")

// Msg contain data from the result of an IO operation. Msgs trigger the
// update function and, henceforth, a render.
type Msg any

// Cmd is a side effect requested by an update.
type Cmd func(ctx context.Context, conn *xgb.Conn) error

// Quit stops the event loop.
func Quit(ctx context.Context, conn *xgb.Conn) error {
	return errQuit
}

// Error converts an update failure into a Cmd.
func Error(err error) Cmd {
	return func(ctx context.Context, conn *xgb.Conn) error {
		return err
	}
}

type Model interface {
	// Init is the first function that will be called.
	Init(ctx context.Context, conn *xgb.Conn) (Model, Cmd)

	// Update is called when a message is received. Use it to inspect
	// messages and, in response, update the model.
	Update(ctx context.Context, conn *xgb.Conn, msg Msg) (Model, Cmd)

	// Render applies the model to the X server.
	Render(ctx context.Context, conn *xgb.Conn) error
}

// ConnClosedMsg is sent when the X connection goes away.
type ConnClosedMsg struct{}

// ReceiveEvents pumps X events into eventC until the connection dies or
// ctx is done. The channel is shared with other producers, so it is
// never closed here.
func ReceiveEvents(ctx context.Context, conn *xgb.Conn, eventC chan<- any) {
	for {
		ev, err := conn.WaitForEvent()
		if ev == nil && err == nil {
			slog.Debug("X connection closed")
			select {
			case <-ctx.Done():
			case eventC <- ConnClosedMsg{}:
			}
			return
		}

		var msg any
		if err != nil {
			msg = err
		} else {
			msg = ev
		}

		select {
		case <-ctx.Done():
			return
		case eventC <- msg:
		}
	}
}

// HandleEvents runs the model loop: Init, then Update+Render per message.
func HandleEvents(ctx context.Context, conn *xgb.Conn, model Model, eventC <-chan any) error {
	model, cmd := model.Init(ctx, conn)
	if err := run(ctx, conn, model, cmd); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-eventC:
			if _, ok := msg.(ConnClosedMsg); ok {
				return nil
			}

			var cmd Cmd
			model, cmd = model.Update(ctx, conn, msg)
			if err := run(ctx, conn, model, cmd); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

func run(ctx context.Context, conn *xgb.Conn, model Model, cmd Cmd) error {
	if cmd != nil {
		if err := cmd(ctx, conn); err != nil {
			return err
		}
	}
	if err := model.Render(ctx, conn); err != nil {
		slog.Error("Failed to render", "error", err)
	}
	return nil
}
