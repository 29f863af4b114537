package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dragonslayer/internal/game"
)

// messageLogLimit caps how many narrative lines the client keeps around.
const messageLogLimit = 50

// Client owns the terminal loop: it renders the session each frame, maps
// key events onto classified intents, and feeds them to the session one
// tick at a time.
type Client struct {
	screen   *Screen
	renderer *Renderer
	session  *game.Session
	messages []string
}

// NewClient creates a client for an already-generated session.
func NewClient(session *game.Session) (*Client, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}

	return &Client{
		screen:   screen,
		renderer: NewRenderer(screen),
		session:  session,
	}, nil
}

// Run executes the main loop until the session reports Exit. The loop is
// strictly frame-at-a-time: refresh FOV, render, block on input, tick.
func (c *Client) Run(ctx context.Context) error {
	defer c.screen.Close()

	for {
		c.session.RefreshFOV()
		c.renderer.Render(c.session, c.messages)

		intent, ok := c.nextIntent()
		if !ok {
			continue
		}

		outcome, events := c.session.HandleIntent(ctx, intent)
		for _, ev := range events {
			c.appendMessage(ev.Text)
		}

		if outcome == game.Exit {
			return nil
		}
	}
}

// nextIntent blocks on the next terminal event and translates it into an
// intent. ok is false for events that have no game meaning (resize,
// unbound keys).
func (c *Client) nextIntent() (game.Intent, bool) {
	ev := c.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		c.screen.Sync()
		return game.Intent{}, false

	case *tcell.EventKey:
		return c.keyIntent(ev)
	}

	return game.Intent{}, false
}

// keyIntent maps a key event onto a classified intent. Arrow keys and vi
// keys move, g picks up, a-z with Alt uses an inventory slot, Tab toggles
// the display and Escape quits.
func (c *Client) keyIntent(ev *tcell.EventKey) (game.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.QuitIntent(), true

	case tcell.KeyUp:
		return game.MoveIntent(0, -1), true
	case tcell.KeyDown:
		return game.MoveIntent(0, 1), true
	case tcell.KeyLeft:
		return game.MoveIntent(-1, 0), true
	case tcell.KeyRight:
		return game.MoveIntent(1, 0), true

	case tcell.KeyTab:
		return game.ToggleDisplayIntent(), true

	case tcell.KeyRune:
		r := ev.Rune()

		// Alt+letter selects an inventory slot by letter.
		if ev.Modifiers()&tcell.ModAlt != 0 && r >= 'a' && r <= 'z' {
			return game.UseItemIntent(int(r - 'a')), true
		}

		switch r {
		case 'h':
			return game.MoveIntent(-1, 0), true
		case 'j':
			return game.MoveIntent(0, 1), true
		case 'k':
			return game.MoveIntent(0, -1), true
		case 'l':
			return game.MoveIntent(1, 0), true
		case 'g':
			return game.PickUpIntent(), true
		case 'q':
			return game.QuitIntent(), true
		}
	}

	return game.Intent{}, false
}

// appendMessage adds a narrative line, trimming the oldest past the cap.
func (c *Client) appendMessage(text string) {
	c.messages = append(c.messages, text)
	if len(c.messages) > messageLogLimit {
		c.messages = c.messages[len(c.messages)-messageLogLimit:]
	}
}
