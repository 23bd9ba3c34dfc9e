package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"scrbrd/internal/scheduler"
	"scrbrd/internal/store"
	"scrbrd/internal/view"
)

const redrawInterval = 500 * time.Millisecond

var (
	styleHeader = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFooter = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleLive   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleFinal  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleNormal = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// UI owns the terminal: it reads key events, applies them to the store,
// and redraws projected rows on a fixed tick so a slow fetch never
// blocks keypress responsiveness.
type UI struct {
	screen   tcell.Screen
	store    *store.Store
	sched    *scheduler.Scheduler
	interval time.Duration
	logger   zerolog.Logger
}

// New initializes the terminal screen. Failure here is fatal at startup.
func New(st *store.Store, sched *scheduler.Scheduler, interval time.Duration, logger zerolog.Logger) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.Clear()

	return &UI{
		screen:   screen,
		store:    st,
		sched:    sched,
		interval: interval,
		logger:   logger,
	}, nil
}

// Run is the input/render loop. It returns after quit or context cancel;
// cancel stops the scheduler so fetch results arriving later are
// discarded with the process.
func (u *UI) Run(ctx context.Context, cancel context.CancelFunc) error {
	defer u.screen.Fini()

	events := make(chan tcell.Event, 16)
	go u.screen.ChannelEvents(events, ctx.Done())

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	for {
		u.draw()

		select {
		case ev := <-events:
			if quit := u.handleEvent(ev); quit {
				cancel()
				return nil
			}
		case <-ticker.C:
		case <-ctx.Done():
			return nil
		}
	}
}

func (u *UI) handleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			u.scroll(-1)
		case tcell.KeyDown:
			u.scroll(1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'r':
				u.logger.Info().Msg("manual refresh requested")
				u.sched.RequestRefresh()
			case 'j':
				u.scroll(1)
			case 'k':
				u.scroll(-1)
			}
		}
	}
	return false
}

func (u *UI) scroll(delta int) {
	snapshot, viewState := u.store.View()
	total := len(view.Rows(snapshot, viewState))
	u.store.Scroll(delta, total, u.viewportHeight())
}

func (u *UI) viewportHeight() int {
	_, h := u.screen.Size()
	// header, status line, blank separator, footer
	vp := h - 4
	if vp < 1 {
		vp = 1
	}
	return vp
}

func (u *UI) draw() {
	snapshot, viewState := u.store.View()

	u.screen.Clear()
	w, h := u.screen.Size()

	drawCentered(u.screen, 0, w, view.Header(viewState), styleHeader)

	if status := view.StatusLine(snapshot, viewState); status != "" {
		style := styleDim
		if viewState.LastError != nil {
			style = styleError
		}
		drawCentered(u.screen, 1, w, status, style)
	}

	rows := view.Rows(snapshot, viewState)
	visible := view.Visible(rows, viewState.ScrollOffset, u.viewportHeight())
	for i, row := range visible {
		drawCentered(u.screen, 3+i, w, row.Text, rowStyle(row))
	}

	drawCentered(u.screen, h-1, w, view.Footer(viewState, u.interval, time.Now()), styleFooter)

	u.screen.Show()
}

func rowStyle(row view.Row) tcell.Style {
	switch row.Kind {
	case view.RowLive:
		return styleLive
	case view.RowFinal:
		return styleFinal
	case view.RowEmptyState:
		return styleDim
	default:
		return styleNormal
	}
}

func drawCentered(screen tcell.Screen, y, width int, text string, style tcell.Style) {
	runes := []rune(text)
	x := (width - len(runes)) / 2
	if x < 0 {
		x = 0
	}
	for i, r := range runes {
		if x+i >= width {
			break
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}
