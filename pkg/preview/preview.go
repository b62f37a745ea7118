package preview

import (
	"context"
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
)

// Block is the rune used to paint one image cell
const Block = '█'

// Draw paints img onto screen, one full-block cell per downscaled pixel
func Draw(screen tcell.Screen, img image.Image) {
	screen.Clear()

	cols, rows := screen.Size()
	fitted := Fit(img, cols, rows)
	b := fitted.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := fitted.At(x, y).RGBA()
			color := tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(bl>>8))
			screen.SetContent(x-b.Min.X, y-b.Min.Y, Block, nil, tcell.StyleDefault.Foreground(color))
		}
	}

	screen.Show()
}

// Show opens the terminal and displays img until a quit key is pressed or ctx is done
func Show(ctx context.Context, img image.Image) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	return Run(ctx, screen, img)
}

// Run draws img on an initialized screen and handles events.
// It returns nil on Esc, Ctrl-C or 'q', and ctx.Err() when ctx is cancelled.
func Run(ctx context.Context, screen tcell.Screen, img image.Image) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	Draw(screen, img)

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// Screen was finalized underneath us
			return nil
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, img)
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return nil
			}
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
