package modes

import "github.com/gdamore/tcell/v2"

// EventSource is a blocking input event queue; tcell.Screen satisfies it
type EventSource interface {
	PollEvent() tcell.Event
}

// Run polls src and handles events in arrival order on the calling goroutine.
// It returns when the handler asks to exit or the source is closed.
func Run(src EventSource, h *InputHandler) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		if !h.HandleEvent(ev) {
			return
		}
	}
}
