package main

import (
	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/op"
	"github.com/esimov/primejudge"
)

// newWindow creates the window sized and titled after the GUI configuration.
func newWindow(gui *primejudge.Gui) *app.Window {
	w, h := gui.Size()

	win := new(app.Window)
	win.Option(app.Title(gui.Title()), app.Size(w, h))

	return win
}

// run the Gio main loop until a DestroyEvent is received. The ESC key closes the window.
func run(w *app.Window, gui *primejudge.Gui) error {
	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			for {
				ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
				if !ok {
					break
				}
				if ev, ok := ev.(key.Event); ok && ev.State == key.Press {
					w.Perform(system.ActionClose)
				}
			}
			gui.Layout(gtx)
			e.Frame(gtx.Ops)
		case app.DestroyEvent:
			return e.Err
		}
	}
}
