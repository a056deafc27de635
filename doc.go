// Package tactile normalizes mouse, touch and wheel input into a small set of
// interaction events for [Ebitengine] games and tools.
//
// Raw input is dispatched on a tree of [Element] values, either by
// [EbitenInput] polling the device each frame or by any other source calling
// [Element.Dispatch]. A [Manager] bound to the root of the tree classifies
// each pointer or touch sequence and emits [InteractionEvent] values: click
// (with double-tap detection), drag start/move/end, touch long-press select,
// two-finger pinch zoom and pan, and debounced wheel zoom.
//
// # Quick start
//
//	root := tactile.NewElement("root", "root", 0, 0, 800, 600)
//	card := tactile.NewElement("card", "card-1", 100, 100, 120, 160)
//	root.AppendChild(card)
//
//	m := tactile.NewManager(root, tactile.DefaultConfig())
//	m.RegisterElement("card-1", card)
//	m.OnFunc(tactile.KindClick, func(ev tactile.InteractionEvent) {
//		log.Println("clicked", ev.TargetID, ev.Payload.DoubleTap)
//	})
//
//	in := tactile.NewEbitenInput(root)
//
//	// In ebiten.Game.Update:
//	in.Update()
//	m.Update()
//
// # Timers
//
// Long-press, wheel debounce and tooltip delays are tasks on a [Scheduler].
// Nothing fires until [Scheduler.Update] runs, so all callbacks happen on the
// game loop goroutine. Tests drive a Scheduler with a [ManualClock].
//
// # Behaviors
//
// [Draggable], [Tooltip] and [HoverEffect] listen to raw element events
// directly. They do not need a Manager.
//
// # Scripts
//
// [ParseScript] reads a JSON description of an element layout and a sequence
// of raw input steps. The tactile command replays scripts and prints the
// resulting events, which makes gesture behavior reproducible without a
// window.
//
// ECS integration lives in the tactile/ecs module (via a [Donburi] adapter).
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package tactile
