// Package orbitfx is an animated landing-page effect for [Ebitengine]: a
// pointer-reactive starfield behind a hero area, and below it an "orbit"
// timeline whose curve, nodes and milestone cards are revealed in a staged
// sequence once the section scrolls into view.
//
// # Quick start
//
// [Run] opens a window and drives the game loop:
//
//	scene := orbitfx.NewScene(orbitfx.DefaultSceneConfig())
//	orbitfx.Run(scene, orbitfx.RunConfig{
//		Title: "orbitfx", Width: 1280, Height: 720,
//	})
//
// [Scene] implements [ebiten.Game], so it can also be embedded in a larger
// game by forwarding Update, Draw and Layout.
//
// Settings can come from a TOML file and ORBITFX_* environment variables
// through [Load]; see [Config].
//
// # Particles
//
// [ParticleField] holds a fixed set of drifting points that wrap at the
// viewport edges and are pushed away from the [Pointer] inside a repel
// radius. Particles near the pointer grow and brighten.
//
// # Timeline
//
// [CurveSpace.Anchors] places one [AnchorNode] per milestone on alternating
// lanes, and [BuildCurve] threads a smooth chain of cubic beziers through
// them; arc length, point-at-length and flattening come from
// honnef.co/go/curve. [Timeline] owns that curve and runs the reveal:
//
//	Idle --Trigger--> Revealing --last node--> Complete
//
// Each anchor queues three tasks on a [Scheduler]: reveal the card,
// extend the drawn path, then activate the node. An [EnergyMarker] eases
// toward the most recently activated node. A [VisibilityObserver] fires the
// trigger when enough of the section is on screen.
//
// # Rendering
//
// Everything draws through the [Surface] and [LineSurface] interfaces.
// [ImageSurface] targets an *ebiten.Image; the term subpackage renders the
// same scene into a terminal with tcell.
//
// # Testing
//
// [Scene.Advance] steps the scene by an explicit duration without a window,
// and [Scene.Render] draws to any [LineSurface]. For scripted runs, see
// [LoadTestScript], [Scene.InjectMove], [Scene.InjectGlide] and
// [Scene.Screenshot].
//
// [Ebitengine]: https://ebitengine.org
package orbitfx
