package game

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("ROCKET_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	// Systems. The collision buffers are owned here and passed down —
	// one per obstacle category, rewritten in full every frame before
	// that frame's queries.
	world := NewWorld(seed)
	particles := NewParticlePool(MaxParticles, DefaultPoolConfig(), seed^0xBEAD)
	crystals := NewCrystalSystem(seed ^ 0xC4757A1)
	spores := NewSporeSystem(seed ^ 0x5B04E)
	orbs := NewOrbSystem(seed ^ 0x0B0E)
	crystalBuf := NewCircleBuffer()
	sporeBuf := NewSphereBuffer()

	session := NewGameSession()
	var rocket *Rocket

	cam := Camera{
		X:    float64(WorldWidth) / 2,
		Y:    float64(WorldHeight) / 2,
		Zoom: DefaultZoom,
	}
	input := NewInput()

	// Gameplay systems publish; audio, shake, and score react here.
	events := NewEventBus()
	events.Subscribe(EventExplosion, func(e Event) {
		PlaySound(SoundExplosion)
		cam.AddShake(1.2*e.Magnitude, 0.35)
	})
	events.Subscribe(EventRocketDestroyed, func(e Event) {
		PlaySound(SoundExplosion)
		cam.AddShake(2.5, 0.7)
	})
	events.Subscribe(EventCrystalShattered, func(e Event) {
		PlaySound(SoundShatter)
		cam.AddShake(0.8, 0.25)
		session.Score += int(e.Magnitude * 10)
	})
	events.Subscribe(EventOrbCollected, func(e Event) {
		PlaySound(SoundOrb)
		session.Score += 25
	})
	events.Subscribe(EventSporeHit, func(e Event) {
		PlaySoundWithGain(SoundSpore, 0.6)
	})
	events.Subscribe(EventLevelComplete, func(e Event) {
		PlaySound(SoundLevelUp)
	})

	// Reusable render buffers.
	var floraBuf, hazardBuf, spriteBuf, glowBuf, particleBuf []float32

	thrustSndTimer := 0.0

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		switch session.State {
		case StateMenu:
			if input.JustPressed(window, glfw.KeySpace) {
				PlaySound(SoundMenuSelect)
				session.StartLevel(1, world, crystals, spores, orbs, &rocket, particles, seed)
			}

		case StatePlaying:
			turn, thrust := FlightControls(window)
			if rocket != nil && rocket.Alive {
				if turn != 0 {
					rocket.Steer(rocket.Heading+turn*math.Pi/2, dt)
				}
				rocket.Update(dt, thrust, particles)

				if thrust && rocket.Fuel > 0 {
					thrustSndTimer -= dt
					if thrustSndTimer <= 0 {
						thrustSndTimer = 0.18
						PlaySoundWithGain(SoundThrust, 0.5)
					}
				}
			}

			crystals.Update(dt)
			spores.Update(dt)
			orbs.Update(dt)

			// Obstacle buffers are rewritten before this frame's queries.
			if rocket != nil && rocket.Alive {
				crystalCount := crystals.WriteObstacles(crystalBuf)
				if rec := crystalBuf.Test(float32(rocket.X), float32(rocket.Y), RocketRadius, crystalCount); rec != NoHit {
					ci := crystals.LiveIndex(rec)
					if ci >= 0 {
						rocket.HitCrystal(&crystals.Crystals[ci], crystals, ci, particles, events)
					}
				}

				sporeCount := spores.WriteObstacles(sporeBuf)
				if rec := sporeBuf.Test(float32(rocket.X), float32(rocket.Y), float32(rocket.Z), RocketRadius, sporeCount); rec != NoHit {
					rocket.HitSpore(&spores.Clouds[rec], dt, particles, events)
				}

				orbs.Collect(rocket, particles, events)
			}

			// All of this frame's emits happened above, so newly spawned
			// particles age once before their first render.
			particles.Update(dt)

			session.Update(dt)
			cam.UpdateShake(dt, seed^uint64(now*1000))
			cam.Follow(rocket, dt)
			session.CheckLevelEnd(orbs, rocket, events)
			if session.State == StateLevelFailed {
				PlaySound(SoundGameOver)
			}

		case StateLevelComplete:
			if input.JustPressed(window, glfw.KeySpace) {
				PlaySound(SoundMenuSelect)
				session.StartLevel(session.CurrentLevel+1, world, crystals, spores, orbs, &rocket, particles, seed)
			}
			particles.Update(dt)
			cam.UpdateShake(dt, seed^uint64(now*1000))

		case StateLevelFailed:
			if input.JustPressed(window, glfw.KeySpace) {
				PlaySound(SoundMenuSelect)
				session.StartLevel(session.CurrentLevel, world, crystals, spores, orbs, &rocket, particles, seed)
			}
			particles.Update(dt)
			cam.UpdateShake(dt, seed^uint64(now*1000))
		}

		UpdateCameraZoom(&cam, window, dt, fbW, fbH)

		// Render with shake applied.
		renderCam := cam
		sx, sy := cam.EffectivePos()
		renderCam.X = sx
		renderCam.Y = sy

		ambient, tintR, tintG, tintB := SkyCycleLight(session.LevelTimer)
		ground := GroundColor(session.LevelTimer)
		gl.ClearColor(
			float32(ground.R)/255.0*ambient*tintR,
			float32(ground.G)/255.0*ambient*tintG,
			float32(ground.B)/255.0*ambient*tintB,
			1.0,
		)

		rend.BeginFrame(fbW, fbH)
		rend.SetSkyLight(ambient, tintR, tintG, tintB)

		floraBuf = world.RenderData(floraBuf, renderCam, fbW, fbH, now)
		rend.DrawSprites(floraBuf, renderCam, fbW, fbH)

		hazardBuf = crystals.RenderData(hazardBuf)
		rend.DrawSprites(hazardBuf, renderCam, fbW, fbH)

		hazardBuf = spores.RenderData(hazardBuf)
		rend.DrawSprites(hazardBuf, renderCam, fbW, fbH)

		spriteBuf = orbs.RenderData(spriteBuf)
		rend.DrawSprites(spriteBuf, renderCam, fbW, fbH)

		if rocket != nil {
			spriteBuf = rocket.RenderData(spriteBuf, now)
			rend.DrawSprites(spriteBuf, renderCam, fbW, fbH)
		}

		particleBuf = particles.RenderData(particleBuf)
		rend.DrawSprites(particleBuf, renderCam, fbW, fbH)

		// Additive glow passes: night crystals, orb halos, engine flare.
		night := NightIntensityFromAmbient(ambient)
		glowBuf = crystals.GlowData(glowBuf, night)
		rend.DrawGlowSprites(glowBuf, renderCam, fbW, fbH)

		glowBuf = orbs.GlowData(glowBuf, night)
		rend.DrawGlowSprites(glowBuf, renderCam, fbW, fbH)

		if rocket != nil {
			glowBuf = rocket.GlowData(glowBuf)
			rend.DrawGlowSprites(glowBuf, renderCam, fbW, fbH)

			spriteBuf = rocket.HUDData(spriteBuf)
			rend.DrawSprites(spriteBuf, renderCam, fbW, fbH)
		}

		window.SwapBuffers()
	}
}
