package app

import (
	"log"
	"time"
)

// runPipeline is the frame loop: once per tick it reads a frame from the
// camera, asks the detector for hands, and submits both to the session. The
// session decides whether anything is recorded; an idle session makes every
// tick a no-op. Each tick runs to completion before the next is processed,
// so session state mutates only inside this loop and the HTTP layer's
// control calls.
func (a *App) runPipeline(stopCh <-chan struct{}) {
	defer a.wg.Done()

	ticker := time.NewTicker(time.Second / PipelineFPS)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			a.tick()
		}
	}
}

// tick processes a single frame.
func (a *App) tick() {
	a.mu.RLock()
	camera := a.camera
	det := a.detector
	settings := a.settings
	a.mu.RUnlock()

	pb, err := camera.ReadFrame()
	if err != nil {
		log.Printf("Error reading frame: %v", err)
		return
	}

	hands, err := det.Detect(pb)
	if err != nil {
		log.Printf("Error detecting hands: %v", err)
		return
	}

	outcome := a.session.SubmitFrame(hands, pb, settings)
	if outcome == nil {
		return
	}

	a.notify(outcome)
}
