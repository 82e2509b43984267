// Package app wires the capture, detection and session layers into the
// frame-driven classification pipeline.
package app

import (
	"log"
	"sync"

	"github.com/ayusman/hasta/internal/capture"
	"github.com/ayusman/hasta/internal/classify"
	"github.com/ayusman/hasta/internal/detector"
	"github.com/ayusman/hasta/internal/session"
	"github.com/ayusman/hasta/internal/store"
)

// PipelineFPS is the frame-tick rate of the classification pipeline.
const PipelineFPS = 15

// Config holds configuration options for the application.
type Config struct {
	Store    *store.Store
	CameraID int
}

// OutcomeListener receives each accepted classification outcome.
type OutcomeListener func(outcome *session.Outcome)

// App owns the camera, detector and session, and runs the frame pipeline
// that connects them.
type App struct {
	config   Config
	camera   capture.Camera
	detector detector.Detector
	session  *session.Session

	mu        sync.RWMutex
	settings  classify.Settings
	degraded  bool
	listeners []OutcomeListener
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// New creates a new App instance with the given configuration. Settings are
// loaded from the store when one is configured; the MediaPipe detector is
// preferred with a mock fallback when it is unavailable.
func New(config Config) *App {
	a := &App{
		config:   config,
		camera:   capture.NewCamera(config.CameraID),
		session:  session.New(),
		settings: classify.DefaultSettings(),
	}

	if config.Store != nil {
		settings, err := config.Store.Settings().Load()
		if err != nil {
			log.Printf("Failed to load settings, using defaults: %v", err)
		} else {
			a.settings = settings
		}
	}

	// Try MediaPipe first, fall back to mock detector. The fallback is a
	// degraded mode, not a fatal error: the session simply never receives
	// hands.
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
		a.degraded = true
	}

	return a
}

// Session returns the gesture session.
func (a *App) Session() *session.Session {
	return a.session
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// SetCamera replaces the camera implementation. Only valid before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// SetDetector replaces the detector implementation.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
	a.degraded = false
}

// Degraded reports whether the app fell back to the mock detector.
func (a *App) Degraded() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.degraded
}

// Settings returns the current classifier settings.
func (a *App) Settings() classify.Settings {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.settings
}

// UpdateSettings replaces the classifier settings and persists them when a
// store is configured.
func (a *App) UpdateSettings(settings classify.Settings) error {
	a.mu.Lock()
	a.settings = settings
	a.mu.Unlock()

	if a.config.Store != nil {
		return a.config.Store.Settings().Save(settings)
	}
	return nil
}

// OnOutcome registers a listener for accepted classification outcomes.
// Listeners are invoked from the pipeline goroutine.
func (a *App) OnOutcome(fn OutcomeListener) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, fn)
}

// notify fans an outcome out to all registered listeners.
func (a *App) notify(outcome *session.Outcome) {
	a.mu.RLock()
	listeners := a.listeners
	a.mu.RUnlock()

	for _, fn := range listeners {
		fn(outcome)
	}
}

// Start opens the camera and begins the frame pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(PipelineFPS)

	a.stopCh = make(chan struct{})
	a.wg.Add(1)
	go a.runPipeline(a.stopCh)

	log.Println("Classification pipeline started")
	return nil
}

// Stop halts the frame pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}
	a.mu.Unlock()

	a.wg.Wait()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.mu.RLock()
	d := a.detector
	a.mu.RUnlock()
	if d != nil {
		if err := d.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Classification pipeline stopped")
}
