package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/tickstack/audio"
	"github.com/lixenwraith/tickstack/config"
	"github.com/lixenwraith/tickstack/core"
	"github.com/lixenwraith/tickstack/engine"
	"github.com/lixenwraith/tickstack/events"
	"github.com/lixenwraith/tickstack/logger"
	"github.com/lixenwraith/tickstack/terminal"
)

var (
	configFlag = flag.String("config", "stackgame.yaml", "Config file path")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to stackgame.log")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSTACKGAME CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad config, using defaults: %v\n", err)
	}
	if *debugFlag {
		cfg.LogFile = "stackgame.log"
		cfg.LogLevel = "debug"
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	screen, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Crash handler for engine goroutines: restore the terminal before
	// printing, raw mode needs \r\n to avoid zig-zag output
	core.SetCrashHandler(func(r any) {
		terminal.EmergencyReset(os.Stdout)
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mGAME CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})

	snd := audio.NewService(cfg.Audio)
	defer snd.Close()
	if snd.IsDisabled() && cfg.Audio {
		logger.Sugar.Warnw("audio unavailable, continuing without sound")
	}

	clock := engine.NewPausableClock(nil)
	app := NewApp(screen, clock, snd)

	// Input: poll goroutine pushes into the lock-free queue, the frame
	// loop consumes and routes
	queue := events.NewQueue()
	router := events.NewRouter[*App](queue)
	router.Register(resizeHandler{})
	router.Register(quitHandler{})
	router.Register(stackForwarder{})

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			queue.Push(ev)
			if ev.Type == events.EventQuit {
				return
			}
		}
	})

	app.Stack.Push(NewTitleState(app))

	sched := engine.NewScheduler(app.Stack, cfg.StepSize(), cfg.MaxDelta())
	source := engine.NewTimerSource(cfg.FrameInterval(), clock)
	loop := engine.NewLoop(sched, source)
	loop.SetDispatch(func() { router.DispatchAll(app) })
	loop.SetFlush(func() { screen.Flush(app.Buffer) })

	logger.Sugar.Infow("starting",
		"step", cfg.StepSize(),
		"frame", cfg.FrameInterval(),
		"max_delta", cfg.MaxDelta(),
	)

	loop.Start()
	<-app.QuitChan()
	loop.Stop()

	// Dispose remaining states so lifecycle pairs complete
	app.Stack.Clear()

	logger.Sugar.Infow("stopped",
		"frames", sched.FrameCount(),
		"steps", sched.StepCount(),
	)
}
