package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/1broseidon/fbtile/internal/config"
	"github.com/1broseidon/fbtile/internal/fb"
	"github.com/1broseidon/fbtile/internal/input"
	"github.com/1broseidon/fbtile/internal/ipc"
	"github.com/1broseidon/fbtile/internal/render"
	"github.com/1broseidon/fbtile/internal/wm"
)

// memoryBackendWidth is the simulated screen used by the memory backend.
const (
	memoryBackendWidth  = 1024
	memoryBackendHeight = 768
)

func runDaemon(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: fbtile run [--config PATH] [--backend NAME]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Start the window manager daemon in the foreground.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "Config file path (default: ~/.config/fbtile/config.yaml)")
	backendFlag := fs.String("backend", "", "Override the configured backend (fbdev, x11, memory)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "run takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *backendFlag != "" {
		cfg.Backend = *backendFlag
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid backend override: %v", err)
		}
	}
	log.Printf("Configuration loaded (backend: %s, initial layout: %s)", cfg.Backend, cfg.InitialLayout)

	surface, closeSurface, err := openSurface(cfg)
	if err != nil {
		log.Fatalf("Failed to open drawing surface: %v", err)
	}
	defer closeSurface()

	width, height, _ := surface.Size()
	log.Printf("Surface ready: %dx%d", width, height)

	renderer := render.NewRenderer(surface, cfg.InitialLayout)
	manager, err := wm.NewManager(cfg, renderer)
	if err != nil {
		log.Fatalf("Failed to initialize workspaces: %v", err)
	}
	loop := wm.NewLoop(manager)

	// Start IPC server
	ipcServer, err := ipc.NewServer(loop)
	if err != nil {
		log.Fatalf("Failed to create IPC server: %v", err)
	}
	if err := ipcServer.Start(); err != nil {
		log.Fatalf("Failed to start IPC server: %v", err)
	}
	defer ipcServer.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Keyboard input only works when the daemon owns a terminal; when
	// started from an init script the IPC socket is the sole control path.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		dispatcher := input.NewDispatcher()
		registerBindings(dispatcher, cfg.Keys, manager)

		source, err := input.NewStdinSource(os.Stdin)
		if err != nil {
			log.Fatalf("Failed to set up keyboard input: %v", err)
		}
		defer source.Restore()
		go source.Run()

		go func() {
			for ev := range source.Events() {
				loop.Do(func(*wm.Manager) {
					dispatcher.Dispatch(ev)
				})
			}
			cancel()
		}()
	} else {
		log.Println("stdin is not a terminal; keyboard input disabled")
	}

	// Shut down on SIGINT/SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("Received %v, shutting down...", sig)
		cancel()
	}()

	log.Println("fbtile daemon started, entering event loop")
	loop.Run(ctx)
	return 0
}

func registerBindings(dispatcher *input.Dispatcher, keys config.Keys, manager *wm.Manager) {
	bindings := []struct {
		chord  string
		action func()
	}{
		{keys.NewWindow, func() { manager.AddWindow("window") }},
		{keys.CloseWindow, manager.CloseFocused},
		{keys.CycleFocus, func() { manager.CycleFocus(1) }},
		{keys.CycleLayout, manager.CycleLayout},
	}
	for _, b := range bindings {
		if err := dispatcher.Register(b.chord, b.action); err != nil {
			log.Printf("Warning: failed to register key binding: %v", err)
		}
	}
}

func openSurface(cfg *config.Config) (fb.Surface, func(), error) {
	switch cfg.Backend {
	case "fbdev":
		dev, err := fb.OpenDevice(cfg.FBDevice)
		if err != nil {
			return nil, nil, err
		}
		return dev, func() { dev.Close() }, nil

	case "x11":
		win, err := fb.OpenX11Window(memoryBackendWidth, memoryBackendHeight, "fbtile")
		if err != nil {
			return nil, nil, err
		}
		return win, func() { win.Close() }, nil

	case "memory":
		return fb.NewBuffer(memoryBackendWidth, memoryBackendHeight), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
