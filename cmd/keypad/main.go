package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/callebjorkell/keypad/internal/backend"
	"github.com/callebjorkell/keypad/internal/button"
	"github.com/callebjorkell/keypad/internal/keyboard"
	log "github.com/sirupsen/logrus"
)

type colorFormatter struct {
	log.TextFormatter
}

func (f *colorFormatter) Format(entry *log.Entry) ([]byte, error) {
	var levelColor int
	switch entry.Level {
	case log.DebugLevel, log.TraceLevel:
		levelColor = 90 // dark grey
	case log.WarnLevel:
		levelColor = 33 // yellow
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		levelColor = 91 // bright red
	default:
		levelColor = 39 // default
	}
	return []byte(fmt.Sprintf("\x1b[%dm%s\x1b[0m\n", levelColor, entry.Message)), nil
}

func main() {
	log.SetFormatter(&colorFormatter{})

	if err := RootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func startServer(configFile string) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	conf, err := readConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}

	keys := make([]keyboard.Key, 0, len(conf.Buttons))
	for _, b := range conf.Buttons {
		key, err := keyboard.LookupKey(b.Key)
		if err != nil {
			log.Fatalf("Button on gpio %d: %v", b.GPIO, err)
		}
		keys = append(keys, key)
	}
	caps := keys
	if conf.ShiftOnHold {
		caps = append(append([]keyboard.Key{}, keys...), keyboard.ShiftLeft)
	}

	kb, err := keyboard.New("keypad", caps)
	if err != nil {
		log.Fatal(err)
	}

	var b backend.Backend
	switch conf.Backend {
	case backendPeriph:
		b = backend.NewPeriph()
	default:
		b = backend.NewCdev(conf.Chip)
	}

	handler := newKeyHandler(kb, keys, conf.ShiftOnHold)

	pins := make([]button.Pin, 0, len(conf.Buttons))
	for _, btn := range conf.Buttons {
		pins = append(pins, button.Pin{GPIO: btn.GPIO, ActiveLow: btn.ActiveLow, Pull: btn.Pull})
	}

	engine, err := button.New(button.Config{
		Pins:     pins,
		Debounce: conf.debounce(),
		Hold:     conf.hold(),
		Repeat:   conf.repeat(),
		OnEvent:  handler.handle,
		Backend:  b,
	})
	if err != nil {
		kb.Close()
		log.Fatal(err)
	}

	log.Infof("Bridging %d buttons on %v...", len(pins), conf.Chip)

	select {
	case <-signalChan:
	}

	engine.Close()
	if err := kb.Close(); err != nil {
		log.Warnf("Closing virtual keyboard: %v", err)
	}
	log.Info("Done...")
}
