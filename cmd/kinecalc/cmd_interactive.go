package main

import (
	"context"

	"kinecalc/cmd/kinecalc/calc"
	"kinecalc/internal/calculator"
	"kinecalc/internal/config"
	"kinecalc/internal/logging"
)

// runInteractive starts the full-screen calculator, reloading the config file
// live when it changes.
func runInteractive(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := calc.New(currentConfig(), calculator.New())

	if path, err := resolveConfigPath(); err == nil {
		w, err := config.NewWatcher(path)
		if err == nil {
			if err := w.Start(ctx); err == nil {
				model = model.WithWatcher(w)
			} else {
				logging.Get(logging.CategoryConfig).Warn("config watch disabled: %v", err)
			}
			defer w.Stop()
		}
	}

	logging.Boot("interactive calculator started, target %s", model.Target())
	return calc.Run(model)
}
