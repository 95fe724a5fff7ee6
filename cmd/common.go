package cmd

import (
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schollz/progressbar/v3"

	"pixleon/images"
	"pixleon/task"
	"pixleon/types"
	"pixleon/ui"
)

// expandImageInputs expands any directory arguments into lists of image files
func expandImageInputs(paths []string) ([]string, error) {
	var expanded []string

	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", path, err)
		}

		if fi.IsDir() {
			found, err := images.FindImageFiles(path)
			if err != nil {
				return nil, fmt.Errorf("failed to scan directory %s: %w", path, err)
			}
			expanded = append(expanded, found...)
		} else {
			expanded = append(expanded, path)
		}
	}

	return expanded, nil
}

// runBatch launches a batch run and consumes its events until done.
func runBatch(appCtx *types.AppContext, title string, req task.Request, op task.Operation, plain bool) error {
	ctrl := task.NewController(appCtx.Logger)
	events, err := ctrl.StartBatch(req, op)
	if err != nil {
		return err
	}
	return consumeRun(ctrl, events, title, len(req.Inputs), plain)
}

// runSingle launches a single-item run, wiring the operation's canceller so
// a user interrupt reaches the external process.
func runSingle(appCtx *types.AppContext, title string, req task.Request, op task.Operation, canceller task.Canceller, plain bool) error {
	ctrl := task.NewController(appCtx.Logger)
	events, err := ctrl.StartSingle(req, op, canceller)
	if err != nil {
		return err
	}
	return consumeRun(ctrl, events, title, 1, plain)
}

func consumeRun(ctrl *task.Controller, events <-chan task.Event, title string, total int, plain bool) error {
	if plain {
		return consumePlain(ctrl, events, total)
	}

	p := tea.NewProgram(ui.NewRunModel(title, ctrl, events, total))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("UI error: %w", err)
	}
	if m, ok := final.(ui.RunModel); ok && m.Status() != "" {
		fmt.Println(ui.SuccessStyle.Render(m.Status()))
	}
	return nil
}

// consumePlain drains the run without the interactive UI: a progress bar,
// one line per file, Ctrl-C for cancellation. All controller calls stay on
// this goroutine.
func consumePlain(ctrl *task.Controller, events <-chan task.Event, total int) error {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Processing"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	status := ""
	for {
		select {
		case <-sigCh:
			fmt.Println()
			fmt.Println(ui.CancelledStyle.Render("⏹️  Cancelling... finishing current file"))
			ctrl.Cancel()

		case ev, ok := <-events:
			if !ok {
				fmt.Println()
				if status == "" {
					status = ctrl.Aggregate().Summary()
				}
				fmt.Println(ui.SuccessStyle.Render(status))
				return nil
			}
			ctrl.HandleEvent(ev)

			switch ev := ev.(type) {
			case task.ItemEvent:
				o := ev.Outcome
				switch o.Kind {
				case task.KindSuccess:
					fmt.Printf("\n%s %s\n", ui.SuccessStyle.Render("✓"), o.Input)
				case task.KindCancelled:
					fmt.Printf("\n%s %s\n", ui.CancelledStyle.Render("⏹️"), o.Input)
				default:
					fmt.Printf("\n%s %s: %s\n", ui.ErrorStyle.Render("❌"), o.Input, o.Detail)
				}
			case task.ProgressEvent:
				_ = bar.Set(ev.Completed)
			case task.DoneEvent:
				if ev.Status != "" {
					status = ev.Status
				}
			}
		}
	}
}
