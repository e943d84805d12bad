package root

import (
	"context"
	"fmt"
	"os"

	"blklauncher/internal/catalog"
	"blklauncher/internal/config"
	"blklauncher/internal/engine"
	"blklauncher/internal/storage"
	"blklauncher/internal/ui"
)

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		return nil, nil, err
	}
	st, err := storage.Open(ctx, cfg.DBPath())
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = st.Close()
	}
	svc := engine.NewService(st, func(message string) {
		fmt.Fprintln(os.Stdout, ui.Gold.Render(ui.IconSparkle+" "+message))
	})
	svc.SetAdminSecret(cfg.AdminSecret())
	if _, err := svc.EnsureDefaultProfile(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

// loadGames merges the on-disk catalog with games added via `games add`.
func loadGames(ctx context.Context, svc *engine.Service) ([]catalog.Game, error) {
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		return nil, err
	}
	local, err := svc.LocalGames(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Merge(catalog.Load(cfg.CatalogPath()), local), nil
}

// requireUnlocked refuses mutating commands while the lockdown is armed.
func requireUnlocked(ctx context.Context, svc *engine.Service) error {
	st, err := svc.Lockdown(ctx)
	if err != nil {
		return err
	}
	if !st.Active {
		return nil
	}
	reason := st.Reason
	if reason == "" {
		reason = "This site is locked."
	}
	if !st.Until.IsZero() {
		return fmt.Errorf("lockdown active: %s (%s remaining)", reason, st.Countdown())
	}
	return fmt.Errorf("lockdown active: %s", reason)
}
