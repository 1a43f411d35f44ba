package system

import (
	"fmt"
	"strings"

	"github.com/younwookim/mg/internal/domain/entity"
	"github.com/younwookim/mg/internal/infrastructure/config"
)

// LoadStage builds the grid a StageConfig names: its inline rows when set,
// otherwise one of the compiled-in levels.
func LoadStage(cfg *config.StageConfig, tileSize int) (*entity.Grid, error) {
	if len(cfg.Rows) > 0 {
		grid, err := entity.ParseRows(cfg.Rows, tileSize)
		if err != nil {
			return nil, fmt.Errorf("stage rows: %w", err)
		}
		return grid, nil
	}

	rows, ok := entity.Levels[cfg.Level]
	if !ok {
		return nil, fmt.Errorf("unknown level %q (have %s)", cfg.Level, strings.Join(entity.LevelNames(), ", "))
	}
	grid, err := entity.ParseRows(rows, tileSize)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", cfg.Level, err)
	}
	return grid, nil
}
