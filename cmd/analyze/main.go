// Command analyze prints quick, human-readable heuristics about the
// configuration files and the saved sessions. For each config it summarises
// the board, the largest tile the board can ever hold, the expected value of
// a spawned tile, the recorded best score and how the persisted sessions on
// that config are doing.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/VitSay/2048/game/config"
	"github.com/VitSay/2048/game/session"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// ConfigReport is the analysis of one configuration
type ConfigReport struct {
	ConfigID      string
	Name          string
	GridSize      int
	TargetValue   int
	MaxTile       int
	ExpectedSpawn float64
	BestScore     int
	Sessions      int
	TopScore      int
	HighestTile   int
	Victories     int
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "Summarise configs, best scores and saved sessions",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config-dir", Value: "configs", Sources: cli.EnvVars("CONFIG_DIR")},
			&cli.StringFlag{Name: "sessions-dir", Value: "sessions", Sources: cli.EnvVars("SESSIONS_DIR")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reports, err := analyze(cmd.String("config-dir"), cmd.String("sessions-dir"))
			if err != nil {
				return err
			}
			printReports(os.Stdout, reports)
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// maxTile is the largest tile a size x size board can hold: every cell
// filled with a descending chain ending in a spawned 4
func maxTile(size int) int {
	exp := size*size + 1
	if exp > 62 {
		exp = 62
	}
	return 1 << exp
}

func analyze(configDir, sessionsDir string) ([]*ConfigReport, error) {
	configs, err := config.NewManager(configDir)
	if err != nil {
		return nil, err
	}
	infos, err := configs.ListConfigs()
	if err != nil {
		return nil, err
	}

	best, err := session.NewBestScores(filepath.Join(sessionsDir, "best", "scores.json"))
	if err != nil {
		return nil, err
	}

	reports := make(map[string]*ConfigReport, len(infos))
	ordered := make([]*ConfigReport, 0, len(infos))
	for _, info := range infos {
		cfg, err := configs.LoadConfig(info.ConfigID)
		if err != nil {
			log.WithError(err).WithField("config", info.ConfigID).Warn("Skipping config")
			continue
		}
		r := &ConfigReport{
			ConfigID:      info.ConfigID,
			Name:          cfg.Name,
			GridSize:      cfg.GridSize,
			TargetValue:   cfg.TargetValue,
			MaxTile:       maxTile(cfg.GridSize),
			ExpectedSpawn: 2*cfg.TwoChance() + 4*(1-cfg.TwoChance()),
			BestScore:     best.Get(info.ConfigID),
		}
		reports[info.ConfigID] = r
		ordered = append(ordered, r)
	}

	if _, err := os.Stat(sessionsDir); os.IsNotExist(err) {
		return ordered, nil
	}

	persistence, err := session.NewFilePersistence(sessionsDir, configs, best)
	if err != nil {
		return nil, err
	}
	ids, err := persistence.ListAll()
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		sess, err := persistence.Load(id)
		if err != nil {
			log.WithError(err).WithField("session", id).Debug("Skipping unreadable session")
			continue
		}
		r, ok := reports[sess.ConfigID]
		if !ok {
			continue
		}
		state := sess.Engine.GetState()
		r.Sessions++
		if state.Score > r.TopScore {
			r.TopScore = state.Score
		}
		if state.HighestTile > r.HighestTile {
			r.HighestTile = state.HighestTile
		}
		if state.Victory {
			r.Victories++
		}
	}

	return ordered, nil
}

func printReports(w io.Writer, reports []*ConfigReport) {
	for _, r := range reports {
		fmt.Fprintf(w, "\n=== Analyzing %s ===\n", r.ConfigID)
		fmt.Fprintf(w, "Name: %s\n", r.Name)
		fmt.Fprintf(w, "Grid Size: %d x %d\n", r.GridSize, r.GridSize)
		fmt.Fprintf(w, "Target: %d (largest possible tile %d)\n", r.TargetValue, r.MaxTile)
		fmt.Fprintf(w, "Expected spawn value: %.2f\n", r.ExpectedSpawn)
		fmt.Fprintf(w, "Best score: %d\n", r.BestScore)

		if r.Sessions == 0 {
			fmt.Fprintf(w, "No saved sessions\n")
			continue
		}
		fmt.Fprintf(w, "Sessions: %d, top score %d, highest tile %d\n", r.Sessions, r.TopScore, r.HighestTile)
		if r.Victories > 0 {
			fmt.Fprintf(w, "✅ %d sessions reached %d\n", r.Victories, r.TargetValue)
		} else {
			fmt.Fprintf(w, "⚠️  No session has reached %d yet\n", r.TargetValue)
		}
	}
}
