package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/LXMachado/tinnie-house-revamp/internal/audio"
)

func newAuditCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check that every release has a readable preview under AUDIO_DIR",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			releases, err := rt.content.Releases(cmd.Context())
			if err != nil {
				return err
			}
			findings := audio.Audit(releases, rt.cfg.AudioDir)

			if wantTable(cmd) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), auditTable(findings)); err != nil {
					return err
				}
			} else if err := writeJSON(cmd, findings); err != nil {
				return err
			}

			problems := 0
			for _, f := range findings {
				if !f.OK() {
					problems++
				}
			}
			rt.log.Info("Audio audit finished", "releases", len(findings), "problems", problems, "dir", rt.cfg.AudioDir)
			if strict && problems > 0 {
				return fmt.Errorf("%d of %d releases have audio problems", problems, len(findings))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any release has a problem")
	return cmd
}

func auditTable(findings []audio.Finding) string {
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		format, duration := "-", "-"
		if f.Info != nil {
			format = f.Info.Format
			if f.Info.Duration > 0 {
				duration = f.Info.Duration.Round(time.Second).String()
			}
		}
		status := "ok"
		if !f.OK() {
			status = f.Problem
		}
		rows = append(rows, []string{
			strconv.FormatInt(f.ReleaseID, 10),
			f.Title,
			format,
			duration,
			status,
		})
	}
	return renderTable([]string{"ID", "Title", "Format", "Length", "Status"}, rows, 0, 3)
}
