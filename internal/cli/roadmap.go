package cli

import (
	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/domain/career"
	"career-navigator/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRoadmapCmd(root *rootOptions) *cobra.Command {
	var (
		role     string
		timeline int
		focus    []string
	)

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Plan the learning roadmap for a role",
		Long: `Selects the curated milestones for a role. Focus areas may add a
certification milestone; a long timeline adds a note about extended milestones.

Examples:
  careerctl roadmap --role "Cloud Architect"
  careerctl roadmap --role "Data Engineer" --timeline 24 --focus Certifications`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			var uc *usecase.Career
			uc, err = root.careerUsecase(cmd)
			if err != nil {
				return err
			}

			var plan career.RoadmapPlan
			plan, err = uc.PlanRoadmap(cmd.Context(), usecase.RoadmapInput{
				Role:           role,
				TimelineMonths: timeline,
				FocusAreas:     focus,
			})
			if err != nil {
				err = errors.Wrap(err, "roadmap failed")
				return err
			}

			return writeJSON(cmd.OutOrStdout(), dto.NewRoadmapResponse(plan))
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Target role (required)")
	cmd.Flags().IntVar(&timeline, "timeline", 12, "Timeline in months")
	cmd.Flags().StringSliceVar(&focus, "focus", nil, "Focus areas: Technical Skills, Soft Skills, Certifications")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}
