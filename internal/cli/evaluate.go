package cli

import (
	"strconv"
	"strings"

	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type evaluateOptions struct {
	role       string
	skills     []string
	years      int
	experience int
	degree     string
	region     string
}

func newEvaluateCmd(root *rootOptions) *cobra.Command {
	opts := &evaluateOptions{}

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a skill profile against a target role",
		Long: `Computes skill gaps, the six-dimension fit score, the demand projection,
course recommendations, and mentor advice for a target role.

Examples:
  careerctl evaluate --role "Data Engineer" --skill Python=4 --skill SQL=4
  careerctl evaluate --role "AI Specialist" --skill ML=3 --years 10 --experience 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			var skills map[string]int
			skills, err = parseSkills(opts.skills)
			if err != nil {
				return err
			}

			var uc *usecase.Career
			uc, err = root.careerUsecase(cmd)
			if err != nil {
				return err
			}

			var res usecase.EvaluationResult
			res, err = uc.Evaluate(cmd.Context(), usecase.EvaluateInput{
				TargetRole:      opts.role,
				Skills:          skills,
				ExperienceYears: opts.experience,
				ProjectionYears: opts.years,
				Degree:          opts.degree,
				Region:          opts.region,
			})
			if err != nil {
				err = errors.Wrap(err, "evaluation failed")
				return err
			}

			return writeJSON(cmd.OutOrStdout(), dto.NewEvaluationResponse(res))
		},
	}

	cmd.Flags().StringVar(&opts.role, "role", "", "Target role (required)")
	cmd.Flags().StringArrayVar(&opts.skills, "skill", nil, "Current skill as Name=Level (1-5), repeatable")
	cmd.Flags().IntVar(&opts.years, "years", usecase.DefaultProjectionYears, "Projection horizon in years")
	cmd.Flags().IntVar(&opts.experience, "experience", 0, "Years of professional experience")
	cmd.Flags().StringVar(&opts.degree, "degree", "", "Degree: Bachelor's, Master's or PhD")
	cmd.Flags().StringVar(&opts.region, "region", "", "Region: Urban, Rural or Underrepresented")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

// parseSkills turns Name=Level pairs into a skill map. A repeated name keeps the last level.
func parseSkills(pairs []string) (skills map[string]int, err error) {
	skills = make(map[string]int, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			err = errors.Errorf("invalid skill %q: expected Name=Level", pair)
			return nil, err
		}

		var level int
		level, err = strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			err = errors.Wrapf(err, "invalid level for skill %q", name)
			return nil, err
		}
		skills[name] = level
	}
	return skills, nil
}
