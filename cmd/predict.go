package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/trknhr/creditrisk/internal/applicant"
	"github.com/trknhr/creditrisk/internal/features"
	"github.com/trknhr/creditrisk/internal/inference"
	"github.com/trknhr/creditrisk/internal/model/entity"
)

type predictFlags struct {
	sex      string
	age      int
	job      int
	housing  string
	saving   string
	checking string
	credit   int
	duration int
	purpose  string
	asJSON   bool
}

func (f predictFlags) input() (applicant.Input, error) {
	var (
		in   applicant.Input
		err  error
		errs []error
	)
	if in.Sex, err = applicant.ParseSex(f.sex); err != nil {
		errs = append(errs, err)
	}
	if in.Job, err = applicant.ParseJob(fmt.Sprint(f.job)); err != nil {
		errs = append(errs, err)
	}
	if in.Housing, err = applicant.ParseHousing(f.housing); err != nil {
		errs = append(errs, err)
	}
	if in.SavingAccount, err = applicant.ParseSavingAccount(f.saving); err != nil {
		errs = append(errs, err)
	}
	if in.CheckingAccount, err = applicant.ParseCheckingAccount(f.checking); err != nil {
		errs = append(errs, err)
	}
	if in.Purpose, err = applicant.ParsePurpose(f.purpose); err != nil {
		errs = append(errs, err)
	}
	in.Age, in.CreditAmount, in.Duration = f.age, f.credit, f.duration
	if len(errs) > 0 {
		return applicant.Input{}, errors.Join(errs...)
	}
	return in, in.Validate()
}

type predictOutput struct {
	Label       int                `json:"label"`
	Verdict     string             `json:"verdict"`
	Probability *float64           `json:"probability_bad,omitempty"`
	Features    map[string]float64 `json:"features,omitempty"`
}

func NewPredictCmd(opts *rootOptions) *cobra.Command {
	d := applicant.Default()
	f := predictFlags{}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score one applicant without the interactive form",
		Example: `
  creditrisk predict --age 45 --credit 5000 --purpose "new car"
  creditrisk predict --saving quite_rich --checking no_info --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := f.input()
			if err != nil {
				return err
			}
			rt, err := opts.loadRuntime()
			if err != nil {
				return err
			}
			out, err := predict(rt, in)
			if err != nil {
				return err
			}
			return writePrediction(cmd.OutOrStdout(), out, f.asJSON)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.sex, "sex", d.Sex.String(), "male or female")
	fl.IntVar(&f.age, "age", d.Age, "age in years (18-75)")
	fl.IntVar(&f.job, "job", int(d.Job), "job skill level (0-3)")
	fl.StringVar(&f.housing, "housing", d.Housing.String(), "own, free or rent")
	fl.StringVar(&f.saving, "saving", d.SavingAccount.String(), "little, moderate, rich, quite rich or no_info")
	fl.StringVar(&f.checking, "checking", d.CheckingAccount.String(), "little, moderate, rich or no_info")
	fl.IntVar(&f.credit, "credit", d.CreditAmount, "credit amount")
	fl.IntVar(&f.duration, "duration", d.Duration, "duration in months (4-72)")
	fl.StringVar(&f.purpose, "purpose", d.Purpose.String(), "loan purpose, e.g. radio/TV, education, \"new car\"")
	fl.BoolVar(&f.asJSON, "json", false, "print the result as JSON including the encoded features")

	return cmd
}

// predict scores the applicant; hard-voting models yield a label only.
func predict(rt *inference.Runtime, in applicant.Input) (predictOutput, error) {
	res, err := rt.Score(in)
	if errors.Is(err, entity.ErrNoProbability) {
		x := features.EncodeFor(in, rt.Columns())
		label, err := rt.PredictLabel(x)
		if err != nil {
			return predictOutput{}, err
		}
		res = inference.Result{Label: label, Features: x}
		return newPredictOutput(rt.Columns(), res, false), nil
	}
	if err != nil {
		return predictOutput{}, err
	}
	return newPredictOutput(rt.Columns(), res, true), nil
}

func newPredictOutput(columns []string, res inference.Result, withProba bool) predictOutput {
	out := predictOutput{
		Label:    res.Label,
		Verdict:  res.Verdict(),
		Features: make(map[string]float64, len(columns)),
	}
	if withProba {
		p := res.Probability
		out.Probability = &p
	}
	for i, c := range columns {
		out.Features[c] = res.Features[i]
	}
	return out
}

func writePrediction(w io.Writer, out predictOutput, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	fmt.Fprintf(w, "Prediction: %s\n", out.Verdict)
	if out.Probability != nil {
		fmt.Fprintf(w, "Probability of Bad Credit Risk: %.2f%%\n", *out.Probability*100)
	} else {
		fmt.Fprintln(w, "Probability of Bad Credit Risk: unavailable (model votes without probabilities)")
	}
	return nil
}
