package primejudge

import (
	"fmt"
	"io"

	"github.com/esimov/primejudge/utils"
)

// FormatVerdict renders a verdict as a single terminal line colored by d.
func FormatVerdict(d *utils.Decorator, v Verdict) string {
	n := fmt.Sprintf("%d", v.Input)
	switch v.Kind {
	case Invalid:
		return fmt.Sprintf("%s %s",
			n, d.Text("✘ invalid: must be greater than 1", utils.ErrorMessage))
	case Prime:
		return fmt.Sprintf("%s %s", n, d.Text("✔ prime", utils.SuccessMessage))
	case Composite:
		return fmt.Sprintf("%s %s %s",
			n,
			d.Text("✘ composite:", utils.ErrorMessage),
			d.Text(v.FactorList(), utils.DefaultMessage),
		)
	}
	return fmt.Sprintf("%s %s", n, d.Text("unjudged", utils.StatusMessage))
}

// WriteVerdicts prints one line per verdict. Colors are only used when w is a terminal.
func WriteVerdicts(w io.Writer, verdicts []Verdict) error {
	d := utils.NewDecorator(w)
	for _, v := range verdicts {
		if _, err := fmt.Fprintln(w, FormatVerdict(d, v)); err != nil {
			return fmt.Errorf("unable to write the verdict of %d: %w", v.Input, err)
		}
	}
	return nil
}
