package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	panicmsg "github.com/xgx-io/xgx-panicmsg"
	"github.com/xgx-io/xgx-panicmsg/guard"
)

// trigger builds a function that panics with a payload derived from value.
type trigger func(value string) (func(), error)

var sink int

var triggers = map[string]trigger{
	"string": func(v string) (func(), error) {
		return func() { panic(v) }, nil
	},
	"bytes": func(v string) (func(), error) {
		return func() { panic([]byte(v)) }, nil
	},
	"int": func(v string) (func(), error) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("--value must be an integer for kind int: %w", err)
		}
		return func() { panic(n) }, nil
	},
	"error": func(v string) (func(), error) {
		return func() { panic(errors.New(v)) }, nil
	},
	"nil": func(string) (func(), error) {
		return func() { panic(nil) }, nil
	},
	"boxed": func(v string) (func(), error) {
		return func() { panic(panicmsg.NewBox(v)) }, nil
	},
	"nilderef": func(string) (func(), error) {
		return func() {
			var p *struct{ n int }
			sink = p.n
		}, nil
	},
}

func triggerKinds() []string {
	kinds := make([]string, 0, len(triggers))
	for k := range triggers {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func newProbeCmd(c *cli) *cobra.Command {
	var (
		kind  string
		value string
	)

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Panic with a payload and print the recovered message",
		Long: `Runs a function that panics with the chosen payload kind inside guard.Catch,
then prints the total message and whether the partial form recovered text.

Kinds: ` + strings.Join(triggerKinds(), ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runProbe(cmd, kind, value)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "string", "payload kind")
	cmd.Flags().StringVar(&value, "value", "gus", "payload value")
	return cmd
}

func (c *cli) runProbe(cmd *cobra.Command, kind, value string) error {
	mk, ok := triggers[kind]
	if !ok {
		return fmt.Errorf("probe: unknown kind %q (want one of %s)", kind, strings.Join(triggerKinds(), ", "))
	}
	fn, err := mk(value)
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}

	var report *guard.Report
	prev := guard.TakeHook()
	guard.SetHook(func(r *guard.Report) {
		report = r
		if c.verbose {
			prev(r)
		}
	})
	defer guard.SetHook(prev)

	box := guard.Catch(fn)
	if box == nil {
		return errors.New("probe: trigger returned without panicking")
	}

	_, recovered := panicmsg.TryMessage(box)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "message: %s\n", panicmsg.Message(box))
	fmt.Fprintf(out, "ok: %t\n", recovered)

	if c.verbose && report != nil {
		pe := guard.NewPanicError(report)
		c.logger.Debug("probe finished", zap.String("kind", kind), zap.Object("panic", pe))
		fmt.Fprintf(out, "%+v\n", pe)
	}
	return nil
}
